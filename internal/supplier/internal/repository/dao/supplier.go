// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dao

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	ErrDuplicateEmail = errors.New("邮箱冲突")
)

type SupplierDAO interface {
	Save(ctx context.Context, s Supplier) (int64, error)
	FindByID(ctx context.Context, id int64) (Supplier, error)
	FindByEmail(ctx context.Context, email string) (Supplier, error)
	List(ctx context.Context, offset, limit int) ([]Supplier, error)
	Count(ctx context.Context) (int64, error)
	UpdatePassword(ctx context.Context, id int64, hash string) error
}

type GORMSupplierDAO struct {
	db *egorm.Component
}

func NewGORMSupplierDAO(db *egorm.Component) SupplierDAO {
	return &GORMSupplierDAO{db: db}
}

// Save 更新时不会修改密码和邮箱
func (d *GORMSupplierDAO) Save(ctx context.Context, s Supplier) (int64, error) {
	now := time.Now().UnixMilli()
	s.Utime = now
	if s.Id > 0 {
		err := d.db.WithContext(ctx).Model(&s).Select(
			"name", "trade", "phone", "street", "postal_code", "city", "country",
			"lat", "lon", "description", "production_type", "lead_time_days",
			"delivery_days", "zone_type", "departments", "cities", "radius_km",
			"base_fee", "per_km_fee", "free_threshold", "utime",
		).Where("id = ?", s.Id).Updates(&s).Error
		return s.Id, err
	}
	s.Ctime = now
	err := d.db.WithContext(ctx).Create(&s).Error
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return 0, ErrDuplicateEmail
		}
	}
	return s.Id, err
}

func (d *GORMSupplierDAO) FindByID(ctx context.Context, id int64) (Supplier, error) {
	var s Supplier
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&s).Error
	return s, err
}

func (d *GORMSupplierDAO) FindByEmail(ctx context.Context, email string) (Supplier, error) {
	var s Supplier
	err := d.db.WithContext(ctx).Where("email = ?", email).First(&s).Error
	return s, err
}

func (d *GORMSupplierDAO) List(ctx context.Context, offset, limit int) ([]Supplier, error) {
	var res []Supplier
	err := d.db.WithContext(ctx).Order("id DESC").
		Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (d *GORMSupplierDAO) Count(ctx context.Context) (int64, error) {
	var res int64
	err := d.db.WithContext(ctx).Model(&Supplier{}).Count(&res).Error
	return res, err
}

func (d *GORMSupplierDAO) UpdatePassword(ctx context.Context, id int64, hash string) error {
	return d.db.WithContext(ctx).Model(&Supplier{}).Where("id = ?", id).
		Updates(map[string]any{
			"password": hash,
			"utime":    time.Now().UnixMilli(),
		}).Error
}

type Supplier struct {
	Id             int64  `gorm:"primaryKey,autoIncrement"`
	Name           string `gorm:"type:varchar(256);not null"`
	Trade          string `gorm:"type:varchar(128)"`
	Email          string `gorm:"type:varchar(256);uniqueIndex;not null"`
	Phone          string `gorm:"type:varchar(32)"`
	Password       string `gorm:"type:varchar(128);not null"`
	Street         string `gorm:"type:varchar(256)"`
	PostalCode     string `gorm:"type:varchar(16)"`
	City           string `gorm:"type:varchar(128)"`
	Country        string `gorm:"type:varchar(64)"`
	Lat            sql.NullFloat64
	Lon            sql.NullFloat64
	Description    string `gorm:"type:text"`
	ProductionType string `gorm:"type:varchar(128)"`
	LeadTimeDays   int
	DeliveryDays   string `gorm:"type:varchar(256)"`
	// national / departments / cities / radius
	ZoneType string `gorm:"type:varchar(16);not null;default:'national'"`
	// 逗号分隔
	Departments   string `gorm:"type:varchar(1024)"`
	Cities        string `gorm:"type:varchar(2048)"`
	RadiusKm      sql.NullFloat64
	BaseFee       int64
	PerKmFee      int64
	FreeThreshold sql.NullInt64
	Ctime         int64
	Utime         int64
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Supplier{})
}
