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
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type CarrierDAO interface {
	Save(ctx context.Context, c Carrier) (int64, error)
	FindByID(ctx context.Context, id int64) (Carrier, error)
	FindByIDs(ctx context.Context, ids []int64) ([]Carrier, error)
	List(ctx context.Context) ([]Carrier, error)
	SaveTariff(ctx context.Context, t Tariff) (int64, error)
	FindTariffs(ctx context.Context, carrierID int64) ([]Tariff, error)
}

type GORMCarrierDAO struct {
	db *egorm.Component
}

func NewGORMCarrierDAO(db *egorm.Component) CarrierDAO {
	return &GORMCarrierDAO{db: db}
}

func (d *GORMCarrierDAO) Save(ctx context.Context, c Carrier) (int64, error) {
	now := time.Now().UnixMilli()
	c.Ctime, c.Utime = now, now
	err := d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "phone", "email", "address", "service_type", "utime",
		}),
	}).Create(&c).Error
	return c.Id, err
}

func (d *GORMCarrierDAO) FindByID(ctx context.Context, id int64) (Carrier, error) {
	var c Carrier
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&c).Error
	return c, err
}

func (d *GORMCarrierDAO) FindByIDs(ctx context.Context, ids []int64) ([]Carrier, error) {
	var res []Carrier
	err := d.db.WithContext(ctx).Where("id IN ?", ids).Find(&res).Error
	return res, err
}

func (d *GORMCarrierDAO) List(ctx context.Context) ([]Carrier, error) {
	var res []Carrier
	err := d.db.WithContext(ctx).Order("id ASC").Find(&res).Error
	return res, err
}

func (d *GORMCarrierDAO) SaveTariff(ctx context.Context, t Tariff) (int64, error) {
	now := time.Now().UnixMilli()
	t.Ctime, t.Utime = now, now
	err := d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"min_weight", "max_weight", "price", "price_ttc", "utime",
		}),
	}).Create(&t).Error
	return t.Id, err
}

func (d *GORMCarrierDAO) FindTariffs(ctx context.Context, carrierID int64) ([]Tariff, error) {
	var res []Tariff
	err := d.db.WithContext(ctx).Where("carrier_id = ?", carrierID).
		Order("min_weight ASC").Find(&res).Error
	return res, err
}

type Carrier struct {
	Id          int64  `gorm:"primaryKey,autoIncrement"`
	Name        string `gorm:"type:varchar(256);not null"`
	Phone       string `gorm:"type:varchar(32)"`
	Email       string `gorm:"type:varchar(256)"`
	Address     string `gorm:"type:varchar(512)"`
	ServiceType string `gorm:"type:varchar(16);not null;default:'standard'"`
	Ctime       int64
	Utime       int64
}

type Tariff struct {
	Id        int64   `gorm:"primaryKey,autoIncrement"`
	CarrierId int64   `gorm:"index;not null"`
	MinWeight float64 `gorm:"type:decimal(8,3);not null"`
	MaxWeight float64 `gorm:"type:decimal(8,3);not null"`
	// 单位分
	Price    int64 `gorm:"not null"`
	PriceTtc int64 `gorm:"column:price_ttc;not null"`
	Ctime    int64
	Utime    int64
}
