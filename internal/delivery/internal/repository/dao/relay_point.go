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
	"gorm.io/gorm/clause"
)

type RelayPointDAO interface {
	Save(ctx context.Context, r RelayPoint) (int64, error)
	FindByID(ctx context.Context, id int64) (RelayPoint, error)
	// List 空字符串表示不过滤
	List(ctx context.Context, postalCode, city string) ([]RelayPoint, error)
	ListActive(ctx context.Context) ([]RelayPoint, error)
}

type GORMRelayPointDAO struct {
	db *egorm.Component
}

func NewGORMRelayPointDAO(db *egorm.Component) RelayPointDAO {
	return &GORMRelayPointDAO{db: db}
}

func (d *GORMRelayPointDAO) Save(ctx context.Context, r RelayPoint) (int64, error) {
	now := time.Now().UnixMilli()
	r.Ctime, r.Utime = now, now
	err := d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "street", "postal_code", "city", "country", "lat", "lon", "active", "utime",
		}),
	}).Create(&r).Error
	return r.Id, err
}

func (d *GORMRelayPointDAO) FindByID(ctx context.Context, id int64) (RelayPoint, error) {
	var r RelayPoint
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&r).Error
	return r, err
}

func (d *GORMRelayPointDAO) List(ctx context.Context, postalCode, city string) ([]RelayPoint, error) {
	db := d.db.WithContext(ctx).Where("active = ?", true)
	if postalCode != "" {
		db = db.Where("postal_code = ?", postalCode)
	}
	if city != "" {
		db = db.Where("LOWER(city) = LOWER(?)", city)
	}
	var res []RelayPoint
	err := db.Order("id ASC").Find(&res).Error
	return res, err
}

func (d *GORMRelayPointDAO) ListActive(ctx context.Context) ([]RelayPoint, error) {
	var res []RelayPoint
	err := d.db.WithContext(ctx).Where("active = ?", true).Find(&res).Error
	return res, err
}

type RelayPoint struct {
	Id         int64  `gorm:"primaryKey,autoIncrement"`
	Name       string `gorm:"type:varchar(256);not null"`
	Street     string `gorm:"type:varchar(256)"`
	PostalCode string `gorm:"type:varchar(16);index"`
	City       string `gorm:"type:varchar(128);index"`
	Country    string `gorm:"type:varchar(64)"`
	Lat        float64
	Lon        float64
	Active     bool `gorm:"not null"`
	Ctime      int64
	Utime      int64
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Carrier{}, &Tariff{}, &RelayPoint{})
}
