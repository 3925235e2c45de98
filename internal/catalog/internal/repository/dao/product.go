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

type ProductDAO interface {
	Save(ctx context.Context, p Product) (int64, error)
	FindByID(ctx context.Context, id int64) (Product, error)
	FindByIDs(ctx context.Context, ids []int64) ([]Product, error)
	List(ctx context.Context, filter ProductFilter, offset, limit int) ([]Product, error)
	Count(ctx context.Context, filter ProductFilter) (int64, error)
	Delete(ctx context.Context, supplierID, id int64) (int64, error)
	// DeductStock 返回受影响的行数，0 表示库存不足或者商品不存在
	DeductStock(ctx context.Context, id, qty int64) (int64, error)
	RestoreStock(ctx context.Context, id, qty int64) error
}

type GORMProductDAO struct {
	db *egorm.Component
}

func NewGORMProductDAO(db *egorm.Component) ProductDAO {
	return &GORMProductDAO{db: db}
}

func (d *GORMProductDAO) Save(ctx context.Context, p Product) (int64, error) {
	now := time.Now().UnixMilli()
	p.Ctime = now
	p.Utime = now
	err := d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "description", "long_description", "origin", "image",
			"price", "tax_rate", "stock", "weight", "category_id", "status", "utime",
		}),
	}).Create(&p).Error
	return p.Id, err
}

func (d *GORMProductDAO) FindByID(ctx context.Context, id int64) (Product, error) {
	var p Product
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	return p, err
}

func (d *GORMProductDAO) FindByIDs(ctx context.Context, ids []int64) ([]Product, error) {
	var res []Product
	err := d.db.WithContext(ctx).Where("id IN ?", ids).Find(&res).Error
	return res, err
}

func (d *GORMProductDAO) List(ctx context.Context, filter ProductFilter, offset, limit int) ([]Product, error) {
	var res []Product
	err := filter.apply(d.db.WithContext(ctx)).
		Offset(offset).Limit(limit).
		Order("utime DESC").
		Find(&res).Error
	return res, err
}

func (d *GORMProductDAO) Count(ctx context.Context, filter ProductFilter) (int64, error) {
	var cnt int64
	err := filter.apply(d.db.WithContext(ctx).Model(&Product{})).Count(&cnt).Error
	return cnt, err
}

func (d *GORMProductDAO) Delete(ctx context.Context, supplierID, id int64) (int64, error) {
	db := d.db.WithContext(ctx).Where("id = ?", id)
	if supplierID > 0 {
		db = db.Where("supplier_id = ?", supplierID)
	}
	res := db.Delete(&Product{})
	return res.RowsAffected, res.Error
}

func (d *GORMProductDAO) DeductStock(ctx context.Context, id, qty int64) (int64, error) {
	res := d.db.WithContext(ctx).Model(&Product{}).
		Where("id = ? AND stock >= ?", id, qty).
		Updates(map[string]any{
			"stock": gorm.Expr("stock - ?", qty),
			"utime": time.Now().UnixMilli(),
		})
	return res.RowsAffected, res.Error
}

func (d *GORMProductDAO) RestoreStock(ctx context.Context, id, qty int64) error {
	return d.db.WithContext(ctx).Model(&Product{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"stock": gorm.Expr("stock + ?", qty),
			"utime": time.Now().UnixMilli(),
		}).Error
}

type ProductFilter struct {
	CategoryIDs []int64
	SupplierID  int64
	Keyword     string
	Status      uint8
}

func (f ProductFilter) apply(db *gorm.DB) *gorm.DB {
	if len(f.CategoryIDs) > 0 {
		db = db.Where("category_id IN ?", f.CategoryIDs)
	}
	if f.SupplierID > 0 {
		db = db.Where("supplier_id = ?", f.SupplierID)
	}
	if f.Keyword != "" {
		like := "%" + f.Keyword + "%"
		db = db.Where("(name LIKE ? OR sn LIKE ?)", like, like)
	}
	if f.Status > 0 {
		db = db.Where("status = ?", f.Status)
	}
	return db
}

type Product struct {
	Id              int64  `gorm:"primaryKey,autoIncrement"`
	SN              string `gorm:"type:varchar(32);uniqueIndex;not null"`
	Name            string `gorm:"type:varchar(256);not null"`
	Description     string `gorm:"type:varchar(1024)"`
	LongDescription string `gorm:"type:text"`
	Origin          string `gorm:"type:varchar(128)"`
	Image           string `gorm:"type:varchar(512)"`
	// 不含税价格，单位分
	Price   int64   `gorm:"not null"`
	TaxRate float64 `gorm:"type:decimal(5,2);not null;default:20"`
	Stock   int64   `gorm:"not null;default:0"`
	// 单位 kg
	Weight     float64 `gorm:"type:decimal(8,3);not null;default:0"`
	CategoryId int64   `gorm:"index"`
	SupplierId int64   `gorm:"index"`
	Status     uint8   `gorm:"type:tinyint unsigned;not null;default:1"`
	Ctime      int64
	Utime      int64   `gorm:"index"`
}
