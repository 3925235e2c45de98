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
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

const (
	cartStatusActive uint8 = 1
	cartStatusDone   uint8 = 2

	lineStatusPending uint8 = 1
)

type CartDAO interface {
	// FindActive 返回客户最新的有效购物车
	FindActive(ctx context.Context, clientID int64) (Cart, error)
	FindByID(ctx context.Context, id int64) (Cart, error)
	Create(ctx context.Context, c Cart) (int64, error)
	FindLines(ctx context.Context, cartID int64) ([]CartLine, error)
	FindLinesByCartIDs(ctx context.Context, cartIDs []int64) ([]CartLine, error)
	// SaveLine 同一个购物车同一个商品只有一行，已存在时覆盖数量和冗余字段
	SaveLine(ctx context.Context, l CartLine) (int64, error)
	DeleteLine(ctx context.Context, cartID, lineID int64) (int64, error)
	ClearLines(ctx context.Context, cartID int64) error
}

type GORMCartDAO struct {
	db *egorm.Component
}

func NewGORMCartDAO(db *egorm.Component) CartDAO {
	return &GORMCartDAO{db: db}
}

func (d *GORMCartDAO) FindActive(ctx context.Context, clientID int64) (Cart, error) {
	var c Cart
	err := d.db.WithContext(ctx).
		Where("client_id = ? AND status = ?", clientID, cartStatusActive).
		Order("id DESC").
		First(&c).Error
	return c, err
}

func (d *GORMCartDAO) FindByID(ctx context.Context, id int64) (Cart, error) {
	var c Cart
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&c).Error
	return c, err
}

func (d *GORMCartDAO) Create(ctx context.Context, c Cart) (int64, error) {
	now := time.Now().UnixMilli()
	c.Ctime, c.Utime = now, now
	if c.Status == 0 {
		c.Status = cartStatusActive
	}
	err := d.db.WithContext(ctx).Create(&c).Error
	return c.Id, err
}

func (d *GORMCartDAO) FindLines(ctx context.Context, cartID int64) ([]CartLine, error) {
	var res []CartLine
	err := d.db.WithContext(ctx).Where("cart_id = ?", cartID).Order("id ASC").Find(&res).Error
	return res, err
}

func (d *GORMCartDAO) FindLinesByCartIDs(ctx context.Context, cartIDs []int64) ([]CartLine, error) {
	var res []CartLine
	if len(cartIDs) == 0 {
		return res, nil
	}
	err := d.db.WithContext(ctx).Where("cart_id IN ?", cartIDs).Order("id ASC").Find(&res).Error
	return res, err
}

func (d *GORMCartDAO) SaveLine(ctx context.Context, l CartLine) (int64, error) {
	now := time.Now().UnixMilli()
	l.Ctime, l.Utime = now, now
	if l.Status == 0 {
		l.Status = lineStatusPending
	}
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockActiveCart(tx, l.CartId); err != nil {
			return err
		}
		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "cart_id"}, {Name: "product_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"supplier_id", "product_sn", "product_name", "price", "price_ttc",
				"tax_rate", "weight", "quantity", "utime",
			}),
		}).Create(&l).Error
	})
	return l.Id, err
}

func (d *GORMCartDAO) DeleteLine(ctx context.Context, cartID, lineID int64) (int64, error) {
	var cnt int64
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockActiveCart(tx, cartID); err != nil {
			return err
		}
		res := tx.Where("id = ? AND cart_id = ?", lineID, cartID).Delete(&CartLine{})
		cnt = res.RowsAffected
		return res.Error
	})
	return cnt, err
}

func (d *GORMCartDAO) ClearLines(ctx context.Context, cartID int64) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockActiveCart(tx, cartID); err != nil {
			return err
		}
		return tx.Where("cart_id = ?", cartID).Delete(&CartLine{}).Error
	})
}

// lockActiveCart 锁住有效状态的购物车行，购物车已经下单时返回 ErrCartNotActive。
// 下单与修改购物车行都要先拿这把锁，这样下单之后就不会再有购物车行被改动
func lockActiveCart(tx *gorm.DB, cartID int64) error {
	var c Cart
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ? AND status = ?", cartID, cartStatusActive).
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrCartNotActive
	}
	return err
}

type Cart struct {
	Id       int64 `gorm:"primaryKey,autoIncrement"`
	ClientId int64 `gorm:"not null;index:idx_client_status,priority:1"`
	Status   uint8 `gorm:"type:tinyint unsigned;not null;default:1;index:idx_client_status,priority:2;comment:1=有效 2=已下单"`
	Ctime    int64
	Utime    int64
}

type CartLine struct {
	Id          int64  `gorm:"primaryKey,autoIncrement"`
	CartId      int64  `gorm:"not null;uniqueIndex:uniq_cart_product,priority:1"`
	ProductId   int64  `gorm:"not null;uniqueIndex:uniq_cart_product,priority:2"`
	SupplierId  int64  `gorm:"not null;index"`
	ProductSn   string `gorm:"type:varchar(32);not null"`
	ProductName string `gorm:"type:varchar(256);not null"`
	// 不含税单价，单位分
	Price int64 `gorm:"not null"`
	// 含税单价，单位分
	PriceTtc int64   `gorm:"not null"`
	TaxRate  float64 `gorm:"type:decimal(5,2);not null"`
	// 单位 kg
	Weight   float64 `gorm:"type:decimal(8,3);not null"`
	Quantity int64   `gorm:"not null"`
	Status   uint8   `gorm:"type:tinyint unsigned;not null;default:1;comment:1=待处理 2=准备中 3=配送中 4=已完成 5=已入库"`
	Ctime    int64
	Utime    int64
}
