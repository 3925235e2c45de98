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

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	// ErrCartNotActive 购物车已经下过单
	ErrCartNotActive = errors.New("购物车不是有效状态")
	// ErrVersionConflict 乐观锁冲突
	ErrVersionConflict = errors.New("订单版本冲突")
)

const (
	historyKindArchive uint8 = 1

	orderStatusPending uint8 = 1
)

type OrderDAO interface {
	// CreateFromCart 在一个事务内把购物车标记为已下单，创建订单，并给客户开一个新的购物车
	CreateFromCart(ctx context.Context, o Order) (Order, int64, error)
	FindByID(ctx context.Context, id int64) (Order, error)
	FindBySN(ctx context.Context, sn string) (Order, error)
	FindByClient(ctx context.Context, clientID int64, offset, limit int) ([]Order, error)
	CountByClient(ctx context.Context, clientID int64) (int64, error)
	List(ctx context.Context, status uint8, offset, limit int) ([]Order, error)
	Count(ctx context.Context, status uint8) (int64, error)
	// FindInFlight 按 ID 升序分批返回 id > minID 且处于给定状态的订单
	FindInFlight(ctx context.Context, statuses []int, minID int64, limit int) ([]Order, error)
	FindBySupplier(ctx context.Context, supplierID int64, status uint8, offset, limit int) ([]Order, error)
	CountBySupplier(ctx context.Context, supplierID int64, status uint8) (int64, error)
	CountBySupplierGroupByStatus(ctx context.Context, supplierID int64) (map[uint8]int64, error)
	// UpdateStatus 以 version 做乐观锁，成功后 version 加一
	UpdateStatus(ctx context.Context, id, version int64, status uint8, progress float64) error
	UpdateLineStatus(ctx context.Context, cartID, lineID int64, status uint8) (int64, error)
	// Reopen 重置订单与订单行状态，代数加一，同时追加一条重新打开的历史
	Reopen(ctx context.Context, id, version int64, h OrderHistory) error
	// Archive 返回 false 表示该代的快照已经存在
	Archive(ctx context.Context, h OrderHistory) (bool, error)
	FindHistoriesByClient(ctx context.Context, clientID int64) ([]OrderHistory, error)
	FindHistoriesByOrder(ctx context.Context, orderID int64) ([]OrderHistory, error)
}

type GORMOrderDAO struct {
	db *egorm.Component
}

func NewGORMOrderDAO(db *egorm.Component) OrderDAO {
	return &GORMOrderDAO{db: db}
}

func (d *GORMOrderDAO) CreateFromCart(ctx context.Context, o Order) (Order, int64, error) {
	var newCartID int64
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockActiveCart(tx, o.CartId); err != nil {
			return err
		}
		now := time.Now().UnixMilli()
		err := tx.Model(&Cart{}).
			Where("id = ?", o.CartId).
			Updates(map[string]any{
				"status": cartStatusDone,
				"utime":  now,
			}).Error
		if err != nil {
			return err
		}
		o.Ctime, o.Utime = now, now
		if err := tx.Create(&o).Error; err != nil {
			return err
		}
		c := Cart{ClientId: o.ClientId, Status: cartStatusActive, Ctime: now, Utime: now}
		if err := tx.Create(&c).Error; err != nil {
			return err
		}
		newCartID = c.Id
		return nil
	})
	return o, newCartID, err
}

func (d *GORMOrderDAO) FindByID(ctx context.Context, id int64) (Order, error) {
	var o Order
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&o).Error
	return o, err
}

func (d *GORMOrderDAO) FindBySN(ctx context.Context, sn string) (Order, error) {
	var o Order
	err := d.db.WithContext(ctx).Where("sn = ?", sn).First(&o).Error
	return o, err
}

func (d *GORMOrderDAO) FindByClient(ctx context.Context, clientID int64, offset, limit int) ([]Order, error) {
	var res []Order
	err := d.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *GORMOrderDAO) CountByClient(ctx context.Context, clientID int64) (int64, error) {
	var cnt int64
	err := d.db.WithContext(ctx).Model(&Order{}).Where("client_id = ?", clientID).Count(&cnt).Error
	return cnt, err
}

func (d *GORMOrderDAO) List(ctx context.Context, status uint8, offset, limit int) ([]Order, error) {
	var res []Order
	err := d.statusWhere(d.db.WithContext(ctx), status).
		Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *GORMOrderDAO) Count(ctx context.Context, status uint8) (int64, error) {
	var cnt int64
	err := d.statusWhere(d.db.WithContext(ctx).Model(&Order{}), status).Count(&cnt).Error
	return cnt, err
}

func (d *GORMOrderDAO) statusWhere(db *gorm.DB, status uint8) *gorm.DB {
	if status > 0 {
		return db.Where("status = ?", status)
	}
	return db
}

func (d *GORMOrderDAO) FindInFlight(ctx context.Context, statuses []int, minID int64, limit int) ([]Order, error) {
	var res []Order
	err := d.db.WithContext(ctx).
		Where("id > ? AND status IN ?", minID, statuses).
		Order("id ASC").
		Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *GORMOrderDAO) supplierWhere(db *gorm.DB, supplierID int64, status uint8) *gorm.DB {
	sub := d.db.Model(&CartLine{}).Select("cart_id").Where("supplier_id = ?", supplierID)
	return d.statusWhere(db.Where("cart_id IN (?)", sub), status)
}

func (d *GORMOrderDAO) FindBySupplier(ctx context.Context, supplierID int64, status uint8, offset, limit int) ([]Order, error) {
	var res []Order
	err := d.supplierWhere(d.db.WithContext(ctx), supplierID, status).
		Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *GORMOrderDAO) CountBySupplier(ctx context.Context, supplierID int64, status uint8) (int64, error) {
	var cnt int64
	err := d.supplierWhere(d.db.WithContext(ctx).Model(&Order{}), supplierID, status).Count(&cnt).Error
	return cnt, err
}

func (d *GORMOrderDAO) CountBySupplierGroupByStatus(ctx context.Context, supplierID int64) (map[uint8]int64, error) {
	var rows []struct {
		Status uint8
		Cnt    int64
	}
	err := d.supplierWhere(d.db.WithContext(ctx).Model(&Order{}), supplierID, 0).
		Select("status, COUNT(*) AS cnt").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	res := make(map[uint8]int64, len(rows))
	for _, r := range rows {
		res[r.Status] = r.Cnt
	}
	return res, nil
}

func (d *GORMOrderDAO) UpdateStatus(ctx context.Context, id, version int64, status uint8, progress float64) error {
	res := d.db.WithContext(ctx).Model(&Order{}).
		Where("id = ? AND version = ?", id, version).
		Updates(map[string]any{
			"status":   status,
			"progress": progress,
			"version":  gorm.Expr("version + 1"),
			"utime":    time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrVersionConflict
	}
	return nil
}

func (d *GORMOrderDAO) UpdateLineStatus(ctx context.Context, cartID, lineID int64, status uint8) (int64, error) {
	res := d.db.WithContext(ctx).Model(&CartLine{}).
		Where("id = ? AND cart_id = ?", lineID, cartID).
		Updates(map[string]any{
			"status": status,
			"utime":  time.Now().UnixMilli(),
		})
	return res.RowsAffected, res.Error
}

func (d *GORMOrderDAO) Reopen(ctx context.Context, id, version int64, h OrderHistory) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		var o Order
		if err := tx.Where("id = ?", id).First(&o).Error; err != nil {
			return err
		}
		res := tx.Model(&Order{}).
			Where("id = ? AND version = ?", id, version).
			Updates(map[string]any{
				"status":     orderStatusPending,
				"progress":   0,
				"generation": gorm.Expr("generation + 1"),
				"version":    gorm.Expr("version + 1"),
				"utime":      now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrVersionConflict
		}
		err := tx.Model(&CartLine{}).
			Where("cart_id = ?", o.CartId).
			Updates(map[string]any{
				"status": lineStatusPending,
				"utime":  now,
			}).Error
		if err != nil {
			return err
		}
		h.OrderId = id
		h.Generation = o.Generation + 1
		h.Ctime, h.Utime = now, now
		return tx.Create(&h).Error
	})
}

func (d *GORMOrderDAO) Archive(ctx context.Context, h OrderHistory) (bool, error) {
	created := false
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cnt int64
		err := tx.Model(&OrderHistory{}).
			Where("order_id = ? AND generation = ? AND kind = ?", h.OrderId, h.Generation, historyKindArchive).
			Count(&cnt).Error
		if err != nil || cnt > 0 {
			return err
		}
		now := time.Now().UnixMilli()
		h.Kind = historyKindArchive
		h.Ctime, h.Utime = now, now
		err = tx.Create(&h).Error
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == uniqueConflictErrNo {
			// 并发归档，由唯一索引兜住
			return nil
		}
		if err == nil {
			created = true
		}
		return err
	})
	return created, err
}

func (d *GORMOrderDAO) FindHistoriesByClient(ctx context.Context, clientID int64) ([]OrderHistory, error) {
	var res []OrderHistory
	err := d.db.WithContext(ctx).Where("client_id = ?", clientID).Order("id DESC").Find(&res).Error
	return res, err
}

func (d *GORMOrderDAO) FindHistoriesByOrder(ctx context.Context, orderID int64) ([]OrderHistory, error) {
	var res []OrderHistory
	err := d.db.WithContext(ctx).Where("order_id = ?", orderID).Order("id ASC").Find(&res).Error
	return res, err
}

const uniqueConflictErrNo uint16 = 1062

type Order struct {
	Id       int64  `gorm:"primaryKey,autoIncrement"`
	Sn       string `gorm:"type:varchar(64);not null;uniqueIndex:uniq_order_sn"`
	ClientId int64  `gorm:"not null;index"`
	// 一个购物车只能生成一个订单
	CartId       int64 `gorm:"not null;uniqueIndex:uniq_cart_id"`
	CarrierId    int64 `gorm:"not null;default:0"`
	RelayPointId int64 `gorm:"not null;default:0"`
	// 含税商品总价，单位分
	Total int64 `gorm:"not null"`
	// 含税运费，单位分
	Shipping   int64   `gorm:"not null;default:0"`
	Status     uint8   `gorm:"type:tinyint unsigned;not null;default:1;index;comment:1=待处理 2=处理中 3=配送中 4=已完成 5=已取消"`
	Progress   float64 `gorm:"type:decimal(5,2);not null;default:0"`
	Generation int64   `gorm:"not null;default:0"`
	Version    int64   `gorm:"not null;default:0"`
	PaymentSn  string  `gorm:"type:varchar(64);not null;default:''"`
	Ctime      int64
	Utime      int64
}

type OrderHistory struct {
	Id int64 `gorm:"primaryKey,autoIncrement"`
	// 同一代同一类型只能有一条
	OrderId     int64                          `gorm:"not null;uniqueIndex:uniq_order_gen_kind,priority:1"`
	Generation  int64                          `gorm:"not null;uniqueIndex:uniq_order_gen_kind,priority:2"`
	Kind        uint8                          `gorm:"type:tinyint unsigned;not null;uniqueIndex:uniq_order_gen_kind,priority:3;comment:1=归档 2=重新打开"`
	OrderSn     string                         `gorm:"type:varchar(64);not null"`
	ClientId    int64                          `gorm:"not null;index"`
	ClientName  string                         `gorm:"type:varchar(256)"`
	ClientEmail string                         `gorm:"type:varchar(256)"`
	ClientPhone string                         `gorm:"type:varchar(32)"`
	CarrierName string                         `gorm:"type:varchar(256)"`
	RelayPoint  string                         `gorm:"type:varchar(256)"`
	CartId      int64                          `gorm:"not null"`
	Status      uint8                          `gorm:"type:tinyint unsigned;not null"`
	Total       int64                          `gorm:"not null"`
	OrderCtime  int64                          `gorm:"not null"`
	Lines       sqlx.JsonColumn[[]HistoryLine] `gorm:"type:json"`
	Ctime       int64
	Utime       int64
}

type HistoryLine struct {
	ProductId   int64   `json:"productId"`
	ProductSn   string  `json:"productSN"`
	ProductName string  `json:"productName"`
	Quantity    int64   `json:"quantity"`
	PriceTtc    int64   `json:"priceTTC"`
	Weight      float64 `json:"weight"`
	Status      string  `json:"status"`
}
