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
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type PaymentDAO interface {
	Insert(ctx context.Context, p Payment) (int64, error)
	SetIntent(ctx context.Context, id int64, intentID string, status uint8) error
	FindBySN(ctx context.Context, sn string) (Payment, error)
	FindByIntentID(ctx context.Context, channel, intentID string) (Payment, error)
	// FindByOrderSN 一个订单只会绑定一次支付
	FindByOrderSN(ctx context.Context, orderSN string) (Payment, error)
	// UpdateStatus 只有当前状态属于 from 时才会更新，返回 false 表示没有更新
	UpdateStatus(ctx context.Context, id int64, from []int, to uint8) (bool, error)
	// BindOrder 只有还没有绑定订单时才会更新
	BindOrder(ctx context.Context, id, orderID int64, orderSN string) (bool, error)
	// AddRefund 以当前退款金额作为乐观锁
	AddRefund(ctx context.Context, id, oldRefunded, newRefunded int64, status uint8) (bool, error)
	// FindPending 按 ID 升序返回 ctime 早于给定时间且处于给定状态的记录
	FindPending(ctx context.Context, statuses []int, ctime int64, minID int64, limit int) ([]Payment, error)
	List(ctx context.Context, status uint8, offset, limit int) ([]Payment, error)
	Count(ctx context.Context, status uint8) (int64, error)
}

type GORMPaymentDAO struct {
	db *egorm.Component
}

func NewGORMPaymentDAO(db *egorm.Component) PaymentDAO {
	return &GORMPaymentDAO{db: db}
}

func (g *GORMPaymentDAO) Insert(ctx context.Context, p Payment) (int64, error) {
	now := time.Now().UnixMilli()
	p.Ctime, p.Utime = now, now
	err := g.db.WithContext(ctx).Create(&p).Error
	return p.Id, err
}

func (g *GORMPaymentDAO) SetIntent(ctx context.Context, id int64, intentID string, status uint8) error {
	return g.db.WithContext(ctx).Model(&Payment{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"intent_id": intentID,
			"status":    status,
			"utime":     time.Now().UnixMilli(),
		}).Error
}

func (g *GORMPaymentDAO) FindBySN(ctx context.Context, sn string) (Payment, error) {
	var p Payment
	err := g.db.WithContext(ctx).Where("sn = ?", sn).First(&p).Error
	return p, err
}

func (g *GORMPaymentDAO) FindByIntentID(ctx context.Context, channel, intentID string) (Payment, error) {
	var p Payment
	err := g.db.WithContext(ctx).
		Where("channel = ? AND intent_id = ?", channel, intentID).
		First(&p).Error
	return p, err
}

func (g *GORMPaymentDAO) FindByOrderSN(ctx context.Context, orderSN string) (Payment, error) {
	var p Payment
	err := g.db.WithContext(ctx).Where("order_sn = ?", orderSN).First(&p).Error
	return p, err
}

func (g *GORMPaymentDAO) UpdateStatus(ctx context.Context, id int64, from []int, to uint8) (bool, error) {
	res := g.db.WithContext(ctx).Model(&Payment{}).
		Where("id = ? AND status IN ?", id, from).
		Updates(map[string]any{
			"status": to,
			"utime":  time.Now().UnixMilli(),
		})
	return res.RowsAffected > 0, res.Error
}

func (g *GORMPaymentDAO) BindOrder(ctx context.Context, id, orderID int64, orderSN string) (bool, error) {
	res := g.db.WithContext(ctx).Model(&Payment{}).
		Where("id = ? AND order_id = 0", id).
		Updates(map[string]any{
			"order_id": orderID,
			"order_sn": orderSN,
			"utime":    time.Now().UnixMilli(),
		})
	return res.RowsAffected > 0, res.Error
}

func (g *GORMPaymentDAO) AddRefund(ctx context.Context, id, oldRefunded, newRefunded int64, status uint8) (bool, error) {
	res := g.db.WithContext(ctx).Model(&Payment{}).
		Where("id = ? AND refunded = ?", id, oldRefunded).
		Updates(map[string]any{
			"refunded": newRefunded,
			"status":   status,
			"utime":    time.Now().UnixMilli(),
		})
	return res.RowsAffected > 0, res.Error
}

func (g *GORMPaymentDAO) FindPending(ctx context.Context, statuses []int, ctime int64, minID int64, limit int) ([]Payment, error) {
	var res []Payment
	err := g.db.WithContext(ctx).
		Where("status IN ? AND ctime < ? AND id > ? AND intent_id <> ''", statuses, ctime, minID).
		Order("id ASC").
		Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *GORMPaymentDAO) List(ctx context.Context, status uint8, offset, limit int) ([]Payment, error) {
	var res []Payment
	db := g.db.WithContext(ctx)
	if status > 0 {
		db = db.Where("status = ?", status)
	}
	err := db.Order("id DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (g *GORMPaymentDAO) Count(ctx context.Context, status uint8) (int64, error) {
	var res int64
	db := g.db.WithContext(ctx).Model(&Payment{})
	if status > 0 {
		db = db.Where("status = ?", status)
	}
	err := db.Count(&res).Error
	return res, err
}

type Payment struct {
	Id       int64  `gorm:"primaryKey,autoIncrement"`
	Sn       string `gorm:"type:varchar(64);not null;uniqueIndex:uniq_payment_sn"`
	ClientId int64  `gorm:"not null;index"`
	CartId   int64  `gorm:"not null;index"`
	OrderId  int64  `gorm:"not null;default:0"`
	OrderSn  string `gorm:"type:varchar(64);not null;default:'';index"`
	Channel  string `gorm:"type:varchar(16);not null;index:idx_channel_intent,priority:1"`
	// 创建支付意图成功后才会回写
	IntentId string `gorm:"type:varchar(255);not null;default:'';index:idx_channel_intent,priority:2"`
	// 单位分
	Amount   int64  `gorm:"not null"`
	Refunded int64  `gorm:"not null;default:0"`
	Currency string `gorm:"type:varchar(8);not null"`
	Status   uint8  `gorm:"type:tinyint unsigned;not null;default:1;index;comment:1=未支付 2=处理中 3=支付成功 4=支付失败 5=已退款"`
	Ctime    int64
	Utime    int64
}
