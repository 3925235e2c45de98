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

package repository

import (
	"context"
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/epicerie/internal/payment/internal/domain"
	"github.com/ecodeclub/epicerie/internal/payment/internal/repository/dao"
)

//go:generate mockgen -source=./repository.go -package=repomocks -destination=mocks/payment.mock.go PaymentRepository
type PaymentRepository interface {
	Create(ctx context.Context, r domain.Record) (domain.Record, error)
	SetIntent(ctx context.Context, id int64, intentID string, status domain.Status) error
	FindBySN(ctx context.Context, sn string) (domain.Record, error)
	FindByIntentID(ctx context.Context, channel domain.Channel, intentID string) (domain.Record, error)
	FindByOrderSN(ctx context.Context, orderSN string) (domain.Record, error)
	// UpdateStatus 返回 false 表示记录当前状态不在 from 中
	UpdateStatus(ctx context.Context, id int64, from []domain.Status, to domain.Status) (bool, error)
	BindOrder(ctx context.Context, id, orderID int64, orderSN string) (bool, error)
	AddRefund(ctx context.Context, r domain.Record, amount int64) (domain.Record, error)
	FindPending(ctx context.Context, ctime int64, minID int64, limit int) ([]domain.Record, error)
	List(ctx context.Context, status domain.Status, offset, limit int) ([]domain.Record, error)
	Count(ctx context.Context, status domain.Status) (int64, error)
}

var ErrConcurrentRefund = errors.New("退款并发冲突")

type paymentRepository struct {
	dao dao.PaymentDAO
}

func NewPaymentRepository(d dao.PaymentDAO) PaymentRepository {
	return &paymentRepository{dao: d}
}

func (p *paymentRepository) Create(ctx context.Context, r domain.Record) (domain.Record, error) {
	id, err := p.dao.Insert(ctx, p.toEntity(r))
	if err != nil {
		return domain.Record{}, err
	}
	r.ID = id
	return r, nil
}

func (p *paymentRepository) SetIntent(ctx context.Context, id int64, intentID string, status domain.Status) error {
	return p.dao.SetIntent(ctx, id, intentID, status.ToUint8())
}

func (p *paymentRepository) FindBySN(ctx context.Context, sn string) (domain.Record, error) {
	return p.find(p.dao.FindBySN(ctx, sn))
}

func (p *paymentRepository) FindByIntentID(ctx context.Context, channel domain.Channel, intentID string) (domain.Record, error) {
	return p.find(p.dao.FindByIntentID(ctx, channel.String(), intentID))
}

func (p *paymentRepository) FindByOrderSN(ctx context.Context, orderSN string) (domain.Record, error) {
	return p.find(p.dao.FindByOrderSN(ctx, orderSN))
}

func (p *paymentRepository) find(entity dao.Payment, err error) (domain.Record, error) {
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Record{}, domain.ErrPaymentNotFound
	}
	if err != nil {
		return domain.Record{}, err
	}
	return p.toDomain(entity), nil
}

func (p *paymentRepository) UpdateStatus(ctx context.Context, id int64, from []domain.Status, to domain.Status) (bool, error) {
	return p.dao.UpdateStatus(ctx, id, p.statuses(from), to.ToUint8())
}

func (p *paymentRepository) BindOrder(ctx context.Context, id, orderID int64, orderSN string) (bool, error) {
	return p.dao.BindOrder(ctx, id, orderID, orderSN)
}

func (p *paymentRepository) AddRefund(ctx context.Context, r domain.Record, amount int64) (domain.Record, error) {
	refunded := r.Refunded + amount
	status := r.Status
	if refunded >= r.Amount {
		status = domain.StatusRefunded
	}
	ok, err := p.dao.AddRefund(ctx, r.ID, r.Refunded, refunded, status.ToUint8())
	if err != nil {
		return domain.Record{}, err
	}
	if !ok {
		return domain.Record{}, ErrConcurrentRefund
	}
	r.Refunded, r.Status = refunded, status
	return r, nil
}

func (p *paymentRepository) FindPending(ctx context.Context, ctime int64, minID int64, limit int) ([]domain.Record, error) {
	res, err := p.dao.FindPending(ctx,
		p.statuses([]domain.Status{domain.StatusUnpaid, domain.StatusProcessing}),
		ctime, minID, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.Payment) domain.Record {
		return p.toDomain(src)
	}), nil
}

func (p *paymentRepository) List(ctx context.Context, status domain.Status, offset, limit int) ([]domain.Record, error) {
	res, err := p.dao.List(ctx, status.ToUint8(), offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.Payment) domain.Record {
		return p.toDomain(src)
	}), nil
}

func (p *paymentRepository) Count(ctx context.Context, status domain.Status) (int64, error) {
	return p.dao.Count(ctx, status.ToUint8())
}

func (p *paymentRepository) statuses(src []domain.Status) []int {
	return slice.Map(src, func(idx int, s domain.Status) int {
		return int(s)
	})
}

func (p *paymentRepository) toEntity(r domain.Record) dao.Payment {
	return dao.Payment{
		Id:       r.ID,
		Sn:       r.SN,
		ClientId: r.ClientID,
		CartId:   r.CartID,
		OrderId:  r.OrderID,
		OrderSn:  r.OrderSN,
		Channel:  r.Channel.String(),
		IntentId: r.IntentID,
		Amount:   r.Amount,
		Refunded: r.Refunded,
		Currency: r.Currency,
		Status:   r.Status.ToUint8(),
	}
}

func (p *paymentRepository) toDomain(e dao.Payment) domain.Record {
	return domain.Record{
		ID:       e.Id,
		SN:       e.Sn,
		ClientID: e.ClientId,
		CartID:   e.CartId,
		OrderID:  e.OrderId,
		OrderSN:  e.OrderSn,
		Channel:  domain.Channel(e.Channel),
		IntentID: e.IntentId,
		Amount:   e.Amount,
		Refunded: e.Refunded,
		Currency: e.Currency,
		Status:   domain.Status(e.Status),
		Ctime:    e.Ctime,
		Utime:    e.Utime,
	}
}
