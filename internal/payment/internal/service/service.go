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

package service

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/ecodeclub/epicerie/internal/order"
	"github.com/ecodeclub/epicerie/internal/payment/internal/domain"
	"github.com/ecodeclub/epicerie/internal/payment/internal/event"
	"github.com/ecodeclub/epicerie/internal/payment/internal/repository"
	"github.com/ecodeclub/epicerie/internal/pkg/snowflake"
	"github.com/gotomicro/ego/core/elog"
)

// DefaultCurrency 金额均以欧分计
const DefaultCurrency = "eur"

type ConfirmReq struct {
	ClientID     int64
	Channel      domain.Channel
	IntentID     string
	CarrierID    int64
	RelayPointID int64
}

//go:generate mockgen -source=./service.go -package=paymentmocks -destination=../../mocks/payment.mock.go Service
type Service interface {
	// CreateIntent 金额取有效购物车的含税总价，不接受前端传入
	CreateIntent(ctx context.Context, clientID int64, channel domain.Channel) (domain.Record, domain.Intent, error)
	// Confirm 支付成功后把购物车转为订单，重复确认直接返回已绑定的订单
	Confirm(ctx context.Context, req ConfirmReq) (domain.Record, error)
	HandleWebhook(ctx context.Context, channel domain.Channel, req *http.Request) error
	// Refund amount 为 0 表示退还剩余全部金额
	Refund(ctx context.Context, orderSN string, amount int64) (domain.Record, error)
	PublicKey(channel domain.Channel) (string, error)
	// Sync 主动向支付服务商查询支付结果
	Sync(ctx context.Context, r domain.Record) error
	FindPending(ctx context.Context, ctime int64, minID int64, limit int) ([]domain.Record, error)
	FindByOrderSN(ctx context.Context, orderSN string) (domain.Record, error)
	List(ctx context.Context, status domain.Status, offset, limit int) ([]domain.Record, int64, error)
}

type service struct {
	repo        repository.PaymentRepository
	processors  map[domain.Channel]Processor
	orderSvc    order.Service
	cartSvc     order.CartService
	producer    event.PaymentEventProducer
	snGenerator *snowflake.Generator
	l           *elog.Component
}

func NewService(repo repository.PaymentRepository,
	orderSvc order.Service,
	cartSvc order.CartService,
	producer event.PaymentEventProducer,
	snGenerator *snowflake.Generator,
	processors []Processor) Service {
	m := make(map[domain.Channel]Processor, len(processors))
	for _, p := range processors {
		m[p.Name()] = p
	}
	return &service{
		repo:        repo,
		processors:  m,
		orderSvc:    orderSvc,
		cartSvc:     cartSvc,
		producer:    producer,
		snGenerator: snGenerator,
		l:           elog.DefaultLogger,
	}
}

func (s *service) processor(channel domain.Channel) (Processor, error) {
	p, ok := s.processors[channel]
	if !ok {
		return nil, fmt.Errorf("%w, channel=%s", domain.ErrUnknownChannel, channel)
	}
	return p, nil
}

func (s *service) CreateIntent(ctx context.Context, clientID int64, channel domain.Channel) (domain.Record, domain.Intent, error) {
	p, err := s.processor(channel)
	if err != nil {
		return domain.Record{}, domain.Intent{}, err
	}
	summary, err := s.cartSvc.Summary(ctx, clientID)
	if err != nil {
		return domain.Record{}, domain.Intent{}, err
	}
	if len(summary.Cart.Lines) == 0 || summary.TotalTTC <= 0 {
		return domain.Record{}, domain.Intent{}, order.ErrEmptyCart
	}
	sn, err := s.snGenerator.Generate(snowflake.BizPayment)
	if err != nil {
		return domain.Record{}, domain.Intent{}, err
	}
	r, err := s.repo.Create(ctx, domain.Record{
		SN:       sn.String(),
		ClientID: clientID,
		CartID:   summary.Cart.ID,
		Channel:  channel,
		Amount:   summary.TotalTTC,
		Currency: DefaultCurrency,
		Status:   domain.StatusUnpaid,
	})
	if err != nil {
		return domain.Record{}, domain.Intent{}, err
	}
	intent, err := p.CreateIntent(ctx, domain.IntentRequest{
		Amount:      r.Amount,
		Currency:    r.Currency,
		Description: fmt.Sprintf("Epicerie %s", r.SN),
		Reference:   r.SN,
		Metadata: map[string]string{
			"client_id":  strconv.FormatInt(clientID, 10),
			"cart_id":    strconv.FormatInt(r.CartID, 10),
			"payment_sn": r.SN,
		},
	})
	if err != nil {
		_, err1 := s.repo.UpdateStatus(ctx, r.ID, []domain.Status{domain.StatusUnpaid}, domain.StatusFailed)
		if err1 != nil {
			s.l.Error("标记支付失败出错", elog.FieldErr(err1), elog.String("sn", r.SN))
		}
		return domain.Record{}, domain.Intent{}, err
	}
	err = s.repo.SetIntent(ctx, r.ID, intent.ID, intent.Status)
	if err != nil {
		return domain.Record{}, domain.Intent{}, err
	}
	r.IntentID, r.Status = intent.ID, intent.Status
	return r, intent, nil
}

func (s *service) Confirm(ctx context.Context, req ConfirmReq) (domain.Record, error) {
	r, err := s.repo.FindByIntentID(ctx, req.Channel, req.IntentID)
	if err != nil {
		return domain.Record{}, err
	}
	if r.ClientID != req.ClientID {
		return domain.Record{}, fmt.Errorf("%w, 支付记录不属于该客户, sn=%s", domain.ErrPaymentNotFound, r.SN)
	}
	if r.OrderID > 0 {
		return r, nil
	}
	p, err := s.processor(r.Channel)
	if err != nil {
		return domain.Record{}, err
	}
	intent, err := p.RetrieveIntent(ctx, r.IntentID)
	if err != nil {
		return domain.Record{}, err
	}
	if intent.Status != domain.StatusSucceeded {
		return domain.Record{}, fmt.Errorf("%w, sn=%s, status=%d", domain.ErrPaymentNotSucceeded, r.SN, intent.Status)
	}
	if _, err = s.succeed(ctx, r); err != nil {
		return domain.Record{}, err
	}
	r.Status = domain.StatusSucceeded

	summary, err := s.cartSvc.Summary(ctx, r.ClientID)
	if err != nil {
		return domain.Record{}, err
	}
	if summary.Cart.ID != r.CartID || summary.TotalTTC != r.Amount {
		s.l.Error("支付后购物车发生变化",
			elog.String("sn", r.SN),
			elog.Int64("cartID", r.CartID),
			elog.Int64("activeCartID", summary.Cart.ID),
			elog.Int64("amount", r.Amount),
			elog.Int64("total", summary.TotalTTC))
		return domain.Record{}, fmt.Errorf("%w, sn=%s", domain.ErrCartChanged, r.SN)
	}
	o, err := s.orderSvc.CreateFromCart(ctx, order.CreateOrderReq{
		ClientID:     r.ClientID,
		CarrierID:    req.CarrierID,
		RelayPointID: req.RelayPointID,
		PaymentSN:    r.SN,
	})
	if err != nil {
		return domain.Record{}, err
	}
	ok, err := s.repo.BindOrder(ctx, r.ID, o.ID, o.SN)
	if err != nil {
		return domain.Record{}, err
	}
	if !ok {
		s.l.Warn("支付记录已经绑定订单", elog.String("sn", r.SN), elog.String("orderSN", o.SN))
	}
	r.OrderID, r.OrderSN = o.ID, o.SN
	return r, nil
}

// succeed 返回 false 表示状态已经是支付成功
func (s *service) succeed(ctx context.Context, r domain.Record) (bool, error) {
	ok, err := s.repo.UpdateStatus(ctx, r.ID,
		[]domain.Status{domain.StatusUnpaid, domain.StatusProcessing, domain.StatusFailed},
		domain.StatusSucceeded)
	if err != nil || !ok {
		return false, err
	}
	s.publish(ctx, event.PaymentEvent{
		Type:      string(domain.EventSucceeded),
		PaymentSN: r.SN,
		OrderSN:   r.OrderSN,
		ClientID:  r.ClientID,
		Amount:    r.Amount,
	})
	return true, nil
}

func (s *service) HandleWebhook(ctx context.Context, channel domain.Channel, req *http.Request) error {
	p, err := s.processor(channel)
	if err != nil {
		return err
	}
	evt, err := p.ParseWebhook(req)
	if err != nil {
		return err
	}
	r, err := s.repo.FindByIntentID(ctx, channel, evt.IntentID)
	if err != nil {
		return err
	}
	return s.apply(ctx, r, evt)
}

func (s *service) apply(ctx context.Context, r domain.Record, evt domain.Event) error {
	switch evt.Type {
	case domain.EventSucceeded:
		_, err := s.succeed(ctx, r)
		return err
	case domain.EventFailed:
		ok, err := s.repo.UpdateStatus(ctx, r.ID,
			[]domain.Status{domain.StatusUnpaid, domain.StatusProcessing}, domain.StatusFailed)
		if err != nil {
			return err
		}
		if ok {
			s.publish(ctx, event.PaymentEvent{
				Type:      string(domain.EventFailed),
				PaymentSN: r.SN,
				ClientID:  r.ClientID,
				Amount:    r.Amount,
			})
		}
		return nil
	case domain.EventRefunded:
		if r.Status != domain.StatusSucceeded || evt.Amount <= r.Refunded {
			return nil
		}
		_, err := s.addRefund(ctx, r, min(evt.Amount, r.Amount)-r.Refunded)
		return err
	default:
		return fmt.Errorf("%w, type=%s", domain.ErrIgnoredEvent, evt.Type)
	}
}

func (s *service) Refund(ctx context.Context, orderSN string, amount int64) (domain.Record, error) {
	r, err := s.repo.FindByOrderSN(ctx, orderSN)
	if err != nil {
		return domain.Record{}, err
	}
	if r.Status != domain.StatusSucceeded {
		return domain.Record{}, fmt.Errorf("%w, sn=%s, status=%d", domain.ErrPaymentNotSucceeded, r.SN, r.Status)
	}
	if amount == 0 {
		amount = r.Refundable()
	}
	if amount <= 0 || amount > r.Refundable() {
		return domain.Record{}, fmt.Errorf("%w, amount=%d, refundable=%d", domain.ErrIllegalRefundAmount, amount, r.Refundable())
	}
	p, err := s.processor(r.Channel)
	if err != nil {
		return domain.Record{}, err
	}
	refundSN, err := s.snGenerator.Generate(snowflake.BizRefund)
	if err != nil {
		return domain.Record{}, err
	}
	err = p.Refund(ctx, domain.RefundRequest{
		IntentID: r.IntentID,
		RefundSN: refundSN.String(),
		Amount:   amount,
		Total:    r.Amount,
		Currency: r.Currency,
	})
	if err != nil {
		return domain.Record{}, err
	}
	return s.addRefund(ctx, r, amount)
}

// addRefund 全额退款后通知订单取消
func (s *service) addRefund(ctx context.Context, r domain.Record, amount int64) (domain.Record, error) {
	res, err := s.repo.AddRefund(ctx, r, amount)
	if err != nil {
		return domain.Record{}, err
	}
	if res.Status == domain.StatusRefunded {
		s.publish(ctx, event.PaymentEvent{
			Type:      string(domain.EventRefunded),
			PaymentSN: res.SN,
			OrderSN:   res.OrderSN,
			ClientID:  res.ClientID,
			Amount:    res.Refunded,
		})
	}
	return res, nil
}

func (s *service) publish(ctx context.Context, evt event.PaymentEvent) {
	err := s.producer.Produce(ctx, evt)
	if err != nil {
		s.l.Error("发送支付事件失败",
			elog.FieldErr(err),
			elog.String("type", evt.Type),
			elog.String("sn", evt.PaymentSN))
	}
}

func (s *service) PublicKey(channel domain.Channel) (string, error) {
	p, err := s.processor(channel)
	if err != nil {
		return "", err
	}
	return p.PublicKey(), nil
}

func (s *service) Sync(ctx context.Context, r domain.Record) error {
	p, err := s.processor(r.Channel)
	if err != nil {
		return err
	}
	intent, err := p.RetrieveIntent(ctx, r.IntentID)
	if err != nil {
		return err
	}
	switch intent.Status {
	case domain.StatusSucceeded:
		return s.apply(ctx, r, domain.Event{Type: domain.EventSucceeded, IntentID: r.IntentID})
	case domain.StatusFailed:
		return s.apply(ctx, r, domain.Event{Type: domain.EventFailed, IntentID: r.IntentID})
	case domain.StatusProcessing:
		_, err = s.repo.UpdateStatus(ctx, r.ID, []domain.Status{domain.StatusUnpaid}, domain.StatusProcessing)
		return err
	default:
		return nil
	}
}

func (s *service) FindPending(ctx context.Context, ctime int64, minID int64, limit int) ([]domain.Record, error) {
	return s.repo.FindPending(ctx, ctime, minID, limit)
}

func (s *service) FindByOrderSN(ctx context.Context, orderSN string) (domain.Record, error) {
	return s.repo.FindByOrderSN(ctx, orderSN)
}

func (s *service) List(ctx context.Context, status domain.Status, offset, limit int) ([]domain.Record, int64, error) {
	records, err := s.repo.List(ctx, status, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx, status)
	if err != nil {
		return nil, 0, err
	}
	return records, total, nil
}
