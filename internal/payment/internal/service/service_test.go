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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ecodeclub/epicerie/internal/order"
	ordermocks "github.com/ecodeclub/epicerie/internal/order/mocks"
	"github.com/ecodeclub/epicerie/internal/payment/internal/domain"
	"github.com/ecodeclub/epicerie/internal/payment/internal/event"
	repomocks "github.com/ecodeclub/epicerie/internal/payment/internal/repository/mocks"
	svcmocks "github.com/ecodeclub/epicerie/internal/payment/internal/service/mocks"
	"github.com/ecodeclub/epicerie/internal/pkg/snowflake"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type deps struct {
	repo      *repomocks.MockPaymentRepository
	orderSvc  *ordermocks.MockService
	cartSvc   *ordermocks.MockCartService
	processor *svcmocks.MockProcessor
}

func newDeps(ctrl *gomock.Controller) deps {
	p := svcmocks.NewMockProcessor(ctrl)
	p.EXPECT().Name().Return(domain.ChannelStripe).AnyTimes()
	return deps{
		repo:      repomocks.NewMockPaymentRepository(ctrl),
		orderSvc:  ordermocks.NewMockService(ctrl),
		cartSvc:   ordermocks.NewMockCartService(ctrl),
		processor: p,
	}
}

type testEnv struct {
	svc      Service
	consumer mq.Consumer
}

func newTestEnv(t *testing.T, d deps) testEnv {
	q := memory.NewMQ()
	require.NoError(t, q.CreateTopic(context.Background(), event.PaymentEventTopic, 1))
	consumer, err := q.Consumer(event.PaymentEventTopic, "test")
	require.NoError(t, err)
	producer, err := event.NewPaymentEventProducer(q)
	require.NoError(t, err)
	gen, err := snowflake.NewGenerator(0, 2)
	require.NoError(t, err)
	return testEnv{
		svc:      NewService(d.repo, d.orderSvc, d.cartSvc, producer, gen, []Processor{d.processor}),
		consumer: consumer,
	}
}

// events 读取已经发送的全部事件。
// 内存 MQ 的消费者分配分区需要约 1s，所以第一次读取等待得更久
func (e testEnv) events(t *testing.T) []event.PaymentEvent {
	var res []event.PaymentEvent
	timeout := 2 * time.Second
	for {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		msg, err := e.consumer.Consume(ctx)
		cancel()
		if err != nil {
			return res
		}
		var evt event.PaymentEvent
		require.NoError(t, json.Unmarshal(msg.Value, &evt))
		res = append(res, evt)
		timeout = 300 * time.Millisecond
	}
}

var errDeclined = &domain.ProcessorError{Type: "card_error", Message: "declined"}

var testSummary = order.CartSummary{
	Cart: order.Cart{
		ID:       10,
		ClientID: 7,
		Lines:    []order.CartLine{{ID: 1, CartID: 10, ProductID: 5, Quantity: 2, PriceTTC: 1650}},
	},
	TotalHT:  2750,
	TotalTTC: 3300,
}

func TestService_CreateIntent(t *testing.T) {
	testCases := []struct {
		name    string
		channel domain.Channel
		mock    func(d deps)
		want    domain.Record
		wantErr error
	}{
		{
			name:    "创建成功",
			channel: domain.ChannelStripe,
			mock: func(d deps) {
				d.cartSvc.EXPECT().Summary(gomock.Any(), int64(7)).Return(testSummary, nil)
				d.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, r domain.Record) (domain.Record, error) {
						assert.NotEmpty(t, r.SN)
						assert.Equal(t, int64(3300), r.Amount)
						assert.Equal(t, int64(10), r.CartID)
						assert.Equal(t, domain.StatusUnpaid, r.Status)
						r.ID = 1
						r.SN = "P1"
						return r, nil
					})
				d.processor.EXPECT().CreateIntent(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, req domain.IntentRequest) (domain.Intent, error) {
						assert.Equal(t, "P1", req.Reference)
						assert.Equal(t, "7", req.Metadata["client_id"])
						assert.Equal(t, "10", req.Metadata["cart_id"])
						return domain.Intent{ID: "pi_1", ClientSecret: "secret", Amount: 3300, Status: domain.StatusUnpaid}, nil
					})
				d.repo.EXPECT().SetIntent(gomock.Any(), int64(1), "pi_1", domain.StatusUnpaid).Return(nil)
			},
			want: domain.Record{
				ID: 1, SN: "P1", ClientID: 7, CartID: 10, Channel: domain.ChannelStripe,
				IntentID: "pi_1", Amount: 3300, Currency: DefaultCurrency, Status: domain.StatusUnpaid,
			},
		},
		{
			name:    "购物车为空",
			channel: domain.ChannelStripe,
			mock: func(d deps) {
				d.cartSvc.EXPECT().Summary(gomock.Any(), int64(7)).Return(order.CartSummary{Cart: order.Cart{ID: 10}}, nil)
			},
			wantErr: order.ErrEmptyCart,
		},
		{
			name:    "未知渠道",
			channel: domain.ChannelWechat,
			mock:    func(d deps) {},
			wantErr: domain.ErrUnknownChannel,
		},
		{
			name:    "服务商失败",
			channel: domain.ChannelStripe,
			mock: func(d deps) {
				d.cartSvc.EXPECT().Summary(gomock.Any(), int64(7)).Return(testSummary, nil)
				d.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, r domain.Record) (domain.Record, error) {
						r.ID = 1
						return r, nil
					})
				d.processor.EXPECT().CreateIntent(gomock.Any(), gomock.Any()).
					Return(domain.Intent{}, errDeclined)
				d.repo.EXPECT().UpdateStatus(gomock.Any(), int64(1),
					[]domain.Status{domain.StatusUnpaid}, domain.StatusFailed).Return(true, nil)
			},
			wantErr: errDeclined,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			d := newDeps(ctrl)
			tc.mock(d)
			env := newTestEnv(t, d)
			r, intent, err := env.svc.CreateIntent(context.Background(), 7, tc.channel)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, tc.want, r)
			assert.Equal(t, "secret", intent.ClientSecret)
		})
	}
}

func TestService_Confirm(t *testing.T) {
	paid := domain.Record{
		ID: 1, SN: "P1", ClientID: 7, CartID: 10, Channel: domain.ChannelStripe,
		IntentID: "pi_1", Amount: 3300, Status: domain.StatusUnpaid,
	}
	req := ConfirmReq{ClientID: 7, Channel: domain.ChannelStripe, IntentID: "pi_1", CarrierID: 1}
	testCases := []struct {
		name       string
		req        ConfirmReq
		mock       func(d deps)
		want       domain.Record
		wantEvents int
		wantErr    error
	}{
		{
			name: "确认成功",
			req:  req,
			mock: func(d deps) {
				d.repo.EXPECT().FindByIntentID(gomock.Any(), domain.ChannelStripe, "pi_1").Return(paid, nil)
				d.processor.EXPECT().RetrieveIntent(gomock.Any(), "pi_1").
					Return(domain.Intent{ID: "pi_1", Status: domain.StatusSucceeded}, nil)
				d.repo.EXPECT().UpdateStatus(gomock.Any(), int64(1), gomock.Any(), domain.StatusSucceeded).Return(true, nil)
				d.cartSvc.EXPECT().Summary(gomock.Any(), int64(7)).Return(testSummary, nil)
				d.orderSvc.EXPECT().CreateFromCart(gomock.Any(), order.CreateOrderReq{
					ClientID: 7, CarrierID: 1, PaymentSN: "P1",
				}).Return(order.Order{ID: 3, SN: "CMD-1"}, nil)
				d.repo.EXPECT().BindOrder(gomock.Any(), int64(1), int64(3), "CMD-1").Return(true, nil)
			},
			want: domain.Record{
				ID: 1, SN: "P1", ClientID: 7, CartID: 10, Channel: domain.ChannelStripe,
				IntentID: "pi_1", Amount: 3300, Status: domain.StatusSucceeded, OrderID: 3, OrderSN: "CMD-1",
			},
			wantEvents: 1,
		},
		{
			name: "重复确认",
			req:  req,
			mock: func(d deps) {
				r := paid
				r.Status, r.OrderID, r.OrderSN = domain.StatusSucceeded, 3, "CMD-1"
				d.repo.EXPECT().FindByIntentID(gomock.Any(), domain.ChannelStripe, "pi_1").Return(r, nil)
			},
			want: domain.Record{
				ID: 1, SN: "P1", ClientID: 7, CartID: 10, Channel: domain.ChannelStripe,
				IntentID: "pi_1", Amount: 3300, Status: domain.StatusSucceeded, OrderID: 3, OrderSN: "CMD-1",
			},
		},
		{
			name: "不是自己的支付",
			req:  ConfirmReq{ClientID: 8, Channel: domain.ChannelStripe, IntentID: "pi_1"},
			mock: func(d deps) {
				d.repo.EXPECT().FindByIntentID(gomock.Any(), domain.ChannelStripe, "pi_1").Return(paid, nil)
			},
			wantErr: domain.ErrPaymentNotFound,
		},
		{
			name: "尚未支付成功",
			req:  req,
			mock: func(d deps) {
				d.repo.EXPECT().FindByIntentID(gomock.Any(), domain.ChannelStripe, "pi_1").Return(paid, nil)
				d.processor.EXPECT().RetrieveIntent(gomock.Any(), "pi_1").
					Return(domain.Intent{ID: "pi_1", Status: domain.StatusProcessing}, nil)
			},
			wantErr: domain.ErrPaymentNotSucceeded,
		},
		{
			name: "支付后购物车变化",
			req:  req,
			mock: func(d deps) {
				d.repo.EXPECT().FindByIntentID(gomock.Any(), domain.ChannelStripe, "pi_1").Return(paid, nil)
				d.processor.EXPECT().RetrieveIntent(gomock.Any(), "pi_1").
					Return(domain.Intent{ID: "pi_1", Status: domain.StatusSucceeded}, nil)
				d.repo.EXPECT().UpdateStatus(gomock.Any(), int64(1), gomock.Any(), domain.StatusSucceeded).Return(true, nil)
				changed := testSummary
				changed.TotalTTC = 4000
				d.cartSvc.EXPECT().Summary(gomock.Any(), int64(7)).Return(changed, nil)
			},
			wantErr:    domain.ErrCartChanged,
			wantEvents: 1,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			d := newDeps(ctrl)
			tc.mock(d)
			env := newTestEnv(t, d)
			got, err := env.svc.Confirm(context.Background(), tc.req)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Len(t, env.events(t), tc.wantEvents)
			if err != nil {
				return
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestService_HandleWebhook(t *testing.T) {
	paid := domain.Record{
		ID: 1, SN: "P1", ClientID: 7, OrderSN: "CMD-1", Channel: domain.ChannelStripe,
		IntentID: "pi_1", Amount: 3300, Status: domain.StatusSucceeded,
	}
	testCases := []struct {
		name      string
		mock      func(d deps)
		wantTypes []string
		wantErr   error
	}{
		{
			name: "支付成功",
			mock: func(d deps) {
				d.processor.EXPECT().ParseWebhook(gomock.Any()).
					Return(domain.Event{Type: domain.EventSucceeded, IntentID: "pi_1"}, nil)
				r := paid
				r.Status = domain.StatusUnpaid
				d.repo.EXPECT().FindByIntentID(gomock.Any(), domain.ChannelStripe, "pi_1").Return(r, nil)
				d.repo.EXPECT().UpdateStatus(gomock.Any(), int64(1), gomock.Any(), domain.StatusSucceeded).Return(true, nil)
			},
			wantTypes: []string{"succeeded"},
		},
		{
			name: "重复的支付成功回调",
			mock: func(d deps) {
				d.processor.EXPECT().ParseWebhook(gomock.Any()).
					Return(domain.Event{Type: domain.EventSucceeded, IntentID: "pi_1"}, nil)
				d.repo.EXPECT().FindByIntentID(gomock.Any(), domain.ChannelStripe, "pi_1").Return(paid, nil)
				d.repo.EXPECT().UpdateStatus(gomock.Any(), int64(1), gomock.Any(), domain.StatusSucceeded).Return(false, nil)
			},
		},
		{
			name: "服务商侧全额退款",
			mock: func(d deps) {
				d.processor.EXPECT().ParseWebhook(gomock.Any()).
					Return(domain.Event{Type: domain.EventRefunded, IntentID: "pi_1", Amount: 3300}, nil)
				d.repo.EXPECT().FindByIntentID(gomock.Any(), domain.ChannelStripe, "pi_1").Return(paid, nil)
				r := paid
				r.Refunded, r.Status = 3300, domain.StatusRefunded
				d.repo.EXPECT().AddRefund(gomock.Any(), paid, int64(3300)).Return(r, nil)
			},
			wantTypes: []string{"refunded"},
		},
		{
			name: "已经记录的退款",
			mock: func(d deps) {
				d.processor.EXPECT().ParseWebhook(gomock.Any()).
					Return(domain.Event{Type: domain.EventRefunded, IntentID: "pi_1", Amount: 3300}, nil)
				r := paid
				r.Refunded, r.Status = 3300, domain.StatusRefunded
				d.repo.EXPECT().FindByIntentID(gomock.Any(), domain.ChannelStripe, "pi_1").Return(r, nil)
			},
		},
		{
			name: "忽略的事件",
			mock: func(d deps) {
				d.processor.EXPECT().ParseWebhook(gomock.Any()).Return(domain.Event{}, domain.ErrIgnoredEvent)
			},
			wantErr: domain.ErrIgnoredEvent,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			d := newDeps(ctrl)
			tc.mock(d)
			env := newTestEnv(t, d)
			req := httptest.NewRequest(http.MethodPost, "/payment/webhook/stripe", nil)
			err := env.svc.HandleWebhook(context.Background(), domain.ChannelStripe, req)
			assert.ErrorIs(t, err, tc.wantErr)
			var types []string
			for _, evt := range env.events(t) {
				types = append(types, evt.Type)
			}
			assert.Equal(t, tc.wantTypes, types)
		})
	}
}

func TestService_Refund(t *testing.T) {
	paid := domain.Record{
		ID: 1, SN: "P1", ClientID: 7, OrderSN: "CMD-1", Channel: domain.ChannelStripe,
		IntentID: "pi_1", Amount: 3300, Currency: "eur", Status: domain.StatusSucceeded,
	}
	testCases := []struct {
		name      string
		amount    int64
		mock      func(d deps)
		want      domain.Record
		wantTypes []string
		wantErr   error
	}{
		{
			name:   "全额退款",
			amount: 0,
			mock: func(d deps) {
				d.repo.EXPECT().FindByOrderSN(gomock.Any(), "CMD-1").Return(paid, nil)
				d.processor.EXPECT().Refund(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, req domain.RefundRequest) error {
						assert.Equal(t, "pi_1", req.IntentID)
						assert.Equal(t, int64(3300), req.Amount)
						assert.Equal(t, int64(3300), req.Total)
						assert.NotEmpty(t, req.RefundSN)
						return nil
					})
				r := paid
				r.Refunded, r.Status = 3300, domain.StatusRefunded
				d.repo.EXPECT().AddRefund(gomock.Any(), paid, int64(3300)).Return(r, nil)
			},
			want: domain.Record{
				ID: 1, SN: "P1", ClientID: 7, OrderSN: "CMD-1", Channel: domain.ChannelStripe,
				IntentID: "pi_1", Amount: 3300, Refunded: 3300, Currency: "eur", Status: domain.StatusRefunded,
			},
			wantTypes: []string{"refunded"},
		},
		{
			name:   "部分退款",
			amount: 500,
			mock: func(d deps) {
				d.repo.EXPECT().FindByOrderSN(gomock.Any(), "CMD-1").Return(paid, nil)
				d.processor.EXPECT().Refund(gomock.Any(), gomock.Any()).Return(nil)
				r := paid
				r.Refunded = 500
				d.repo.EXPECT().AddRefund(gomock.Any(), paid, int64(500)).Return(r, nil)
			},
			want: domain.Record{
				ID: 1, SN: "P1", ClientID: 7, OrderSN: "CMD-1", Channel: domain.ChannelStripe,
				IntentID: "pi_1", Amount: 3300, Refunded: 500, Currency: "eur", Status: domain.StatusSucceeded,
			},
		},
		{
			name:   "超出可退金额",
			amount: 4000,
			mock: func(d deps) {
				d.repo.EXPECT().FindByOrderSN(gomock.Any(), "CMD-1").Return(paid, nil)
			},
			wantErr: domain.ErrIllegalRefundAmount,
		},
		{
			name:   "未支付成功",
			amount: 0,
			mock: func(d deps) {
				r := paid
				r.Status = domain.StatusUnpaid
				d.repo.EXPECT().FindByOrderSN(gomock.Any(), "CMD-1").Return(r, nil)
			},
			wantErr: domain.ErrPaymentNotSucceeded,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			d := newDeps(ctrl)
			tc.mock(d)
			env := newTestEnv(t, d)
			got, err := env.svc.Refund(context.Background(), "CMD-1", tc.amount)
			assert.ErrorIs(t, err, tc.wantErr)
			var types []string
			for _, evt := range env.events(t) {
				types = append(types, evt.Type)
			}
			assert.Equal(t, tc.wantTypes, types)
			if err != nil {
				return
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestService_Sync(t *testing.T) {
	pending := domain.Record{ID: 1, SN: "P1", ClientID: 7, Channel: domain.ChannelStripe, IntentID: "pi_1", Status: domain.StatusUnpaid}
	testCases := []struct {
		name   string
		status domain.Status
		mock   func(d deps)
	}{
		{
			name:   "同步为成功",
			status: domain.StatusSucceeded,
			mock: func(d deps) {
				d.repo.EXPECT().UpdateStatus(gomock.Any(), int64(1), gomock.Any(), domain.StatusSucceeded).Return(true, nil)
			},
		},
		{
			name:   "同步为失败",
			status: domain.StatusFailed,
			mock: func(d deps) {
				d.repo.EXPECT().UpdateStatus(gomock.Any(), int64(1),
					[]domain.Status{domain.StatusUnpaid, domain.StatusProcessing}, domain.StatusFailed).Return(true, nil)
			},
		},
		{
			name:   "仍在处理",
			status: domain.StatusProcessing,
			mock: func(d deps) {
				d.repo.EXPECT().UpdateStatus(gomock.Any(), int64(1),
					[]domain.Status{domain.StatusUnpaid}, domain.StatusProcessing).Return(true, nil)
			},
		},
		{
			name:   "仍未支付",
			status: domain.StatusUnpaid,
			mock:   func(d deps) {},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			d := newDeps(ctrl)
			d.processor.EXPECT().RetrieveIntent(gomock.Any(), "pi_1").
				Return(domain.Intent{ID: "pi_1", Status: tc.status}, nil)
			tc.mock(d)
			env := newTestEnv(t, d)
			require.NoError(t, env.svc.Sync(context.Background(), pending))
		})
	}
}
