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

package consumer

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/ecodeclub/epicerie/internal/order/internal/domain"
	"github.com/ecodeclub/epicerie/internal/order/internal/event"
	"github.com/ecodeclub/epicerie/internal/order/internal/service"
	ordermocks "github.com/ecodeclub/epicerie/internal/order/mocks"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPaymentConsumer_Consume(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) service.Service
		evt     event.PaymentEvent
		wantErr bool
	}{
		{
			name: "退款取消订单",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := ordermocks.NewMockService(ctrl)
				svc.EXPECT().CancelBySN(gomock.Any(), "CMD-1").
					Return(domain.Order{ID: 1, Status: domain.OrderStatusCancelled}, nil)
				return svc
			},
			evt: event.PaymentEvent{Type: event.PaymentEventTypeRefunded, OrderSN: "CMD-1", PaymentSN: "P1"},
		},
		{
			name: "支付成功不处理",
			mock: func(ctrl *gomock.Controller) service.Service {
				return ordermocks.NewMockService(ctrl)
			},
			evt: event.PaymentEvent{Type: event.PaymentEventTypeSucceeded, OrderSN: "CMD-1"},
		},
		{
			name: "已完成的订单退款",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := ordermocks.NewMockService(ctrl)
				svc.EXPECT().CancelBySN(gomock.Any(), "CMD-1").
					Return(domain.Order{}, domain.ErrIllegalTransition)
				return svc
			},
			evt: event.PaymentEvent{Type: event.PaymentEventTypeRefunded, OrderSN: "CMD-1"},
		},
		{
			name: "订单不存在",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := ordermocks.NewMockService(ctrl)
				svc.EXPECT().CancelBySN(gomock.Any(), "CMD-2").
					Return(domain.Order{}, domain.ErrOrderNotFound)
				return svc
			},
			evt:     event.PaymentEvent{Type: event.PaymentEventTypeRefunded, OrderSN: "CMD-2"},
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			q := newTestMQ(t, event.PaymentEventTopic)
			c, err := NewPaymentConsumer(tc.mock(ctrl), q)
			require.NoError(t, err)
			produce(t, q, event.PaymentEventTopic, tc.evt)

			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			err = c.Consume(ctx)
			assert.Equal(t, tc.wantErr, err != nil)
		})
	}
}

func newTestMQ(t *testing.T, topic string) mq.MQ {
	q := memory.NewMQ()
	require.NoError(t, q.CreateTopic(context.Background(), topic, 1))
	return q
}

func produce(t *testing.T, q mq.MQ, topic string, evt any) {
	p, err := q.Producer(topic)
	require.NoError(t, err)
	data, err := json.Marshal(evt)
	require.NoError(t, err)
	_, err = p.Produce(context.Background(), &mq.Message{Value: data})
	require.NoError(t, err)
}
