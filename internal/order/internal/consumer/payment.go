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
	"errors"
	"fmt"

	"github.com/ecodeclub/epicerie/internal/order/internal/domain"
	"github.com/ecodeclub/epicerie/internal/order/internal/event"
	"github.com/ecodeclub/epicerie/internal/order/internal/service"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

// PaymentConsumer 退款成功后取消对应的订单
type PaymentConsumer struct {
	svc      service.Service
	consumer mq.Consumer
	logger   *elog.Component
}

func NewPaymentConsumer(svc service.Service, q mq.MQ) (*PaymentConsumer, error) {
	const groupID = "order"
	c, err := q.Consumer(event.PaymentEventTopic, groupID)
	if err != nil {
		return nil, err
	}
	return &PaymentConsumer{
		svc:      svc,
		consumer: c,
		logger:   elog.DefaultLogger,
	}, nil
}

func (c *PaymentConsumer) Start(ctx context.Context) {
	go func() {
		for {
			er := c.Consume(ctx)
			if er != nil {
				c.logger.Error("消费支付事件失败", elog.FieldErr(er))
			}
		}
	}()
}

func (c *PaymentConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	var evt event.PaymentEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	if evt.Type != event.PaymentEventTypeRefunded || evt.OrderSN == "" {
		return nil
	}
	_, err = c.svc.CancelBySN(ctx, evt.OrderSN)
	if errors.Is(err, domain.ErrIllegalTransition) {
		// 已完成的订单退款只记录，不改变订单状态
		c.logger.Warn("已完成的订单发生退款",
			elog.String("order_sn", evt.OrderSN),
			elog.String("payment_sn", evt.PaymentSN),
		)
		return nil
	}
	if err != nil {
		return fmt.Errorf("退款取消订单失败 order_sn=%s: %w", evt.OrderSN, err)
	}
	return nil
}

func (c *PaymentConsumer) Stop(_ context.Context) error {
	return c.consumer.Close()
}
