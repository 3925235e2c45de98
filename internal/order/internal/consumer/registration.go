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
	"fmt"

	"github.com/ecodeclub/epicerie/internal/order/internal/service"
	"github.com/ecodeclub/epicerie/internal/user"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

// RegistrationConsumer 客户注册成功后为其创建购物车
type RegistrationConsumer struct {
	svc      service.CartService
	consumer mq.Consumer
	logger   *elog.Component
}

func NewRegistrationConsumer(svc service.CartService, q mq.MQ) (*RegistrationConsumer, error) {
	const groupID = "order_cart"
	c, err := q.Consumer(user.RegistrationEventTopic, groupID)
	if err != nil {
		return nil, err
	}
	return &RegistrationConsumer{
		svc:      svc,
		consumer: c,
		logger:   elog.DefaultLogger,
	}, nil
}

func (c *RegistrationConsumer) Start(ctx context.Context) {
	go func() {
		for {
			er := c.Consume(ctx)
			if er != nil {
				c.logger.Error("消费注册事件失败", elog.FieldErr(er))
			}
		}
	}()
}

func (c *RegistrationConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	var evt user.RegistrationEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	// ActiveCart 在没有购物车时才会新建，重复消费不会产生多个购物车
	_, err = c.svc.ActiveCart(ctx, evt.Uid)
	if err != nil {
		return fmt.Errorf("创建购物车失败 uid=%d: %w", evt.Uid, err)
	}
	return nil
}

func (c *RegistrationConsumer) Stop(_ context.Context) error {
	return c.consumer.Close()
}
