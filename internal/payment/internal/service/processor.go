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
	"net/http"

	"github.com/ecodeclub/epicerie/internal/payment/internal/domain"
)

// Processor 对接一个支付服务商
//
//go:generate mockgen -source=./processor.go -package=svcmocks -destination=mocks/processor.mock.go Processor
type Processor interface {
	Name() domain.Channel
	// PublicKey 前端初始化支付组件使用的公开凭证
	PublicKey() string
	CreateIntent(ctx context.Context, req domain.IntentRequest) (domain.Intent, error)
	RetrieveIntent(ctx context.Context, id string) (domain.Intent, error)
	Refund(ctx context.Context, req domain.RefundRequest) error
	// ParseWebhook 验签通过后才会解析回调内容，不需要处理的事件返回 domain.ErrIgnoredEvent
	ParseWebhook(req *http.Request) (domain.Event, error)
}
