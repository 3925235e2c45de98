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

package stripepay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/ecodeclub/epicerie/internal/payment/internal/domain"
	"github.com/gotomicro/ego/core/elog"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/webhook"
)

const (
	signatureHeader = "Stripe-Signature"
	// 回调请求体大小上限
	maxBodyBytes = int64(65536)
)

// PaymentIntentClient 对应 client.API 里的 PaymentIntents
//
//go:generate mockgen -source=./stripe.go -package=stripemocks -destination=mocks/stripe.mock.go PaymentIntentClient RefundClient
type PaymentIntentClient interface {
	New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
	Get(id string, params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

// RefundClient 对应 client.API 里的 Refunds
type RefundClient interface {
	New(params *stripe.RefundParams) (*stripe.Refund, error)
}

type Processor struct {
	intents       PaymentIntentClient
	refunds       RefundClient
	publicKey     string
	webhookSecret string
	l             *elog.Component
}

func NewProcessor(intents PaymentIntentClient, refunds RefundClient, publicKey, webhookSecret string) *Processor {
	return &Processor{
		intents:       intents,
		refunds:       refunds,
		publicKey:     publicKey,
		webhookSecret: webhookSecret,
		l:             elog.DefaultLogger,
	}
}

func (p *Processor) Name() domain.Channel {
	return domain.ChannelStripe
}

func (p *Processor) PublicKey() string {
	return p.publicKey
}

func (p *Processor) CreateIntent(ctx context.Context, req domain.IntentRequest) (domain.Intent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:      stripe.Int64(req.Amount),
		Currency:    stripe.String(req.Currency),
		Description: stripe.String(req.Description),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	params.SetIdempotencyKey(req.Reference)
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}
	pi, err := p.intents.New(params)
	if err != nil {
		return domain.Intent{}, p.convertErr(err)
	}
	return p.toDomain(pi), nil
}

func (p *Processor) RetrieveIntent(ctx context.Context, id string) (domain.Intent, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx
	pi, err := p.intents.Get(id, params)
	if err != nil {
		return domain.Intent{}, p.convertErr(err)
	}
	return p.toDomain(pi), nil
}

func (p *Processor) Refund(ctx context.Context, req domain.RefundRequest) error {
	params := &stripe.RefundParams{
		PaymentIntent: stripe.String(req.IntentID),
		Amount:        stripe.Int64(req.Amount),
	}
	params.Context = ctx
	params.SetIdempotencyKey(req.RefundSN)
	_, err := p.refunds.New(params)
	return p.convertErr(err)
}

func (p *Processor) ParseWebhook(req *http.Request) (domain.Event, error) {
	payload, err := io.ReadAll(io.LimitReader(req.Body, maxBodyBytes))
	if err != nil {
		return domain.Event{}, fmt.Errorf("读取 stripe 回调失败: %w", err)
	}
	evt, err := webhook.ConstructEventWithOptions(payload, req.Header.Get(signatureHeader), p.webhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		return domain.Event{}, fmt.Errorf("stripe 回调验签失败: %w", err)
	}
	switch evt.Type {
	case "payment_intent.succeeded", "payment_intent.payment_failed":
		var pi stripe.PaymentIntent
		if err = json.Unmarshal(evt.Data.Raw, &pi); err != nil {
			return domain.Event{}, fmt.Errorf("解析 stripe 支付意图失败: %w", err)
		}
		typ := domain.EventSucceeded
		if evt.Type == "payment_intent.payment_failed" {
			typ = domain.EventFailed
		}
		return domain.Event{Type: typ, IntentID: pi.ID, Amount: pi.Amount}, nil
	case "charge.refunded":
		var ch stripe.Charge
		if err = json.Unmarshal(evt.Data.Raw, &ch); err != nil {
			return domain.Event{}, fmt.Errorf("解析 stripe 退款失败: %w", err)
		}
		if ch.PaymentIntent == nil {
			return domain.Event{}, fmt.Errorf("%w, 退款缺少支付意图, charge=%s", domain.ErrIgnoredEvent, ch.ID)
		}
		return domain.Event{Type: domain.EventRefunded, IntentID: ch.PaymentIntent.ID, Amount: ch.AmountRefunded}, nil
	default:
		p.l.Debug("忽略的 stripe 回调", elog.String("type", string(evt.Type)))
		return domain.Event{}, fmt.Errorf("%w, type=%s", domain.ErrIgnoredEvent, evt.Type)
	}
}

func (p *Processor) convertErr(err error) error {
	if err == nil {
		return nil
	}
	var se *stripe.Error
	if errors.As(err, &se) {
		return &domain.ProcessorError{Type: string(se.Type), Message: se.Msg}
	}
	return err
}

func (p *Processor) toDomain(pi *stripe.PaymentIntent) domain.Intent {
	return domain.Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Amount:       pi.Amount,
		Currency:     string(pi.Currency),
		Status:       p.convertStatus(pi.Status),
	}
}

func (p *Processor) convertStatus(s stripe.PaymentIntentStatus) domain.Status {
	switch s {
	case stripe.PaymentIntentStatusSucceeded:
		return domain.StatusSucceeded
	case stripe.PaymentIntentStatusProcessing, stripe.PaymentIntentStatusRequiresCapture:
		return domain.StatusProcessing
	case stripe.PaymentIntentStatusCanceled:
		return domain.StatusFailed
	default:
		return domain.StatusUnpaid
	}
}
