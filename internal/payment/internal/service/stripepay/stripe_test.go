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
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ecodeclub/epicerie/internal/payment/internal/domain"
	stripemocks "github.com/ecodeclub/epicerie/internal/payment/internal/service/stripepay/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v79"
	"go.uber.org/mock/gomock"
)

const testSecret = "whsec_test"

func TestProcessor_CreateIntent(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) PaymentIntentClient
		req     domain.IntentRequest
		want    domain.Intent
		wantErr error
	}{
		{
			name: "创建成功",
			mock: func(ctrl *gomock.Controller) PaymentIntentClient {
				c := stripemocks.NewMockPaymentIntentClient(ctrl)
				c.EXPECT().New(gomock.Any()).DoAndReturn(func(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
					assert.Equal(t, int64(3300), *params.Amount)
					assert.Equal(t, "eur", *params.Currency)
					assert.Equal(t, "12", params.Metadata["client_id"])
					assert.Equal(t, "P1", *params.IdempotencyKey)
					assert.True(t, *params.AutomaticPaymentMethods.Enabled)
					return &stripe.PaymentIntent{
						ID:           "pi_1",
						ClientSecret: "pi_1_secret",
						Amount:       3300,
						Currency:     "eur",
						Status:       stripe.PaymentIntentStatusRequiresPaymentMethod,
					}, nil
				})
				return c
			},
			req: domain.IntentRequest{
				Amount:    3300,
				Currency:  "eur",
				Reference: "P1",
				Metadata:  map[string]string{"client_id": "12", "cart_id": "3"},
			},
			want: domain.Intent{
				ID:           "pi_1",
				ClientSecret: "pi_1_secret",
				Amount:       3300,
				Currency:     "eur",
				Status:       domain.StatusUnpaid,
			},
		},
		{
			name: "服务商返回错误",
			mock: func(ctrl *gomock.Controller) PaymentIntentClient {
				c := stripemocks.NewMockPaymentIntentClient(ctrl)
				c.EXPECT().New(gomock.Any()).Return(nil, &stripe.Error{
					Type: stripe.ErrorTypeInvalidRequest,
					Msg:  "Amount must be at least 50 cents",
				})
				return c
			},
			req: domain.IntentRequest{Amount: 10, Currency: "eur", Reference: "P2"},
			wantErr: &domain.ProcessorError{
				Type:    "invalid_request_error",
				Message: "Amount must be at least 50 cents",
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			p := NewProcessor(tc.mock(ctrl), stripemocks.NewMockRefundClient(ctrl), "pk_test", testSecret)
			got, err := p.CreateIntent(context.Background(), tc.req)
			assert.Equal(t, tc.wantErr, err)
			if err != nil {
				return
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestProcessor_RetrieveIntent(t *testing.T) {
	testCases := []struct {
		name   string
		status stripe.PaymentIntentStatus
		want   domain.Status
	}{
		{name: "成功", status: stripe.PaymentIntentStatusSucceeded, want: domain.StatusSucceeded},
		{name: "处理中", status: stripe.PaymentIntentStatusProcessing, want: domain.StatusProcessing},
		{name: "已取消", status: stripe.PaymentIntentStatusCanceled, want: domain.StatusFailed},
		{name: "等待支付", status: stripe.PaymentIntentStatusRequiresAction, want: domain.StatusUnpaid},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			c := stripemocks.NewMockPaymentIntentClient(ctrl)
			c.EXPECT().Get("pi_1", gomock.Any()).Return(&stripe.PaymentIntent{ID: "pi_1", Status: tc.status}, nil)
			p := NewProcessor(c, stripemocks.NewMockRefundClient(ctrl), "pk_test", testSecret)
			got, err := p.RetrieveIntent(context.Background(), "pi_1")
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.Status)
		})
	}
}

func TestProcessor_Refund(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	r := stripemocks.NewMockRefundClient(ctrl)
	r.EXPECT().New(gomock.Any()).DoAndReturn(func(params *stripe.RefundParams) (*stripe.Refund, error) {
		assert.Equal(t, "pi_1", *params.PaymentIntent)
		assert.Equal(t, int64(500), *params.Amount)
		assert.Equal(t, "R1", *params.IdempotencyKey)
		return &stripe.Refund{ID: "re_1"}, nil
	})
	p := NewProcessor(stripemocks.NewMockPaymentIntentClient(ctrl), r, "pk_test", testSecret)
	err := p.Refund(context.Background(), domain.RefundRequest{IntentID: "pi_1", RefundSN: "R1", Amount: 500, Total: 3300})
	require.NoError(t, err)
}

func TestProcessor_ParseWebhook(t *testing.T) {
	testCases := []struct {
		name    string
		payload string
		secret  string
		want    domain.Event
		wantErr error
	}{
		{
			name:    "支付成功",
			payload: `{"id":"evt_1","object":"event","type":"payment_intent.succeeded","data":{"object":{"id":"pi_1","object":"payment_intent","amount":3300,"status":"succeeded"}}}`,
			secret:  testSecret,
			want:    domain.Event{Type: domain.EventSucceeded, IntentID: "pi_1", Amount: 3300},
		},
		{
			name:    "支付失败",
			payload: `{"id":"evt_2","object":"event","type":"payment_intent.payment_failed","data":{"object":{"id":"pi_2","object":"payment_intent","amount":1200,"status":"requires_payment_method"}}}`,
			secret:  testSecret,
			want:    domain.Event{Type: domain.EventFailed, IntentID: "pi_2", Amount: 1200},
		},
		{
			name:    "退款",
			payload: `{"id":"evt_3","object":"event","type":"charge.refunded","data":{"object":{"id":"ch_1","object":"charge","payment_intent":"pi_1","amount":3300,"amount_refunded":3300,"refunded":true}}}`,
			secret:  testSecret,
			want:    domain.Event{Type: domain.EventRefunded, IntentID: "pi_1", Amount: 3300},
		},
		{
			name:    "忽略的事件",
			payload: `{"id":"evt_4","object":"event","type":"customer.created","data":{"object":{"id":"cus_1","object":"customer"}}}`,
			secret:  testSecret,
			wantErr: domain.ErrIgnoredEvent,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			p := NewProcessor(stripemocks.NewMockPaymentIntentClient(ctrl),
				stripemocks.NewMockRefundClient(ctrl), "pk_test", testSecret)
			req := newWebhookRequest(t, tc.payload, tc.secret)
			got, err := p.ParseWebhook(req)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestProcessor_ParseWebhook_BadSignature(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	p := NewProcessor(stripemocks.NewMockPaymentIntentClient(ctrl),
		stripemocks.NewMockRefundClient(ctrl), "pk_test", testSecret)
	payload := `{"id":"evt_1","object":"event","type":"payment_intent.succeeded","data":{"object":{"id":"pi_1","object":"payment_intent"}}}`
	_, err := p.ParseWebhook(newWebhookRequest(t, payload, "whsec_other"))
	require.Error(t, err)
	assert.False(t, errors.Is(err, domain.ErrIgnoredEvent))
}

func newWebhookRequest(t *testing.T, payload, secret string) *http.Request {
	ts := time.Now().Unix()
	mac := hmac.New(sha256.New, []byte(secret))
	_, err := mac.Write([]byte(fmt.Sprintf("%d.%s", ts, payload)))
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/payment/webhook/stripe", strings.NewReader(payload))
	req.Header.Set(signatureHeader, fmt.Sprintf("t=%d,v1=%s", ts, hex.EncodeToString(mac.Sum(nil))))
	return req
}
