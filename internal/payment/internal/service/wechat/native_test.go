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

package wechat

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ecodeclub/epicerie/internal/payment/internal/domain"
	wechatmocks "github.com/ecodeclub/epicerie/internal/payment/internal/service/wechat/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wechatpay-apiv3/wechatpay-go/core"
	"github.com/wechatpay-apiv3/wechatpay-go/core/notify"
	"github.com/wechatpay-apiv3/wechatpay-go/services/payments"
	"github.com/wechatpay-apiv3/wechatpay-go/services/payments/native"
	"go.uber.org/mock/gomock"
)

var testCfg = Config{
	AppID:            "wx-app",
	MchID:            "mch-1",
	PaymentNotifyURL: "https://epicerie.example.com/payment/webhook/wechat",
}

func TestNativeProcessor_CreateIntent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := wechatmocks.NewMockNativeAPIService(ctrl)
	svc.EXPECT().Prepay(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req native.PrepayRequest) (*native.PrepayResponse, *core.APIResult, error) {
			assert.Equal(t, "P1", *req.OutTradeNo)
			assert.Equal(t, "EUR", *req.Amount.Currency)
			assert.Equal(t, int64(3300), *req.Amount.Total)
			assert.Equal(t, testCfg.PaymentNotifyURL, *req.NotifyUrl)
			return &native.PrepayResponse{CodeUrl: core.String("weixin://wxpay/bizpayurl?pr=abc")}, nil, nil
		})
	p := NewNativeProcessor(svc, wechatmocks.NewMockRefundAPIService(ctrl), wechatmocks.NewMockNotifyHandler(ctrl), testCfg)
	got, err := p.CreateIntent(context.Background(), domain.IntentRequest{
		Amount:    3300,
		Currency:  "eur",
		Reference: "P1",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.Intent{
		ID:           "P1",
		ClientSecret: "weixin://wxpay/bizpayurl?pr=abc",
		Amount:       3300,
		Currency:     "eur",
		Status:       domain.StatusUnpaid,
	}, got)
}

func TestNativeProcessor_RetrieveIntent(t *testing.T) {
	testCases := []struct {
		name       string
		tradeState string
		want       domain.Status
		wantErr    error
	}{
		{name: "支付成功", tradeState: "SUCCESS", want: domain.StatusSucceeded},
		{name: "已关闭", tradeState: "CLOSED", want: domain.StatusFailed},
		{name: "支付中", tradeState: "USERPAYING", want: domain.StatusProcessing},
		{name: "未支付", tradeState: "NOTPAY", want: domain.StatusUnpaid},
		{name: "未知状态", tradeState: "UNKNOWN", wantErr: errUnknownTransactionState},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := wechatmocks.NewMockNativeAPIService(ctrl)
			svc.EXPECT().QueryOrderByOutTradeNo(gomock.Any(), gomock.Any()).Return(&payments.Transaction{
				OutTradeNo: core.String("P1"),
				TradeState: core.String(tc.tradeState),
				Amount: &payments.TransactionAmount{
					Total:    core.Int64(3300),
					Currency: core.String("EUR"),
				},
			}, nil, nil)
			p := NewNativeProcessor(svc, wechatmocks.NewMockRefundAPIService(ctrl), wechatmocks.NewMockNotifyHandler(ctrl), testCfg)
			got, err := p.RetrieveIntent(context.Background(), "P1")
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, tc.want, got.Status)
			assert.Equal(t, int64(3300), got.Amount)
			assert.Equal(t, "eur", got.Currency)
		})
	}
}

func TestNativeProcessor_ParseWebhook(t *testing.T) {
	testCases := []struct {
		name      string
		eventType string
		resource  notifyResource
		want      domain.Event
		wantErr   error
	}{
		{
			name:      "支付成功",
			eventType: "TRANSACTION.SUCCESS",
			resource:  notifyResource{OutTradeNo: "P1", TradeState: "SUCCESS"},
			want:      domain.Event{Type: domain.EventSucceeded, IntentID: "P1", Amount: 3300},
		},
		{
			name:      "退款成功",
			eventType: "REFUND.SUCCESS",
			resource:  notifyResource{OutTradeNo: "P1", RefundStatus: "SUCCESS"},
			want:      domain.Event{Type: domain.EventRefunded, IntentID: "P1", Amount: 500},
		},
		{
			name:      "支付失败",
			eventType: "TRANSACTION.PAYERROR",
			resource:  notifyResource{OutTradeNo: "P1", TradeState: "PAYERROR"},
			want:      domain.Event{Type: domain.EventFailed, IntentID: "P1", Amount: 3300},
		},
		{
			name:      "退款关闭",
			eventType: "REFUND.CLOSED",
			resource:  notifyResource{OutTradeNo: "P1", RefundStatus: "CLOSED"},
			wantErr:   domain.ErrIgnoredEvent,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			handler := wechatmocks.NewMockNotifyHandler(ctrl)
			handler.EXPECT().ParseNotifyRequest(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(ctx context.Context, req *http.Request, content interface{}) (*notify.Request, error) {
					res := content.(*notifyResource)
					*res = tc.resource
					res.Amount.Total = 3300
					res.Amount.Refund = 500
					return &notify.Request{EventType: tc.eventType}, nil
				})
			p := NewNativeProcessor(wechatmocks.NewMockNativeAPIService(ctrl),
				wechatmocks.NewMockRefundAPIService(ctrl), handler, testCfg)
			req := httptest.NewRequest(http.MethodPost, "/payment/webhook/wechat", nil)
			got, err := p.ParseWebhook(req)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, tc.want, got)
		})
	}
}
