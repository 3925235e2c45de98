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
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ecodeclub/epicerie/internal/payment/internal/domain"
	"github.com/gotomicro/ego/core/elog"
	"github.com/wechatpay-apiv3/wechatpay-go/core"
	"github.com/wechatpay-apiv3/wechatpay-go/core/notify"
	"github.com/wechatpay-apiv3/wechatpay-go/services/payments"
	"github.com/wechatpay-apiv3/wechatpay-go/services/payments/native"
	"github.com/wechatpay-apiv3/wechatpay-go/services/refunddomestic"
)

var errUnknownTransactionState = errors.New("未知的微信事务状态")

// 微信支付订单的有效期
const prepayExpire = 30 * time.Minute

//go:generate mockgen -source=./native.go -package=wechatmocks -destination=mocks/native.mock.go NativeAPIService RefundAPIService NotifyHandler
type NativeAPIService interface {
	Prepay(ctx context.Context, req native.PrepayRequest) (resp *native.PrepayResponse, result *core.APIResult, err error)
	QueryOrderByOutTradeNo(ctx context.Context, req native.QueryOrderByOutTradeNoRequest) (resp *payments.Transaction, result *core.APIResult, err error)
}

type RefundAPIService interface {
	Create(ctx context.Context, req refunddomestic.CreateRequest) (resp *refunddomestic.Refund, result *core.APIResult, err error)
}

// NotifyHandler 对应 notify.Handler，负责验签和解密
type NotifyHandler interface {
	ParseNotifyRequest(ctx context.Context, request *http.Request, content interface{}) (*notify.Request, error)
}

// Config 微信支付商户配置
type Config struct {
	AppID        string
	MchID        string
	MchKey       string
	MchSerialNum string
	// 商户私钥
	KeyPath          string
	PaymentNotifyURL string
	RefundNotifyURL  string
}

// NativeProcessor 微信 native 支付，我方支付流水号即为微信的商户订单号
type NativeProcessor struct {
	svc     NativeAPIService
	refunds RefundAPIService
	handler NotifyHandler
	cfg     Config
	l       *elog.Component
	// SUCCESS：支付成功
	// REFUND：转入退款
	// NOTPAY：未支付
	// CLOSED：已关闭
	// REVOKED：已撤销（付款码支付）
	// USERPAYING：用户支付中（付款码支付）
	// PAYERROR：支付失败(其他原因，如银行返回失败)
	tradeStateToStatus map[string]domain.Status
}

func NewNativeProcessor(svc NativeAPIService, refunds RefundAPIService, handler NotifyHandler, cfg Config) *NativeProcessor {
	return &NativeProcessor{
		svc:     svc,
		refunds: refunds,
		handler: handler,
		cfg:     cfg,
		l:       elog.DefaultLogger,
		tradeStateToStatus: map[string]domain.Status{
			"SUCCESS":    domain.StatusSucceeded,
			"PAYERROR":   domain.StatusFailed,
			"CLOSED":     domain.StatusFailed,
			"REVOKED":    domain.StatusFailed,
			"NOTPAY":     domain.StatusUnpaid,
			"USERPAYING": domain.StatusProcessing,
			"REFUND":     domain.StatusRefunded,
		},
	}
}

func (n *NativeProcessor) Name() domain.Channel {
	return domain.ChannelWechat
}

func (n *NativeProcessor) PublicKey() string {
	return n.cfg.AppID
}

func (n *NativeProcessor) CreateIntent(ctx context.Context, req domain.IntentRequest) (domain.Intent, error) {
	resp, _, err := n.svc.Prepay(ctx, native.PrepayRequest{
		Appid:       core.String(n.cfg.AppID),
		Mchid:       core.String(n.cfg.MchID),
		Description: core.String(req.Description),
		OutTradeNo:  core.String(req.Reference),
		TimeExpire:  core.Time(time.Now().Add(prepayExpire)),
		NotifyUrl:   core.String(n.cfg.PaymentNotifyURL),
		Amount: &native.Amount{
			Currency: core.String(strings.ToUpper(req.Currency)),
			Total:    core.Int64(req.Amount),
		},
	})
	if err != nil {
		return domain.Intent{}, fmt.Errorf("微信预支付失败: %w", n.convertErr(err))
	}
	return domain.Intent{
		ID:           req.Reference,
		ClientSecret: *resp.CodeUrl,
		Amount:       req.Amount,
		Currency:     req.Currency,
		Status:       domain.StatusUnpaid,
	}, nil
}

func (n *NativeProcessor) RetrieveIntent(ctx context.Context, id string) (domain.Intent, error) {
	txn, _, err := n.svc.QueryOrderByOutTradeNo(ctx, native.QueryOrderByOutTradeNoRequest{
		OutTradeNo: core.String(id),
		Mchid:      core.String(n.cfg.MchID),
	})
	if err != nil {
		return domain.Intent{}, n.convertErr(err)
	}
	status, err := n.convertStatus(txn.TradeState)
	if err != nil {
		return domain.Intent{}, err
	}
	res := domain.Intent{ID: id, Status: status}
	if txn.Amount != nil && txn.Amount.Total != nil {
		res.Amount = *txn.Amount.Total
	}
	if txn.Amount != nil && txn.Amount.Currency != nil {
		res.Currency = strings.ToLower(*txn.Amount.Currency)
	}
	return res, nil
}

func (n *NativeProcessor) Refund(ctx context.Context, req domain.RefundRequest) error {
	_, _, err := n.refunds.Create(ctx, refunddomestic.CreateRequest{
		OutTradeNo:  core.String(req.IntentID),
		OutRefundNo: core.String(req.RefundSN),
		NotifyUrl:   core.String(n.cfg.RefundNotifyURL),
		Amount: &refunddomestic.AmountReq{
			Currency: core.String(strings.ToUpper(req.Currency)),
			Refund:   core.Int64(req.Amount),
			Total:    core.Int64(req.Total),
		},
	})
	if err != nil {
		return fmt.Errorf("微信退款失败: %w", n.convertErr(err))
	}
	return nil
}

// notifyResource 支付通知与退款通知解密后的公共字段
type notifyResource struct {
	OutTradeNo   string `json:"out_trade_no"`
	TradeState   string `json:"trade_state"`
	RefundStatus string `json:"refund_status"`
	Amount       struct {
		Total  int64 `json:"total"`
		Refund int64 `json:"refund"`
	} `json:"amount"`
}

func (n *NativeProcessor) ParseWebhook(req *http.Request) (domain.Event, error) {
	var res notifyResource
	nr, err := n.handler.ParseNotifyRequest(req.Context(), req, &res)
	if err != nil {
		return domain.Event{}, fmt.Errorf("微信回调验签失败: %w", err)
	}
	switch {
	case nr.EventType == "TRANSACTION.SUCCESS" && res.TradeState == "SUCCESS":
		return domain.Event{Type: domain.EventSucceeded, IntentID: res.OutTradeNo, Amount: res.Amount.Total}, nil
	case nr.EventType == "REFUND.SUCCESS":
		return domain.Event{Type: domain.EventRefunded, IntentID: res.OutTradeNo, Amount: res.Amount.Refund}, nil
	case strings.HasPrefix(nr.EventType, "TRANSACTION."):
		status, err := n.convertStatus(&res.TradeState)
		if err != nil {
			return domain.Event{}, err
		}
		if status == domain.StatusFailed {
			return domain.Event{Type: domain.EventFailed, IntentID: res.OutTradeNo, Amount: res.Amount.Total}, nil
		}
	}
	n.l.Warn("忽略的微信支付通知",
		elog.String("eventType", nr.EventType),
		elog.String("tradeState", res.TradeState),
		elog.String("refundStatus", res.RefundStatus),
	)
	return domain.Event{}, fmt.Errorf("%w, type=%s", domain.ErrIgnoredEvent, nr.EventType)
}

func (n *NativeProcessor) convertStatus(tradeState *string) (domain.Status, error) {
	var state string
	if tradeState != nil {
		state = *tradeState
	}
	status, ok := n.tradeStateToStatus[state]
	if !ok {
		return domain.StatusUnknown, fmt.Errorf("%w, %s", errUnknownTransactionState, state)
	}
	return status, nil
}

func (n *NativeProcessor) convertErr(err error) error {
	var apiErr *core.APIError
	if errors.As(err, &apiErr) {
		return &domain.ProcessorError{Type: apiErr.Code, Message: apiErr.Message}
	}
	return err
}
