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

package domain

import (
	"errors"
	"fmt"
)

var (
	ErrPaymentNotFound     = errors.New("支付记录不存在")
	ErrPaymentNotSucceeded = errors.New("支付尚未成功")
	ErrUnknownChannel      = errors.New("未知的支付渠道")
	ErrCartChanged         = errors.New("支付后购物车发生变化")
	ErrIllegalRefundAmount = errors.New("退款金额不合法")
	// ErrIgnoredEvent 回调事件不需要处理
	ErrIgnoredEvent = errors.New("忽略的支付回调事件")
)

type Channel string

const (
	ChannelStripe Channel = "stripe"
	ChannelWechat Channel = "wechat"
)

func (c Channel) String() string {
	return string(c)
}

type Status uint8

const (
	StatusUnknown Status = iota
	StatusUnpaid
	StatusProcessing
	StatusSucceeded
	StatusFailed
	StatusRefunded
)

func (s Status) ToUint8() uint8 {
	return uint8(s)
}

// Final 终态不会再被回调或者同步任务修改
func (s Status) Final() bool {
	return s == StatusFailed || s == StatusRefunded
}

// Record 一次支付，金额单位为分
type Record struct {
	ID       int64
	SN       string
	ClientID int64
	// 支付时的有效购物车
	CartID  int64
	OrderID int64
	OrderSN string
	Channel Channel
	// 支付服务商侧的支付意图 ID
	IntentID string
	Amount   int64
	// 已退款金额
	Refunded int64
	Currency string
	Status   Status
	Ctime    int64
	Utime    int64
}

// Refundable 还可以退款的金额
func (r Record) Refundable() int64 {
	if r.Status != StatusSucceeded {
		return 0
	}
	return r.Amount - r.Refunded
}

type IntentRequest struct {
	Amount      int64
	Currency    string
	Description string
	// 我方的支付流水号
	Reference string
	Metadata  map[string]string
}

type Intent struct {
	ID string
	// 前端完成支付需要的凭证，微信 native 为二维码链接
	ClientSecret string
	Amount       int64
	Currency     string
	Status       Status
}

type RefundRequest struct {
	IntentID string
	// 我方的退款流水号
	RefundSN string
	Amount   int64
	Total    int64
	Currency string
}

type EventType string

const (
	EventSucceeded EventType = "succeeded"
	EventFailed    EventType = "failed"
	EventRefunded  EventType = "refunded"
)

// Event 已经验签的支付回调
type Event struct {
	Type     EventType
	IntentID string
	// 退款事件中为服务商侧记录的退款金额
	Amount int64
}

// ProcessorError 支付服务商返回的业务错误
type ProcessorError struct {
	Type    string
	Message string
}

func (e *ProcessorError) Error() string {
	return fmt.Sprintf("支付服务商错误, type=%s, msg=%s", e.Type, e.Message)
}
