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

package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/epicerie/internal/payment/internal/domain"
)

type CreateIntentReq struct {
	Channel string `json:"channel"`
}

type ConfirmReq struct {
	Channel      string `json:"channel"`
	IntentID     string `json:"intentId"`
	CarrierID    int64  `json:"carrierId"`
	RelayPointID int64  `json:"relayPointId"`
}

type RefundReq struct {
	OrderSN string `json:"orderSN"`
	// 0 表示全额退款
	Amount int64 `json:"amount"`
}

type OrderSNReq struct {
	OrderSN string `json:"orderSN"`
}

type ListReq struct {
	Offset int   `json:"offset"`
	Limit  int   `json:"limit"`
	Status uint8 `json:"status"`
}

func (r ListReq) limit() int {
	if r.Limit <= 0 {
		return 20
	}
	return min(r.Limit, 100)
}

type PublicKey struct {
	Channel string `json:"channel"`
	Key     string `json:"key"`
}

type Intent struct {
	PaymentSN    string `json:"paymentSN"`
	IntentID     string `json:"intentId"`
	ClientSecret string `json:"clientSecret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
}

type Payment struct {
	ID       int64  `json:"id"`
	SN       string `json:"sn"`
	ClientID int64  `json:"clientId"`
	CartID   int64  `json:"cartId"`
	OrderID  int64  `json:"orderId"`
	OrderSN  string `json:"orderSN"`
	Channel  string `json:"channel"`
	IntentID string `json:"intentId"`
	Amount   int64  `json:"amount"`
	Refunded int64  `json:"refunded"`
	Currency string `json:"currency"`
	Status   uint8  `json:"status"`
	Ctime    int64  `json:"ctime"`
	Utime    int64  `json:"utime"`
}

func newPayment(r domain.Record) Payment {
	return Payment{
		ID:       r.ID,
		SN:       r.SN,
		ClientID: r.ClientID,
		CartID:   r.CartID,
		OrderID:  r.OrderID,
		OrderSN:  r.OrderSN,
		Channel:  r.Channel.String(),
		IntentID: r.IntentID,
		Amount:   r.Amount,
		Refunded: r.Refunded,
		Currency: r.Currency,
		Status:   r.Status.ToUint8(),
		Ctime:    r.Ctime,
		Utime:    r.Utime,
	}
}

type PaymentList struct {
	Total    int64     `json:"total"`
	Payments []Payment `json:"payments"`
}

func newPaymentList(records []domain.Record, total int64) PaymentList {
	return PaymentList{
		Total: total,
		Payments: slice.Map(records, func(idx int, src domain.Record) Payment {
			return newPayment(src)
		}),
	}
}
