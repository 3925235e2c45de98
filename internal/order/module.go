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

package order

import (
	"github.com/ecodeclub/epicerie/internal/order/internal/consumer"
	"github.com/ecodeclub/epicerie/internal/order/internal/domain"
	"github.com/ecodeclub/epicerie/internal/order/internal/job"
	"github.com/ecodeclub/epicerie/internal/order/internal/service"
	"github.com/ecodeclub/epicerie/internal/order/internal/web"
)

type (
	Service        = service.Service
	CartService    = service.CartService
	CreateOrderReq = service.CreateOrderReq
	Order          = domain.Order
	OrderStatus    = domain.OrderStatus
	Cart           = domain.Cart
	CartLine       = domain.CartLine
	CartSummary    = domain.CartSummary
	LineStatus     = domain.LineStatus
	History        = domain.History
	SupplierStats  = domain.SupplierStats

	Handler                    = web.Handler
	AdminHandler               = web.AdminHandler
	PaymentConsumer            = consumer.PaymentConsumer
	RegistrationConsumer       = consumer.RegistrationConsumer
	RecomputeInFlightOrdersJob = job.RecomputeInFlightOrdersJob
)

const (
	LineStatusPending        = domain.LineStatusPending
	LineStatusPreparing      = domain.LineStatusPreparing
	LineStatusOutForDelivery = domain.LineStatusOutForDelivery
	LineStatusDone           = domain.LineStatusDone
	LineStatusInStock        = domain.LineStatusInStock

	OrderStatusPending        = domain.OrderStatusPending
	OrderStatusInProgress     = domain.OrderStatusInProgress
	OrderStatusOutForDelivery = domain.OrderStatusOutForDelivery
	OrderStatusDone           = domain.OrderStatusDone
	OrderStatusCancelled      = domain.OrderStatusCancelled
)

var (
	ErrEmptyCart         = domain.ErrEmptyCart
	ErrCartNotFound      = domain.ErrCartNotFound
	ErrOrderNotFound     = domain.ErrOrderNotFound
	ErrLineNotOwned      = domain.ErrLineNotOwned
	ErrLineNotFound      = domain.ErrLineNotFound
	ErrIllegalTransition = domain.ErrIllegalTransition
	ErrIllegalLineStatus = domain.ErrIllegalLineStatus
	ErrInsufficientStock = domain.ErrInsufficientStock
)

type Module struct {
	Svc                  Service
	CartSvc              CartService
	Hdl                  *Handler
	AdminHdl             *AdminHandler
	PaymentConsumer      *PaymentConsumer
	RegistrationConsumer *RegistrationConsumer
	RecomputeJob         *RecomputeInFlightOrdersJob
}
