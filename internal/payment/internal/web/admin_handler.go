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
	"github.com/ecodeclub/epicerie/internal/payment/internal/domain"
	"github.com/ecodeclub/epicerie/internal/payment/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/payments")
	g.POST("/refund", ginx.B[RefundReq](h.Refund))
	g.POST("/list", ginx.B[ListReq](h.List))
	g.POST("/detail", ginx.B[OrderSNReq](h.Detail))
}

func (h *AdminHandler) Refund(ctx *ginx.Context, req RefundReq) (ginx.Result, error) {
	if req.Amount < 0 {
		return illegalRefundAmountResult, nil
	}
	r, err := h.svc.Refund(ctx, req.OrderSN, req.Amount)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newPayment(r)}, nil
}

func (h *AdminHandler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	records, total, err := h.svc.List(ctx, domain.Status(req.Status), req.Offset, req.limit())
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newPaymentList(records, total)}, nil
}

func (h *AdminHandler) Detail(ctx *ginx.Context, req OrderSNReq) (ginx.Result, error) {
	r, err := h.svc.FindByOrderSN(ctx, req.OrderSN)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newPayment(r)}, nil
}
