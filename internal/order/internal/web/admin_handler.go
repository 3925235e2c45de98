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
	"github.com/ecodeclub/epicerie/internal/order/internal/domain"
	"github.com/ecodeclub/epicerie/internal/order/internal/service"
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
	g := server.Group("/orders")
	g.POST("/list", ginx.B[ListOrderReq](h.List))
	g.POST("/detail", ginx.B[IDReq](h.Detail))
	g.POST("/history", ginx.B[IDReq](h.History))
	g.POST("/line/status", ginx.B[UpdateLineStatusReq](h.UpdateLineStatus))
	g.POST("/done", ginx.B[IDReq](h.MarkDone))
	g.POST("/cancel", ginx.B[IDReq](h.Cancel))
	g.POST("/reopen", ginx.B[IDReq](h.Reopen))
	g.POST("/recompute", ginx.B[IDReq](h.Recompute))
}

func (h *AdminHandler) List(ctx *ginx.Context, req ListOrderReq) (ginx.Result, error) {
	os, total, err := h.svc.ListAll(ctx, domain.OrderStatus(req.Status), req.Offset, req.limit())
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newOrderList(os, total)}, nil
}

func (h *AdminHandler) Detail(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	o, err := h.svc.Detail(ctx, 0, req.ID)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newOrder(o)}, nil
}

func (h *AdminHandler) History(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	hs, err := h.svc.OrderHistory(ctx, req.ID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newHistories(hs)}, nil
}

func (h *AdminHandler) UpdateLineStatus(ctx *ginx.Context, req UpdateLineStatusReq) (ginx.Result, error) {
	st, ok := lineStatusOf(req.Status)
	if !ok {
		return illegalLineStatusResult, nil
	}
	o, err := h.svc.UpdateLineStatus(ctx, req.OrderID, req.LineID, st, 0)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newOrder(o)}, nil
}

func (h *AdminHandler) MarkDone(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	o, err := h.svc.MarkDone(ctx, req.ID)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newOrder(o)}, nil
}

func (h *AdminHandler) Cancel(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	o, err := h.svc.Cancel(ctx, 0, req.ID)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newOrder(o)}, nil
}

func (h *AdminHandler) Reopen(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	o, err := h.svc.Reopen(ctx, req.ID)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newOrder(o)}, nil
}

func (h *AdminHandler) Recompute(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	o, err := h.svc.Recompute(ctx, req.ID)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newOrder(o)}, nil
}
