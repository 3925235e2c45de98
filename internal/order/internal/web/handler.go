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
	"github.com/ecodeclub/epicerie/internal/order/internal/repository/cache"
	"github.com/ecodeclub/epicerie/internal/order/internal/service"
	"github.com/ecodeclub/epicerie/internal/pkg/middleware"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc      service.Service
	cartSvc  service.CartService
	requests cache.RequestCache
	logger   *elog.Component
}

func NewHandler(svc service.Service, cartSvc service.CartService, requests cache.RequestCache) *Handler {
	return &Handler{
		svc:      svc,
		cartSvc:  cartSvc,
		requests: requests,
		logger:   elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	clientOnly := middleware.NewCheckRoleMiddlewareBuilder(nil).Build(middleware.RoleClient)

	cg := server.Group("/cart", clientOnly)
	cg.POST("/detail", ginx.S(h.CartDetail))
	cg.POST("/add", ginx.BS[ItemReq](h.AddItem))
	cg.POST("/remove", ginx.BS[ItemReq](h.RemoveItem))
	cg.POST("/delete", ginx.BS[IDReq](h.DeleteLine))
	cg.POST("/clear", ginx.S(h.Clear))
	cg.POST("/preview", ginx.BS[PreviewReq](h.Preview))

	og := server.Group("/order", clientOnly)
	og.POST("/create", ginx.BS[CreateOrderReq](h.CreateOrder))
	og.POST("/list", ginx.BS[Page](h.ListOrders))
	og.POST("/detail", ginx.BS[IDReq](h.Detail))
	og.POST("/cancel", ginx.BS[IDReq](h.Cancel))
	og.POST("/history", ginx.S(h.History))
}

func (h *Handler) CartDetail(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	s, err := h.cartSvc.Summary(ctx, sess.Claims().Uid)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newCart(s)}, nil
}

func (h *Handler) AddItem(ctx *ginx.Context, req ItemReq, sess session.Session) (ginx.Result, error) {
	c, err := h.cartSvc.AddItem(ctx, sess.Claims().Uid, req.ProductID, req.Quantity)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newCart(c.Summarize())}, nil
}

func (h *Handler) RemoveItem(ctx *ginx.Context, req ItemReq, sess session.Session) (ginx.Result, error) {
	c, err := h.cartSvc.RemoveItem(ctx, sess.Claims().Uid, req.ProductID, req.Quantity)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newCart(c.Summarize())}, nil
}

func (h *Handler) DeleteLine(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	c, err := h.cartSvc.DeleteLine(ctx, sess.Claims().Uid, req.ID)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newCart(c.Summarize())}, nil
}

func (h *Handler) Clear(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	if err := h.cartSvc.Clear(ctx, sess.Claims().Uid); err != nil {
		return errorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Preview(ctx *ginx.Context, req PreviewReq, sess session.Session) (ginx.Result, error) {
	p, err := h.cartSvc.Preview(ctx, sess.Claims().Uid, req.CarrierID)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newPreview(p)}, nil
}

func (h *Handler) CreateOrder(ctx *ginx.Context, req CreateOrderReq, sess session.Session) (ginx.Result, error) {
	if req.RequestID != "" {
		ok, err := h.requests.Acquire(ctx, req.RequestID)
		if err != nil {
			return systemErrorResult, err
		}
		if !ok {
			return duplicateRequestResult, nil
		}
	}
	o, err := h.svc.CreateFromCart(ctx, service.CreateOrderReq{
		ClientID:     sess.Claims().Uid,
		CarrierID:    req.CarrierID,
		RelayPointID: req.RelayPointID,
	})
	if err != nil {
		if req.RequestID != "" {
			if er := h.requests.Release(ctx, req.RequestID); er != nil {
				h.logger.Error("释放请求ID失败", elog.FieldErr(er), elog.String("request_id", req.RequestID))
			}
		}
		return errorResult(err)
	}
	return ginx.Result{Data: newOrder(o)}, nil
}

func (h *Handler) ListOrders(ctx *ginx.Context, req Page, sess session.Session) (ginx.Result, error) {
	os, total, err := h.svc.ListOrders(ctx, sess.Claims().Uid, req.Offset, req.limit())
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newOrderList(os, total)}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	o, err := h.svc.Detail(ctx, sess.Claims().Uid, req.ID)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newOrder(o)}, nil
}

func (h *Handler) Cancel(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	o, err := h.svc.Cancel(ctx, sess.Claims().Uid, req.ID)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newOrder(o)}, nil
}

func (h *Handler) History(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	hs, err := h.svc.ListHistory(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newHistories(hs)}, nil
}

func lineStatusOf(s uint8) (domain.LineStatus, bool) {
	st := domain.LineStatus(s)
	return st, st.Valid()
}
