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
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/epicerie/internal/catalog"
	"github.com/ecodeclub/epicerie/internal/order"
	"github.com/ecodeclub/epicerie/internal/pkg/middleware"
	"github.com/ecodeclub/epicerie/internal/supplier/internal/domain"
	"github.com/ecodeclub/epicerie/internal/supplier/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

const minPasswordLen = 8

var _ ginx.Handler = &PortalHandler{}

// PortalHandler 供应商登录后的自助后台，供应商 ID 只从 session 中获取
type PortalHandler struct {
	svc    service.Service
	portal service.PortalService
}

func NewPortalHandler(svc service.Service, portal service.PortalService) *PortalHandler {
	return &PortalHandler{svc: svc, portal: portal}
}

func (h *PortalHandler) PublicRoutes(_ *gin.Engine) {}

func (h *PortalHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/supplier/portal",
		middleware.NewCheckRoleMiddlewareBuilder(nil).Build(middleware.RoleSupplier))
	g.POST("/dashboard", ginx.S(h.Dashboard))
	g.POST("/products/list", ginx.BS[ListProductReq](h.Products))
	g.POST("/products/save", ginx.BS[Product](h.SaveProduct))
	g.POST("/products/delete", ginx.BS[IDReq](h.DeleteProduct))
	g.GET("/profile", ginx.S(h.Profile))
	g.POST("/profile", ginx.BS[Supplier](h.EditProfile))
	g.POST("/password", ginx.BS[ChangePasswordReq](h.ChangePassword))
	g.POST("/orders/list", ginx.BS[ListOrderReq](h.Orders))
	g.POST("/orders/line/status", ginx.BS[UpdateLineStatusReq](h.UpdateLineStatus))
	g.POST("/logout", ginx.S(h.Logout))
}

func (h *PortalHandler) Dashboard(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	d, err := h.portal.Dashboard(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: Dashboard{
		ProductCount:       d.ProductCount,
		ActiveProductCount: d.ActiveProductCount,
		OrderCount:         d.OrderCount,
		InFlightOrderCount: d.InFlightOrderCount,
		DoneOrderCount:     d.DoneOrderCount,
	}}, nil
}

func (h *PortalHandler) Products(ctx *ginx.Context, req ListProductReq, sess session.Session) (ginx.Result, error) {
	ps, total, err := h.portal.Products(ctx, sess.Claims().Uid, req.Keyword, req.ActiveOnly, req.Offset, req.limit())
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: ProductList{
		Total: total,
		List: slice.Map(ps, func(idx int, src catalog.Product) Product {
			return newProduct(src)
		}),
	}}, nil
}

func (h *PortalHandler) SaveProduct(ctx *ginx.Context, req Product, sess session.Session) (ginx.Result, error) {
	if req.Name == "" || req.Price < 0 || req.Stock < 0 || req.Weight < 0 {
		return invalidProductResult, nil
	}
	id, err := h.portal.SaveProduct(ctx, sess.Claims().Uid, req.toDomain())
	switch {
	case errors.Is(err, domain.ErrProductNotOwned), errors.Is(err, catalog.ErrProductNotFound):
		return productNotOwnedResult, nil
	case errors.Is(err, catalog.ErrCategoryNotFound):
		return invalidProductResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: id}, nil
}

func (h *PortalHandler) DeleteProduct(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	err := h.portal.DeleteProduct(ctx, sess.Claims().Uid, req.ID)
	switch {
	case errors.Is(err, domain.ErrProductNotOwned), errors.Is(err, catalog.ErrProductNotFound):
		return productNotOwnedResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *PortalHandler) Profile(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	s, err := h.svc.Detail(ctx, sess.Claims().Uid)
	switch {
	case errors.Is(err, domain.ErrSupplierNotFound):
		return supplierNotFoundResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: newSupplier(s)}, nil
}

func (h *PortalHandler) EditProfile(ctx *ginx.Context, req Supplier, sess session.Session) (ginx.Result, error) {
	s := req.toDomain()
	s.ID = sess.Claims().Uid
	err := h.svc.UpdateProfile(ctx, s)
	switch {
	case errors.Is(err, domain.ErrInvalidZone):
		return invalidSupplierResult, nil
	case errors.Is(err, domain.ErrSupplierNotFound):
		return supplierNotFoundResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *PortalHandler) ChangePassword(ctx *ginx.Context, req ChangePasswordReq, sess session.Session) (ginx.Result, error) {
	if len(req.NewPassword) < minPasswordLen {
		return invalidSupplierResult, nil
	}
	err := h.svc.ChangePassword(ctx, sess.Claims().Uid, req.OldPassword, req.NewPassword)
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return invalidCredentialsResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *PortalHandler) Orders(ctx *ginx.Context, req ListOrderReq, sess session.Session) (ginx.Result, error) {
	os, total, err := h.portal.Orders(ctx, sess.Claims().Uid, order.OrderStatus(req.Status), req.Offset, req.limit())
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: OrderList{
		Total: total,
		List: slice.Map(os, func(idx int, src order.Order) Order {
			return newOrder(src)
		}),
	}}, nil
}

func (h *PortalHandler) UpdateLineStatus(ctx *ginx.Context, req UpdateLineStatusReq, sess session.Session) (ginx.Result, error) {
	o, err := h.portal.UpdateLineStatus(ctx, sess.Claims().Uid, req.OrderID, req.LineID, order.LineStatus(req.Status))
	switch {
	case errors.Is(err, domain.ErrOrderLineNotOwned),
		errors.Is(err, order.ErrLineNotFound),
		errors.Is(err, order.ErrOrderNotFound):
		return orderLineNotOwnedResult, nil
	case errors.Is(err, order.ErrIllegalLineStatus), errors.Is(err, order.ErrIllegalTransition):
		return illegalLineStatusResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: newOrder(o)}, nil
}

func (h *PortalHandler) Logout(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	if err := sess.Destroy(ctx); err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}
