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
	"strings"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/epicerie/internal/pkg/middleware"
	"github.com/ecodeclub/epicerie/internal/supplier/internal/domain"
	"github.com/ecodeclub/epicerie/internal/supplier/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

// Handler 对外公开的供应商接口
type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/suppliers")
	g.POST("/list", ginx.B[Page](h.List))
	g.POST("/detail", ginx.B[IDReq](h.Detail))
	g.POST("/delivery/check", ginx.B[CheckDeliveryReq](h.CheckDelivery))
	g.POST("/login", ginx.B[LoginReq](h.Login))
}

func (h *Handler) PrivateRoutes(_ *gin.Engine) {}

func (h *Handler) List(ctx *ginx.Context, req Page) (ginx.Result, error) {
	ss, total, err := h.svc.List(ctx, req.Offset, req.limit())
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: SupplierList{
		Total: total,
		List: slice.Map(ss, func(idx int, src domain.Supplier) Supplier {
			return newSupplier(src)
		}),
	}}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	s, err := h.svc.Detail(ctx, req.ID)
	switch {
	case errors.Is(err, domain.ErrSupplierNotFound):
		return supplierNotFoundResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: newSupplier(s)}, nil
}

func (h *Handler) CheckDelivery(ctx *ginx.Context, req CheckDeliveryReq) (ginx.Result, error) {
	res, err := h.svc.CheckDelivery(ctx, req.SupplierID, req.destination(), req.Subtotal)
	switch {
	case errors.Is(err, domain.ErrSupplierNotFound):
		return supplierNotFoundResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: DeliveryCheck{
		Eligible:   res.Eligible,
		DistanceKm: res.DistanceKm,
		Fee:        res.Fee,
	}}, nil
}

func (h *Handler) Login(ctx *ginx.Context, req LoginReq) (ginx.Result, error) {
	s, err := h.svc.Login(ctx, strings.TrimSpace(req.Email), req.Password)
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return invalidCredentialsResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	_, err = session.NewSessionBuilder(ctx, s.ID).
		SetJwtData(map[string]string{
			middleware.RoleClaimKey: middleware.RoleSupplier,
		}).Build()
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newSupplier(s)}, nil
}
