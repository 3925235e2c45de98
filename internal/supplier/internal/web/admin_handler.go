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

	"github.com/ecodeclub/epicerie/internal/supplier/internal/domain"
	"github.com/ecodeclub/epicerie/internal/supplier/internal/service"
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
	server.POST("/suppliers/save", ginx.B[SaveSupplierReq](h.Save))
}

func (h *AdminHandler) Save(ctx *ginx.Context, req SaveSupplierReq) (ginx.Result, error) {
	s := req.Supplier.toDomain()
	if s.Name == "" {
		return invalidSupplierResult, nil
	}
	if s.ID == 0 {
		if !strings.Contains(s.Email, "@") || len(req.Password) < minPasswordLen {
			return invalidSupplierResult, nil
		}
		s.Password = req.Password
	}
	id, err := h.svc.Save(ctx, s)
	switch {
	case errors.Is(err, domain.ErrInvalidZone):
		return invalidSupplierResult, nil
	case errors.Is(err, domain.ErrDuplicateEmail):
		return duplicateEmailResult, nil
	case errors.Is(err, domain.ErrSupplierNotFound):
		return supplierNotFoundResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: id}, nil
}
