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

	"github.com/ecodeclub/epicerie/internal/delivery/internal/domain"
	"github.com/ecodeclub/epicerie/internal/delivery/internal/service"
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
	g := server.Group("/carriers")
	g.POST("/save", ginx.B[Carrier](h.SaveCarrier))
	g.POST("/tariffs/save", ginx.B[Tariff](h.SaveTariff))
	server.POST("/relay-points/save", ginx.B[RelayPoint](h.SaveRelayPoint))
}

func (h *AdminHandler) SaveCarrier(ctx *ginx.Context, req Carrier) (ginx.Result, error) {
	c := req.toDomain()
	if c.Name == "" || (c.ServiceType != "" &&
		c.ServiceType != domain.ServiceTypeStandard && c.ServiceType != domain.ServiceTypeExpress) {
		return invalidCarrierResult, nil
	}
	id, err := h.svc.SaveCarrier(ctx, c)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: id}, nil
}

func (h *AdminHandler) SaveTariff(ctx *ginx.Context, req Tariff) (ginx.Result, error) {
	id, err := h.svc.SaveTariff(ctx, domain.Tariff{
		ID:        req.ID,
		CarrierID: req.CarrierID,
		MinWeight: req.MinWeight,
		MaxWeight: req.MaxWeight,
		Price:     req.Price,
		PriceTTC:  req.PriceTTC,
	})
	switch {
	case errors.Is(err, domain.ErrInvalidTariff):
		return invalidTariffResult, nil
	case errors.Is(err, domain.ErrCarrierNotFound):
		return carrierNotFoundResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: id}, nil
}

func (h *AdminHandler) SaveRelayPoint(ctx *ginx.Context, req RelayPoint) (ginx.Result, error) {
	id, err := h.svc.SaveRelayPoint(ctx, req.toDomain())
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: id}, nil
}
