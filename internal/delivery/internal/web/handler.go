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
	"github.com/ecodeclub/epicerie/internal/delivery/internal/domain"
	"github.com/ecodeclub/epicerie/internal/delivery/internal/service"
	"github.com/ecodeclub/epicerie/internal/pkg/geo"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
)

// defaultNearbyRadiusKm 没有指定半径时的搜索范围
const defaultNearbyRadiusKm = 5.0

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/carriers")
	g.GET("/list", ginx.W(h.ListCarriers))
	g.POST("/detail", ginx.B[IDReq](h.CarrierDetail))
	g.POST("/tariffs", ginx.B[IDReq](h.Tariffs))
	g.POST("/quote", ginx.B[QuoteReq](h.Quote))

	rg := server.Group("/relay-points")
	rg.POST("/list", ginx.B[ListRelayPointReq](h.ListRelayPoints))
	rg.POST("/nearby", ginx.B[NearbyReq](h.NearbyRelayPoints))
	rg.POST("/detail", ginx.B[IDReq](h.RelayPointDetail))
}

func (h *Handler) PrivateRoutes(_ *gin.Engine) {}

func (h *Handler) ListCarriers(ctx *ginx.Context) (ginx.Result, error) {
	cs, err := h.svc.ListCarriers(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(cs, func(idx int, src domain.Carrier) Carrier {
			return newCarrier(src)
		}),
	}, nil
}

func (h *Handler) CarrierDetail(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	c, err := h.svc.CarrierDetail(ctx, req.ID)
	switch {
	case errors.Is(err, domain.ErrCarrierNotFound):
		return carrierNotFoundResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: newCarrier(c)}, nil
}

func (h *Handler) Tariffs(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	ts, err := h.svc.Tariffs(ctx, req.ID)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(ts, func(idx int, src domain.Tariff) Tariff {
			return newTariff(src)
		}),
	}, nil
}

func (h *Handler) Quote(ctx *ginx.Context, req QuoteReq) (ginx.Result, error) {
	q, err := h.svc.Quote(ctx, req.CarrierID, req.Weight)
	switch {
	case errors.Is(err, domain.ErrCarrierNotFound):
		return carrierNotFoundResult, nil
	case errors.Is(err, domain.ErrNoApplicableTariff):
		return noApplicableTariffResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: Quote{
		CarrierID:   q.CarrierID,
		CarrierName: q.CarrierName,
		TariffID:    q.TariffID,
		Weight:      q.Weight,
		Price:       q.Price,
	}}, nil
}

func (h *Handler) ListRelayPoints(ctx *ginx.Context, req ListRelayPointReq) (ginx.Result, error) {
	rps, err := h.svc.ListRelayPoints(ctx, req.PostalCode, req.City)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(rps, func(idx int, src domain.RelayPoint) RelayPoint {
			return newRelayPoint(src)
		}),
	}, nil
}

func (h *Handler) NearbyRelayPoints(ctx *ginx.Context, req NearbyReq) (ginx.Result, error) {
	radius := req.RadiusKm
	if radius <= 0 {
		radius = defaultNearbyRadiusKm
	}
	rps, err := h.svc.NearbyRelayPoints(ctx, geo.Point{Lat: req.Lat, Lon: req.Lon}, radius)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(rps, func(idx int, src domain.NearbyRelayPoint) RelayPoint {
			res := newRelayPoint(src.RelayPoint)
			res.DistanceKm = src.DistanceKm
			return res
		}),
	}, nil
}

func (h *Handler) RelayPointDetail(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	rp, err := h.svc.RelayPointDetail(ctx, req.ID)
	switch {
	case errors.Is(err, domain.ErrRelayPointNotFound):
		return relayPointNotFoundResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: newRelayPoint(rp)}, nil
}
