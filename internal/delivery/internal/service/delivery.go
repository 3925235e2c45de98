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

package service

import (
	"context"

	"github.com/ecodeclub/epicerie/internal/delivery/internal/domain"
	"github.com/ecodeclub/epicerie/internal/delivery/internal/repository"
	"github.com/ecodeclub/epicerie/internal/pkg/geo"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=./delivery.go -package=deliverymocks -destination=../../mocks/delivery.mock.go Service
type Service interface {
	ListCarriers(ctx context.Context) ([]domain.Carrier, error)
	// CarrierDetail 带上运费区间
	CarrierDetail(ctx context.Context, id int64) (domain.Carrier, error)
	Tariffs(ctx context.Context, carrierID int64) ([]domain.Tariff, error)
	// Quote 按总重量报价，没有匹配的区间返回 ErrNoApplicableTariff
	Quote(ctx context.Context, carrierID int64, weight float64) (domain.Quote, error)
	SaveCarrier(ctx context.Context, c domain.Carrier) (int64, error)
	SaveTariff(ctx context.Context, t domain.Tariff) (int64, error)

	ListRelayPoints(ctx context.Context, postalCode, city string) ([]domain.RelayPoint, error)
	NearbyRelayPoints(ctx context.Context, center geo.Point, radiusKm float64) ([]domain.NearbyRelayPoint, error)
	RelayPointDetail(ctx context.Context, id int64) (domain.RelayPoint, error)
	SaveRelayPoint(ctx context.Context, r domain.RelayPoint) (int64, error)
}

type deliveryService struct {
	carrierRepo    repository.CarrierRepository
	relayPointRepo repository.RelayPointRepository
}

func NewService(carrierRepo repository.CarrierRepository,
	relayPointRepo repository.RelayPointRepository) Service {
	return &deliveryService{
		carrierRepo:    carrierRepo,
		relayPointRepo: relayPointRepo,
	}
}

func (s *deliveryService) ListCarriers(ctx context.Context) ([]domain.Carrier, error) {
	return s.carrierRepo.List(ctx)
}

func (s *deliveryService) CarrierDetail(ctx context.Context, id int64) (domain.Carrier, error) {
	var (
		eg      errgroup.Group
		carrier domain.Carrier
		tariffs []domain.Tariff
	)
	eg.Go(func() error {
		var err error
		carrier, err = s.carrierRepo.FindByID(ctx, id)
		return err
	})
	eg.Go(func() error {
		var err error
		tariffs, err = s.carrierRepo.Tariffs(ctx, id)
		return err
	})
	if err := eg.Wait(); err != nil {
		return domain.Carrier{}, err
	}
	carrier.Tariffs = tariffs
	return carrier, nil
}

func (s *deliveryService) Tariffs(ctx context.Context, carrierID int64) ([]domain.Tariff, error) {
	return s.carrierRepo.Tariffs(ctx, carrierID)
}

func (s *deliveryService) Quote(ctx context.Context, carrierID int64, weight float64) (domain.Quote, error) {
	carrier, err := s.CarrierDetail(ctx, carrierID)
	if err != nil {
		return domain.Quote{}, err
	}
	band, err := domain.Lookup(carrier.Tariffs, weight)
	if err != nil {
		return domain.Quote{}, err
	}
	return domain.Quote{
		CarrierID:   carrier.ID,
		CarrierName: carrier.Name,
		TariffID:    band.ID,
		Weight:      weight,
		Price:       band.PriceTTC,
	}, nil
}

func (s *deliveryService) SaveCarrier(ctx context.Context, c domain.Carrier) (int64, error) {
	if c.ServiceType == "" {
		c.ServiceType = domain.ServiceTypeStandard
	}
	return s.carrierRepo.Save(ctx, c)
}

func (s *deliveryService) SaveTariff(ctx context.Context, t domain.Tariff) (int64, error) {
	if !t.Valid() {
		return 0, domain.ErrInvalidTariff
	}
	if _, err := s.carrierRepo.FindByID(ctx, t.CarrierID); err != nil {
		return 0, err
	}
	return s.carrierRepo.SaveTariff(ctx, t.WithTax())
}

func (s *deliveryService) ListRelayPoints(ctx context.Context, postalCode, city string) ([]domain.RelayPoint, error) {
	return s.relayPointRepo.List(ctx, postalCode, city)
}

func (s *deliveryService) NearbyRelayPoints(ctx context.Context, center geo.Point, radiusKm float64) ([]domain.NearbyRelayPoint, error) {
	points, err := s.relayPointRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	return domain.Nearby(points, center, radiusKm), nil
}

func (s *deliveryService) RelayPointDetail(ctx context.Context, id int64) (domain.RelayPoint, error) {
	return s.relayPointRepo.FindByID(ctx, id)
}

func (s *deliveryService) SaveRelayPoint(ctx context.Context, r domain.RelayPoint) (int64, error) {
	return s.relayPointRepo.Save(ctx, r)
}
