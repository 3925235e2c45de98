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

package repository

import (
	"context"
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/epicerie/internal/delivery/internal/domain"
	"github.com/ecodeclub/epicerie/internal/delivery/internal/repository/dao"
	"github.com/ecodeclub/epicerie/internal/pkg/geo"
)

type RelayPointRepository interface {
	Save(ctx context.Context, r domain.RelayPoint) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.RelayPoint, error)
	List(ctx context.Context, postalCode, city string) ([]domain.RelayPoint, error)
	ListActive(ctx context.Context) ([]domain.RelayPoint, error)
}

type relayPointRepository struct {
	dao dao.RelayPointDAO
}

func NewRelayPointRepository(d dao.RelayPointDAO) RelayPointRepository {
	return &relayPointRepository{dao: d}
}

func (r *relayPointRepository) Save(ctx context.Context, rp domain.RelayPoint) (int64, error) {
	return r.dao.Save(ctx, dao.RelayPoint{
		Id:         rp.ID,
		Name:       rp.Name,
		Street:     rp.Street,
		PostalCode: rp.PostalCode,
		City:       rp.City,
		Country:    rp.Country,
		Lat:        rp.Location.Lat,
		Lon:        rp.Location.Lon,
		Active:     rp.Active,
	})
}

func (r *relayPointRepository) FindByID(ctx context.Context, id int64) (domain.RelayPoint, error) {
	rp, err := r.dao.FindByID(ctx, id)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.RelayPoint{}, domain.ErrRelayPointNotFound
	}
	return r.toDomain(rp), err
}

func (r *relayPointRepository) List(ctx context.Context, postalCode, city string) ([]domain.RelayPoint, error) {
	rps, err := r.dao.List(ctx, postalCode, city)
	return slice.Map(rps, func(idx int, src dao.RelayPoint) domain.RelayPoint {
		return r.toDomain(src)
	}), err
}

func (r *relayPointRepository) ListActive(ctx context.Context) ([]domain.RelayPoint, error) {
	rps, err := r.dao.ListActive(ctx)
	return slice.Map(rps, func(idx int, src dao.RelayPoint) domain.RelayPoint {
		return r.toDomain(src)
	}), err
}

func (r *relayPointRepository) toDomain(rp dao.RelayPoint) domain.RelayPoint {
	return domain.RelayPoint{
		ID:         rp.Id,
		Name:       rp.Name,
		Street:     rp.Street,
		PostalCode: rp.PostalCode,
		City:       rp.City,
		Country:    rp.Country,
		Location:   geo.Point{Lat: rp.Lat, Lon: rp.Lon},
		Active:     rp.Active,
		Ctime:      rp.Ctime,
		Utime:      rp.Utime,
	}
}
