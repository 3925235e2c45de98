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
	"github.com/ecodeclub/epicerie/internal/delivery/internal/repository/cache"
	"github.com/ecodeclub/epicerie/internal/delivery/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

//go:generate mockgen -source=./carrier.go -package=repomocks -destination=mocks/carrier.mock.go CarrierRepository
type CarrierRepository interface {
	Save(ctx context.Context, c domain.Carrier) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.Carrier, error)
	FindByIDs(ctx context.Context, ids []int64) ([]domain.Carrier, error)
	List(ctx context.Context) ([]domain.Carrier, error)
	SaveTariff(ctx context.Context, t domain.Tariff) (int64, error)
	// Tariffs 优先读缓存
	Tariffs(ctx context.Context, carrierID int64) ([]domain.Tariff, error)
}

type CachedCarrierRepository struct {
	dao    dao.CarrierDAO
	cache  cache.TariffCache
	logger *elog.Component
}

func NewCachedCarrierRepository(d dao.CarrierDAO, c cache.TariffCache) CarrierRepository {
	return &CachedCarrierRepository{dao: d, cache: c, logger: elog.DefaultLogger}
}

func (r *CachedCarrierRepository) Save(ctx context.Context, c domain.Carrier) (int64, error) {
	return r.dao.Save(ctx, dao.Carrier{
		Id:          c.ID,
		Name:        c.Name,
		Phone:       c.Phone,
		Email:       c.Email,
		Address:     c.Address,
		ServiceType: string(c.ServiceType),
	})
}

func (r *CachedCarrierRepository) FindByID(ctx context.Context, id int64) (domain.Carrier, error) {
	c, err := r.dao.FindByID(ctx, id)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Carrier{}, domain.ErrCarrierNotFound
	}
	return r.toDomain(c), err
}

func (r *CachedCarrierRepository) FindByIDs(ctx context.Context, ids []int64) ([]domain.Carrier, error) {
	cs, err := r.dao.FindByIDs(ctx, ids)
	return slice.Map(cs, func(idx int, src dao.Carrier) domain.Carrier {
		return r.toDomain(src)
	}), err
}

func (r *CachedCarrierRepository) List(ctx context.Context) ([]domain.Carrier, error) {
	cs, err := r.dao.List(ctx)
	return slice.Map(cs, func(idx int, src dao.Carrier) domain.Carrier {
		return r.toDomain(src)
	}), err
}

func (r *CachedCarrierRepository) SaveTariff(ctx context.Context, t domain.Tariff) (int64, error) {
	id, err := r.dao.SaveTariff(ctx, dao.Tariff{
		Id:        t.ID,
		CarrierId: t.CarrierID,
		MinWeight: t.MinWeight,
		MaxWeight: t.MaxWeight,
		Price:     t.Price,
		PriceTtc:  t.PriceTTC,
	})
	if err != nil {
		return 0, err
	}
	if er := r.cache.Delete(ctx, t.CarrierID); er != nil {
		r.logger.Error("删除运费缓存失败",
			elog.Int64("carrierId", t.CarrierID), elog.FieldErr(er))
	}
	return id, nil
}

func (r *CachedCarrierRepository) Tariffs(ctx context.Context, carrierID int64) ([]domain.Tariff, error) {
	res, err := r.cache.Get(ctx, carrierID)
	if err == nil {
		return res, nil
	}
	if !errors.Is(err, cache.ErrTariffsNotCached) {
		r.logger.Warn("读取运费缓存失败", elog.FieldErr(err))
	}
	ts, err := r.dao.FindTariffs(ctx, carrierID)
	if err != nil {
		return nil, err
	}
	res = slice.Map(ts, func(idx int, src dao.Tariff) domain.Tariff {
		return domain.Tariff{
			ID:        src.Id,
			CarrierID: src.CarrierId,
			MinWeight: src.MinWeight,
			MaxWeight: src.MaxWeight,
			Price:     src.Price,
			PriceTTC:  src.PriceTtc,
		}
	})
	if er := r.cache.Set(ctx, carrierID, res); er != nil {
		r.logger.Error("回写运费缓存失败",
			elog.Int64("carrierId", carrierID), elog.FieldErr(er))
	}
	return res, nil
}

func (r *CachedCarrierRepository) toDomain(c dao.Carrier) domain.Carrier {
	return domain.Carrier{
		ID:          c.Id,
		Name:        c.Name,
		Phone:       c.Phone,
		Email:       c.Email,
		Address:     c.Address,
		ServiceType: domain.ServiceType(c.ServiceType),
		Ctime:       c.Ctime,
		Utime:       c.Utime,
	}
}
