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

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/epicerie/internal/delivery/internal/domain"
	"github.com/pkg/errors"
)

var ErrTariffsNotCached = errors.New("运费没有缓存")

type TariffCache interface {
	Get(ctx context.Context, carrierID int64) ([]domain.Tariff, error)
	Set(ctx context.Context, carrierID int64, tariffs []domain.Tariff) error
	Delete(ctx context.Context, carrierID int64) error
}

type TariffECache struct {
	cache      ecache.Cache
	expiration time.Duration
}

func NewTariffECache(c ecache.Cache) TariffCache {
	return &TariffECache{
		cache: &ecache.NamespaceCache{
			Namespace: "delivery:",
			C:         c,
		},
		expiration: 30 * time.Minute,
	}
}

func (c *TariffECache) Get(ctx context.Context, carrierID int64) ([]domain.Tariff, error) {
	val := c.cache.Get(ctx, c.key(carrierID))
	if val.KeyNotFound() {
		return nil, ErrTariffsNotCached
	}
	if val.Err != nil {
		return nil, errors.Wrap(val.Err, "读取运费缓存失败")
	}
	var res []domain.Tariff
	err := val.JSONScan(&res)
	return res, errors.Wrap(err, "反序列化运费缓存失败")
}

func (c *TariffECache) Set(ctx context.Context, carrierID int64, tariffs []domain.Tariff) error {
	data, err := json.Marshal(tariffs)
	if err != nil {
		return errors.Wrap(err, "序列化运费失败")
	}
	return c.cache.Set(ctx, c.key(carrierID), data, c.expiration)
}

func (c *TariffECache) Delete(ctx context.Context, carrierID int64) error {
	_, err := c.cache.Delete(ctx, c.key(carrierID))
	return err
}

func (c *TariffECache) key(carrierID int64) string {
	return fmt.Sprintf("tariffs:%d", carrierID)
}
