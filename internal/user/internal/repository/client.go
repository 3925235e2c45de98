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
	"database/sql"
	"errors"

	"github.com/ecodeclub/epicerie/internal/pkg/geo"
	"github.com/ecodeclub/epicerie/internal/user/internal/domain"
	"github.com/ecodeclub/epicerie/internal/user/internal/repository/cache"
	"github.com/ecodeclub/epicerie/internal/user/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

//go:generate mockgen -source=./client.go -package=repomocks -destination=mocks/client.mock.go ClientRepository
type ClientRepository interface {
	Create(ctx context.Context, c domain.Client) (int64, error)
	UpdateProfile(ctx context.Context, c domain.Client) error
	UpdatePassword(ctx context.Context, id int64, hash string) error
	// FindByID 返回的数据不带密码
	FindByID(ctx context.Context, id int64) (domain.Client, error)
	// FindWithPassword 登录和修改密码时使用
	FindWithPassword(ctx context.Context, id int64) (domain.Client, error)
	FindByEmail(ctx context.Context, email string) (domain.Client, error)
}

type CachedClientRepository struct {
	dao    dao.ClientDAO
	cache  cache.ClientCache
	logger *elog.Component
}

func NewCachedClientRepository(d dao.ClientDAO, c cache.ClientCache) ClientRepository {
	return &CachedClientRepository{dao: d, cache: c, logger: elog.DefaultLogger}
}

func (r *CachedClientRepository) Create(ctx context.Context, c domain.Client) (int64, error) {
	id, err := r.dao.Insert(ctx, r.toEntity(c))
	if errors.Is(err, dao.ErrClientDuplicate) {
		return 0, domain.ErrDuplicateEmail
	}
	return id, err
}

func (r *CachedClientRepository) UpdateProfile(ctx context.Context, c domain.Client) error {
	if err := r.dao.UpdateProfile(ctx, r.toEntity(c)); err != nil {
		return err
	}
	return r.cache.Delete(ctx, c.ID)
}

func (r *CachedClientRepository) UpdatePassword(ctx context.Context, id int64, hash string) error {
	return r.dao.UpdatePassword(ctx, id, hash)
}

func (r *CachedClientRepository) FindByID(ctx context.Context, id int64) (domain.Client, error) {
	c, err := r.cache.Get(ctx, id)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, cache.ErrKeyNotExist) {
		r.logger.Warn("读取用户缓存失败", elog.Int64("uid", id), elog.FieldErr(err))
	}
	c, err = r.FindWithPassword(ctx, id)
	if err != nil {
		return domain.Client{}, err
	}
	c.Password = ""
	if er := r.cache.Set(ctx, c); er != nil {
		r.logger.Error("回写用户缓存失败", elog.Int64("uid", id), elog.FieldErr(er))
	}
	return c, nil
}

func (r *CachedClientRepository) FindWithPassword(ctx context.Context, id int64) (domain.Client, error) {
	c, err := r.dao.FindByID(ctx, id)
	if errors.Is(err, dao.ErrDataNotFound) {
		return domain.Client{}, domain.ErrClientNotFound
	}
	return r.toDomain(c), err
}

func (r *CachedClientRepository) FindByEmail(ctx context.Context, email string) (domain.Client, error) {
	c, err := r.dao.FindByEmail(ctx, domain.NormalizeEmail(email))
	if errors.Is(err, dao.ErrDataNotFound) {
		return domain.Client{}, domain.ErrClientNotFound
	}
	return r.toDomain(c), err
}

func (r *CachedClientRepository) toEntity(c domain.Client) dao.Client {
	res := dao.Client{
		Id:         c.ID,
		Email:      domain.NormalizeEmail(c.Email),
		Phone:      c.Phone,
		FirstName:  c.FirstName,
		LastName:   c.LastName,
		Password:   c.Password,
		Street:     c.Address.Street,
		PostalCode: c.Address.PostalCode,
		City:       c.Address.City,
		Country:    c.Address.Country,
	}
	if c.Location != nil {
		res.Lat = sql.NullFloat64{Float64: c.Location.Lat, Valid: true}
		res.Lon = sql.NullFloat64{Float64: c.Location.Lon, Valid: true}
	}
	return res
}

func (r *CachedClientRepository) toDomain(c dao.Client) domain.Client {
	res := domain.Client{
		ID:        c.Id,
		Email:     c.Email,
		Phone:     c.Phone,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Password:  c.Password,
		Address: domain.Address{
			Street:     c.Street,
			PostalCode: c.PostalCode,
			City:       c.City,
			Country:    c.Country,
		},
		Ctime: c.Ctime,
		Utime: c.Utime,
	}
	if c.Lat.Valid && c.Lon.Valid {
		res.Location = &geo.Point{Lat: c.Lat.Float64, Lon: c.Lon.Float64}
	}
	return res
}
