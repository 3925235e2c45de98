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
	"github.com/ecodeclub/epicerie/internal/catalog/internal/domain"
	"github.com/ecodeclub/epicerie/internal/catalog/internal/repository/cache"
	"github.com/ecodeclub/epicerie/internal/catalog/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

type CategoryRepository interface {
	Save(ctx context.Context, c domain.Category) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.Category, error)
	// FindAll 平铺返回所有分类
	FindAll(ctx context.Context) ([]domain.Category, error)
}

type CachedCategoryRepository struct {
	dao    dao.CategoryDAO
	cache  cache.CategoryCache
	logger *elog.Component
}

func NewCachedCategoryRepository(d dao.CategoryDAO, c cache.CategoryCache) CategoryRepository {
	return &CachedCategoryRepository{dao: d, cache: c, logger: elog.DefaultLogger}
}

func (r *CachedCategoryRepository) Save(ctx context.Context, c domain.Category) (int64, error) {
	id, err := r.dao.Save(ctx, dao.Category{
		Id:       c.ID,
		ParentId: c.ParentID,
		Name:     c.Name,
		Level:    c.Level,
	})
	if err != nil {
		return 0, err
	}
	if er := r.cache.Invalidate(ctx); er != nil {
		r.logger.Error("删除分类缓存失败", elog.FieldErr(er))
	}
	return id, nil
}

func (r *CachedCategoryRepository) FindByID(ctx context.Context, id int64) (domain.Category, error) {
	c, err := r.dao.FindByID(ctx, id)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Category{}, domain.ErrCategoryNotFound
	}
	if err != nil {
		return domain.Category{}, err
	}
	return r.toDomain(c), nil
}

func (r *CachedCategoryRepository) FindAll(ctx context.Context) ([]domain.Category, error) {
	res, err := r.cache.GetAll(ctx)
	if err == nil {
		return res, nil
	}
	cs, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	res = slice.Map(cs, func(idx int, src dao.Category) domain.Category {
		return r.toDomain(src)
	})
	if er := r.cache.SetAll(ctx, res); er != nil {
		r.logger.Error("回写分类缓存失败", elog.FieldErr(er))
	}
	return res, nil
}

func (r *CachedCategoryRepository) toDomain(c dao.Category) domain.Category {
	return domain.Category{
		ID:       c.Id,
		ParentID: c.ParentId,
		Name:     c.Name,
		Level:    c.Level,
		Ctime:    c.Ctime,
		Utime:    c.Utime,
	}
}
