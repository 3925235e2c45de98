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
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/epicerie/internal/catalog/internal/domain"
	"github.com/pkg/errors"
)

var ErrCategoryNotCached = errors.New("分类没有缓存")

type CategoryCache interface {
	GetAll(ctx context.Context) ([]domain.Category, error)
	SetAll(ctx context.Context, categories []domain.Category) error
	Invalidate(ctx context.Context) error
}

type CategoryECache struct {
	ec ecache.Cache
}

const (
	allCategoriesKey = "category:all"
	// 分类很少变动，且修改时会主动删除
	categoryExpiration = 24 * time.Hour
)

func NewCategoryECache(ec ecache.Cache) CategoryCache {
	return &CategoryECache{
		ec: &ecache.NamespaceCache{
			Namespace: "catalog:",
			C:         ec,
		},
	}
}

func (c *CategoryECache) GetAll(ctx context.Context) ([]domain.Category, error) {
	val := c.ec.Get(ctx, allCategoriesKey)
	if val.KeyNotFound() {
		return nil, ErrCategoryNotCached
	}
	if val.Err != nil {
		return nil, errors.Wrap(val.Err, "查询分类缓存出错")
	}
	str, err := val.String()
	if err != nil {
		return nil, errors.Wrap(err, "分类缓存格式错误")
	}
	var res []domain.Category
	err = json.Unmarshal([]byte(str), &res)
	if err != nil {
		return nil, errors.Wrap(err, "反序列化分类失败")
	}
	return res, nil
}

func (c *CategoryECache) SetAll(ctx context.Context, categories []domain.Category) error {
	data, err := json.Marshal(categories)
	if err != nil {
		return errors.Wrap(err, "序列化分类失败")
	}
	return c.ec.Set(ctx, allCategoriesKey, string(data), categoryExpiration)
}

func (c *CategoryECache) Invalidate(ctx context.Context) error {
	_, err := c.ec.Delete(ctx, allCategoriesKey)
	return err
}
