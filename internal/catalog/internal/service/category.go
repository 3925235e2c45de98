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

	"github.com/ecodeclub/epicerie/internal/catalog/internal/domain"
	"github.com/ecodeclub/epicerie/internal/catalog/internal/repository"
)

type CategoryService interface {
	Save(ctx context.Context, c domain.Category) (int64, error)
	Tree(ctx context.Context) ([]domain.Category, error)
}

type categoryService struct {
	repo repository.CategoryRepository
}

func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

func (s *categoryService) Save(ctx context.Context, c domain.Category) (int64, error) {
	if c.ID > 0 {
		// 只允许改名字
		old, err := s.repo.FindByID(ctx, c.ID)
		if err != nil {
			return 0, err
		}
		c.ParentID, c.Level = old.ParentID, old.Level
		return s.repo.Save(ctx, c)
	}
	c.Level = 1
	if c.ParentID > 0 {
		parent, err := s.repo.FindByID(ctx, c.ParentID)
		if err != nil {
			return 0, err
		}
		if parent.Level >= domain.MaxCategoryLevel {
			return 0, domain.ErrCategoryTooDeep
		}
		c.Level = parent.Level + 1
	}
	return s.repo.Save(ctx, c)
}

func (s *categoryService) Tree(ctx context.Context) ([]domain.Category, error) {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return domain.BuildTree(all), nil
}
