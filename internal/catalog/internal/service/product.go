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
	"fmt"
	"strings"

	"github.com/ecodeclub/epicerie/internal/catalog/internal/domain"
	"github.com/ecodeclub/epicerie/internal/catalog/internal/event"
	"github.com/ecodeclub/epicerie/internal/catalog/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=./product.go -package=catalogmocks -destination=../../mocks/product.mock.go Service
type Service interface {
	// Save 新建时生成 SN，更新时 SN 与供应商不变
	Save(ctx context.Context, p domain.Product) (int64, error)
	Detail(ctx context.Context, id int64) (domain.Product, error)
	FindByIDs(ctx context.Context, ids []int64) (map[int64]domain.Product, error)
	List(ctx context.Context, filter domain.ProductFilter, offset, limit int) ([]domain.Product, int64, error)
	// Delete supplierID 为 0 表示管理员删除
	Delete(ctx context.Context, supplierID, id int64) error
	// DeductStock 原子扣减，库存不足返回 ErrInsufficientStock
	DeductStock(ctx context.Context, id, qty int64) error
	RestoreStock(ctx context.Context, id, qty int64) error
	Search(ctx context.Context, keyword string, offset, limit int) ([]domain.Product, error)
	SyncToSearch(ctx context.Context, id int64) error
}

type productService struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
	producer     event.ProductSyncProducer
	logger       *elog.Component
}

func NewService(repo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	producer event.ProductSyncProducer) Service {
	return &productService{
		repo:         repo,
		categoryRepo: categoryRepo,
		producer:     producer,
		logger:       elog.DefaultLogger,
	}
}

func (s *productService) Save(ctx context.Context, p domain.Product) (int64, error) {
	if p.CategoryID > 0 {
		if _, err := s.categoryRepo.FindByID(ctx, p.CategoryID); err != nil {
			return 0, err
		}
	}
	if p.ID == 0 {
		p.SN = strings.ToUpper(shortuuid.New()[:8])
	}
	if p.Status == domain.ProductStatusUnknown {
		p.Status = domain.ProductStatusActive
	}
	id, err := s.repo.Save(ctx, p)
	if err != nil {
		return 0, err
	}
	s.sync(ctx, id)
	return id, nil
}

func (s *productService) Detail(ctx context.Context, id int64) (domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *productService) FindByIDs(ctx context.Context, ids []int64) (map[int64]domain.Product, error) {
	ps, err := s.repo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	res := make(map[int64]domain.Product, len(ps))
	for _, p := range ps {
		res[p.ID] = p
	}
	return res, nil
}

func (s *productService) List(ctx context.Context, filter domain.ProductFilter, offset, limit int) ([]domain.Product, int64, error) {
	// 按一级或者二级分类查询时需要带上所有子分类
	if len(filter.CategoryIDs) == 1 {
		all, err := s.categoryRepo.FindAll(ctx)
		if err != nil {
			return nil, 0, err
		}
		filter.CategoryIDs = domain.Descendants(all, filter.CategoryIDs[0])
	}
	var (
		eg    errgroup.Group
		ps    []domain.Product
		total int64
	)
	eg.Go(func() error {
		var err error
		ps, err = s.repo.List(ctx, filter, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx, filter)
		return err
	})
	return ps, total, eg.Wait()
}

func (s *productService) Delete(ctx context.Context, supplierID, id int64) error {
	return s.repo.Delete(ctx, supplierID, id)
}

func (s *productService) DeductStock(ctx context.Context, id, qty int64) error {
	if qty <= 0 {
		return fmt.Errorf("扣减数量非法 %d", qty)
	}
	err := s.repo.DeductStock(ctx, id, qty)
	if err == nil {
		s.sync(ctx, id)
	}
	return err
}

func (s *productService) RestoreStock(ctx context.Context, id, qty int64) error {
	if qty <= 0 {
		return nil
	}
	return s.repo.RestoreStock(ctx, id, qty)
}

func (s *productService) Search(ctx context.Context, keyword string, offset, limit int) ([]domain.Product, error) {
	return s.repo.Search(ctx, keyword, offset, limit)
}

func (s *productService) SyncToSearch(ctx context.Context, id int64) error {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.Index(ctx, p)
}

// sync 同步失败不影响主流程
func (s *productService) sync(ctx context.Context, id int64) {
	err := s.producer.Produce(ctx, event.ProductSyncEvent{ProductID: id})
	if err != nil {
		s.logger.Error("发送商品同步事件失败",
			elog.FieldErr(err),
			elog.Int64("product_id", id))
	}
}
