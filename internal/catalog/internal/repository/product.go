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
	"github.com/ecodeclub/epicerie/internal/catalog/internal/repository/dao"
)

type ProductRepository interface {
	Save(ctx context.Context, p domain.Product) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.Product, error)
	FindByIDs(ctx context.Context, ids []int64) ([]domain.Product, error)
	List(ctx context.Context, filter domain.ProductFilter, offset, limit int) ([]domain.Product, error)
	Count(ctx context.Context, filter domain.ProductFilter) (int64, error)
	Delete(ctx context.Context, supplierID, id int64) error
	DeductStock(ctx context.Context, id, qty int64) error
	RestoreStock(ctx context.Context, id, qty int64) error

	Index(ctx context.Context, p domain.Product) error
	Search(ctx context.Context, keyword string, offset, limit int) ([]domain.Product, error)
}

type productRepository struct {
	dao       dao.ProductDAO
	searchDAO dao.ProductSearchDAO
}

func NewProductRepository(d dao.ProductDAO, searchDAO dao.ProductSearchDAO) ProductRepository {
	return &productRepository{dao: d, searchDAO: searchDAO}
}

func (r *productRepository) Save(ctx context.Context, p domain.Product) (int64, error) {
	return r.dao.Save(ctx, r.toEntity(p))
}

func (r *productRepository) FindByID(ctx context.Context, id int64) (domain.Product, error) {
	p, err := r.dao.FindByID(ctx, id)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Product{}, domain.ErrProductNotFound
	}
	if err != nil {
		return domain.Product{}, err
	}
	return r.toDomain(p), nil
}

func (r *productRepository) FindByIDs(ctx context.Context, ids []int64) ([]domain.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	ps, err := r.dao.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return slice.Map(ps, func(idx int, src dao.Product) domain.Product {
		return r.toDomain(src)
	}), nil
}

func (r *productRepository) List(ctx context.Context, filter domain.ProductFilter, offset, limit int) ([]domain.Product, error) {
	ps, err := r.dao.List(ctx, r.toFilter(filter), offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(ps, func(idx int, src dao.Product) domain.Product {
		return r.toDomain(src)
	}), nil
}

func (r *productRepository) Count(ctx context.Context, filter domain.ProductFilter) (int64, error) {
	return r.dao.Count(ctx, r.toFilter(filter))
}

func (r *productRepository) Delete(ctx context.Context, supplierID, id int64) error {
	affected, err := r.dao.Delete(ctx, supplierID, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *productRepository) DeductStock(ctx context.Context, id, qty int64) error {
	affected, err := r.dao.DeductStock(ctx, id, qty)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrInsufficientStock
	}
	return nil
}

func (r *productRepository) RestoreStock(ctx context.Context, id, qty int64) error {
	return r.dao.RestoreStock(ctx, id, qty)
}

func (r *productRepository) Index(ctx context.Context, p domain.Product) error {
	return r.searchDAO.Index(ctx, dao.ProductDocument{
		ID:          p.ID,
		SN:          p.SN,
		Name:        p.Name,
		Description: p.Description,
		Origin:      p.Origin,
		Image:       p.Image,
		CategoryID:  p.CategoryID,
		SupplierID:  p.SupplierID,
		Price:       p.Price,
		TaxRate:     p.TaxRate,
		Status:      p.Status.ToUint8(),
		Utime:       p.Utime,
	})
}

func (r *productRepository) Search(ctx context.Context, keyword string, offset, limit int) ([]domain.Product, error) {
	docs, err := r.searchDAO.Search(ctx, keyword, domain.ProductStatusActive.ToUint8(), offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(docs, func(idx int, src dao.ProductDocument) domain.Product {
		return domain.Product{
			ID:          src.ID,
			SN:          src.SN,
			Name:        src.Name,
			Description: src.Description,
			Origin:      src.Origin,
			Image:       src.Image,
			CategoryID:  src.CategoryID,
			SupplierID:  src.SupplierID,
			Price:       src.Price,
			TaxRate:     src.TaxRate,
			Status:      domain.ProductStatus(src.Status),
			Utime:       src.Utime,
		}
	}), nil
}

func (r *productRepository) toFilter(f domain.ProductFilter) dao.ProductFilter {
	return dao.ProductFilter{
		CategoryIDs: f.CategoryIDs,
		SupplierID:  f.SupplierID,
		Keyword:     f.Keyword,
		Status:      f.Status.ToUint8(),
	}
}

func (r *productRepository) toEntity(p domain.Product) dao.Product {
	return dao.Product{
		Id:              p.ID,
		SN:              p.SN,
		Name:            p.Name,
		Description:     p.Description,
		LongDescription: p.LongDescription,
		Origin:          p.Origin,
		Image:           p.Image,
		Price:           p.Price,
		TaxRate:         p.TaxRate,
		Stock:           p.Stock,
		Weight:          p.Weight,
		CategoryId:      p.CategoryID,
		SupplierId:      p.SupplierID,
		Status:          p.Status.ToUint8(),
	}
}

func (r *productRepository) toDomain(p dao.Product) domain.Product {
	return domain.Product{
		ID:              p.Id,
		SN:              p.SN,
		Name:            p.Name,
		Description:     p.Description,
		LongDescription: p.LongDescription,
		Origin:          p.Origin,
		Image:           p.Image,
		Price:           p.Price,
		TaxRate:         p.TaxRate,
		Stock:           p.Stock,
		Weight:          p.Weight,
		CategoryID:      p.CategoryId,
		SupplierID:      p.SupplierId,
		Status:          domain.ProductStatus(p.Status),
		Ctime:           p.Ctime,
		Utime:           p.Utime,
	}
}
