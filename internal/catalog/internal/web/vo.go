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

package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/epicerie/internal/catalog/internal/domain"
)

type IDReq struct {
	ID int64 `json:"id"`
}

type ListProductReq struct {
	CategoryID int64  `json:"categoryId"`
	SupplierID int64  `json:"supplierId"`
	Keyword    string `json:"keyword"`
	Offset     int    `json:"offset"`
	Limit      int    `json:"limit"`
}

type SearchReq struct {
	Keyword string `json:"keyword"`
	Offset  int    `json:"offset"`
	Limit   int    `json:"limit"`
}

type Product struct {
	ID              int64   `json:"id"`
	SN              string  `json:"sn"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	LongDescription string  `json:"longDescription"`
	Origin          string  `json:"origin"`
	Image           string  `json:"image"`
	Price           int64   `json:"price"`
	PriceTTC        int64   `json:"priceTTC"`
	TaxRate         float64 `json:"taxRate"`
	Stock           int64   `json:"stock"`
	Weight          float64 `json:"weight"`
	CategoryID      int64   `json:"categoryId"`
	SupplierID      int64   `json:"supplierId"`
	Status          uint8   `json:"status"`
	Utime           int64   `json:"utime"`
}

func newProduct(p domain.Product) Product {
	return Product{
		ID:              p.ID,
		SN:              p.SN,
		Name:            p.Name,
		Description:     p.Description,
		LongDescription: p.LongDescription,
		Origin:          p.Origin,
		Image:           p.Image,
		Price:           p.Price,
		PriceTTC:        p.PriceTTC(),
		TaxRate:         p.TaxRate,
		Stock:           p.Stock,
		Weight:          p.Weight,
		CategoryID:      p.CategoryID,
		SupplierID:      p.SupplierID,
		Status:          p.Status.ToUint8(),
		Utime:           p.Utime,
	}
}

type ProductList struct {
	List  []Product `json:"list"`
	Total int64     `json:"total"`
}

type SaveProductReq struct {
	Product Product `json:"product"`
	// 为空时使用默认税率
	TaxRate *float64 `json:"taxRate"`
}

func (r SaveProductReq) toDomain() domain.Product {
	p := r.Product
	taxRate := domain.DefaultTaxRate
	if r.TaxRate != nil {
		taxRate = *r.TaxRate
	}
	return domain.Product{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		LongDescription: p.LongDescription,
		Origin:          p.Origin,
		Image:           p.Image,
		Price:           p.Price,
		TaxRate:         taxRate,
		Stock:           p.Stock,
		Weight:          p.Weight,
		CategoryID:      p.CategoryID,
		SupplierID:      p.SupplierID,
		Status:          domain.ProductStatus(p.Status),
	}
}

type Category struct {
	ID       int64      `json:"id"`
	ParentID int64      `json:"parentId"`
	Name     string     `json:"name"`
	Level    int        `json:"level"`
	Children []Category `json:"children,omitempty"`
}

func newCategory(c domain.Category) Category {
	return Category{
		ID:       c.ID,
		ParentID: c.ParentID,
		Name:     c.Name,
		Level:    c.Level,
		Children: slice.Map(c.Children, func(idx int, src domain.Category) Category {
			return newCategory(src)
		}),
	}
}

type SaveCategoryReq struct {
	Category Category `json:"category"`
}
