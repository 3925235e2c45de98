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

package catalog

import (
	"github.com/ecodeclub/epicerie/internal/catalog/internal/consumer"
	"github.com/ecodeclub/epicerie/internal/catalog/internal/domain"
	"github.com/ecodeclub/epicerie/internal/catalog/internal/service"
	"github.com/ecodeclub/epicerie/internal/catalog/internal/web"
)

type (
	Product         = domain.Product
	ProductFilter   = domain.ProductFilter
	ProductStatus   = domain.ProductStatus
	Category        = domain.Category
	Service         = service.Service
	CategoryService = service.CategoryService
	Handler         = web.Handler
	AdminHandler    = web.AdminHandler
	SyncConsumer    = consumer.SyncConsumer
)

const (
	ProductStatusActive   = domain.ProductStatusActive
	ProductStatusInactive = domain.ProductStatusInactive

	DefaultTaxRate = domain.DefaultTaxRate
)

var (
	ErrProductNotFound   = domain.ErrProductNotFound
	ErrInsufficientStock = domain.ErrInsufficientStock
	ErrCategoryNotFound  = domain.ErrCategoryNotFound
)

func PriceWithTax(price int64, taxRate float64) int64 {
	return domain.PriceWithTax(price, taxRate)
}

type Module struct {
	Svc          Service
	CategorySvc  CategoryService
	Hdl          *Handler
	AdminHdl     *AdminHandler
	SyncConsumer *SyncConsumer
}
