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
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/epicerie/internal/catalog/internal/domain"
	"github.com/ecodeclub/epicerie/internal/catalog/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

// Handler 商品目录对所有人开放
type Handler struct {
	svc         service.Service
	categorySvc service.CategoryService
}

func NewHandler(svc service.Service, categorySvc service.CategoryService) *Handler {
	return &Handler{svc: svc, categorySvc: categorySvc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/products")
	g.POST("/list", ginx.B[ListProductReq](h.List))
	g.POST("/detail", ginx.B[IDReq](h.Detail))
	g.POST("/search", ginx.B[SearchReq](h.Search))
	server.GET("/categories/tree", ginx.W(h.CategoryTree))
}

func (h *Handler) PrivateRoutes(_ *gin.Engine) {}

func (h *Handler) List(ctx *ginx.Context, req ListProductReq) (ginx.Result, error) {
	filter := domain.ProductFilter{
		SupplierID: req.SupplierID,
		Keyword:    req.Keyword,
		Status:     domain.ProductStatusActive,
	}
	if req.CategoryID > 0 {
		filter.CategoryIDs = []int64{req.CategoryID}
	}
	ps, total, err := h.svc.List(ctx, filter, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ProductList{
			Total: total,
			List: slice.Map(ps, func(idx int, src domain.Product) Product {
				return newProduct(src)
			}),
		},
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	p, err := h.svc.Detail(ctx, req.ID)
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		return productNotFoundResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	// 下架商品对外不可见
	if !p.Active() {
		return productNotFoundResult, nil
	}
	return ginx.Result{Data: newProduct(p)}, nil
}

func (h *Handler) Search(ctx *ginx.Context, req SearchReq) (ginx.Result, error) {
	ps, err := h.svc.Search(ctx, req.Keyword, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ProductList{
			Total: int64(len(ps)),
			List: slice.Map(ps, func(idx int, src domain.Product) Product {
				return newProduct(src)
			}),
		},
	}, nil
}

func (h *Handler) CategoryTree(ctx *ginx.Context) (ginx.Result, error) {
	tree, err := h.categorySvc.Tree(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: slice.Map(tree, func(idx int, src domain.Category) Category {
			return newCategory(src)
		}),
	}, nil
}
