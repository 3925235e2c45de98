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
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	svc         service.Service
	categorySvc service.CategoryService
}

func NewAdminHandler(svc service.Service, categorySvc service.CategoryService) *AdminHandler {
	return &AdminHandler{svc: svc, categorySvc: categorySvc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/products")
	g.POST("/save", ginx.BS[SaveProductReq](h.Save))
	g.POST("/list", ginx.B[ListProductReq](h.List))
	g.POST("/delete", ginx.B[IDReq](h.Delete))
	server.POST("/categories/save", ginx.BS[SaveCategoryReq](h.SaveCategory))
}

func (h *AdminHandler) Save(ctx *ginx.Context, req SaveProductReq, _ session.Session) (ginx.Result, error) {
	p := req.toDomain()
	if p.Name == "" || p.Price < 0 || p.Stock < 0 || p.Weight < 0 || p.SupplierID <= 0 {
		return invalidProductResult, nil
	}
	id, err := h.svc.Save(ctx, p)
	switch {
	case errors.Is(err, domain.ErrCategoryNotFound):
		return categoryNotFoundResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: id}, nil
}

// List 管理后台可以看到下架商品
func (h *AdminHandler) List(ctx *ginx.Context, req ListProductReq) (ginx.Result, error) {
	filter := domain.ProductFilter{SupplierID: req.SupplierID, Keyword: req.Keyword}
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

func (h *AdminHandler) Delete(ctx *ginx.Context, req IDReq) (ginx.Result, error) {
	err := h.svc.Delete(ctx, 0, req.ID)
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		return productNotFoundResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "删除成功"}, nil
}

func (h *AdminHandler) SaveCategory(ctx *ginx.Context, req SaveCategoryReq, _ session.Session) (ginx.Result, error) {
	id, err := h.categorySvc.Save(ctx, domain.Category{
		ID:       req.Category.ID,
		ParentID: req.Category.ParentID,
		Name:     req.Category.Name,
	})
	switch {
	case errors.Is(err, domain.ErrCategoryNotFound):
		return categoryNotFoundResult, nil
	case errors.Is(err, domain.ErrCategoryTooDeep):
		return categoryTooDeepResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: id}, nil
}
