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
	"errors"

	"github.com/ecodeclub/epicerie/internal/catalog"
	"github.com/ecodeclub/epicerie/internal/order"
	"github.com/ecodeclub/epicerie/internal/supplier/internal/domain"
	"golang.org/x/sync/errgroup"
)

// PortalService 供应商自助后台，所有操作都限定在 supplierID 自己的数据范围内
//
//go:generate mockgen -source=./portal.go -package=suppliermocks -destination=../../mocks/portal.mock.go PortalService
type PortalService interface {
	Dashboard(ctx context.Context, supplierID int64) (domain.Dashboard, error)
	Products(ctx context.Context, supplierID int64, keyword string, activeOnly bool, offset, limit int) ([]catalog.Product, int64, error)
	// SaveProduct 更新时要求商品属于该供应商
	SaveProduct(ctx context.Context, supplierID int64, p catalog.Product) (int64, error)
	DeleteProduct(ctx context.Context, supplierID, productID int64) error
	// Orders 返回的订单只包含该供应商的订单行
	Orders(ctx context.Context, supplierID int64, status order.OrderStatus, offset, limit int) ([]order.Order, int64, error)
	UpdateLineStatus(ctx context.Context, supplierID, orderID, lineID int64, status order.LineStatus) (order.Order, error)
}

type portalService struct {
	catalogSvc catalog.Service
	orderSvc   order.Service
}

func NewPortalService(catalogSvc catalog.Service, orderSvc order.Service) PortalService {
	return &portalService{catalogSvc: catalogSvc, orderSvc: orderSvc}
}

func (s *portalService) Dashboard(ctx context.Context, supplierID int64) (domain.Dashboard, error) {
	var (
		eg  errgroup.Group
		res domain.Dashboard
	)
	eg.Go(func() error {
		var err error
		_, res.ProductCount, err = s.catalogSvc.List(ctx, catalog.ProductFilter{SupplierID: supplierID}, 0, 1)
		return err
	})
	eg.Go(func() error {
		var err error
		_, res.ActiveProductCount, err = s.catalogSvc.List(ctx, catalog.ProductFilter{
			SupplierID: supplierID,
			Status:     catalog.ProductStatusActive,
		}, 0, 1)
		return err
	})
	eg.Go(func() error {
		stats, err := s.orderSvc.SupplierStats(ctx, supplierID)
		if err != nil {
			return err
		}
		res.OrderCount = stats.OrderCount
		res.InFlightOrderCount = stats.InFlightCount
		res.DoneOrderCount = stats.DoneCount
		return nil
	})
	return res, eg.Wait()
}

func (s *portalService) Products(ctx context.Context, supplierID int64, keyword string,
	activeOnly bool, offset, limit int) ([]catalog.Product, int64, error) {
	filter := catalog.ProductFilter{SupplierID: supplierID, Keyword: keyword}
	if activeOnly {
		filter.Status = catalog.ProductStatusActive
	}
	return s.catalogSvc.List(ctx, filter, offset, limit)
}

func (s *portalService) SaveProduct(ctx context.Context, supplierID int64, p catalog.Product) (int64, error) {
	if p.ID > 0 {
		if err := s.checkOwner(ctx, supplierID, p.ID); err != nil {
			return 0, err
		}
	}
	p.SupplierID = supplierID
	return s.catalogSvc.Save(ctx, p)
}

func (s *portalService) DeleteProduct(ctx context.Context, supplierID, productID int64) error {
	if err := s.checkOwner(ctx, supplierID, productID); err != nil {
		return err
	}
	return s.catalogSvc.Delete(ctx, supplierID, productID)
}

func (s *portalService) checkOwner(ctx context.Context, supplierID, productID int64) error {
	p, err := s.catalogSvc.Detail(ctx, productID)
	if err != nil {
		return err
	}
	if p.SupplierID != supplierID {
		return domain.ErrProductNotOwned
	}
	return nil
}

func (s *portalService) Orders(ctx context.Context, supplierID int64, status order.OrderStatus,
	offset, limit int) ([]order.Order, int64, error) {
	return s.orderSvc.SupplierOrders(ctx, supplierID, status, offset, limit)
}

func (s *portalService) UpdateLineStatus(ctx context.Context, supplierID, orderID, lineID int64,
	status order.LineStatus) (order.Order, error) {
	o, err := s.orderSvc.UpdateLineStatus(ctx, orderID, lineID, status, supplierID)
	if errors.Is(err, order.ErrLineNotOwned) {
		return order.Order{}, domain.ErrOrderLineNotOwned
	}
	return o, err
}
