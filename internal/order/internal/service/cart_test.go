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
	"testing"

	"github.com/ecodeclub/epicerie/internal/catalog"
	catalogmocks "github.com/ecodeclub/epicerie/internal/catalog/mocks"
	"github.com/ecodeclub/epicerie/internal/delivery"
	deliverymocks "github.com/ecodeclub/epicerie/internal/delivery/mocks"
	"github.com/ecodeclub/epicerie/internal/order/internal/domain"
	"github.com/ecodeclub/epicerie/internal/order/internal/repository"
	repomocks "github.com/ecodeclub/epicerie/internal/order/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCartService_ActiveCart(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) repository.CartRepository
		wantCart domain.Cart
		wantErr  error
	}{
		{
			name: "已有购物车",
			mock: func(ctrl *gomock.Controller) repository.CartRepository {
				repo := repomocks.NewMockCartRepository(ctrl)
				repo.EXPECT().ActiveCart(gomock.Any(), int64(7)).
					Return(domain.Cart{ID: 3, ClientID: 7, Status: domain.CartStatusActive}, nil)
				return repo
			},
			wantCart: domain.Cart{ID: 3, ClientID: 7, Status: domain.CartStatusActive},
		},
		{
			name: "没有购物车时新建",
			mock: func(ctrl *gomock.Controller) repository.CartRepository {
				repo := repomocks.NewMockCartRepository(ctrl)
				repo.EXPECT().ActiveCart(gomock.Any(), int64(7)).Return(domain.Cart{}, domain.ErrCartNotFound)
				repo.EXPECT().CreateCart(gomock.Any(), int64(7)).Return(int64(4), nil)
				return repo
			},
			wantCart: domain.Cart{ID: 4, ClientID: 7, Status: domain.CartStatusActive},
		},
		{
			name: "查询失败",
			mock: func(ctrl *gomock.Controller) repository.CartRepository {
				repo := repomocks.NewMockCartRepository(ctrl)
				repo.EXPECT().ActiveCart(gomock.Any(), int64(7)).Return(domain.Cart{}, errors.New("mock db error"))
				return repo
			},
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewCartService(tc.mock(ctrl), nil, nil)
			c, err := svc.ActiveCart(context.Background(), 7)
			assert.Equal(t, tc.wantErr, err)
			assert.Equal(t, tc.wantCart, c)
		})
	}
}

func TestCartService_AddItem(t *testing.T) {
	product := catalog.Product{
		ID: 5, SN: "ABCD1234", Name: "Tomates", Price: 1000, TaxRate: 20,
		Stock: 10, Weight: 0.5, SupplierID: 2, Status: catalog.ProductStatusActive,
	}
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) (repository.CartRepository, catalog.Service)
		qty     int64
		wantErr error
	}{
		{
			name: "新增一行",
			mock: func(ctrl *gomock.Controller) (repository.CartRepository, catalog.Service) {
				catalogSvc := catalogmocks.NewMockService(ctrl)
				catalogSvc.EXPECT().Detail(gomock.Any(), int64(5)).Return(product, nil)
				repo := repomocks.NewMockCartRepository(ctrl)
				repo.EXPECT().ActiveCart(gomock.Any(), int64(7)).Return(domain.Cart{ID: 3, ClientID: 7}, nil)
				repo.EXPECT().SaveLine(gomock.Any(), domain.CartLine{
					CartID: 3, ProductID: 5, SupplierID: 2, ProductSN: "ABCD1234",
					ProductName: "Tomates", Price: 1000, PriceTTC: 1200, TaxRate: 20,
					Weight: 0.5, Quantity: 2, Status: domain.LineStatusPending,
				}).Return(nil)
				repo.EXPECT().FindByID(gomock.Any(), int64(3)).Return(domain.Cart{ID: 3}, nil)
				return repo, catalogSvc
			},
			qty: 2,
		},
		{
			name: "重复添加累加数量",
			mock: func(ctrl *gomock.Controller) (repository.CartRepository, catalog.Service) {
				catalogSvc := catalogmocks.NewMockService(ctrl)
				catalogSvc.EXPECT().Detail(gomock.Any(), int64(5)).Return(product, nil)
				repo := repomocks.NewMockCartRepository(ctrl)
				repo.EXPECT().ActiveCart(gomock.Any(), int64(7)).Return(domain.Cart{ID: 3, ClientID: 7, Lines: []domain.CartLine{
					{ID: 9, CartID: 3, ProductID: 5, Quantity: 4},
				}}, nil)
				repo.EXPECT().SaveLine(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, l domain.CartLine) error {
						assert.Equal(t, int64(9), l.ID)
						assert.Equal(t, int64(7), l.Quantity)
						return nil
					})
				repo.EXPECT().FindByID(gomock.Any(), int64(3)).Return(domain.Cart{ID: 3}, nil)
				return repo, catalogSvc
			},
			qty: 3,
		},
		{
			name: "超过库存",
			mock: func(ctrl *gomock.Controller) (repository.CartRepository, catalog.Service) {
				catalogSvc := catalogmocks.NewMockService(ctrl)
				catalogSvc.EXPECT().Detail(gomock.Any(), int64(5)).Return(product, nil)
				repo := repomocks.NewMockCartRepository(ctrl)
				repo.EXPECT().ActiveCart(gomock.Any(), int64(7)).Return(domain.Cart{ID: 3, ClientID: 7, Lines: []domain.CartLine{
					{ID: 9, CartID: 3, ProductID: 5, Quantity: 8},
				}}, nil)
				return repo, catalogSvc
			},
			qty:     3,
			wantErr: domain.ErrInsufficientStock,
		},
		{
			name: "商品已下架",
			mock: func(ctrl *gomock.Controller) (repository.CartRepository, catalog.Service) {
				catalogSvc := catalogmocks.NewMockService(ctrl)
				p := product
				p.Status = catalog.ProductStatusInactive
				catalogSvc.EXPECT().Detail(gomock.Any(), int64(5)).Return(p, nil)
				return repomocks.NewMockCartRepository(ctrl), catalogSvc
			},
			qty:     1,
			wantErr: domain.ErrProductInactive,
		},
		{
			name: "商品不存在",
			mock: func(ctrl *gomock.Controller) (repository.CartRepository, catalog.Service) {
				catalogSvc := catalogmocks.NewMockService(ctrl)
				catalogSvc.EXPECT().Detail(gomock.Any(), int64(5)).Return(catalog.Product{}, catalog.ErrProductNotFound)
				return repomocks.NewMockCartRepository(ctrl), catalogSvc
			},
			qty:     1,
			wantErr: catalog.ErrProductNotFound,
		},
		{
			name: "数量非法",
			mock: func(ctrl *gomock.Controller) (repository.CartRepository, catalog.Service) {
				return repomocks.NewMockCartRepository(ctrl), catalogmocks.NewMockService(ctrl)
			},
			qty:     0,
			wantErr: domain.ErrInvalidQuantity,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo, catalogSvc := tc.mock(ctrl)
			svc := NewCartService(repo, catalogSvc, nil)
			_, err := svc.AddItem(context.Background(), 7, 5, tc.qty)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestCartService_RemoveItem(t *testing.T) {
	cart := domain.Cart{ID: 3, ClientID: 7, Lines: []domain.CartLine{
		{ID: 9, CartID: 3, ProductID: 5, Quantity: 3},
	}}
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) repository.CartRepository
		product int64
		qty     int64
		wantErr error
	}{
		{
			name: "减少数量",
			mock: func(ctrl *gomock.Controller) repository.CartRepository {
				repo := repomocks.NewMockCartRepository(ctrl)
				repo.EXPECT().ActiveCart(gomock.Any(), int64(7)).Return(cart, nil)
				repo.EXPECT().SaveLine(gomock.Any(), domain.CartLine{ID: 9, CartID: 3, ProductID: 5, Quantity: 1}).Return(nil)
				repo.EXPECT().FindByID(gomock.Any(), int64(3)).Return(cart, nil)
				return repo
			},
			product: 5,
			qty:     2,
		},
		{
			name: "减到0删除",
			mock: func(ctrl *gomock.Controller) repository.CartRepository {
				repo := repomocks.NewMockCartRepository(ctrl)
				repo.EXPECT().ActiveCart(gomock.Any(), int64(7)).Return(cart, nil)
				repo.EXPECT().DeleteLine(gomock.Any(), int64(3), int64(9)).Return(nil)
				repo.EXPECT().FindByID(gomock.Any(), int64(3)).Return(domain.Cart{ID: 3}, nil)
				return repo
			},
			product: 5,
			qty:     5,
		},
		{
			name: "购物车中没有该商品",
			mock: func(ctrl *gomock.Controller) repository.CartRepository {
				repo := repomocks.NewMockCartRepository(ctrl)
				repo.EXPECT().ActiveCart(gomock.Any(), int64(7)).Return(cart, nil)
				return repo
			},
			product: 6,
			qty:     1,
			wantErr: domain.ErrLineNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewCartService(tc.mock(ctrl), nil, nil)
			_, err := svc.RemoveItem(context.Background(), 7, tc.product, tc.qty)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestCartService_Preview(t *testing.T) {
	cart := domain.Cart{ID: 3, ClientID: 7, Lines: []domain.CartLine{
		{ID: 9, ProductID: 5, SupplierID: 2, Price: 1000, PriceTTC: 1200, Weight: 1.4, Quantity: 3},
	}}
	testCases := []struct {
		name      string
		mock      func(ctrl *gomock.Controller) (repository.CartRepository, delivery.Service)
		carrierID int64
		want      int64
		wantShip  *domain.Shipping
		wantErr   error
	}{
		{
			name: "不选承运商",
			mock: func(ctrl *gomock.Controller) (repository.CartRepository, delivery.Service) {
				repo := repomocks.NewMockCartRepository(ctrl)
				repo.EXPECT().ActiveCart(gomock.Any(), int64(7)).Return(cart, nil)
				return repo, deliverymocks.NewMockService(ctrl)
			},
			want: 3600,
		},
		{
			name: "计算运费",
			mock: func(ctrl *gomock.Controller) (repository.CartRepository, delivery.Service) {
				repo := repomocks.NewMockCartRepository(ctrl)
				repo.EXPECT().ActiveCart(gomock.Any(), int64(7)).Return(cart, nil)
				deliverySvc := deliverymocks.NewMockService(ctrl)
				deliverySvc.EXPECT().Quote(gomock.Any(), int64(1), gomock.Any()).
					DoAndReturn(func(ctx context.Context, carrierID int64, weight float64) (delivery.Quote, error) {
						assert.InDelta(t, 4.2, weight, 1e-9)
						return delivery.Quote{CarrierID: 1, CarrierName: "Colissimo", TariffID: 11, Weight: weight, Price: 594}, nil
					})
				return repo, deliverySvc
			},
			carrierID: 1,
			want:      3600 + 594,
			wantShip:  &domain.Shipping{CarrierID: 1, CarrierName: "Colissimo", TariffID: 11, Price: 594},
		},
		{
			name: "没有适用的运费",
			mock: func(ctrl *gomock.Controller) (repository.CartRepository, delivery.Service) {
				repo := repomocks.NewMockCartRepository(ctrl)
				repo.EXPECT().ActiveCart(gomock.Any(), int64(7)).Return(cart, nil)
				deliverySvc := deliverymocks.NewMockService(ctrl)
				deliverySvc.EXPECT().Quote(gomock.Any(), int64(1), gomock.Any()).
					Return(delivery.Quote{}, delivery.ErrNoApplicableTariff)
				return repo, deliverySvc
			},
			carrierID: 1,
			wantErr:   delivery.ErrNoApplicableTariff,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo, deliverySvc := tc.mock(ctrl)
			svc := NewCartService(repo, nil, deliverySvc)
			p, err := svc.Preview(context.Background(), 7, tc.carrierID)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, tc.want, p.GrandTotal)
			assert.Equal(t, tc.wantShip, p.Shipping)
		})
	}
}
