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
	"fmt"

	"github.com/ecodeclub/epicerie/internal/catalog"
	"github.com/ecodeclub/epicerie/internal/delivery"
	"github.com/ecodeclub/epicerie/internal/order/internal/domain"
	"github.com/ecodeclub/epicerie/internal/order/internal/repository"
)

//go:generate mockgen -source=./cart.go -package=ordermocks -destination=../../mocks/cart.mock.go CartService
type CartService interface {
	// ActiveCart 没有有效购物车时新建一个
	ActiveCart(ctx context.Context, clientID int64) (domain.Cart, error)
	AddItem(ctx context.Context, clientID, productID, qty int64) (domain.Cart, error)
	// RemoveItem 数量减到 0 及以下时删除该行
	RemoveItem(ctx context.Context, clientID, productID, qty int64) (domain.Cart, error)
	DeleteLine(ctx context.Context, clientID, lineID int64) (domain.Cart, error)
	Clear(ctx context.Context, clientID int64) error
	Summary(ctx context.Context, clientID int64) (domain.CartSummary, error)
	// Preview carrierID 为 0 时不计算运费
	Preview(ctx context.Context, clientID, carrierID int64) (domain.Preview, error)
}

type cartService struct {
	repo        repository.CartRepository
	catalogSvc  catalog.Service
	deliverySvc delivery.Service
}

func NewCartService(repo repository.CartRepository,
	catalogSvc catalog.Service,
	deliverySvc delivery.Service) CartService {
	return &cartService{
		repo:        repo,
		catalogSvc:  catalogSvc,
		deliverySvc: deliverySvc,
	}
}

func (s *cartService) ActiveCart(ctx context.Context, clientID int64) (domain.Cart, error) {
	c, err := s.repo.ActiveCart(ctx, clientID)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, domain.ErrCartNotFound) {
		return domain.Cart{}, err
	}
	id, err := s.repo.CreateCart(ctx, clientID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("创建购物车失败: %w", err)
	}
	return domain.Cart{ID: id, ClientID: clientID, Status: domain.CartStatusActive}, nil
}

func (s *cartService) AddItem(ctx context.Context, clientID, productID, qty int64) (domain.Cart, error) {
	if qty < 1 {
		return domain.Cart{}, domain.ErrInvalidQuantity
	}
	p, err := s.catalogSvc.Detail(ctx, productID)
	if err != nil {
		return domain.Cart{}, err
	}
	if !p.Active() {
		return domain.Cart{}, domain.ErrProductInactive
	}
	c, err := s.ActiveCart(ctx, clientID)
	if err != nil {
		return domain.Cart{}, err
	}
	line, _ := c.FindLineByProduct(productID)
	total := line.Quantity + qty
	if total > p.Stock {
		return domain.Cart{}, fmt.Errorf("%w: 商品 %d 库存 %d, 需要 %d", domain.ErrInsufficientStock, p.ID, p.Stock, total)
	}
	// 每次加入购物车都用最新的商品信息覆盖冗余字段
	err = s.repo.SaveLine(ctx, domain.CartLine{
		ID:          line.ID,
		CartID:      c.ID,
		ProductID:   p.ID,
		SupplierID:  p.SupplierID,
		ProductSN:   p.SN,
		ProductName: p.Name,
		Price:       p.Price,
		PriceTTC:    p.PriceTTC(),
		TaxRate:     p.TaxRate,
		Weight:      p.Weight,
		Quantity:    total,
		Status:      domain.LineStatusPending,
	})
	if err != nil {
		return domain.Cart{}, err
	}
	return s.repo.FindByID(ctx, c.ID)
}

func (s *cartService) RemoveItem(ctx context.Context, clientID, productID, qty int64) (domain.Cart, error) {
	if qty < 1 {
		return domain.Cart{}, domain.ErrInvalidQuantity
	}
	c, err := s.ActiveCart(ctx, clientID)
	if err != nil {
		return domain.Cart{}, err
	}
	line, ok := c.FindLineByProduct(productID)
	if !ok {
		return domain.Cart{}, domain.ErrLineNotFound
	}
	line.Quantity -= qty
	if line.Quantity <= 0 {
		err = s.repo.DeleteLine(ctx, c.ID, line.ID)
	} else {
		err = s.repo.SaveLine(ctx, line)
	}
	if err != nil {
		return domain.Cart{}, err
	}
	return s.repo.FindByID(ctx, c.ID)
}

func (s *cartService) DeleteLine(ctx context.Context, clientID, lineID int64) (domain.Cart, error) {
	c, err := s.ActiveCart(ctx, clientID)
	if err != nil {
		return domain.Cart{}, err
	}
	if err = s.repo.DeleteLine(ctx, c.ID, lineID); err != nil {
		return domain.Cart{}, err
	}
	return s.repo.FindByID(ctx, c.ID)
}

func (s *cartService) Clear(ctx context.Context, clientID int64) error {
	c, err := s.ActiveCart(ctx, clientID)
	if err != nil {
		return err
	}
	return s.repo.Clear(ctx, c.ID)
}

func (s *cartService) Summary(ctx context.Context, clientID int64) (domain.CartSummary, error) {
	c, err := s.ActiveCart(ctx, clientID)
	if err != nil {
		return domain.CartSummary{}, err
	}
	return c.Summarize(), nil
}

func (s *cartService) Preview(ctx context.Context, clientID, carrierID int64) (domain.Preview, error) {
	summary, err := s.Summary(ctx, clientID)
	if err != nil {
		return domain.Preview{}, err
	}
	res := domain.Preview{Summary: summary, GrandTotal: summary.TotalTTC}
	if carrierID == 0 || summary.Cart.Empty() {
		return res, nil
	}
	q, err := s.deliverySvc.Quote(ctx, carrierID, summary.TotalWeight)
	if err != nil {
		return domain.Preview{}, err
	}
	res.Shipping = &domain.Shipping{
		CarrierID:   q.CarrierID,
		CarrierName: q.CarrierName,
		TariffID:    q.TariffID,
		Price:       q.Price,
	}
	res.GrandTotal += q.Price
	return res, nil
}
