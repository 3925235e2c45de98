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
	"github.com/ecodeclub/epicerie/internal/order/internal/domain"
	"github.com/ecodeclub/epicerie/internal/order/internal/repository/dao"
)

//go:generate mockgen -source=./cart.go -package=repomocks -destination=mocks/cart.mock.go CartRepository
type CartRepository interface {
	// ActiveCart 不存在时返回 ErrCartNotFound
	ActiveCart(ctx context.Context, clientID int64) (domain.Cart, error)
	CreateCart(ctx context.Context, clientID int64) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.Cart, error)
	SaveLine(ctx context.Context, l domain.CartLine) error
	DeleteLine(ctx context.Context, cartID, lineID int64) error
	Clear(ctx context.Context, cartID int64) error
}

type cartRepository struct {
	dao dao.CartDAO
}

func NewCartRepository(d dao.CartDAO) CartRepository {
	return &cartRepository{dao: d}
}

func (r *cartRepository) ActiveCart(ctx context.Context, clientID int64) (domain.Cart, error) {
	c, err := r.dao.FindActive(ctx, clientID)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Cart{}, domain.ErrCartNotFound
	}
	if err != nil {
		return domain.Cart{}, err
	}
	return r.withLines(ctx, c)
}

func (r *cartRepository) CreateCart(ctx context.Context, clientID int64) (int64, error) {
	return r.dao.Create(ctx, dao.Cart{
		ClientId: clientID,
		Status:   domain.CartStatusActive.ToUint8(),
	})
}

func (r *cartRepository) FindByID(ctx context.Context, id int64) (domain.Cart, error) {
	c, err := r.dao.FindByID(ctx, id)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Cart{}, domain.ErrCartNotFound
	}
	if err != nil {
		return domain.Cart{}, err
	}
	return r.withLines(ctx, c)
}

func (r *cartRepository) withLines(ctx context.Context, c dao.Cart) (domain.Cart, error) {
	lines, err := r.dao.FindLines(ctx, c.Id)
	if err != nil {
		return domain.Cart{}, err
	}
	res := toCartDomain(c)
	res.Lines = slice.Map(lines, func(idx int, src dao.CartLine) domain.CartLine {
		return toLineDomain(src)
	})
	return res, nil
}

func (r *cartRepository) SaveLine(ctx context.Context, l domain.CartLine) error {
	_, err := r.dao.SaveLine(ctx, toLineEntity(l))
	return r.cartErr(err)
}

func (r *cartRepository) DeleteLine(ctx context.Context, cartID, lineID int64) error {
	cnt, err := r.dao.DeleteLine(ctx, cartID, lineID)
	if err != nil {
		return r.cartErr(err)
	}
	if cnt == 0 {
		return domain.ErrLineNotFound
	}
	return nil
}

func (r *cartRepository) Clear(ctx context.Context, cartID int64) error {
	return r.cartErr(r.dao.ClearLines(ctx, cartID))
}

func (r *cartRepository) cartErr(err error) error {
	if errors.Is(err, dao.ErrCartNotActive) {
		return domain.ErrCartNotActive
	}
	return err
}

func toCartDomain(c dao.Cart) domain.Cart {
	return domain.Cart{
		ID:       c.Id,
		ClientID: c.ClientId,
		Status:   domain.CartStatus(c.Status),
		Ctime:    c.Ctime,
		Utime:    c.Utime,
	}
}

func toLineDomain(l dao.CartLine) domain.CartLine {
	return domain.CartLine{
		ID:          l.Id,
		CartID:      l.CartId,
		ProductID:   l.ProductId,
		SupplierID:  l.SupplierId,
		ProductSN:   l.ProductSn,
		ProductName: l.ProductName,
		Price:       l.Price,
		PriceTTC:    l.PriceTtc,
		TaxRate:     l.TaxRate,
		Weight:      l.Weight,
		Quantity:    l.Quantity,
		Status:      domain.LineStatus(l.Status),
		Ctime:       l.Ctime,
		Utime:       l.Utime,
	}
}

func toLineEntity(l domain.CartLine) dao.CartLine {
	return dao.CartLine{
		Id:          l.ID,
		CartId:      l.CartID,
		ProductId:   l.ProductID,
		SupplierId:  l.SupplierID,
		ProductSn:   l.ProductSN,
		ProductName: l.ProductName,
		Price:       l.Price,
		PriceTtc:    l.PriceTTC,
		TaxRate:     l.TaxRate,
		Weight:      l.Weight,
		Quantity:    l.Quantity,
		Status:      l.Status.ToUint8(),
	}
}
