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
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/epicerie/internal/order/internal/domain"
	"github.com/ecodeclub/epicerie/internal/order/internal/repository/dao"
)

//go:generate mockgen -source=./order.go -package=repomocks -destination=mocks/order.mock.go OrderRepository
type OrderRepository interface {
	// CreateFromCart 返回新建的订单以及新购物车的 ID
	CreateFromCart(ctx context.Context, o domain.Order) (domain.Order, int64, error)
	FindByID(ctx context.Context, id int64) (domain.Order, error)
	FindBySN(ctx context.Context, sn string) (domain.Order, error)
	FindByClient(ctx context.Context, clientID int64, offset, limit int) ([]domain.Order, error)
	CountByClient(ctx context.Context, clientID int64) (int64, error)
	List(ctx context.Context, status domain.OrderStatus, offset, limit int) ([]domain.Order, error)
	Count(ctx context.Context, status domain.OrderStatus) (int64, error)
	// FindInFlight 不加载订单行
	FindInFlight(ctx context.Context, minID int64, limit int) ([]domain.Order, error)
	FindBySupplier(ctx context.Context, supplierID int64, status domain.OrderStatus, offset, limit int) ([]domain.Order, error)
	CountBySupplier(ctx context.Context, supplierID int64, status domain.OrderStatus) (int64, error)
	SupplierStats(ctx context.Context, supplierID int64) (domain.SupplierStats, error)
	UpdateStatus(ctx context.Context, o domain.Order) error
	UpdateLineStatus(ctx context.Context, cartID, lineID int64, status domain.LineStatus) error
	Reopen(ctx context.Context, o domain.Order, h domain.History) error
	Archive(ctx context.Context, h domain.History) (bool, error)
	HistoriesByClient(ctx context.Context, clientID int64) ([]domain.History, error)
	HistoriesByOrder(ctx context.Context, orderID int64) ([]domain.History, error)
}

type orderRepository struct {
	dao     dao.OrderDAO
	cartDAO dao.CartDAO
}

func NewOrderRepository(d dao.OrderDAO, cartDAO dao.CartDAO) OrderRepository {
	return &orderRepository{dao: d, cartDAO: cartDAO}
}

func (r *orderRepository) CreateFromCart(ctx context.Context, o domain.Order) (domain.Order, int64, error) {
	entity, newCartID, err := r.dao.CreateFromCart(ctx, r.toOrderEntity(o))
	if errors.Is(err, dao.ErrCartNotActive) {
		return domain.Order{}, 0, domain.ErrCartNotActive
	}
	if err != nil {
		return domain.Order{}, 0, err
	}
	res := r.toOrderDomain(entity)
	res.Lines = o.Lines
	return res, newCartID, nil
}

func (r *orderRepository) FindByID(ctx context.Context, id int64) (domain.Order, error) {
	o, err := r.dao.FindByID(ctx, id)
	return r.withLines(ctx, o, err)
}

func (r *orderRepository) FindBySN(ctx context.Context, sn string) (domain.Order, error) {
	o, err := r.dao.FindBySN(ctx, sn)
	return r.withLines(ctx, o, err)
}

func (r *orderRepository) withLines(ctx context.Context, o dao.Order, err error) (domain.Order, error) {
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Order{}, domain.ErrOrderNotFound
	}
	if err != nil {
		return domain.Order{}, err
	}
	lines, err := r.cartDAO.FindLines(ctx, o.CartId)
	if err != nil {
		return domain.Order{}, err
	}
	res := r.toOrderDomain(o)
	res.Lines = slice.Map(lines, func(idx int, src dao.CartLine) domain.CartLine {
		return toLineDomain(src)
	})
	return res, nil
}

// fillLines 批量加载订单行，避免 N+1 查询
func (r *orderRepository) fillLines(ctx context.Context, orders []dao.Order, err error) ([]domain.Order, error) {
	if err != nil {
		return nil, err
	}
	cartIDs := slice.Map(orders, func(idx int, src dao.Order) int64 {
		return src.CartId
	})
	lines, err := r.cartDAO.FindLinesByCartIDs(ctx, cartIDs)
	if err != nil {
		return nil, err
	}
	byCart := make(map[int64][]domain.CartLine, len(orders))
	for _, l := range lines {
		byCart[l.CartId] = append(byCart[l.CartId], toLineDomain(l))
	}
	return slice.Map(orders, func(idx int, src dao.Order) domain.Order {
		o := r.toOrderDomain(src)
		o.Lines = byCart[src.CartId]
		return o
	}), nil
}

func (r *orderRepository) FindByClient(ctx context.Context, clientID int64, offset, limit int) ([]domain.Order, error) {
	orders, err := r.dao.FindByClient(ctx, clientID, offset, limit)
	return r.fillLines(ctx, orders, err)
}

func (r *orderRepository) CountByClient(ctx context.Context, clientID int64) (int64, error) {
	return r.dao.CountByClient(ctx, clientID)
}

func (r *orderRepository) List(ctx context.Context, status domain.OrderStatus, offset, limit int) ([]domain.Order, error) {
	orders, err := r.dao.List(ctx, status.ToUint8(), offset, limit)
	return r.fillLines(ctx, orders, err)
}

func (r *orderRepository) Count(ctx context.Context, status domain.OrderStatus) (int64, error) {
	return r.dao.Count(ctx, status.ToUint8())
}

func (r *orderRepository) FindInFlight(ctx context.Context, minID int64, limit int) ([]domain.Order, error) {
	statuses := slice.Map(domain.InFlightStatuses, func(idx int, src domain.OrderStatus) int {
		return int(src)
	})
	orders, err := r.dao.FindInFlight(ctx, statuses, minID, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(orders, func(idx int, src dao.Order) domain.Order {
		return r.toOrderDomain(src)
	}), nil
}

func (r *orderRepository) FindBySupplier(ctx context.Context, supplierID int64, status domain.OrderStatus, offset, limit int) ([]domain.Order, error) {
	orders, err := r.dao.FindBySupplier(ctx, supplierID, status.ToUint8(), offset, limit)
	return r.fillLines(ctx, orders, err)
}

func (r *orderRepository) CountBySupplier(ctx context.Context, supplierID int64, status domain.OrderStatus) (int64, error) {
	return r.dao.CountBySupplier(ctx, supplierID, status.ToUint8())
}

func (r *orderRepository) SupplierStats(ctx context.Context, supplierID int64) (domain.SupplierStats, error) {
	counts, err := r.dao.CountBySupplierGroupByStatus(ctx, supplierID)
	if err != nil {
		return domain.SupplierStats{}, err
	}
	var res domain.SupplierStats
	for status, cnt := range counts {
		res.OrderCount += cnt
		switch domain.OrderStatus(status) {
		case domain.OrderStatusDone:
			res.DoneCount += cnt
		case domain.OrderStatusPending, domain.OrderStatusInProgress, domain.OrderStatusOutForDelivery:
			res.InFlightCount += cnt
		}
	}
	return res, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, o domain.Order) error {
	err := r.dao.UpdateStatus(ctx, o.ID, o.Version, o.Status.ToUint8(), o.Progress)
	if errors.Is(err, dao.ErrVersionConflict) {
		return domain.ErrVersionConflict
	}
	return err
}

func (r *orderRepository) UpdateLineStatus(ctx context.Context, cartID, lineID int64, status domain.LineStatus) error {
	_, err := r.dao.UpdateLineStatus(ctx, cartID, lineID, status.ToUint8())
	return err
}

func (r *orderRepository) Reopen(ctx context.Context, o domain.Order, h domain.History) error {
	err := r.dao.Reopen(ctx, o.ID, o.Version, r.toHistoryEntity(h))
	if errors.Is(err, dao.ErrVersionConflict) {
		return domain.ErrVersionConflict
	}
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.ErrOrderNotFound
	}
	return err
}

func (r *orderRepository) Archive(ctx context.Context, h domain.History) (bool, error) {
	return r.dao.Archive(ctx, r.toHistoryEntity(h))
}

func (r *orderRepository) HistoriesByClient(ctx context.Context, clientID int64) ([]domain.History, error) {
	hs, err := r.dao.FindHistoriesByClient(ctx, clientID)
	return slice.Map(hs, func(idx int, src dao.OrderHistory) domain.History {
		return r.toHistoryDomain(src)
	}), err
}

func (r *orderRepository) HistoriesByOrder(ctx context.Context, orderID int64) ([]domain.History, error) {
	hs, err := r.dao.FindHistoriesByOrder(ctx, orderID)
	return slice.Map(hs, func(idx int, src dao.OrderHistory) domain.History {
		return r.toHistoryDomain(src)
	}), err
}

func (r *orderRepository) toOrderEntity(o domain.Order) dao.Order {
	return dao.Order{
		Id:           o.ID,
		Sn:           o.SN,
		ClientId:     o.ClientID,
		CartId:       o.CartID,
		CarrierId:    o.CarrierID,
		RelayPointId: o.RelayPointID,
		Total:        o.Total,
		Shipping:     o.Shipping,
		Status:       o.Status.ToUint8(),
		Progress:     o.Progress,
		Generation:   o.Generation,
		Version:      o.Version,
		PaymentSn:    o.PaymentSN,
	}
}

func (r *orderRepository) toOrderDomain(o dao.Order) domain.Order {
	return domain.Order{
		ID:           o.Id,
		SN:           o.Sn,
		ClientID:     o.ClientId,
		CartID:       o.CartId,
		CarrierID:    o.CarrierId,
		RelayPointID: o.RelayPointId,
		Total:        o.Total,
		Shipping:     o.Shipping,
		Status:       domain.OrderStatus(o.Status),
		Progress:     o.Progress,
		Generation:   o.Generation,
		Version:      o.Version,
		PaymentSN:    o.PaymentSn,
		Ctime:        o.Ctime,
		Utime:        o.Utime,
	}
}

func (r *orderRepository) toHistoryEntity(h domain.History) dao.OrderHistory {
	lines := slice.Map(h.Lines, func(idx int, src domain.HistoryLine) dao.HistoryLine {
		return dao.HistoryLine{
			ProductId:   src.ProductID,
			ProductSn:   src.ProductSN,
			ProductName: src.ProductName,
			Quantity:    src.Quantity,
			PriceTtc:    src.PriceTTC,
			Weight:      src.Weight,
			Status:      src.Status,
		}
	})
	return dao.OrderHistory{
		Id:          h.ID,
		OrderId:     h.OrderID,
		Generation:  h.Generation,
		Kind:        h.Kind.ToUint8(),
		OrderSn:     h.OrderSN,
		ClientId:    h.ClientID,
		ClientName:  h.ClientName,
		ClientEmail: h.ClientEmail,
		ClientPhone: h.ClientPhone,
		CarrierName: h.CarrierName,
		RelayPoint:  h.RelayPoint,
		CartId:      h.CartID,
		Status:      h.Status.ToUint8(),
		Total:       h.Total,
		OrderCtime:  h.OrderCtime,
		Lines: sqlx.JsonColumn[[]dao.HistoryLine]{
			Val:   lines,
			Valid: len(lines) > 0,
		},
	}
}

func (r *orderRepository) toHistoryDomain(h dao.OrderHistory) domain.History {
	return domain.History{
		ID:          h.Id,
		OrderID:     h.OrderId,
		Generation:  h.Generation,
		Kind:        domain.HistoryKind(h.Kind),
		OrderSN:     h.OrderSn,
		ClientID:    h.ClientId,
		ClientName:  h.ClientName,
		ClientEmail: h.ClientEmail,
		ClientPhone: h.ClientPhone,
		CarrierName: h.CarrierName,
		RelayPoint:  h.RelayPoint,
		CartID:      h.CartId,
		Status:      domain.OrderStatus(h.Status),
		Total:       h.Total,
		OrderCtime:  h.OrderCtime,
		Lines: slice.Map(h.Lines.Val, func(idx int, src dao.HistoryLine) domain.HistoryLine {
			return domain.HistoryLine{
				ProductID:   src.ProductId,
				ProductSN:   src.ProductSn,
				ProductName: src.ProductName,
				Quantity:    src.Quantity,
				PriceTTC:    src.PriceTtc,
				Weight:      src.Weight,
				Status:      src.Status,
			}
		}),
		Ctime: h.Ctime,
	}
}
