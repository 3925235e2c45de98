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
	"github.com/ecodeclub/epicerie/internal/order/internal/event"
	"github.com/ecodeclub/epicerie/internal/order/internal/repository"
	"github.com/ecodeclub/epicerie/internal/pkg/sequencenumber"
	"github.com/ecodeclub/epicerie/internal/user"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

// recomputeAttempts 乐观锁冲突时的最大尝试次数
const recomputeAttempts = 3

type CreateOrderReq struct {
	ClientID     int64
	CarrierID    int64
	RelayPointID int64
	PaymentSN    string
}

//go:generate mockgen -source=./order.go -package=ordermocks -destination=../../mocks/order.mock.go Service
type Service interface {
	// CreateFromCart 扣减库存后把有效购物车转为订单，失败时回补已扣减的库存
	CreateFromCart(ctx context.Context, req CreateOrderReq) (domain.Order, error)
	// Recompute 根据订单行重新汇总订单状态与进度，汇总结果为完成时写入快照
	Recompute(ctx context.Context, orderID int64) (domain.Order, error)
	// UpdateLineStatus supplierID 不为 0 时只允许修改该供应商的订单行
	UpdateLineStatus(ctx context.Context, orderID, lineID int64, status domain.LineStatus, supplierID int64) (domain.Order, error)
	MarkDone(ctx context.Context, orderID int64) (domain.Order, error)
	// Cancel clientID 为 0 表示管理员操作，已取消的订单再次取消直接返回
	Cancel(ctx context.Context, clientID, orderID int64) (domain.Order, error)
	CancelBySN(ctx context.Context, sn string) (domain.Order, error)
	// Archive 每一代只会写入一次快照，返回 false 表示快照已经存在
	Archive(ctx context.Context, orderID int64) (bool, error)
	Reopen(ctx context.Context, orderID int64) (domain.Order, error)

	ListOrders(ctx context.Context, clientID int64, offset, limit int) ([]domain.Order, int64, error)
	// Detail clientID 为 0 表示管理员查询
	Detail(ctx context.Context, clientID, orderID int64) (domain.Order, error)
	FindBySN(ctx context.Context, sn string) (domain.Order, error)
	ListHistory(ctx context.Context, clientID int64) ([]domain.History, error)
	OrderHistory(ctx context.Context, orderID int64) ([]domain.History, error)
	// SupplierOrders 返回的订单只包含该供应商的订单行
	SupplierOrders(ctx context.Context, supplierID int64, status domain.OrderStatus, offset, limit int) ([]domain.Order, int64, error)
	SupplierStats(ctx context.Context, supplierID int64) (domain.SupplierStats, error)
	ListAll(ctx context.Context, status domain.OrderStatus, offset, limit int) ([]domain.Order, int64, error)
	ListInFlight(ctx context.Context, minID int64, limit int) ([]domain.Order, error)
}

type orderService struct {
	repo        repository.OrderRepository
	cartRepo    repository.CartRepository
	catalogSvc  catalog.Service
	deliverySvc delivery.Service
	userSvc     user.Service
	producer    event.OrderEventProducer
	snGenerator *sequencenumber.Generator
	logger      *elog.Component
}

func NewService(repo repository.OrderRepository,
	cartRepo repository.CartRepository,
	catalogSvc catalog.Service,
	deliverySvc delivery.Service,
	userSvc user.Service,
	producer event.OrderEventProducer,
	snGenerator *sequencenumber.Generator) Service {
	return &orderService{
		repo:        repo,
		cartRepo:    cartRepo,
		catalogSvc:  catalogSvc,
		deliverySvc: deliverySvc,
		userSvc:     userSvc,
		producer:    producer,
		snGenerator: snGenerator,
		logger:      elog.DefaultLogger,
	}
}

func (s *orderService) CreateFromCart(ctx context.Context, req CreateOrderReq) (domain.Order, error) {
	cart, err := s.cartRepo.ActiveCart(ctx, req.ClientID)
	if errors.Is(err, domain.ErrCartNotFound) {
		return domain.Order{}, domain.ErrEmptyCart
	}
	if err != nil {
		return domain.Order{}, err
	}
	if cart.Empty() {
		return domain.Order{}, domain.ErrEmptyCart
	}
	summary := cart.Summarize()

	var shipping int64
	if req.CarrierID > 0 {
		q, er := s.deliverySvc.Quote(ctx, req.CarrierID, summary.TotalWeight)
		if er != nil {
			return domain.Order{}, er
		}
		shipping = q.Price
	}
	if req.RelayPointID > 0 {
		if _, er := s.deliverySvc.RelayPointDetail(ctx, req.RelayPointID); er != nil {
			return domain.Order{}, er
		}
	}

	sn, err := s.snGenerator.Generate(req.ClientID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("生成订单号失败: %w", err)
	}

	if err = s.deductStock(ctx, cart.Lines); err != nil {
		checkoutFailures.WithLabelValues("stock").Inc()
		return domain.Order{}, err
	}

	order, _, err := s.repo.CreateFromCart(ctx, domain.Order{
		SN:           sn,
		ClientID:     req.ClientID,
		CartID:       cart.ID,
		CarrierID:    req.CarrierID,
		RelayPointID: req.RelayPointID,
		Total:        summary.TotalTTC,
		Shipping:     shipping,
		Status:       domain.OrderStatusPending,
		PaymentSN:    req.PaymentSN,
		Lines:        cart.Lines,
	})
	if err != nil {
		checkoutFailures.WithLabelValues("persist").Inc()
		s.restoreStock(ctx, cart.Lines)
		return domain.Order{}, fmt.Errorf("创建订单失败: %w", err)
	}
	orderTransitions.WithLabelValues(order.Status.String()).Inc()
	s.publish(ctx, event.OrderEventTypeCreated, order)
	return order, nil
}

// deductStock 逐行扣减，任意一行失败都会回补前面已经扣减的行
func (s *orderService) deductStock(ctx context.Context, lines []domain.CartLine) error {
	for i, l := range lines {
		err := s.catalogSvc.DeductStock(ctx, l.ProductID, l.Quantity)
		if err == nil {
			continue
		}
		s.restoreStock(ctx, lines[:i])
		if errors.Is(err, catalog.ErrInsufficientStock) || errors.Is(err, catalog.ErrProductNotFound) {
			return fmt.Errorf("%w: %s", domain.ErrInsufficientStock, l.ProductName)
		}
		return fmt.Errorf("扣减库存失败: %w", err)
	}
	return nil
}

func (s *orderService) restoreStock(ctx context.Context, lines []domain.CartLine) {
	for _, l := range lines {
		if err := s.catalogSvc.RestoreStock(ctx, l.ProductID, l.Quantity); err != nil {
			s.logger.Error("回补库存失败",
				elog.FieldErr(err),
				elog.Int64("product_id", l.ProductID),
				elog.Int64("quantity", l.Quantity),
			)
		}
	}
}

func (s *orderService) Recompute(ctx context.Context, orderID int64) (domain.Order, error) {
	var err error
	for i := 0; i < recomputeAttempts; i++ {
		var o domain.Order
		o, err = s.recompute(ctx, orderID)
		if !errors.Is(err, domain.ErrVersionConflict) {
			return o, err
		}
	}
	return domain.Order{}, err
}

func (s *orderService) recompute(ctx context.Context, orderID int64) (domain.Order, error) {
	o, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return domain.Order{}, err
	}
	status, progress := domain.Aggregate(o.Lines)
	// 取消的订单只刷新进度
	if o.Status == domain.OrderStatusCancelled {
		status = domain.OrderStatusCancelled
	}
	if status == o.Status && progress == o.Progress {
		return o, nil
	}
	previous := o.Status
	o.Status, o.Progress = status, progress
	if err = s.repo.UpdateStatus(ctx, o); err != nil {
		return domain.Order{}, err
	}
	o.Version++
	if status != previous {
		orderTransitions.WithLabelValues(status.String()).Inc()
	}
	if status == domain.OrderStatusDone && previous != domain.OrderStatusDone {
		if _, err = s.archive(ctx, o); err != nil {
			return domain.Order{}, err
		}
		s.publish(ctx, event.OrderEventTypeDone, o)
	}
	return o, nil
}

func (s *orderService) UpdateLineStatus(ctx context.Context, orderID, lineID int64, status domain.LineStatus, supplierID int64) (domain.Order, error) {
	if !status.Valid() {
		return domain.Order{}, domain.ErrIllegalLineStatus
	}
	o, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return domain.Order{}, err
	}
	// 已经关闭的订单需要先重新打开
	if o.Status.Closed() {
		return domain.Order{}, domain.ErrIllegalTransition
	}
	line, ok := o.FindLine(lineID)
	if !ok {
		return domain.Order{}, domain.ErrLineNotFound
	}
	if supplierID > 0 && line.SupplierID != supplierID {
		return domain.Order{}, domain.ErrLineNotOwned
	}
	if err = s.repo.UpdateLineStatus(ctx, o.CartID, lineID, status); err != nil {
		return domain.Order{}, err
	}
	return s.Recompute(ctx, orderID)
}

func (s *orderService) MarkDone(ctx context.Context, orderID int64) (domain.Order, error) {
	o, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return domain.Order{}, err
	}
	switch o.Status {
	case domain.OrderStatusCancelled:
		return domain.Order{}, domain.ErrIllegalTransition
	case domain.OrderStatusDone:
		_, err = s.archive(ctx, o)
		return o, err
	}
	if !o.AllLinesDone() {
		return domain.Order{}, domain.ErrLinesNotDone
	}
	o.Status, o.Progress = domain.OrderStatusDone, 100
	if err = s.repo.UpdateStatus(ctx, o); err != nil {
		return domain.Order{}, err
	}
	o.Version++
	orderTransitions.WithLabelValues(o.Status.String()).Inc()
	if _, err = s.archive(ctx, o); err != nil {
		return domain.Order{}, err
	}
	s.publish(ctx, event.OrderEventTypeDone, o)
	return o, nil
}

func (s *orderService) Cancel(ctx context.Context, clientID, orderID int64) (domain.Order, error) {
	o, err := s.Detail(ctx, clientID, orderID)
	if err != nil {
		return domain.Order{}, err
	}
	return s.cancel(ctx, o)
}

func (s *orderService) CancelBySN(ctx context.Context, sn string) (domain.Order, error) {
	o, err := s.repo.FindBySN(ctx, sn)
	if err != nil {
		return domain.Order{}, err
	}
	return s.cancel(ctx, o)
}

// cancel 遇到乐观锁冲突时重新读取订单再试，供应商同时更新订单行不会让取消丢失
func (s *orderService) cancel(ctx context.Context, o domain.Order) (domain.Order, error) {
	var err error
	for i := 0; i < recomputeAttempts; i++ {
		if i > 0 {
			o, err = s.repo.FindByID(ctx, o.ID)
			if err != nil {
				return domain.Order{}, err
			}
		}
		var res domain.Order
		res, err = s.cancelOnce(ctx, o)
		if !errors.Is(err, domain.ErrVersionConflict) {
			return res, err
		}
	}
	return domain.Order{}, err
}

func (s *orderService) cancelOnce(ctx context.Context, o domain.Order) (domain.Order, error) {
	switch o.Status {
	case domain.OrderStatusCancelled:
		return o, nil
	case domain.OrderStatusDone:
		return domain.Order{}, domain.ErrIllegalTransition
	}
	o.Status = domain.OrderStatusCancelled
	if err := s.repo.UpdateStatus(ctx, o); err != nil {
		return domain.Order{}, err
	}
	o.Version++
	orderTransitions.WithLabelValues(o.Status.String()).Inc()
	// 没有送达的商品回到库存
	s.restoreStock(ctx, undelivered(o.Lines))
	if _, err := s.archive(ctx, o); err != nil {
		return domain.Order{}, err
	}
	s.publish(ctx, event.OrderEventTypeCancelled, o)
	return o, nil
}

func undelivered(lines []domain.CartLine) []domain.CartLine {
	res := make([]domain.CartLine, 0, len(lines))
	for _, l := range lines {
		if l.Status != domain.LineStatusDone {
			res = append(res, l)
		}
	}
	return res
}

func (s *orderService) Archive(ctx context.Context, orderID int64) (bool, error) {
	o, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return false, err
	}
	return s.archive(ctx, o)
}

func (s *orderService) archive(ctx context.Context, o domain.Order) (bool, error) {
	h := s.newHistory(ctx, o, domain.HistoryKindArchive)
	created, err := s.repo.Archive(ctx, h)
	if err != nil {
		return false, fmt.Errorf("写入订单快照失败: %w", err)
	}
	if created {
		snapshots.Inc()
	}
	return created, nil
}

// newHistory 客户、承运商与自提点信息查询失败时只记录日志，快照照常写入
func (s *orderService) newHistory(ctx context.Context, o domain.Order, kind domain.HistoryKind) domain.History {
	var (
		eg                      errgroup.Group
		contact                 domain.Contact
		carrierName, relayPoint string
	)
	eg.Go(func() error {
		c, err := s.userSvc.Profile(ctx, o.ClientID)
		if err != nil {
			return fmt.Errorf("查询客户 %d 失败: %w", o.ClientID, err)
		}
		contact = domain.Contact{Name: c.FullName(), Email: c.Email, Phone: c.Phone}
		return nil
	})
	if o.CarrierID > 0 {
		eg.Go(func() error {
			c, err := s.deliverySvc.CarrierDetail(ctx, o.CarrierID)
			if err != nil {
				return fmt.Errorf("查询承运商 %d 失败: %w", o.CarrierID, err)
			}
			carrierName = c.Name
			return nil
		})
	}
	if o.RelayPointID > 0 {
		eg.Go(func() error {
			r, err := s.deliverySvc.RelayPointDetail(ctx, o.RelayPointID)
			if err != nil {
				return fmt.Errorf("查询自提点 %d 失败: %w", o.RelayPointID, err)
			}
			relayPoint = r.Name
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		s.logger.Warn("订单快照信息不完整",
			elog.FieldErr(err),
			elog.Int64("order_id", o.ID),
		)
	}
	return domain.NewHistory(o, kind, contact, carrierName, relayPoint)
}

func (s *orderService) Reopen(ctx context.Context, orderID int64) (domain.Order, error) {
	o, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return domain.Order{}, err
	}
	if !o.Status.Closed() {
		return domain.Order{}, domain.ErrIllegalTransition
	}
	// 取消时回补过的库存要重新扣减
	var deducted []domain.CartLine
	if o.Status == domain.OrderStatusCancelled {
		deducted = undelivered(o.Lines)
		if err = s.deductStock(ctx, deducted); err != nil {
			return domain.Order{}, err
		}
	}
	h := s.newHistory(ctx, o, domain.HistoryKindReopen)
	if err = s.repo.Reopen(ctx, o, h); err != nil {
		s.restoreStock(ctx, deducted)
		return domain.Order{}, err
	}
	res, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return domain.Order{}, err
	}
	orderTransitions.WithLabelValues(res.Status.String()).Inc()
	s.publish(ctx, event.OrderEventTypeReopened, res)
	return res, nil
}

func (s *orderService) publish(ctx context.Context, typ string, o domain.Order) {
	evt := event.OrderEvent{
		Type:     typ,
		OrderID:  o.ID,
		OrderSN:  o.SN,
		ClientID: o.ClientID,
		Status:   o.Status.ToUint8(),
		Total:    o.Total,
	}
	if err := s.producer.Produce(ctx, evt); err != nil {
		s.logger.Error("发送订单消息失败",
			elog.FieldErr(err),
			elog.FieldKey("event"),
			elog.FieldValueAny(evt),
		)
	}
}

func (s *orderService) ListOrders(ctx context.Context, clientID int64, offset, limit int) ([]domain.Order, int64, error) {
	var (
		eg     errgroup.Group
		orders []domain.Order
		total  int64
	)
	eg.Go(func() error {
		var err error
		orders, err = s.repo.FindByClient(ctx, clientID, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountByClient(ctx, clientID)
		return err
	})
	return orders, total, eg.Wait()
}

func (s *orderService) Detail(ctx context.Context, clientID, orderID int64) (domain.Order, error) {
	o, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return domain.Order{}, err
	}
	if clientID > 0 && o.ClientID != clientID {
		return domain.Order{}, domain.ErrOrderNotFound
	}
	return o, nil
}

func (s *orderService) FindBySN(ctx context.Context, sn string) (domain.Order, error) {
	return s.repo.FindBySN(ctx, sn)
}

func (s *orderService) ListHistory(ctx context.Context, clientID int64) ([]domain.History, error) {
	return s.repo.HistoriesByClient(ctx, clientID)
}

func (s *orderService) OrderHistory(ctx context.Context, orderID int64) ([]domain.History, error) {
	return s.repo.HistoriesByOrder(ctx, orderID)
}

func (s *orderService) SupplierOrders(ctx context.Context, supplierID int64, status domain.OrderStatus, offset, limit int) ([]domain.Order, int64, error) {
	var (
		eg     errgroup.Group
		orders []domain.Order
		total  int64
	)
	eg.Go(func() error {
		var err error
		orders, err = s.repo.FindBySupplier(ctx, supplierID, status, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.CountBySupplier(ctx, supplierID, status)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}
	for i := range orders {
		orders[i].Lines = orders[i].LinesOf(supplierID)
	}
	return orders, total, nil
}

func (s *orderService) SupplierStats(ctx context.Context, supplierID int64) (domain.SupplierStats, error) {
	return s.repo.SupplierStats(ctx, supplierID)
}

func (s *orderService) ListAll(ctx context.Context, status domain.OrderStatus, offset, limit int) ([]domain.Order, int64, error) {
	var (
		eg     errgroup.Group
		orders []domain.Order
		total  int64
	)
	eg.Go(func() error {
		var err error
		orders, err = s.repo.List(ctx, status, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx, status)
		return err
	})
	return orders, total, eg.Wait()
}

func (s *orderService) ListInFlight(ctx context.Context, minID int64, limit int) ([]domain.Order, error) {
	return s.repo.FindInFlight(ctx, minID, limit)
}
