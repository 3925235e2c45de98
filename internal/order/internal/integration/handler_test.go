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

//go:build e2e

package integration

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/epicerie/internal/catalog"
	catalogmocks "github.com/ecodeclub/epicerie/internal/catalog/mocks"
	"github.com/ecodeclub/epicerie/internal/delivery"
	deliverymocks "github.com/ecodeclub/epicerie/internal/delivery/mocks"
	"github.com/ecodeclub/epicerie/internal/order"
	"github.com/ecodeclub/epicerie/internal/order/internal/domain"
	"github.com/ecodeclub/epicerie/internal/order/internal/errs"
	"github.com/ecodeclub/epicerie/internal/order/internal/repository/dao"
	"github.com/ecodeclub/epicerie/internal/order/internal/web"
	"github.com/ecodeclub/epicerie/internal/pkg/middleware"
	"github.com/ecodeclub/epicerie/internal/test"
	testioc "github.com/ecodeclub/epicerie/internal/test/ioc"
	"github.com/ecodeclub/epicerie/internal/user"
	usermocks "github.com/ecodeclub/epicerie/internal/user/mocks"
	"github.com/ecodeclub/ginx/session"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const uid = int64(123)

func TestOrderModule(t *testing.T) {
	suite.Run(t, new(OrderTestSuite))
}

type OrderTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
	ctrl   *gomock.Controller
	module *order.Module
}

func (s *OrderTestSuite) SetupSuite() {
	s.ctrl = gomock.NewController(s.T())
	s.db = testioc.InitDB()

	products := map[int64]catalog.Product{
		1: {ID: 1, SN: "GALA0001", Name: "Gala", Price: 250, TaxRate: 20, Stock: 10, Weight: 1, SupplierID: 3, Status: catalog.ProductStatusActive},
		2: {ID: 2, SN: "MIEL0001", Name: "Miel", Price: 1000, TaxRate: 20, Stock: 5, Weight: 0.5, SupplierID: 4, Status: catalog.ProductStatusActive},
	}
	catalogSvc := catalogmocks.NewMockService(s.ctrl)
	catalogSvc.EXPECT().Detail(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, id int64) (catalog.Product, error) {
		p, ok := products[id]
		if !ok {
			return catalog.Product{}, catalog.ErrProductNotFound
		}
		return p, nil
	}).AnyTimes()
	catalogSvc.EXPECT().DeductStock(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	catalogSvc.EXPECT().RestoreStock(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	deliverySvc := deliverymocks.NewMockService(s.ctrl)
	deliverySvc.EXPECT().Quote(gomock.Any(), int64(1), gomock.Any()).
		Return(delivery.Quote{CarrierID: 1, CarrierName: "Colissimo", TariffID: 1, Price: 594}, nil).AnyTimes()
	deliverySvc.EXPECT().CarrierDetail(gomock.Any(), int64(1)).
		Return(delivery.Carrier{ID: 1, Name: "Colissimo"}, nil).AnyTimes()

	userSvc := usermocks.NewMockService(s.ctrl)
	userSvc.EXPECT().Profile(gomock.Any(), uid).
		Return(user.Client{ID: uid, FirstName: "Marie", LastName: "Curie", Email: "marie@example.com"}, nil).AnyTimes()

	m, err := order.InitModule(s.db, testioc.InitCache(), testioc.InitMQ(),
		&catalog.Module{Svc: catalogSvc},
		&delivery.Module{Svc: deliverySvc},
		&user.Module{Svc: userSvc})
	require.NoError(s.T(), err)
	s.module = m

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: uid,
			Data: map[string]string{
				middleware.RoleClaimKey:  middleware.RoleClient,
				middleware.AdminClaimKey: "true",
			},
		}))
	})
	m.Hdl.PrivateRoutes(server.Engine)
	m.AdminHdl.PrivateRoutes(server.Engine)
	s.server = server
}

func (s *OrderTestSuite) TearDownSuite() {
	s.NoError(s.db.Exec("DROP TABLE `carts`").Error)
	s.NoError(s.db.Exec("DROP TABLE `cart_lines`").Error)
	s.NoError(s.db.Exec("DROP TABLE `orders`").Error)
	s.NoError(s.db.Exec("DROP TABLE `order_histories`").Error)
}

func (s *OrderTestSuite) TearDownTest() {
	s.NoError(s.db.Exec("TRUNCATE TABLE `carts`").Error)
	s.NoError(s.db.Exec("TRUNCATE TABLE `cart_lines`").Error)
	s.NoError(s.db.Exec("TRUNCATE TABLE `orders`").Error)
	s.NoError(s.db.Exec("TRUNCATE TABLE `order_histories`").Error)
	_, err := testioc.InitCache().Delete(context.Background(), "order:create:req-1", "order:create:req-2")
	s.NoError(err)
}

func (s *OrderTestSuite) TestCheckout() {
	t := s.T()
	add := func(productID, qty int64) test.Result[web.Cart] {
		return post[web.Cart](t, s.server, "/cart/add", web.ItemReq{ProductID: productID, Quantity: qty})
	}
	res := add(1, 3)
	require.Equal(t, 0, res.Code)
	assert.Equal(t, int64(900), res.Data.TotalTTC)

	res = add(2, 2)
	require.Equal(t, 0, res.Code)
	assert.Equal(t, int64(2750), res.Data.TotalHT)
	assert.Equal(t, int64(3300), res.Data.TotalTTC)
	assert.Equal(t, 4.0, res.Data.TotalWeight)
	require.Len(t, res.Data.Groups, 2)
	assert.Equal(t, int64(3), res.Data.Groups[0].SupplierID)
	assert.Equal(t, int64(4), res.Data.Groups[1].SupplierID)

	assert.Equal(t, errs.InsufficientStock.Code, add(2, 4).Code)
	assert.Equal(t, errs.InvalidQuantity.Code, add(1, 0).Code)
	assert.Equal(t, errs.ProductNotFound.Code, add(99, 1).Code)

	preview := post[web.Preview](t, s.server, "/cart/preview", web.PreviewReq{CarrierID: 1})
	require.Equal(t, 0, preview.Code)
	require.NotNil(t, preview.Data.Shipping)
	assert.Equal(t, int64(594), preview.Data.Shipping.Price)
	assert.Equal(t, int64(3894), preview.Data.GrandTotal)

	created := post[web.Order](t, s.server, "/order/create", web.CreateOrderReq{RequestID: "req-1", CarrierID: 1})
	require.Equal(t, 0, created.Code)
	assert.Equal(t, int64(3300), created.Data.Total)
	assert.Equal(t, int64(594), created.Data.Shipping)
	assert.Equal(t, domain.OrderStatusPending.ToUint8(), created.Data.Status)
	assert.Len(t, created.Data.Lines, 2)

	dup := post[web.Order](t, s.server, "/order/create", web.CreateOrderReq{RequestID: "req-1", CarrierID: 1})
	assert.Equal(t, errs.DuplicateRequest.Code, dup.Code)

	// 下单之后换了一个新的空购物车
	empty := post[web.Order](t, s.server, "/order/create", web.CreateOrderReq{RequestID: "req-2"})
	assert.Equal(t, errs.EmptyCart.Code, empty.Code)

	detail := post[web.Cart](t, s.server, "/cart/detail", nil)
	require.Equal(t, 0, detail.Code)
	assert.Equal(t, int64(0), detail.Data.ItemCount)

	list := post[web.OrderList](t, s.server, "/order/list", web.Page{})
	require.Equal(t, 0, list.Code)
	assert.Equal(t, int64(1), list.Data.Total)
}

// 直接下单不会带上客户端传来的支付流水号，只有支付确认才会写入
func (s *OrderTestSuite) TestCheckout_PaymentSNNotTrusted() {
	t := s.T()
	res := post[web.Cart](t, s.server, "/cart/add", web.ItemReq{ProductID: 1, Quantity: 1})
	require.Equal(t, 0, res.Code)

	created := post[web.Order](t, s.server, "/order/create", map[string]any{
		"requestId": "req-1",
		"carrierId": 1,
		"paymentSN": "SN-OF-ANOTHER-CLIENT",
	})
	require.Equal(t, 0, created.Code)
	assert.Empty(t, created.Data.PaymentSN)

	var o dao.Order
	require.NoError(t, s.db.Where("id = ?", created.Data.ID).First(&o).Error)
	assert.Empty(t, o.PaymentSn)
}

func (s *OrderTestSuite) TestLineStatus_ArchiveOnDone() {
	t := s.T()
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	_, err := s.module.CartSvc.AddItem(ctx, uid, 1, 1)
	require.NoError(t, err)
	_, err = s.module.CartSvc.AddItem(ctx, uid, 2, 1)
	require.NoError(t, err)
	o, err := s.module.Svc.CreateFromCart(ctx, order.CreateOrderReq{ClientID: uid, CarrierID: 1})
	require.NoError(t, err)
	require.Len(t, o.Lines, 2)

	update := func(lineID int64, status domain.LineStatus) test.Result[web.Order] {
		return post[web.Order](t, s.server, "/orders/line/status", web.UpdateLineStatusReq{
			OrderID: o.ID, LineID: lineID, Status: status.ToUint8(),
		})
	}
	res := update(o.Lines[0].ID, domain.LineStatusOutForDelivery)
	require.Equal(t, 0, res.Code)
	assert.Equal(t, domain.OrderStatusOutForDelivery.ToUint8(), res.Data.Status)
	assert.Equal(t, 33.0, res.Data.Progress)

	res = update(o.Lines[0].ID, domain.LineStatusDone)
	require.Equal(t, 0, res.Code)
	assert.Equal(t, domain.OrderStatusPending.ToUint8(), res.Data.Status)
	assert.Equal(t, 50.0, res.Data.Progress)

	assert.Equal(t, errs.IllegalLineStatus.Code, update(o.Lines[1].ID, domain.LineStatus(42)).Code)

	res = update(o.Lines[1].ID, domain.LineStatusDone)
	require.Equal(t, 0, res.Code)
	assert.Equal(t, domain.OrderStatusDone.ToUint8(), res.Data.Status)
	assert.Equal(t, 100.0, res.Data.Progress)

	var histories []dao.OrderHistory
	require.NoError(t, s.db.WithContext(ctx).Where("order_id = ?", o.ID).Find(&histories).Error)
	require.Len(t, histories, 1)
	assert.Equal(t, "Marie Curie", histories[0].ClientName)
	assert.Equal(t, "Colissimo", histories[0].CarrierName)
	assert.Len(t, histories[0].Lines.Val, 2)

	// 重复汇总不会重复写快照
	recomputed := post[web.Order](t, s.server, "/orders/recompute", web.IDReq{ID: o.ID})
	require.Equal(t, 0, recomputed.Code)
	var cnt int64
	require.NoError(t, s.db.WithContext(ctx).Model(&dao.OrderHistory{}).Where("order_id = ?", o.ID).Count(&cnt).Error)
	assert.Equal(t, int64(1), cnt)

	// 已完成的订单不允许修改订单行
	assert.Equal(t, errs.IllegalTransition.Code, update(o.Lines[1].ID, domain.LineStatusPending).Code)

	reopened := post[web.Order](t, s.server, "/orders/reopen", web.IDReq{ID: o.ID})
	require.Equal(t, 0, reopened.Code)
	assert.Equal(t, domain.OrderStatusPending.ToUint8(), reopened.Data.Status)
	assert.Equal(t, int64(1), reopened.Data.Generation)
	assert.Equal(t, 0.0, reopened.Data.Progress)

	hs := post[[]web.History](t, s.server, "/orders/history", web.IDReq{ID: o.ID})
	require.Equal(t, 0, hs.Code)
	assert.Len(t, hs.Data, 2)
}

// 下单之后旧购物车的行不能再被修改
func (s *OrderTestSuite) TestCartLines_FrozenAfterCheckout() {
	t := s.T()
	res := post[web.Cart](t, s.server, "/cart/add", web.ItemReq{ProductID: 1, Quantity: 2})
	require.Equal(t, 0, res.Code)
	created := post[web.Order](t, s.server, "/order/create", web.CreateOrderReq{RequestID: "req-1", CarrierID: 1})
	require.Equal(t, 0, created.Code)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	var o dao.Order
	require.NoError(t, s.db.WithContext(ctx).Where("id = ?", created.Data.ID).First(&o).Error)
	var lines []dao.CartLine
	require.NoError(t, s.db.WithContext(ctx).Where("cart_id = ?", o.CartId).Find(&lines).Error)
	require.Len(t, lines, 1)

	cartDAO := dao.NewGORMCartDAO(s.db)
	testCases := []struct {
		name  string
		write func() error
	}{
		{
			name: "修改数量",
			write: func() error {
				l := lines[0]
				l.Quantity = 9
				_, err := cartDAO.SaveLine(ctx, l)
				return err
			},
		},
		{
			name: "新增一行",
			write: func() error {
				_, err := cartDAO.SaveLine(ctx, dao.CartLine{CartId: o.CartId, ProductId: 2, SupplierId: 4, ProductSn: "MIEL0001", ProductName: "Miel", Quantity: 1})
				return err
			},
		},
		{
			name: "删除一行",
			write: func() error {
				_, err := cartDAO.DeleteLine(ctx, o.CartId, lines[0].Id)
				return err
			},
		},
		{
			name: "清空",
			write: func() error {
				return cartDAO.ClearLines(ctx, o.CartId)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.write(), dao.ErrCartNotActive)
		})
	}

	var after []dao.CartLine
	require.NoError(t, s.db.WithContext(ctx).Where("cart_id = ?", o.CartId).Find(&after).Error)
	require.Len(t, after, 1)
	assert.Equal(t, lines[0].Quantity, after[0].Quantity)

	// 新的购物车不受影响
	res = post[web.Cart](t, s.server, "/cart/add", web.ItemReq{ProductID: 2, Quantity: 1})
	require.Equal(t, 0, res.Code)
	assert.NotEqual(t, o.CartId, res.Data.ID)
}

func (s *OrderTestSuite) TestCancel() {
	t := s.T()
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	_, err := s.module.CartSvc.AddItem(ctx, uid, 1, 2)
	require.NoError(t, err)
	o, err := s.module.Svc.CreateFromCart(ctx, order.CreateOrderReq{ClientID: uid})
	require.NoError(t, err)

	res := post[web.Order](t, s.server, "/order/cancel", web.IDReq{ID: o.ID})
	require.Equal(t, 0, res.Code)
	assert.Equal(t, domain.OrderStatusCancelled.ToUint8(), res.Data.Status)

	res = post[web.Order](t, s.server, "/order/cancel", web.IDReq{ID: o.ID + 100})
	assert.Equal(t, errs.OrderNotFound.Code, res.Code)

	done := post[web.Order](t, s.server, "/orders/done", web.IDReq{ID: o.ID})
	assert.Equal(t, errs.IllegalTransition.Code, done.Code)
}

func post[T any](t *testing.T, server *egin.Component, path string, body any) test.Result[T] {
	req, err := http.NewRequest(http.MethodPost, path, iox.NewJSONReader(body))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[T]()
	server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	return recorder.MustScan()
}
