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
	"net/http"
	"testing"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/epicerie/internal/catalog"
	catalogmocks "github.com/ecodeclub/epicerie/internal/catalog/mocks"
	"github.com/ecodeclub/epicerie/internal/order"
	ordermocks "github.com/ecodeclub/epicerie/internal/order/mocks"
	"github.com/ecodeclub/epicerie/internal/pkg/middleware"
	"github.com/ecodeclub/epicerie/internal/supplier"
	"github.com/ecodeclub/epicerie/internal/supplier/internal/errs"
	"github.com/ecodeclub/epicerie/internal/supplier/internal/web"
	"github.com/ecodeclub/epicerie/internal/test"
	testioc "github.com/ecodeclub/epicerie/internal/test/ioc"
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

// 每个测试结束都会清空表，第一个新建的供应商 ID 总是 1
const supplierID = int64(1)

func TestSupplierModule(t *testing.T) {
	suite.Run(t, new(SupplierTestSuite))
}

type SupplierTestSuite struct {
	suite.Suite
	server     *egin.Component
	db         *egorm.Component
	ctrl       *gomock.Controller
	catalogSvc *catalogmocks.MockService
	orderSvc   *ordermocks.MockService
}

func (s *SupplierTestSuite) SetupSuite() {
	s.ctrl = gomock.NewController(s.T())
	s.catalogSvc = catalogmocks.NewMockService(s.ctrl)
	s.orderSvc = ordermocks.NewMockService(s.ctrl)
	s.db = testioc.InitDB()
	m := supplier.InitModule(s.db, &catalog.Module{Svc: s.catalogSvc}, &order.Module{Svc: s.orderSvc})

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	m.Hdl.PublicRoutes(server.Engine)
	m.AdminHdl.PrivateRoutes(server.Engine)
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid:  supplierID,
			Data: map[string]string{middleware.RoleClaimKey: middleware.RoleSupplier},
		}))
	})
	m.PortalHdl.PrivateRoutes(server.Engine)
	s.server = server
}

func (s *SupplierTestSuite) TearDownSuite() {
	s.NoError(s.db.Exec("DROP TABLE `suppliers`").Error)
}

func (s *SupplierTestSuite) TearDownTest() {
	s.NoError(s.db.Exec("TRUNCATE TABLE `suppliers`").Error)
}

func (s *SupplierTestSuite) createSupplier(t *testing.T) {
	radius := 20.0
	lat, lon := 45.7640, 4.8357
	res := post[int64](t, s.server, "/suppliers/save", web.SaveSupplierReq{
		Supplier: web.Supplier{
			Name:    "Ferme du Lac",
			Email:   "Lac@Example.com",
			Address: web.Address{City: "Lyon", PostalCode: "69002", Lat: &lat, Lon: &lon},
			Zone:    web.Zone{Type: "radius", RadiusKm: &radius},
			Fee:     web.Fee{BaseFee: 300, PerKmFee: 50},
		},
		Password: "12345678",
	})
	require.Equal(t, 0, res.Code)
	require.Equal(t, supplierID, res.Data)
}

func (s *SupplierTestSuite) TestSaveAndLogin() {
	t := s.T()
	s.createSupplier(t)

	dup := post[int64](t, s.server, "/suppliers/save", web.SaveSupplierReq{
		Supplier: web.Supplier{Name: "Autre", Email: "lac@example.com"},
		Password: "12345678",
	})
	assert.Equal(t, errs.DuplicateEmail.Code, dup.Code)

	invalid := post[int64](t, s.server, "/suppliers/save", web.SaveSupplierReq{
		Supplier: web.Supplier{Name: "Autre", Email: "autre@example.com", Zone: web.Zone{Type: "planet"}},
		Password: "12345678",
	})
	assert.Equal(t, errs.InvalidSupplier.Code, invalid.Code)

	login := post[web.Supplier](t, s.server, "/suppliers/login", web.LoginReq{Email: "lac@example.com", Password: "12345678"})
	require.Equal(t, 0, login.Code)
	assert.Equal(t, "Ferme du Lac", login.Data.Name)

	wrong := post[web.Supplier](t, s.server, "/suppliers/login", web.LoginReq{Email: "lac@example.com", Password: "87654321"})
	assert.Equal(t, errs.InvalidCredentials.Code, wrong.Code)

	detail := post[web.Supplier](t, s.server, "/suppliers/detail", web.IDReq{ID: supplierID})
	require.Equal(t, 0, detail.Code)
	assert.Equal(t, "radius", detail.Data.Zone.Type)
	require.NotNil(t, detail.Data.Zone.RadiusKm)
	assert.Equal(t, 20.0, *detail.Data.Zone.RadiusKm)

	missing := post[web.Supplier](t, s.server, "/suppliers/detail", web.IDReq{ID: 100})
	assert.Equal(t, errs.SupplierNotFound.Code, missing.Code)
}

func (s *SupplierTestSuite) TestCheckDelivery() {
	t := s.T()
	s.createSupplier(t)
	lat, lon := 45.7719, 4.8902
	res := post[web.DeliveryCheck](t, s.server, "/suppliers/delivery/check", web.CheckDeliveryReq{
		SupplierID: supplierID, Lat: &lat, Lon: &lon, Subtotal: 1000,
	})
	require.Equal(t, 0, res.Code)
	assert.True(t, res.Data.Eligible)
	require.NotNil(t, res.Data.DistanceKm)
	assert.InDelta(t, 4.3, *res.Data.DistanceKm, 0.2)
	// 300 + 4.3 * 50
	assert.InDelta(t, 515, res.Data.Fee, 10)

	res = post[web.DeliveryCheck](t, s.server, "/suppliers/delivery/check", web.CheckDeliveryReq{
		SupplierID: supplierID, City: "Lyon", Subtotal: 1000,
	})
	require.Equal(t, 0, res.Code)
	assert.False(t, res.Data.Eligible)
	assert.Equal(t, int64(0), res.Data.Fee)
}

func (s *SupplierTestSuite) TestPortal() {
	t := s.T()
	s.createSupplier(t)

	s.orderSvc.EXPECT().SupplierStats(gomock.Any(), supplierID).
		Return(order.SupplierStats{OrderCount: 2, InFlightCount: 1, DoneCount: 1}, nil)
	s.catalogSvc.EXPECT().List(gomock.Any(), gomock.Any(), 0, 1).Return(nil, int64(3), nil).Times(2)
	dashboard := post[web.Dashboard](t, s.server, "/supplier/portal/dashboard", nil)
	require.Equal(t, 0, dashboard.Code)
	assert.Equal(t, int64(2), dashboard.Data.OrderCount)
	assert.Equal(t, int64(3), dashboard.Data.ProductCount)

	s.catalogSvc.EXPECT().Detail(gomock.Any(), int64(9)).Return(catalog.Product{ID: 9, SupplierID: 2}, nil)
	notOwned := post[int64](t, s.server, "/supplier/portal/products/save", web.Product{ID: 9, Name: "Miel"})
	assert.Equal(t, errs.ProductNotOwned.Code, notOwned.Code)

	s.orderSvc.EXPECT().UpdateLineStatus(gomock.Any(), int64(5), int64(6), order.LineStatusPreparing, supplierID).
		Return(order.Order{}, order.ErrLineNotOwned)
	line := post[web.Order](t, s.server, "/supplier/portal/orders/line/status", web.UpdateLineStatusReq{
		OrderID: 5, LineID: 6, Status: order.LineStatusPreparing.ToUint8(),
	})
	assert.Equal(t, errs.OrderLineNotOwned.Code, line.Code)

	pwd := post[any](t, s.server, "/supplier/portal/password", web.ChangePasswordReq{
		OldPassword: "12345678", NewPassword: "abcdefgh",
	})
	require.Equal(t, 0, pwd.Code)
	login := post[web.Supplier](t, s.server, "/suppliers/login", web.LoginReq{Email: "lac@example.com", Password: "abcdefgh"})
	assert.Equal(t, 0, login.Code)
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
