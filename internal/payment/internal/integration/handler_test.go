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
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/epicerie/internal/order"
	ordermocks "github.com/ecodeclub/epicerie/internal/order/mocks"
	"github.com/ecodeclub/epicerie/internal/payment"
	"github.com/ecodeclub/epicerie/internal/payment/internal/domain"
	"github.com/ecodeclub/epicerie/internal/payment/internal/errs"
	"github.com/ecodeclub/epicerie/internal/payment/internal/event"
	"github.com/ecodeclub/epicerie/internal/payment/internal/repository/dao"
	svcmocks "github.com/ecodeclub/epicerie/internal/payment/internal/service/mocks"
	"github.com/ecodeclub/epicerie/internal/payment/internal/web"
	"github.com/ecodeclub/epicerie/internal/pkg/middleware"
	"github.com/ecodeclub/epicerie/internal/test"
	testioc "github.com/ecodeclub/epicerie/internal/test/ioc"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const clientID = int64(7)

func TestPaymentModule(t *testing.T) {
	suite.Run(t, new(PaymentTestSuite))
}

type PaymentTestSuite struct {
	suite.Suite
	server    *egin.Component
	db        *egorm.Component
	ctrl      *gomock.Controller
	orderSvc  *ordermocks.MockService
	cartSvc   *ordermocks.MockCartService
	processor *svcmocks.MockProcessor
	consumer  mq.Consumer
}

func (s *PaymentTestSuite) SetupSuite() {
	s.ctrl = gomock.NewController(s.T())
	s.orderSvc = ordermocks.NewMockService(s.ctrl)
	s.cartSvc = ordermocks.NewMockCartService(s.ctrl)
	s.processor = svcmocks.NewMockProcessor(s.ctrl)
	s.processor.EXPECT().Name().Return(domain.ChannelStripe).AnyTimes()
	s.processor.EXPECT().PublicKey().Return("pk_test").AnyTimes()

	s.db = testioc.InitDB()
	q := testioc.InitMQ()
	consumer, err := q.Consumer(event.PaymentEventTopic, "payment-test")
	require.NoError(s.T(), err)
	s.consumer = consumer

	m, err := payment.InitModule(s.db, q,
		&order.Module{Svc: s.orderSvc, CartSvc: s.cartSvc},
		[]payment.Processor{s.processor})
	require.NoError(s.T(), err)

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	m.Hdl.PublicRoutes(server.Engine)
	m.AdminHdl.PrivateRoutes(server.Engine)
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid:  clientID,
			Data: map[string]string{middleware.RoleClaimKey: middleware.RoleClient},
		}))
	})
	m.Hdl.PrivateRoutes(server.Engine)
	s.server = server
}

func (s *PaymentTestSuite) TearDownSuite() {
	s.NoError(s.db.Exec("DROP TABLE `payments`").Error)
}

func (s *PaymentTestSuite) TearDownTest() {
	s.NoError(s.db.Exec("TRUNCATE TABLE `payments`").Error)
	// 丢弃本次测试产生的事件
	s.events()
}

// events 内存 MQ 的消费者分配分区需要约 1s，第一次读取等待得更久
func (s *PaymentTestSuite) events() []event.PaymentEvent {
	var res []event.PaymentEvent
	timeout := 2 * time.Second
	for {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		msg, err := s.consumer.Consume(ctx)
		cancel()
		if err != nil {
			return res
		}
		var evt event.PaymentEvent
		s.NoError(json.Unmarshal(msg.Value, &evt))
		res = append(res, evt)
		timeout = 300 * time.Millisecond
	}
}

var summary = order.CartSummary{
	Cart: order.Cart{
		ID:       10,
		ClientID: clientID,
		Lines:    []order.CartLine{{ID: 1, CartID: 10, ProductID: 1, Quantity: 3, PriceTTC: 1100}},
	},
	TotalHT:  2750,
	TotalTTC: 3300,
}

func (s *PaymentTestSuite) createIntent(t *testing.T) web.Intent {
	s.cartSvc.EXPECT().Summary(gomock.Any(), clientID).Return(summary, nil)
	s.processor.EXPECT().CreateIntent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req domain.IntentRequest) (domain.Intent, error) {
			return domain.Intent{
				ID:           "pi_1",
				ClientSecret: "pi_1_secret",
				Amount:       req.Amount,
				Currency:     req.Currency,
				Status:       domain.StatusUnpaid,
			}, nil
		})
	res := post[web.Intent](t, s.server, "/payment/intent", web.CreateIntentReq{Channel: "stripe"})
	require.Equal(t, 0, res.Code)
	return res.Data
}

func (s *PaymentTestSuite) confirm(t *testing.T) web.Payment {
	s.processor.EXPECT().RetrieveIntent(gomock.Any(), "pi_1").
		Return(domain.Intent{ID: "pi_1", Status: domain.StatusSucceeded}, nil)
	s.cartSvc.EXPECT().Summary(gomock.Any(), clientID).Return(summary, nil)
	s.orderSvc.EXPECT().CreateFromCart(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req order.CreateOrderReq) (order.Order, error) {
			assert.Equal(t, clientID, req.ClientID)
			assert.Equal(t, int64(1), req.CarrierID)
			assert.NotEmpty(t, req.PaymentSN)
			return order.Order{ID: 3, SN: "CMD-1", PaymentSN: req.PaymentSN}, nil
		})
	res := post[web.Payment](t, s.server, "/payment/confirm", web.ConfirmReq{
		Channel: "stripe", IntentID: "pi_1", CarrierID: 1,
	})
	require.Equal(t, 0, res.Code)
	return res.Data
}

func (s *PaymentTestSuite) TestPublicKey() {
	t := s.T()
	req, err := http.NewRequest(http.MethodGet, "/payment/public-key?channel=stripe", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.PublicKey]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	res := recorder.MustScan()
	assert.Equal(t, "pk_test", res.Data.Key)

	req, err = http.NewRequest(http.MethodGet, "/payment/public-key?channel=paypal", nil)
	require.NoError(t, err)
	recorder = test.NewJSONResponseRecorder[web.PublicKey]()
	s.server.ServeHTTP(recorder, req)
	assert.Equal(t, errs.UnknownChannel.Code, recorder.MustScan().Code)
}

func (s *PaymentTestSuite) TestIntentAndConfirm() {
	t := s.T()
	intent := s.createIntent(t)
	assert.Equal(t, "pi_1", intent.IntentID)
	assert.Equal(t, "pi_1_secret", intent.ClientSecret)
	assert.Equal(t, int64(3300), intent.Amount)

	var p dao.Payment
	require.NoError(t, s.db.Where("sn = ?", intent.PaymentSN).First(&p).Error)
	assert.Equal(t, "pi_1", p.IntentId)
	assert.Equal(t, domain.StatusUnpaid.ToUint8(), p.Status)
	assert.Equal(t, int64(10), p.CartId)

	pmt := s.confirm(t)
	assert.Equal(t, "CMD-1", pmt.OrderSN)
	assert.Equal(t, domain.StatusSucceeded.ToUint8(), pmt.Status)

	// 重复确认不会再次下单
	again := post[web.Payment](t, s.server, "/payment/confirm", web.ConfirmReq{
		Channel: "stripe", IntentID: "pi_1", CarrierID: 1,
	})
	require.Equal(t, 0, again.Code)
	assert.Equal(t, int64(3), again.Data.OrderID)

	evts := s.events()
	require.Len(t, evts, 1)
	assert.Equal(t, "succeeded", evts[0].Type)
}

func (s *PaymentTestSuite) TestConfirm_NotSucceeded() {
	t := s.T()
	s.createIntent(t)
	s.processor.EXPECT().RetrieveIntent(gomock.Any(), "pi_1").
		Return(domain.Intent{ID: "pi_1", Status: domain.StatusProcessing}, nil)
	res := post[web.Payment](t, s.server, "/payment/confirm", web.ConfirmReq{Channel: "stripe", IntentID: "pi_1"})
	assert.Equal(t, errs.PaymentNotSucceeded.Code, res.Code)

	missing := post[web.Payment](t, s.server, "/payment/confirm", web.ConfirmReq{Channel: "stripe", IntentID: "pi_404"})
	assert.Equal(t, errs.PaymentNotFound.Code, missing.Code)
}

func (s *PaymentTestSuite) TestEmptyCart() {
	t := s.T()
	s.cartSvc.EXPECT().Summary(gomock.Any(), clientID).Return(order.CartSummary{Cart: order.Cart{ID: 10}}, nil)
	res := post[web.Intent](t, s.server, "/payment/intent", web.CreateIntentReq{Channel: "stripe"})
	assert.Equal(t, errs.EmptyCart.Code, res.Code)
}

func (s *PaymentTestSuite) TestWebhook() {
	t := s.T()
	intent := s.createIntent(t)
	s.processor.EXPECT().ParseWebhook(gomock.Any()).
		Return(domain.Event{Type: domain.EventFailed, IntentID: "pi_1", Amount: 3300}, nil)
	req, err := http.NewRequest(http.MethodPost, "/payment/webhook/stripe", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusOK, recorder.Code)

	var p dao.Payment
	require.NoError(t, s.db.Where("sn = ?", intent.PaymentSN).First(&p).Error)
	assert.Equal(t, domain.StatusFailed.ToUint8(), p.Status)

	s.processor.EXPECT().ParseWebhook(gomock.Any()).Return(domain.Event{}, assert.AnError)
	req, err = http.NewRequest(http.MethodPost, "/payment/webhook/stripe", nil)
	require.NoError(t, err)
	recorder = test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func (s *PaymentTestSuite) TestRefund() {
	t := s.T()
	s.createIntent(t)
	s.confirm(t)

	s.processor.EXPECT().Refund(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	partial := post[web.Payment](t, s.server, "/payments/refund", web.RefundReq{OrderSN: "CMD-1", Amount: 500})
	require.Equal(t, 0, partial.Code)
	assert.Equal(t, int64(500), partial.Data.Refunded)
	assert.Equal(t, domain.StatusSucceeded.ToUint8(), partial.Data.Status)

	tooMuch := post[web.Payment](t, s.server, "/payments/refund", web.RefundReq{OrderSN: "CMD-1", Amount: 5000})
	assert.Equal(t, errs.IllegalRefundAmount.Code, tooMuch.Code)

	full := post[web.Payment](t, s.server, "/payments/refund", web.RefundReq{OrderSN: "CMD-1"})
	require.Equal(t, 0, full.Code)
	assert.Equal(t, int64(3300), full.Data.Refunded)
	assert.Equal(t, domain.StatusRefunded.ToUint8(), full.Data.Status)

	var types []string
	for _, evt := range s.events() {
		types = append(types, evt.Type)
	}
	assert.Equal(t, []string{"succeeded", "refunded"}, types)

	list := post[web.PaymentList](t, s.server, "/payments/list", web.ListReq{Status: domain.StatusRefunded.ToUint8()})
	require.Equal(t, 0, list.Code)
	assert.Equal(t, int64(1), list.Data.Total)
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
