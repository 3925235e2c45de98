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
	"net/http"

	"github.com/ecodeclub/epicerie/internal/payment/internal/domain"
	"github.com/ecodeclub/epicerie/internal/payment/internal/service"
	"github.com/ecodeclub/epicerie/internal/pkg/middleware"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
	l   *elog.Component
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc, l: elog.DefaultLogger}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.GET("/payment/public-key", ginx.W(h.PublicKey))
	server.POST("/payment/webhook/stripe", h.webhook(domain.ChannelStripe))
	server.POST("/payment/webhook/wechat", h.webhook(domain.ChannelWechat))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/payment", middleware.NewCheckRoleMiddlewareBuilder(nil).Build(middleware.RoleClient))
	g.POST("/intent", ginx.BS[CreateIntentReq](h.CreateIntent))
	g.POST("/confirm", ginx.BS[ConfirmReq](h.Confirm))
}

// PublicKey 没有指定渠道时默认 stripe
func (h *Handler) PublicKey(ctx *ginx.Context) (ginx.Result, error) {
	channel := domain.Channel(ctx.Request.URL.Query().Get("channel"))
	if channel == "" {
		channel = domain.ChannelStripe
	}
	key, err := h.svc.PublicKey(channel)
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: PublicKey{Channel: channel.String(), Key: key}}, nil
}

func (h *Handler) CreateIntent(ctx *ginx.Context, req CreateIntentReq, sess session.Session) (ginx.Result, error) {
	r, intent, err := h.svc.CreateIntent(ctx, sess.Claims().Uid, domain.Channel(req.Channel))
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: Intent{
		PaymentSN:    r.SN,
		IntentID:     intent.ID,
		ClientSecret: intent.ClientSecret,
		Amount:       r.Amount,
		Currency:     r.Currency,
	}}, nil
}

func (h *Handler) Confirm(ctx *ginx.Context, req ConfirmReq, sess session.Session) (ginx.Result, error) {
	r, err := h.svc.Confirm(ctx, service.ConfirmReq{
		ClientID:     sess.Claims().Uid,
		Channel:      domain.Channel(req.Channel),
		IntentID:     req.IntentID,
		CarrierID:    req.CarrierID,
		RelayPointID: req.RelayPointID,
	})
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: newPayment(r)}, nil
}

// webhook 验签失败返回 400，服务商会按自己的策略重试
func (h *Handler) webhook(channel domain.Channel) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		err := h.svc.HandleWebhook(ctx.Request.Context(), channel, ctx.Request)
		switch {
		case err == nil, errors.Is(err, domain.ErrIgnoredEvent):
			ctx.Status(http.StatusOK)
		case errors.Is(err, domain.ErrPaymentNotFound), errors.Is(err, domain.ErrUnknownChannel):
			h.l.Warn("无法处理的支付回调", elog.FieldErr(err), elog.String("channel", channel.String()))
			ctx.Status(http.StatusOK)
		default:
			h.l.Error("处理支付回调失败", elog.FieldErr(err), elog.String("channel", channel.String()))
			ctx.Status(http.StatusBadRequest)
		}
	}
}
