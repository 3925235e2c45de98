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
	"strings"

	"github.com/ecodeclub/epicerie/internal/pkg/middleware"
	"github.com/ecodeclub/epicerie/internal/user/internal/domain"
	"github.com/ecodeclub/epicerie/internal/user/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

const minPasswordLen = 8

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	users := server.Group("/users")
	users.POST("/register", ginx.B[RegisterReq](h.Register))
	users.POST("/login", ginx.B[LoginReq](h.Login))
	users.Any("/token/refresh", ginx.W(h.RefreshAccessToken))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	users := server.Group("/users")
	users.POST("/logout", ginx.S(h.Logout))
	users.GET("/profile", ginx.S(h.Profile))
	users.POST("/profile", ginx.BS[EditReq](h.Edit))
	users.POST("/password", ginx.BS[ChangePasswordReq](h.ChangePassword))
}

func (h *Handler) Register(ctx *ginx.Context, req RegisterReq) (ginx.Result, error) {
	if !strings.Contains(req.Email, "@") || len(req.Password) < minPasswordLen {
		return invalidInputResult, nil
	}
	c, err := h.svc.Register(ctx, domain.Client{
		Email:     req.Email,
		Phone:     req.Phone,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Address: domain.Address{
			Street:     req.Address.Street,
			PostalCode: req.Address.PostalCode,
			City:       req.Address.City,
			Country:    req.Address.Country,
		},
		Location: req.Address.location(),
	}, req.Password)
	switch {
	case errors.Is(err, domain.ErrDuplicateEmail):
		return duplicateEmailResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	if err = h.newSession(ctx, c.ID); err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newProfile(c)}, nil
}

func (h *Handler) Login(ctx *ginx.Context, req LoginReq) (ginx.Result, error) {
	c, err := h.svc.Login(ctx, req.Email, req.Password)
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return invalidCredentialsResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	if err = h.newSession(ctx, c.ID); err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newProfile(c)}, nil
}

func (h *Handler) newSession(ctx *ginx.Context, uid int64) error {
	_, err := session.NewSessionBuilder(ctx, uid).
		SetJwtData(map[string]string{
			middleware.RoleClaimKey: middleware.RoleClient,
		}).Build()
	return err
}

func (h *Handler) RefreshAccessToken(ctx *ginx.Context) (ginx.Result, error) {
	err := session.RenewAccessToken(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Logout(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	if err := sess.Destroy(ctx); err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Profile(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	c, err := h.svc.Profile(ctx, sess.Claims().Uid)
	switch {
	case errors.Is(err, domain.ErrClientNotFound):
		return clientNotFoundResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: newProfile(c)}, nil
}

// Edit 修改个人资料和收货地址
func (h *Handler) Edit(ctx *ginx.Context, req EditReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.UpdateProfile(ctx, domain.Client{
		ID:        sess.Claims().Uid,
		Phone:     req.Phone,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Address: domain.Address{
			Street:     req.Address.Street,
			PostalCode: req.Address.PostalCode,
			City:       req.Address.City,
			Country:    req.Address.Country,
		},
		Location: req.Address.location(),
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) ChangePassword(ctx *ginx.Context, req ChangePasswordReq, sess session.Session) (ginx.Result, error) {
	if len(req.NewPassword) < minPasswordLen {
		return invalidInputResult, nil
	}
	err := h.svc.ChangePassword(ctx, sess.Claims().Uid, req.OldPassword, req.NewPassword)
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return invalidCredentialsResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}
