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

package middleware

import (
	"net/http"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

const (
	RoleClaimKey  = "role"
	AdminClaimKey = "admin"

	RoleClient   = "client"
	RoleSupplier = "supplier"
)

// CheckRoleMiddlewareBuilder 校验 session 中的角色，
// 顾客和供应商共用一套 session，靠 role 区分
type CheckRoleMiddlewareBuilder struct {
	sp     session.Provider
	logger *elog.Component
}

func NewCheckRoleMiddlewareBuilder(sp session.Provider) *CheckRoleMiddlewareBuilder {
	return &CheckRoleMiddlewareBuilder{
		sp:     sp,
		logger: elog.DefaultLogger,
	}
}

func (b *CheckRoleMiddlewareBuilder) Build(roles ...string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		sp := b.sp
		if sp == nil {
			sp = session.DefaultProvider()
		}
		gctx := &ginx.Context{Context: ctx}
		sess, err := sp.Get(gctx)
		if err != nil {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			b.logger.Debug("用户未登录", elog.FieldErr(err))
			return
		}
		role := sess.Claims().Get(RoleClaimKey).StringOrDefault("")
		if !slice.Contains(roles, role) {
			ctx.AbortWithStatus(http.StatusForbidden)
			b.logger.Warn("角色不匹配",
				elog.Int64("uid", sess.Claims().Uid),
				elog.String("role", role))
			return
		}
	}
}

// BuildAdmin 校验管理员标记位
func (b *CheckRoleMiddlewareBuilder) BuildAdmin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		sp := b.sp
		if sp == nil {
			sp = session.DefaultProvider()
		}
		sess, err := sp.Get(&ginx.Context{Context: ctx})
		if err != nil {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			b.logger.Error("非法访问 admin 接口", elog.FieldErr(err))
			return
		}
		if sess.Claims().Get(AdminClaimKey).StringOrDefault("") != "true" {
			ctx.AbortWithStatus(http.StatusForbidden)
			b.logger.Error("非法访问 admin 接口，未设置权限",
				elog.Int64("uid", sess.Claims().Uid))
			return
		}
	}
}
