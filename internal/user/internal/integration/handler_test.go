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

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/epicerie/internal/test"
	testioc "github.com/ecodeclub/epicerie/internal/test/ioc"
	"github.com/ecodeclub/epicerie/internal/user"
	"github.com/ecodeclub/epicerie/internal/user/internal/errs"
	"github.com/ecodeclub/epicerie/internal/user/internal/repository/dao"
	"github.com/ecodeclub/epicerie/internal/user/internal/web"
	"github.com/ecodeclub/ginx/session"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

func TestUserHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

type HandlerTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
}

func (s *HandlerTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	m, err := user.InitModule(s.db, testioc.InitCache(), testioc.InitMQ())
	require.NoError(s.T(), err)
	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	m.Hdl.PublicRoutes(server.Engine)
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid:  1,
			Data: map[string]string{"role": "client"},
		}))
	})
	m.Hdl.PrivateRoutes(server.Engine)
	s.server = server
}

func (s *HandlerTestSuite) TearDownSuite() {
	s.NoError(s.db.Exec("DROP TABLE `clients`").Error)
}

func (s *HandlerTestSuite) TearDownTest() {
	s.NoError(s.db.Exec("TRUNCATE TABLE `clients`").Error)
	_, err := testioc.InitCache().Delete(context.Background(), "user:client:info:1")
	s.NoError(err)
}

func (s *HandlerTestSuite) TestRegister() {
	t := s.T()
	testCases := []struct {
		name     string
		before   func(t *testing.T)
		req      web.RegisterReq
		wantCode int
	}{
		{
			name:   "注册成功",
			before: func(t *testing.T) {},
			req: web.RegisterReq{
				Email: "marie@example.com", Password: "motdepasse",
				FirstName: "Marie", LastName: "Curie",
				Address: web.Address{PostalCode: "75005", City: "Paris"},
			},
		},
		{
			name: "邮箱已经注册，大小写不敏感",
			before: func(t *testing.T) {
				require.NoError(t, s.db.Create(&dao.Client{Email: "marie@example.com", Password: "x"}).Error)
			},
			req:      web.RegisterReq{Email: "Marie@Example.com", Password: "motdepasse"},
			wantCode: errs.DuplicateEmail.Code,
		},
		{
			name:     "密码太短",
			before:   func(t *testing.T) {},
			req:      web.RegisterReq{Email: "marie@example.com", Password: "court"},
			wantCode: errs.InvalidInput.Code,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			defer s.TearDownTest()
			tc.before(t)
			req, err := http.NewRequest(http.MethodPost, "/users/register", iox.NewJSONReader(tc.req))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[web.Profile]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, http.StatusOK, recorder.Code)
			res := recorder.MustScan()
			assert.Equal(t, tc.wantCode, res.Code)
			if tc.wantCode == 0 {
				assert.True(t, res.Data.ID > 0)
				assert.Equal(t, "marie@example.com", res.Data.Email)
			}
		})
	}
}

func (s *HandlerTestSuite) TestLogin() {
	t := s.T()
	hash, err := bcrypt.GenerateFromPassword([]byte("motdepasse"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, s.db.Create(&dao.Client{Email: "marie@example.com", Password: string(hash)}).Error)

	testCases := []struct {
		name     string
		req      web.LoginReq
		wantCode int
	}{
		{name: "登录成功", req: web.LoginReq{Email: "marie@example.com", Password: "motdepasse"}},
		{name: "密码错误", req: web.LoginReq{Email: "marie@example.com", Password: "mauvais"}, wantCode: errs.InvalidCredentials.Code},
		{name: "邮箱不存在", req: web.LoginReq{Email: "pierre@example.com", Password: "motdepasse"}, wantCode: errs.InvalidCredentials.Code},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost, "/users/login", iox.NewJSONReader(tc.req))
			require.NoError(t, err)
			req.Header.Set("content-type", "application/json")
			recorder := test.NewJSONResponseRecorder[web.Profile]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, http.StatusOK, recorder.Code)
			assert.Equal(t, tc.wantCode, recorder.MustScan().Code)
		})
	}
}

func (s *HandlerTestSuite) TestEditProfile() {
	t := s.T()
	require.NoError(t, s.db.Create(&dao.Client{Id: 1, Email: "marie@example.com", Password: "x"}).Error)
	lat, lon := 48.8462, 2.3464
	req, err := http.NewRequest(http.MethodPost, "/users/profile", iox.NewJSONReader(web.EditReq{
		FirstName: "Marie",
		Phone:     "0601020304",
		Address:   web.Address{Street: "1 rue Pierre et Marie Curie", PostalCode: "75005", City: "Paris", Lat: &lat, Lon: &lon},
	}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)

	req, err = http.NewRequest(http.MethodGet, "/users/profile", nil)
	require.NoError(t, err)
	profileRecorder := test.NewJSONResponseRecorder[web.Profile]()
	s.server.ServeHTTP(profileRecorder, req)
	require.Equal(t, http.StatusOK, profileRecorder.Code)
	p := profileRecorder.MustScan().Data
	assert.Equal(t, "Marie", p.FirstName)
	assert.Equal(t, "75005", p.Address.PostalCode)
	require.NotNil(t, p.Address.Lat)
	assert.Equal(t, lat, *p.Address.Lat)
}
