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
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/ecodeclub/epicerie/internal/user/internal/domain"
	"github.com/ecodeclub/epicerie/internal/user/internal/event"
	"github.com/ecodeclub/epicerie/internal/user/internal/repository"
	repomocks "github.com/ecodeclub/epicerie/internal/user/internal/repository/mocks"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func TestClientService_Register(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) repository.ClientRepository
		client  domain.Client
		wantID  int64
		wantErr error
	}{
		{
			name: "注册成功",
			mock: func(ctrl *gomock.Controller) repository.ClientRepository {
				repo := repomocks.NewMockClientRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, c domain.Client) (int64, error) {
						assert.Equal(t, "jeanne@example.com", c.Email)
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(c.Password), []byte("secret123")))
						return 12, nil
					})
				return repo
			},
			client: domain.Client{Email: " Jeanne@Example.com ", FirstName: "Jeanne"},
			wantID: 12,
		},
		{
			name: "邮箱重复",
			mock: func(ctrl *gomock.Controller) repository.ClientRepository {
				repo := repomocks.NewMockClientRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(0), domain.ErrDuplicateEmail)
				return repo
			},
			client:  domain.Client{Email: "jeanne@example.com"},
			wantErr: domain.ErrDuplicateEmail,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			q := newTestMQ(t)
			producer, err := event.NewRegistrationEventProducer(q)
			require.NoError(t, err)
			consumer, err := q.Consumer(event.RegistrationEventTopic, "test")
			require.NoError(t, err)

			svc := NewService(tc.mock(ctrl), producer)
			c, err := svc.Register(context.Background(), tc.client, "secret123")
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantID, c.ID)
			assert.Empty(t, c.Password)

			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			msg, err := consumer.Consume(ctx)
			require.NoError(t, err)
			var evt event.RegistrationEvent
			require.NoError(t, json.Unmarshal(msg.Value, &evt))
			assert.Equal(t, tc.wantID, evt.Uid)
		})
	}
}

func TestClientService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) repository.ClientRepository
		password string
		wantID   int64
		wantErr  error
	}{
		{
			name: "登录成功",
			mock: func(ctrl *gomock.Controller) repository.ClientRepository {
				repo := repomocks.NewMockClientRepository(ctrl)
				repo.EXPECT().FindByEmail(gomock.Any(), "jeanne@example.com").
					Return(domain.Client{ID: 12, Password: string(hash)}, nil)
				return repo
			},
			password: "secret123",
			wantID:   12,
		},
		{
			name: "密码错误",
			mock: func(ctrl *gomock.Controller) repository.ClientRepository {
				repo := repomocks.NewMockClientRepository(ctrl)
				repo.EXPECT().FindByEmail(gomock.Any(), "jeanne@example.com").
					Return(domain.Client{ID: 12, Password: string(hash)}, nil)
				return repo
			},
			password: "wrong",
			wantErr:  domain.ErrInvalidCredentials,
		},
		{
			name: "邮箱不存在",
			mock: func(ctrl *gomock.Controller) repository.ClientRepository {
				repo := repomocks.NewMockClientRepository(ctrl)
				repo.EXPECT().FindByEmail(gomock.Any(), "jeanne@example.com").
					Return(domain.Client{}, domain.ErrClientNotFound)
				return repo
			},
			password: "secret123",
			wantErr:  domain.ErrInvalidCredentials,
		},
		{
			name: "数据库错误",
			mock: func(ctrl *gomock.Controller) repository.ClientRepository {
				repo := repomocks.NewMockClientRepository(ctrl)
				repo.EXPECT().FindByEmail(gomock.Any(), "jeanne@example.com").
					Return(domain.Client{}, errors.New("mock db error"))
				return repo
			},
			password: "secret123",
			wantErr:  errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewService(tc.mock(ctrl), nil)
			c, err := svc.Login(context.Background(), "jeanne@example.com", tc.password)
			if tc.wantErr != nil {
				assert.EqualError(t, err, tc.wantErr.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantID, c.ID)
			assert.Empty(t, c.Password)
		})
	}
}

func newTestMQ(t *testing.T) mq.MQ {
	q := memory.NewMQ()
	err := q.CreateTopic(context.Background(), event.RegistrationEventTopic, 1)
	require.NoError(t, err)
	return q
}
