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

	"github.com/ecodeclub/epicerie/internal/user/internal/domain"
	"github.com/ecodeclub/epicerie/internal/user/internal/event"
	"github.com/ecodeclub/epicerie/internal/user/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=./client.go -package=usermocks -destination=../../mocks/client.mock.go Service
type Service interface {
	// Register 注册成功之后会发送注册消息，订单模块据此创建购物车
	Register(ctx context.Context, c domain.Client, password string) (domain.Client, error)
	Login(ctx context.Context, email, password string) (domain.Client, error)
	Profile(ctx context.Context, id int64) (domain.Client, error)
	// UpdateProfile 更新非敏感数据
	UpdateProfile(ctx context.Context, c domain.Client) error
	ChangePassword(ctx context.Context, id int64, oldPassword, newPassword string) error
}

type clientService struct {
	repo     repository.ClientRepository
	producer event.RegistrationEventProducer
	logger   *elog.Component
}

func NewService(repo repository.ClientRepository, p event.RegistrationEventProducer) Service {
	return &clientService{
		repo:     repo,
		producer: p,
		logger:   elog.DefaultLogger,
	}
}

func (svc *clientService) Register(ctx context.Context, c domain.Client, password string) (domain.Client, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.Client{}, fmt.Errorf("生成密码哈希失败 %w", err)
	}
	c.Email = domain.NormalizeEmail(c.Email)
	c.Password = string(hash)
	id, err := svc.repo.Create(ctx, c)
	if err != nil {
		return domain.Client{}, err
	}
	c.ID = id
	c.Password = ""

	evt := event.RegistrationEvent{Uid: id}
	if e := svc.producer.Produce(ctx, evt); e != nil {
		svc.logger.Error("发送注册成功消息失败",
			elog.FieldErr(e),
			elog.FieldKey("event"),
			elog.FieldValueAny(evt),
		)
	}
	return c, nil
}

func (svc *clientService) Login(ctx context.Context, email, password string) (domain.Client, error) {
	c, err := svc.repo.FindByEmail(ctx, email)
	if errors.Is(err, domain.ErrClientNotFound) {
		return domain.Client{}, domain.ErrInvalidCredentials
	}
	if err != nil {
		return domain.Client{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(c.Password), []byte(password)) != nil {
		return domain.Client{}, domain.ErrInvalidCredentials
	}
	c.Password = ""
	return c, nil
}

func (svc *clientService) Profile(ctx context.Context, id int64) (domain.Client, error) {
	return svc.repo.FindByID(ctx, id)
}

func (svc *clientService) UpdateProfile(ctx context.Context, c domain.Client) error {
	return svc.repo.UpdateProfile(ctx, c)
}

func (svc *clientService) ChangePassword(ctx context.Context, id int64, oldPassword, newPassword string) error {
	c, err := svc.repo.FindWithPassword(ctx, id)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(c.Password), []byte(oldPassword)) != nil {
		return domain.ErrInvalidCredentials
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("生成密码哈希失败 %w", err)
	}
	return svc.repo.UpdatePassword(ctx, id, string(hash))
}
