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

	"github.com/ecodeclub/epicerie/internal/supplier/internal/domain"
	"github.com/ecodeclub/epicerie/internal/supplier/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=./supplier.go -package=suppliermocks -destination=../../mocks/supplier.mock.go Service
type Service interface {
	// Save 新建供应商时必须设置密码，更新时密码与邮箱保持不变
	Save(ctx context.Context, s domain.Supplier) (int64, error)
	// UpdateProfile 供应商自己修改资料
	UpdateProfile(ctx context.Context, s domain.Supplier) error
	Detail(ctx context.Context, id int64) (domain.Supplier, error)
	List(ctx context.Context, offset, limit int) ([]domain.Supplier, int64, error)
	Login(ctx context.Context, email, password string) (domain.Supplier, error)
	ChangePassword(ctx context.Context, id int64, oldPassword, newPassword string) error
	CheckDelivery(ctx context.Context, id int64, dst domain.Destination, subtotal int64) (domain.DeliveryCheck, error)
}

type supplierService struct {
	repo repository.SupplierRepository
}

func NewService(repo repository.SupplierRepository) Service {
	return &supplierService{repo: repo}
}

func (s *supplierService) Save(ctx context.Context, sup domain.Supplier) (int64, error) {
	if sup.Zone.Type == "" {
		sup.Zone.Type = domain.ZoneTypeNational
	}
	if !sup.Zone.Type.Valid() {
		return 0, domain.ErrInvalidZone
	}
	if sup.ID > 0 {
		return sup.ID, s.UpdateProfile(ctx, sup)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(sup.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}
	sup.Password = string(hash)
	return s.repo.Save(ctx, sup)
}

func (s *supplierService) UpdateProfile(ctx context.Context, sup domain.Supplier) error {
	if sup.Zone.Type != "" && !sup.Zone.Type.Valid() {
		return domain.ErrInvalidZone
	}
	old, err := s.repo.FindByID(ctx, sup.ID)
	if err != nil {
		return err
	}
	sup.Email, sup.Password = old.Email, old.Password
	if sup.Zone.Type == "" {
		sup.Zone = old.Zone
	}
	_, err = s.repo.Save(ctx, sup)
	return err
}

func (s *supplierService) Detail(ctx context.Context, id int64) (domain.Supplier, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *supplierService) List(ctx context.Context, offset, limit int) ([]domain.Supplier, int64, error) {
	var (
		eg    errgroup.Group
		res   []domain.Supplier
		total int64
	)
	eg.Go(func() error {
		var err error
		res, err = s.repo.List(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx)
		return err
	})
	return res, total, eg.Wait()
}

func (s *supplierService) Login(ctx context.Context, email, password string) (domain.Supplier, error) {
	sup, err := s.repo.FindByEmail(ctx, email)
	if errors.Is(err, domain.ErrSupplierNotFound) {
		return domain.Supplier{}, domain.ErrInvalidCredentials
	}
	if err != nil {
		return domain.Supplier{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(sup.Password), []byte(password)) != nil {
		return domain.Supplier{}, domain.ErrInvalidCredentials
	}
	return sup, nil
}

func (s *supplierService) ChangePassword(ctx context.Context, id int64, oldPassword, newPassword string) error {
	sup, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(sup.Password), []byte(oldPassword)) != nil {
		return domain.ErrInvalidCredentials
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("生成密码哈希失败 %w", err)
	}
	return s.repo.UpdatePassword(ctx, id, string(hash))
}

func (s *supplierService) CheckDelivery(ctx context.Context, id int64,
	dst domain.Destination, subtotal int64) (domain.DeliveryCheck, error) {
	sup, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.DeliveryCheck{}, err
	}
	res := domain.DeliveryCheck{Eligible: sup.CanDeliverTo(dst)}
	if dist, ok := sup.DistanceTo(dst); ok {
		res.DistanceKm = &dist
	}
	if res.Eligible {
		res.Fee = sup.DeliveryFee(subtotal, res.DistanceKm)
	}
	return res, nil
}
