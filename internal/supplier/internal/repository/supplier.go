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

package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/epicerie/internal/pkg/geo"
	"github.com/ecodeclub/epicerie/internal/supplier/internal/domain"
	"github.com/ecodeclub/epicerie/internal/supplier/internal/repository/dao"
)

//go:generate mockgen -source=./supplier.go -package=repomocks -destination=mocks/supplier.mock.go SupplierRepository
type SupplierRepository interface {
	Save(ctx context.Context, s domain.Supplier) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.Supplier, error)
	FindByEmail(ctx context.Context, email string) (domain.Supplier, error)
	List(ctx context.Context, offset, limit int) ([]domain.Supplier, error)
	Count(ctx context.Context) (int64, error)
	UpdatePassword(ctx context.Context, id int64, hash string) error
}

type supplierRepository struct {
	dao dao.SupplierDAO
}

func NewSupplierRepository(d dao.SupplierDAO) SupplierRepository {
	return &supplierRepository{dao: d}
}

func (r *supplierRepository) Save(ctx context.Context, s domain.Supplier) (int64, error) {
	id, err := r.dao.Save(ctx, r.toEntity(s))
	if errors.Is(err, dao.ErrDuplicateEmail) {
		return 0, domain.ErrDuplicateEmail
	}
	return id, err
}

func (r *supplierRepository) FindByID(ctx context.Context, id int64) (domain.Supplier, error) {
	s, err := r.dao.FindByID(ctx, id)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Supplier{}, domain.ErrSupplierNotFound
	}
	return r.toDomain(s), err
}

func (r *supplierRepository) FindByEmail(ctx context.Context, email string) (domain.Supplier, error) {
	s, err := r.dao.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Supplier{}, domain.ErrSupplierNotFound
	}
	return r.toDomain(s), err
}

func (r *supplierRepository) List(ctx context.Context, offset, limit int) ([]domain.Supplier, error) {
	ss, err := r.dao.List(ctx, offset, limit)
	return slice.Map(ss, func(idx int, src dao.Supplier) domain.Supplier {
		return r.toDomain(src)
	}), err
}

func (r *supplierRepository) Count(ctx context.Context) (int64, error) {
	return r.dao.Count(ctx)
}

func (r *supplierRepository) UpdatePassword(ctx context.Context, id int64, hash string) error {
	return r.dao.UpdatePassword(ctx, id, hash)
}

func (r *supplierRepository) toEntity(s domain.Supplier) dao.Supplier {
	res := dao.Supplier{
		Id:             s.ID,
		Name:           s.Name,
		Trade:          s.Trade,
		Email:          strings.ToLower(strings.TrimSpace(s.Email)),
		Phone:          s.Phone,
		Password:       s.Password,
		Street:         s.Address.Street,
		PostalCode:     s.Address.PostalCode,
		City:           s.Address.City,
		Country:        s.Address.Country,
		Description:    s.Description,
		ProductionType: s.ProductionType,
		LeadTimeDays:   s.LeadTimeDays,
		DeliveryDays:   s.DeliveryDays,
		ZoneType:       string(s.Zone.Type),
		Departments:    strings.Join(s.Zone.Departments, ","),
		Cities:         strings.Join(s.Zone.Cities, ","),
		BaseFee:        s.Fee.BaseFee,
		PerKmFee:       s.Fee.PerKmFee,
	}
	if s.Location != nil {
		res.Lat = sql.NullFloat64{Float64: s.Location.Lat, Valid: true}
		res.Lon = sql.NullFloat64{Float64: s.Location.Lon, Valid: true}
	}
	if s.Zone.RadiusKm != nil {
		res.RadiusKm = sql.NullFloat64{Float64: *s.Zone.RadiusKm, Valid: true}
	}
	if s.Fee.FreeThreshold != nil {
		res.FreeThreshold = sql.NullInt64{Int64: *s.Fee.FreeThreshold, Valid: true}
	}
	return res
}

func (r *supplierRepository) toDomain(s dao.Supplier) domain.Supplier {
	res := domain.Supplier{
		ID:       s.Id,
		Name:     s.Name,
		Trade:    s.Trade,
		Email:    s.Email,
		Phone:    s.Phone,
		Password: s.Password,
		Address: domain.Address{
			Street:     s.Street,
			PostalCode: s.PostalCode,
			City:       s.City,
			Country:    s.Country,
		},
		Description:    s.Description,
		ProductionType: s.ProductionType,
		LeadTimeDays:   s.LeadTimeDays,
		DeliveryDays:   s.DeliveryDays,
		Zone: domain.Zone{
			Type:        domain.ZoneType(s.ZoneType),
			Departments: domain.SplitList(s.Departments),
			Cities:      domain.SplitList(s.Cities),
		},
		Fee: domain.FeePolicy{
			BaseFee:  s.BaseFee,
			PerKmFee: s.PerKmFee,
		},
		Ctime: s.Ctime,
		Utime: s.Utime,
	}
	if s.Lat.Valid && s.Lon.Valid {
		res.Location = &geo.Point{Lat: s.Lat.Float64, Lon: s.Lon.Float64}
	}
	if s.RadiusKm.Valid {
		radius := s.RadiusKm.Float64
		res.Zone.RadiusKm = &radius
	}
	if s.FreeThreshold.Valid {
		threshold := s.FreeThreshold.Int64
		res.Fee.FreeThreshold = &threshold
	}
	return res
}
