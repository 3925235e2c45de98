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
	"testing"

	"github.com/ecodeclub/epicerie/internal/delivery/internal/domain"
	"github.com/ecodeclub/epicerie/internal/delivery/internal/repository"
	repomocks "github.com/ecodeclub/epicerie/internal/delivery/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestDeliveryService_Quote(t *testing.T) {
	tariffs := []domain.Tariff{
		{ID: 11, CarrierID: 1, MinWeight: 0.01, MaxWeight: 5, Price: 495, PriceTTC: 594},
		{ID: 12, CarrierID: 1, MinWeight: 5.01, MaxWeight: 10, Price: 695, PriceTTC: 834},
	}
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) repository.CarrierRepository
		weight  float64
		want    domain.Quote
		wantErr error
	}{
		{
			name: "第一个区间",
			mock: func(ctrl *gomock.Controller) repository.CarrierRepository {
				repo := repomocks.NewMockCarrierRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(1)).
					Return(domain.Carrier{ID: 1, Name: "Colissimo"}, nil)
				repo.EXPECT().Tariffs(gomock.Any(), int64(1)).Return(tariffs, nil)
				return repo
			},
			weight: 4.2,
			want:   domain.Quote{CarrierID: 1, CarrierName: "Colissimo", TariffID: 11, Weight: 4.2, Price: 594},
		},
		{
			name: "第二个区间",
			mock: func(ctrl *gomock.Controller) repository.CarrierRepository {
				repo := repomocks.NewMockCarrierRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(1)).
					Return(domain.Carrier{ID: 1, Name: "Colissimo"}, nil)
				repo.EXPECT().Tariffs(gomock.Any(), int64(1)).Return(tariffs, nil)
				return repo
			},
			weight: 7.0,
			want:   domain.Quote{CarrierID: 1, CarrierName: "Colissimo", TariffID: 12, Weight: 7.0, Price: 834},
		},
		{
			name: "没有匹配的区间",
			mock: func(ctrl *gomock.Controller) repository.CarrierRepository {
				repo := repomocks.NewMockCarrierRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(1)).
					Return(domain.Carrier{ID: 1, Name: "Colissimo"}, nil)
				repo.EXPECT().Tariffs(gomock.Any(), int64(1)).Return(tariffs, nil)
				return repo
			},
			weight:  30,
			wantErr: domain.ErrNoApplicableTariff,
		},
		{
			name: "承运商不存在",
			mock: func(ctrl *gomock.Controller) repository.CarrierRepository {
				repo := repomocks.NewMockCarrierRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(1)).
					Return(domain.Carrier{}, domain.ErrCarrierNotFound)
				repo.EXPECT().Tariffs(gomock.Any(), int64(1)).Return(nil, nil)
				return repo
			},
			weight:  1,
			wantErr: domain.ErrCarrierNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewService(tc.mock(ctrl), nil)
			res, err := svc.Quote(context.Background(), 1, tc.weight)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, tc.want, res)
		})
	}
}

func TestDeliveryService_SaveTariff(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) repository.CarrierRepository
		tariff  domain.Tariff
		wantID  int64
		wantErr error
	}{
		{
			name: "补齐含税价格",
			mock: func(ctrl *gomock.Controller) repository.CarrierRepository {
				repo := repomocks.NewMockCarrierRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(domain.Carrier{ID: 1}, nil)
				repo.EXPECT().SaveTariff(gomock.Any(), domain.Tariff{
					CarrierID: 1, MinWeight: 0.01, MaxWeight: 5, Price: 495, PriceTTC: 594,
				}).Return(int64(21), nil)
				return repo
			},
			tariff: domain.Tariff{CarrierID: 1, MinWeight: 0.01, MaxWeight: 5, Price: 495},
			wantID: 21,
		},
		{
			name: "区间不合法",
			mock: func(ctrl *gomock.Controller) repository.CarrierRepository {
				return repomocks.NewMockCarrierRepository(ctrl)
			},
			tariff:  domain.Tariff{CarrierID: 1, MinWeight: 6, MaxWeight: 5, Price: 495},
			wantErr: domain.ErrInvalidTariff,
		},
		{
			name: "数据库错误",
			mock: func(ctrl *gomock.Controller) repository.CarrierRepository {
				repo := repomocks.NewMockCarrierRepository(ctrl)
				repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(domain.Carrier{ID: 1}, nil)
				repo.EXPECT().SaveTariff(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("mock db error"))
				return repo
			},
			tariff:  domain.Tariff{CarrierID: 1, MinWeight: 0, MaxWeight: 5, Price: 495},
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewService(tc.mock(ctrl), nil)
			id, err := svc.SaveTariff(context.Background(), tc.tariff)
			if tc.wantErr != nil {
				assert.EqualError(t, err, tc.wantErr.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.wantID, id)
		})
	}
}
