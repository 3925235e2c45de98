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

package job

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ecodeclub/epicerie/internal/order/internal/domain"
	"github.com/ecodeclub/epicerie/internal/order/internal/service"
	ordermocks "github.com/ecodeclub/epicerie/internal/order/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestRecomputeInFlightOrdersJob_Run(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) service.Service
		wantErr error
	}{
		{
			name: "分批处理",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := ordermocks.NewMockService(ctrl)
				svc.EXPECT().ListInFlight(gomock.Any(), int64(0), 2).
					Return([]domain.Order{{ID: 1}, {ID: 3}}, nil)
				svc.EXPECT().ListInFlight(gomock.Any(), int64(3), 2).
					Return([]domain.Order{{ID: 4}}, nil)
				svc.EXPECT().Recompute(gomock.Any(), int64(1)).Return(domain.Order{}, nil)
				// 单个失败不中断
				svc.EXPECT().Recompute(gomock.Any(), int64(3)).Return(domain.Order{}, domain.ErrVersionConflict)
				svc.EXPECT().Recompute(gomock.Any(), int64(4)).Return(domain.Order{}, nil)
				return svc
			},
		},
		{
			name: "没有订单",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := ordermocks.NewMockService(ctrl)
				svc.EXPECT().ListInFlight(gomock.Any(), int64(0), 2).Return(nil, nil)
				return svc
			},
		},
		{
			name: "查询失败",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := ordermocks.NewMockService(ctrl)
				svc.EXPECT().ListInFlight(gomock.Any(), int64(0), 2).Return(nil, errors.New("mock db error"))
				return svc
			},
			wantErr: errors.New("获取进行中的订单失败: mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			j := NewRecomputeInFlightOrdersJob(tc.mock(ctrl), 2, time.Second)
			err := j.Run(context.Background())
			if tc.wantErr != nil {
				assert.EqualError(t, err, tc.wantErr.Error())
				return
			}
			assert.NoError(t, err)
		})
	}
}
