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

	"github.com/ecodeclub/epicerie/internal/payment/internal/domain"
	"github.com/ecodeclub/epicerie/internal/payment/internal/service"
	paymentmocks "github.com/ecodeclub/epicerie/internal/payment/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestSyncPendingPaymentsJob_Run(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) service.Service
		wantErr error
	}{
		{
			name: "分批同步",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := paymentmocks.NewMockService(ctrl)
				svc.EXPECT().FindPending(gomock.Any(), gomock.Any(), int64(0), 2).
					Return([]domain.Record{{ID: 1, SN: "P1"}, {ID: 2, SN: "P2"}}, nil)
				svc.EXPECT().FindPending(gomock.Any(), gomock.Any(), int64(2), 2).
					Return([]domain.Record{{ID: 5, SN: "P5"}}, nil)
				svc.EXPECT().Sync(gomock.Any(), domain.Record{ID: 1, SN: "P1"}).Return(nil)
				// 单个失败不中断
				svc.EXPECT().Sync(gomock.Any(), domain.Record{ID: 2, SN: "P2"}).Return(errors.New("mock processor error"))
				svc.EXPECT().Sync(gomock.Any(), domain.Record{ID: 5, SN: "P5"}).Return(nil)
				return svc
			},
		},
		{
			name: "查询失败",
			mock: func(ctrl *gomock.Controller) service.Service {
				svc := paymentmocks.NewMockService(ctrl)
				svc.EXPECT().FindPending(gomock.Any(), gomock.Any(), int64(0), 2).
					Return(nil, errors.New("mock db error"))
				return svc
			},
			wantErr: errors.New("获取待同步支付记录失败: mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			j := NewSyncPendingPaymentsJob(tc.mock(ctrl), time.Minute, 2)
			err := j.Run(context.Background())
			if tc.wantErr != nil {
				assert.EqualError(t, err, tc.wantErr.Error())
				return
			}
			assert.NoError(t, err)
		})
	}
}
