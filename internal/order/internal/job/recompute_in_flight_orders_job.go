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
	"fmt"
	"time"

	"github.com/ecodeclub/epicerie/internal/order/internal/domain"
	"github.com/ecodeclub/epicerie/internal/order/internal/service"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
)

var _ ecron.NamedJob = (*RecomputeInFlightOrdersJob)(nil)

// RecomputeInFlightOrdersJob 定时重新汇总进行中订单的状态与进度
type RecomputeInFlightOrdersJob struct {
	svc     service.Service
	limit   int
	timeout time.Duration
	logger  *elog.Component
}

func NewRecomputeInFlightOrdersJob(svc service.Service, limit int, timeout time.Duration) *RecomputeInFlightOrdersJob {
	return &RecomputeInFlightOrdersJob{svc: svc, limit: limit, timeout: timeout, logger: elog.DefaultLogger}
}

func (j *RecomputeInFlightOrdersJob) Name() string {
	return "RecomputeInFlightOrdersJob"
}

func (j *RecomputeInFlightOrdersJob) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithTimeout(ctx, j.timeout)
	defer cancelFunc()

	var minID int64
	for {
		orders, err := j.svc.ListInFlight(ctx, minID, j.limit)
		if err != nil {
			return fmt.Errorf("获取进行中的订单失败: %w", err)
		}
		for _, o := range orders {
			_, er := j.svc.Recompute(ctx, o.ID)
			// 单个订单失败不影响其它订单
			if er != nil && !errors.Is(er, domain.ErrOrderNotFound) {
				j.logger.Error("重新汇总订单失败",
					elog.FieldErr(er),
					elog.Int64("order_id", o.ID),
				)
			}
			minID = o.ID
		}
		if len(orders) < j.limit {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}
