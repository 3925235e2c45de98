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
	"fmt"
	"time"

	"github.com/ecodeclub/epicerie/internal/payment/internal/service"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
)

var _ ecron.NamedJob = (*SyncPendingPaymentsJob)(nil)

// SyncPendingPaymentsJob 主动查询长时间没有收到回调的支付
type SyncPendingPaymentsJob struct {
	svc service.Service
	// 创建超过该时长还没有结果的支付才会同步
	delay time.Duration
	limit int
	l     *elog.Component
}

func NewSyncPendingPaymentsJob(svc service.Service, delay time.Duration, limit int) *SyncPendingPaymentsJob {
	return &SyncPendingPaymentsJob{
		svc:   svc,
		delay: delay,
		limit: limit,
		l:     elog.DefaultLogger,
	}
}

func (s *SyncPendingPaymentsJob) Name() string {
	return "sync_pending_payments_job"
}

func (s *SyncPendingPaymentsJob) Run(ctx context.Context) error {
	ctime := time.Now().Add(-s.delay).UnixMilli()
	var minID int64
	for {
		records, err := s.svc.FindPending(ctx, ctime, minID, s.limit)
		if err != nil {
			return fmt.Errorf("获取待同步支付记录失败: %w", err)
		}
		for _, r := range records {
			err = s.svc.Sync(ctx, r)
			if err != nil {
				s.l.Error("同步支付结果失败",
					elog.FieldErr(err),
					elog.String("sn", r.SN),
					elog.String("channel", r.Channel.String()),
				)
			}
			minID = r.ID
		}
		if len(records) < s.limit {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}
