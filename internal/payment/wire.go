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

//go:build wireinject

package payment

import (
	"sync"
	"time"

	"github.com/ecodeclub/epicerie/internal/order"
	"github.com/ecodeclub/epicerie/internal/payment/internal/event"
	"github.com/ecodeclub/epicerie/internal/payment/internal/job"
	"github.com/ecodeclub/epicerie/internal/payment/internal/repository"
	"github.com/ecodeclub/epicerie/internal/payment/internal/repository/dao"
	"github.com/ecodeclub/epicerie/internal/payment/internal/service"
	"github.com/ecodeclub/epicerie/internal/payment/internal/web"
	"github.com/ecodeclub/epicerie/internal/pkg/snowflake"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component,
	q mq.MQ,
	orderModule *order.Module,
	processors []Processor) (*Module, error) {
	wire.Build(
		initDAO,
		repository.NewPaymentRepository,
		event.NewPaymentEventProducer,
		initSNGenerator,
		wire.FieldsOf(new(*order.Module), "Svc", "CartSvc"),
		service.NewService,
		web.NewHandler,
		web.NewAdminHandler,
		initSyncJob,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func initDAO(db *egorm.Component) dao.PaymentDAO {
	once.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMPaymentDAO(db)
}

func initSNGenerator() (*snowflake.Generator, error) {
	const (
		nodeID   = 0
		bizCount = 2
	)
	return snowflake.NewGenerator(nodeID, bizCount)
}

func initSyncJob(svc service.Service) *job.SyncPendingPaymentsJob {
	const (
		delay = 10 * time.Minute
		limit = 100
	)
	return job.NewSyncPendingPaymentsJob(svc, delay, limit)
}
