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

package order

import (
	"sync"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/epicerie/internal/catalog"
	"github.com/ecodeclub/epicerie/internal/delivery"
	"github.com/ecodeclub/epicerie/internal/order/internal/consumer"
	"github.com/ecodeclub/epicerie/internal/order/internal/event"
	"github.com/ecodeclub/epicerie/internal/order/internal/job"
	"github.com/ecodeclub/epicerie/internal/order/internal/repository"
	"github.com/ecodeclub/epicerie/internal/order/internal/repository/cache"
	"github.com/ecodeclub/epicerie/internal/order/internal/repository/dao"
	"github.com/ecodeclub/epicerie/internal/order/internal/service"
	"github.com/ecodeclub/epicerie/internal/order/internal/web"
	"github.com/ecodeclub/epicerie/internal/pkg/sequencenumber"
	"github.com/ecodeclub/epicerie/internal/user"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component,
	ec ecache.Cache,
	q mq.MQ,
	catalogModule *catalog.Module,
	deliveryModule *delivery.Module,
	userModule *user.Module) (*Module, error) {
	wire.Build(
		initCartDAO,
		initOrderDAO,
		cache.NewRequestECache,
		repository.NewCartRepository,
		repository.NewOrderRepository,
		event.NewOrderEventProducer,
		initSNGenerator,
		wire.FieldsOf(new(*catalog.Module), "Svc"),
		wire.FieldsOf(new(*delivery.Module), "Svc"),
		wire.FieldsOf(new(*user.Module), "Svc"),
		service.NewCartService,
		service.NewService,
		web.NewHandler,
		web.NewAdminHandler,
		consumer.NewPaymentConsumer,
		consumer.NewRegistrationConsumer,
		initRecomputeJob,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func initTables(db *egorm.Component) {
	once.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
}

func initCartDAO(db *egorm.Component) dao.CartDAO {
	initTables(db)
	return dao.NewGORMCartDAO(db)
}

func initOrderDAO(db *egorm.Component) dao.OrderDAO {
	initTables(db)
	return dao.NewGORMOrderDAO(db)
}

func initSNGenerator() *sequencenumber.Generator {
	return sequencenumber.NewGenerator("CMD")
}

func initRecomputeJob(svc service.Service) *job.RecomputeInFlightOrdersJob {
	const (
		limit   = 100
		timeout = 5 * time.Minute
	)
	return job.NewRecomputeInFlightOrdersJob(svc, limit, timeout)
}
