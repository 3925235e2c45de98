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

package ioc

import (
	"github.com/ecodeclub/epicerie/internal/catalog"
	"github.com/ecodeclub/epicerie/internal/delivery"
	"github.com/ecodeclub/epicerie/internal/order"
	"github.com/ecodeclub/epicerie/internal/payment"
	paymentioc "github.com/ecodeclub/epicerie/internal/payment/ioc"
	"github.com/ecodeclub/epicerie/internal/supplier"
	"github.com/ecodeclub/epicerie/internal/user"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis, InitMQ, InitES, InitSession)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		user.InitModule,
		catalog.InitModule,
		delivery.InitModule,
		order.InitModule,
		supplier.InitModule,
		paymentioc.InitProcessors,
		payment.InitModule,
		wire.FieldsOf(new(*user.Module), "Hdl"),
		wire.FieldsOf(new(*catalog.Module), "Hdl", "AdminHdl"),
		wire.FieldsOf(new(*delivery.Module), "Hdl", "AdminHdl"),
		wire.FieldsOf(new(*supplier.Module), "Hdl", "PortalHdl", "AdminHdl"),
		wire.FieldsOf(new(*order.Module), "Hdl", "AdminHdl", "RecomputeJob"),
		wire.FieldsOf(new(*payment.Module), "Hdl", "AdminHdl", "SyncJob"),
		initGinxServer,
		InitAdminServer,
		initMQConsumers,
		initCronJobs,
	)
	return new(App), nil
}
