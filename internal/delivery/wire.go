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

package delivery

import (
	"sync"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/epicerie/internal/delivery/internal/repository"
	"github.com/ecodeclub/epicerie/internal/delivery/internal/repository/cache"
	"github.com/ecodeclub/epicerie/internal/delivery/internal/repository/dao"
	"github.com/ecodeclub/epicerie/internal/delivery/internal/service"
	"github.com/ecodeclub/epicerie/internal/delivery/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, ec ecache.Cache) *Module {
	wire.Build(
		initCarrierDAO,
		initRelayPointDAO,
		cache.NewTariffECache,
		repository.NewCachedCarrierRepository,
		repository.NewRelayPointRepository,
		service.NewService,
		web.NewHandler,
		web.NewAdminHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) {
	once.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
}

func initCarrierDAO(db *egorm.Component) dao.CarrierDAO {
	InitTablesOnce(db)
	return dao.NewGORMCarrierDAO(db)
}

func initRelayPointDAO(db *egorm.Component) dao.RelayPointDAO {
	InitTablesOnce(db)
	return dao.NewGORMRelayPointDAO(db)
}
