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

package supplier

import (
	"sync"

	"github.com/ecodeclub/epicerie/internal/catalog"
	"github.com/ecodeclub/epicerie/internal/order"
	"github.com/ecodeclub/epicerie/internal/supplier/internal/repository"
	"github.com/ecodeclub/epicerie/internal/supplier/internal/repository/dao"
	"github.com/ecodeclub/epicerie/internal/supplier/internal/service"
	"github.com/ecodeclub/epicerie/internal/supplier/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, catalogModule *catalog.Module, orderModule *order.Module) *Module {
	wire.Build(
		initDAO,
		repository.NewSupplierRepository,
		service.NewService,
		wire.FieldsOf(new(*catalog.Module), "Svc"),
		wire.FieldsOf(new(*order.Module), "Svc"),
		service.NewPortalService,
		web.NewHandler,
		web.NewPortalHandler,
		web.NewAdminHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}

var once = &sync.Once{}

func initDAO(db *egorm.Component) dao.SupplierDAO {
	once.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMSupplierDAO(db)
}
