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

package catalog

import (
	"context"
	"sync"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/epicerie/internal/catalog/internal/consumer"
	"github.com/ecodeclub/epicerie/internal/catalog/internal/event"
	"github.com/ecodeclub/epicerie/internal/catalog/internal/repository"
	"github.com/ecodeclub/epicerie/internal/catalog/internal/repository/cache"
	"github.com/ecodeclub/epicerie/internal/catalog/internal/repository/dao"
	"github.com/ecodeclub/epicerie/internal/catalog/internal/service"
	"github.com/ecodeclub/epicerie/internal/catalog/internal/web"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/olivere/elastic/v7"
)

var ProviderSet = wire.NewSet(
	initProductDAO,
	initCategoryDAO,
	initSearchDAO,
	cache.NewCategoryECache,
	repository.NewProductRepository,
	repository.NewCachedCategoryRepository,
	event.NewProductSyncProducer,
	service.NewService,
	service.NewCategoryService,
)

func InitModule(db *egorm.Component, ec ecache.Cache, q mq.MQ, es *elastic.Client) (*Module, error) {
	wire.Build(
		ProviderSet,
		web.NewHandler,
		web.NewAdminHandler,
		consumer.NewSyncConsumer,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var (
	tableOnce = &sync.Once{}
	indexOnce = &sync.Once{}
)

func InitTablesOnce(db *egorm.Component) {
	tableOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
}

func InitIndexOnce(es *elastic.Client) {
	indexOnce.Do(func() {
		err := dao.InitIndex(context.Background(), es)
		if err != nil {
			panic(err)
		}
	})
}

func initProductDAO(db *egorm.Component) dao.ProductDAO {
	InitTablesOnce(db)
	return dao.NewGORMProductDAO(db)
}

func initCategoryDAO(db *egorm.Component) dao.CategoryDAO {
	InitTablesOnce(db)
	return dao.NewGORMCategoryDAO(db)
}

func initSearchDAO(es *elastic.Client) dao.ProductSearchDAO {
	InitIndexOnce(es)
	return dao.NewProductElasticDAO(es)
}
