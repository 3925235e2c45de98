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

package testioc

import (
	"fmt"
	"time"

	"github.com/gotomicro/ego/core/econf"
	"github.com/olivere/elastic/v7"
)

var esClient *elastic.Client

// InitES 读取 local.yaml 中的 es.url，未配置时连本机
func InitES() *elastic.Client {
	if esClient != nil {
		return esClient
	}
	if err := loadConfig(); err != nil {
		panic(err)
	}
	url := econf.GetString("es.url")
	if url == "" {
		url = "http://127.0.0.1:9200"
	}
	client, err := elastic.NewClient(
		elastic.SetURL(url),
		elastic.SetSniff(false),
		elastic.SetHealthcheckTimeoutStartup(10*time.Second),
	)
	if err != nil {
		panic(fmt.Errorf("连接 ES 失败 %w", err))
	}
	esClient = client
	return client
}
