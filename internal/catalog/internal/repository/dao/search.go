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

package dao

import (
	"context"
	_ "embed"
	"encoding/json"
	"strconv"

	"github.com/olivere/elastic/v7"
)

const ProductIndexName = "product_index"

//go:embed product_index.json
var productIndex string

// ProductDocument ES 中的商品文档
type ProductDocument struct {
	ID          int64   `json:"id"`
	SN          string  `json:"sn"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Origin      string  `json:"origin"`
	Image       string  `json:"image"`
	CategoryID  int64   `json:"categoryId"`
	SupplierID  int64   `json:"supplierId"`
	Price       int64   `json:"price"`
	TaxRate     float64 `json:"taxRate"`
	Status      uint8   `json:"status"`
	Utime       int64   `json:"utime"`
}

type ProductSearchDAO interface {
	Index(ctx context.Context, doc ProductDocument) error
	Search(ctx context.Context, keyword string, status uint8, offset, limit int) ([]ProductDocument, error)
}

type productElasticDAO struct {
	client *elastic.Client
}

func NewProductElasticDAO(client *elastic.Client) ProductSearchDAO {
	return &productElasticDAO{client: client}
}

// InitIndex 索引可能已经建好了
func InitIndex(ctx context.Context, client *elastic.Client) error {
	ok, err := client.IndexExists(ProductIndexName).Do(ctx)
	if err != nil || ok {
		return err
	}
	_, err = client.CreateIndex(ProductIndexName).Body(productIndex).Do(ctx)
	return err
}

func (d *productElasticDAO) Index(ctx context.Context, doc ProductDocument) error {
	_, err := d.client.Index().
		Index(ProductIndexName).
		Id(strconv.FormatInt(doc.ID, 10)).
		BodyJson(doc).
		Do(ctx)
	return err
}

func (d *productElasticDAO) Search(ctx context.Context, keyword string, status uint8, offset, limit int) ([]ProductDocument, error) {
	query := elastic.NewBoolQuery().
		Must(elastic.NewMultiMatchQuery(keyword, "name^3", "description", "origin")).
		Filter(elastic.NewTermQuery("status", status))
	resp, err := d.client.Search(ProductIndexName).
		Query(query).
		From(offset).
		Size(limit).
		Do(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]ProductDocument, 0, len(resp.Hits.Hits))
	for _, hit := range resp.Hits.Hits {
		var doc ProductDocument
		if err = json.Unmarshal(hit.Source, &doc); err != nil {
			return nil, err
		}
		res = append(res, doc)
	}
	return res, nil
}
