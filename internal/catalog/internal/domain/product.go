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

package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrProductNotFound   = errors.New("商品不存在")
	ErrInsufficientStock = errors.New("库存不足")
	ErrCategoryNotFound  = errors.New("分类不存在")
	ErrCategoryTooDeep   = errors.New("分类最多三级")
)

// DefaultTaxRate 法国食品以外商品的标准增值税率
const DefaultTaxRate = 20.0

type Product struct {
	ID              int64
	SN              string
	Name            string
	Description     string
	LongDescription string
	Origin          string
	Image           string
	// 不含税价格，单位分
	Price int64
	// 增值税率，百分比
	TaxRate float64
	Stock   int64
	// 单件重量，单位 kg
	Weight     float64
	CategoryID int64
	SupplierID int64
	Status     ProductStatus
	Ctime      int64
	Utime      int64
}

// PriceTTC 含税价格，四舍五入到分
func (p Product) PriceTTC() int64 {
	return PriceWithTax(p.Price, p.TaxRate)
}

func (p Product) Active() bool {
	return p.Status == ProductStatusActive
}

func PriceWithTax(price int64, taxRate float64) int64 {
	rate := decimal.NewFromFloat(taxRate).Div(decimal.NewFromInt(100)).Add(decimal.NewFromInt(1))
	return decimal.NewFromInt(price).Mul(rate).Round(0).IntPart()
}

type ProductStatus uint8

func (s ProductStatus) ToUint8() uint8 {
	return uint8(s)
}

const (
	ProductStatusUnknown ProductStatus = iota
	ProductStatusActive
	ProductStatusInactive
)

type ProductFilter struct {
	// 分类及其所有子分类
	CategoryIDs []int64
	SupplierID  int64
	Keyword     string
	Status      ProductStatus
}
