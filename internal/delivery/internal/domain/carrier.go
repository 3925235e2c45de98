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
	"sort"

	"github.com/shopspring/decimal"
)

var (
	ErrCarrierNotFound    = errors.New("承运商不存在")
	ErrNoApplicableTariff = errors.New("没有匹配该重量的运费")
	ErrInvalidTariff      = errors.New("运费区间不合法")
	ErrRelayPointNotFound = errors.New("自提点不存在")
)

// DefaultTariffTaxRate 运费的增值税税率
const DefaultTariffTaxRate = 20.0

type ServiceType string

const (
	ServiceTypeStandard ServiceType = "standard"
	ServiceTypeExpress  ServiceType = "express"
)

type Carrier struct {
	ID          int64
	Name        string
	Phone       string
	Email       string
	Address     string
	ServiceType ServiceType
	// 按照最小重量升序
	Tariffs []Tariff
	Ctime   int64
	Utime   int64
}

// Tariff 重量区间运费，单位 kg，价格单位分
type Tariff struct {
	ID        int64
	CarrierID int64
	MinWeight float64
	MaxWeight float64
	Price     int64
	PriceTTC  int64
}

func (t Tariff) Contains(weight float64) bool {
	return t.MinWeight <= weight && weight <= t.MaxWeight
}

func (t Tariff) Valid() bool {
	return t.MinWeight >= 0 && t.MinWeight <= t.MaxWeight && t.Price >= 0
}

// WithTax 没有设置含税价格时按默认税率计算
func (t Tariff) WithTax() Tariff {
	if t.PriceTTC == 0 && t.Price > 0 {
		t.PriceTTC = decimal.NewFromInt(t.Price).
			Mul(decimal.NewFromFloat(1 + DefaultTariffTaxRate/100)).
			Round(0).IntPart()
	}
	return t
}

// Lookup 返回第一个包含该重量的区间
func Lookup(tariffs []Tariff, weight float64) (Tariff, error) {
	bands := make([]Tariff, len(tariffs))
	copy(bands, tariffs)
	sort.SliceStable(bands, func(i, j int) bool {
		return bands[i].MinWeight < bands[j].MinWeight
	})
	for _, b := range bands {
		if b.Contains(weight) {
			return b, nil
		}
	}
	return Tariff{}, ErrNoApplicableTariff
}

type Quote struct {
	CarrierID   int64
	CarrierName string
	TariffID    int64
	Weight      float64
	// 对外报价使用含税价格
	Price int64
}
