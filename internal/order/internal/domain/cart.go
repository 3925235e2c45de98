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
)

var (
	ErrCartNotFound      = errors.New("购物车不存在")
	ErrEmptyCart         = errors.New("购物车为空")
	ErrInvalidQuantity   = errors.New("数量必须大于 0")
	ErrProductInactive   = errors.New("商品已下架")
	ErrInsufficientStock = errors.New("库存不足")
	ErrLineNotFound      = errors.New("购物车行不存在")
	ErrCartNotActive     = errors.New("购物车已经下单")
)

type CartStatus uint8

func (s CartStatus) ToUint8() uint8 {
	return uint8(s)
}

const (
	CartStatusUnknown CartStatus = iota
	CartStatusActive
	// CartStatusDone 已经转为订单，不允许再修改
	CartStatusDone
)

type Cart struct {
	ID       int64
	ClientID int64
	Status   CartStatus
	Lines    []CartLine
	Ctime    int64
	Utime    int64
}

func (c Cart) Empty() bool {
	return len(c.Lines) == 0
}

func (c Cart) FindLineByProduct(productID int64) (CartLine, bool) {
	for _, l := range c.Lines {
		if l.ProductID == productID {
			return l, true
		}
	}
	return CartLine{}, false
}

func (c Cart) FindLine(lineID int64) (CartLine, bool) {
	for _, l := range c.Lines {
		if l.ID == lineID {
			return l, true
		}
	}
	return CartLine{}, false
}

// CartLine 购物车行，同时也是订单行，名称价格等字段在加入购物车时从商品冗余过来
type CartLine struct {
	ID          int64
	CartID      int64
	ProductID   int64
	SupplierID  int64
	ProductSN   string
	ProductName string
	// 不含税单价，单位分
	Price int64
	// 含税单价，单位分
	PriceTTC int64
	TaxRate  float64
	// 单件重量，单位 kg
	Weight   float64
	Quantity int64
	Status   LineStatus
	Ctime    int64
	Utime    int64
}

func (l CartLine) Subtotal() int64 {
	return l.Quantity * l.PriceTTC
}

func (l CartLine) SubtotalHT() int64 {
	return l.Quantity * l.Price
}

func (l CartLine) TotalWeight() float64 {
	return float64(l.Quantity) * l.Weight
}

type SupplierGroup struct {
	SupplierID int64
	Lines      []CartLine
	// 含税小计
	Subtotal int64
}

type CartSummary struct {
	Cart        Cart
	TotalHT     int64
	TotalTTC    int64
	TotalWeight float64
	ItemCount   int64
	Groups      []SupplierGroup
}

// Summarize 汇总金额与重量，并按供应商分组，分组按供应商 ID 升序
func (c Cart) Summarize() CartSummary {
	res := CartSummary{Cart: c}
	groups := make(map[int64]*SupplierGroup, len(c.Lines))
	for _, l := range c.Lines {
		res.TotalHT += l.SubtotalHT()
		res.TotalTTC += l.Subtotal()
		res.TotalWeight += l.TotalWeight()
		res.ItemCount += l.Quantity
		g, ok := groups[l.SupplierID]
		if !ok {
			g = &SupplierGroup{SupplierID: l.SupplierID}
			groups[l.SupplierID] = g
		}
		g.Lines = append(g.Lines, l)
		g.Subtotal += l.Subtotal()
	}
	res.Groups = make([]SupplierGroup, 0, len(groups))
	for _, g := range groups {
		res.Groups = append(res.Groups, *g)
	}
	sort.Slice(res.Groups, func(i, j int) bool {
		return res.Groups[i].SupplierID < res.Groups[j].SupplierID
	})
	return res
}

type Shipping struct {
	CarrierID   int64
	CarrierName string
	TariffID    int64
	// 含税运费
	Price int64
}

type Preview struct {
	Summary CartSummary
	// 没有选择承运商时为 nil
	Shipping   *Shipping
	GrandTotal int64
}
