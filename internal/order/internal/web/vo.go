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

package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/epicerie/internal/order/internal/domain"
)

type IDReq struct {
	ID int64 `json:"id"`
}

type SNReq struct {
	SN string `json:"sn"`
}

type Page struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

// limit 默认取 20 条，最多 100 条
func (p Page) limit() int {
	switch {
	case p.Limit <= 0:
		return 20
	case p.Limit > 100:
		return 100
	default:
		return p.Limit
	}
}

type ItemReq struct {
	ProductID int64 `json:"productId"`
	Quantity  int64 `json:"quantity"`
}

type PreviewReq struct {
	CarrierID int64 `json:"carrierId"`
}

type CreateOrderReq struct {
	// RequestID 客户端生成，用于防止重复下单
	RequestID    string `json:"requestId"`
	CarrierID    int64  `json:"carrierId"`
	RelayPointID int64  `json:"relayPointId"`
}

type ListOrderReq struct {
	Page
	// Status 为 0 时不过滤
	Status uint8 `json:"status"`
}

type UpdateLineStatusReq struct {
	OrderID int64 `json:"orderId"`
	LineID  int64 `json:"lineId"`
	Status  uint8 `json:"status"`
}

type Line struct {
	ID          int64   `json:"id"`
	ProductID   int64   `json:"productId"`
	SupplierID  int64   `json:"supplierId"`
	ProductSN   string  `json:"productSN"`
	ProductName string  `json:"productName"`
	Price       int64   `json:"price"`
	PriceTTC    int64   `json:"priceTTC"`
	TaxRate     float64 `json:"taxRate"`
	Weight      float64 `json:"weight"`
	Quantity    int64   `json:"quantity"`
	Subtotal    int64   `json:"subtotal"`
	Status      uint8   `json:"status"`
	StatusName  string  `json:"statusName"`
}

func newLine(l domain.CartLine) Line {
	return Line{
		ID:          l.ID,
		ProductID:   l.ProductID,
		SupplierID:  l.SupplierID,
		ProductSN:   l.ProductSN,
		ProductName: l.ProductName,
		Price:       l.Price,
		PriceTTC:    l.PriceTTC,
		TaxRate:     l.TaxRate,
		Weight:      l.Weight,
		Quantity:    l.Quantity,
		Subtotal:    l.Subtotal(),
		Status:      l.Status.ToUint8(),
		StatusName:  l.Status.String(),
	}
}

func newLines(ls []domain.CartLine) []Line {
	return slice.Map(ls, func(idx int, src domain.CartLine) Line {
		return newLine(src)
	})
}

type SupplierGroup struct {
	SupplierID int64  `json:"supplierId"`
	Subtotal   int64  `json:"subtotal"`
	Lines      []Line `json:"lines"`
}

type Cart struct {
	ID          int64           `json:"id"`
	TotalHT     int64           `json:"totalHT"`
	TotalTTC    int64           `json:"totalTTC"`
	TotalWeight float64         `json:"totalWeight"`
	ItemCount   int64           `json:"itemCount"`
	Groups      []SupplierGroup `json:"groups"`
}

func newCart(s domain.CartSummary) Cart {
	return Cart{
		ID:          s.Cart.ID,
		TotalHT:     s.TotalHT,
		TotalTTC:    s.TotalTTC,
		TotalWeight: s.TotalWeight,
		ItemCount:   s.ItemCount,
		Groups: slice.Map(s.Groups, func(idx int, src domain.SupplierGroup) SupplierGroup {
			return SupplierGroup{
				SupplierID: src.SupplierID,
				Subtotal:   src.Subtotal,
				Lines:      newLines(src.Lines),
			}
		}),
	}
}

type Shipping struct {
	CarrierID   int64  `json:"carrierId"`
	CarrierName string `json:"carrierName"`
	TariffID    int64  `json:"tariffId"`
	Price       int64  `json:"price"`
}

type Preview struct {
	Cart       Cart      `json:"cart"`
	Shipping   *Shipping `json:"shipping,omitempty"`
	GrandTotal int64     `json:"grandTotal"`
}

func newPreview(p domain.Preview) Preview {
	res := Preview{
		Cart:       newCart(p.Summary),
		GrandTotal: p.GrandTotal,
	}
	if p.Shipping != nil {
		res.Shipping = &Shipping{
			CarrierID:   p.Shipping.CarrierID,
			CarrierName: p.Shipping.CarrierName,
			TariffID:    p.Shipping.TariffID,
			Price:       p.Shipping.Price,
		}
	}
	return res
}

type Order struct {
	ID           int64   `json:"id"`
	SN           string  `json:"sn"`
	ClientID     int64   `json:"clientId"`
	CarrierID    int64   `json:"carrierId"`
	RelayPointID int64   `json:"relayPointId"`
	Total        int64   `json:"total"`
	Shipping     int64   `json:"shipping"`
	Status       uint8   `json:"status"`
	StatusName   string  `json:"statusName"`
	Progress     float64 `json:"progress"`
	Generation   int64   `json:"generation"`
	PaymentSN    string  `json:"paymentSN,omitempty"`
	Lines        []Line  `json:"lines,omitempty"`
	Ctime        int64   `json:"ctime"`
	Utime        int64   `json:"utime"`
}

func newOrder(o domain.Order) Order {
	return Order{
		ID:           o.ID,
		SN:           o.SN,
		ClientID:     o.ClientID,
		CarrierID:    o.CarrierID,
		RelayPointID: o.RelayPointID,
		Total:        o.Total,
		Shipping:     o.Shipping,
		Status:       o.Status.ToUint8(),
		StatusName:   o.Status.String(),
		Progress:     o.Progress,
		Generation:   o.Generation,
		PaymentSN:    o.PaymentSN,
		Lines:        newLines(o.Lines),
		Ctime:        o.Ctime,
		Utime:        o.Utime,
	}
}

type OrderList struct {
	Total  int64   `json:"total"`
	Orders []Order `json:"orders"`
}

func newOrderList(os []domain.Order, total int64) OrderList {
	return OrderList{
		Total: total,
		Orders: slice.Map(os, func(idx int, src domain.Order) Order {
			return newOrder(src)
		}),
	}
}

type History struct {
	ID          int64                `json:"id"`
	OrderID     int64                `json:"orderId"`
	Generation  int64                `json:"generation"`
	Kind        string               `json:"kind"`
	OrderSN     string               `json:"orderSN"`
	ClientName  string               `json:"clientName"`
	ClientEmail string               `json:"clientEmail"`
	ClientPhone string               `json:"clientPhone"`
	CarrierName string               `json:"carrierName"`
	RelayPoint  string               `json:"relayPoint"`
	Status      string               `json:"status"`
	Total       int64                `json:"total"`
	OrderCtime  int64                `json:"orderCtime"`
	Lines       []domain.HistoryLine `json:"lines"`
	Ctime       int64                `json:"ctime"`
}

func newHistories(hs []domain.History) []History {
	return slice.Map(hs, func(idx int, src domain.History) History {
		return History{
			ID:          src.ID,
			OrderID:     src.OrderID,
			Generation:  src.Generation,
			Kind:        src.Kind.String(),
			OrderSN:     src.OrderSN,
			ClientName:  src.ClientName,
			ClientEmail: src.ClientEmail,
			ClientPhone: src.ClientPhone,
			CarrierName: src.CarrierName,
			RelayPoint:  src.RelayPoint,
			Status:      src.Status.String(),
			Total:       src.Total,
			OrderCtime:  src.OrderCtime,
			Lines:       src.Lines,
			Ctime:       src.Ctime,
		}
	})
}
