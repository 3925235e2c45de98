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
	"github.com/ecodeclub/epicerie/internal/catalog"
	"github.com/ecodeclub/epicerie/internal/order"
	"github.com/ecodeclub/epicerie/internal/pkg/geo"
	"github.com/ecodeclub/epicerie/internal/supplier/internal/domain"
)

type IDReq struct {
	ID int64 `json:"id"`
}

type Page struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

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

type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ChangePasswordReq struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

type CheckDeliveryReq struct {
	SupplierID int64    `json:"supplierId"`
	PostalCode string   `json:"postalCode"`
	City       string   `json:"city"`
	Lat        *float64 `json:"lat,omitempty"`
	Lon        *float64 `json:"lon,omitempty"`
	// 含税小计，单位分
	Subtotal int64 `json:"subtotal"`
}

func (r CheckDeliveryReq) destination() domain.Destination {
	res := domain.Destination{PostalCode: r.PostalCode, City: r.City}
	if r.Lat != nil && r.Lon != nil {
		res.Location = &geo.Point{Lat: *r.Lat, Lon: *r.Lon}
	}
	return res
}

type DeliveryCheck struct {
	Eligible   bool     `json:"eligible"`
	DistanceKm *float64 `json:"distanceKm,omitempty"`
	Fee        int64    `json:"fee"`
}

type Address struct {
	Street     string   `json:"street"`
	PostalCode string   `json:"postalCode"`
	City       string   `json:"city"`
	Country    string   `json:"country"`
	Lat        *float64 `json:"lat,omitempty"`
	Lon        *float64 `json:"lon,omitempty"`
}

type Zone struct {
	Type        string   `json:"type"`
	Departments []string `json:"departments,omitempty"`
	Cities      []string `json:"cities,omitempty"`
	RadiusKm    *float64 `json:"radiusKm,omitempty"`
}

type Fee struct {
	BaseFee       int64  `json:"baseFee"`
	PerKmFee      int64  `json:"perKmFee"`
	FreeThreshold *int64 `json:"freeThreshold,omitempty"`
}

type Supplier struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Trade          string  `json:"trade"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	Address        Address `json:"address"`
	Description    string  `json:"description"`
	ProductionType string  `json:"productionType"`
	LeadTimeDays   int     `json:"leadTimeDays"`
	DeliveryDays   string  `json:"deliveryDays"`
	Zone           Zone    `json:"zone"`
	Fee            Fee     `json:"fee"`
}

func newSupplier(s domain.Supplier) Supplier {
	res := Supplier{
		ID:    s.ID,
		Name:  s.Name,
		Trade: s.Trade,
		Email: s.Email,
		Phone: s.Phone,
		Address: Address{
			Street:     s.Address.Street,
			PostalCode: s.Address.PostalCode,
			City:       s.Address.City,
			Country:    s.Address.Country,
		},
		Description:    s.Description,
		ProductionType: s.ProductionType,
		LeadTimeDays:   s.LeadTimeDays,
		DeliveryDays:   s.DeliveryDays,
		Zone: Zone{
			Type:        string(s.Zone.Type),
			Departments: s.Zone.Departments,
			Cities:      s.Zone.Cities,
			RadiusKm:    s.Zone.RadiusKm,
		},
		Fee: Fee{
			BaseFee:       s.Fee.BaseFee,
			PerKmFee:      s.Fee.PerKmFee,
			FreeThreshold: s.Fee.FreeThreshold,
		},
	}
	if s.Location != nil {
		lat, lon := s.Location.Lat, s.Location.Lon
		res.Address.Lat, res.Address.Lon = &lat, &lon
	}
	return res
}

func (s Supplier) toDomain() domain.Supplier {
	res := domain.Supplier{
		ID:    s.ID,
		Name:  s.Name,
		Trade: s.Trade,
		Email: s.Email,
		Phone: s.Phone,
		Address: domain.Address{
			Street:     s.Address.Street,
			PostalCode: s.Address.PostalCode,
			City:       s.Address.City,
			Country:    s.Address.Country,
		},
		Description:    s.Description,
		ProductionType: s.ProductionType,
		LeadTimeDays:   s.LeadTimeDays,
		DeliveryDays:   s.DeliveryDays,
		Zone: domain.Zone{
			Type:        domain.ZoneType(s.Zone.Type),
			Departments: s.Zone.Departments,
			Cities:      s.Zone.Cities,
			RadiusKm:    s.Zone.RadiusKm,
		},
		Fee: domain.FeePolicy{
			BaseFee:       s.Fee.BaseFee,
			PerKmFee:      s.Fee.PerKmFee,
			FreeThreshold: s.Fee.FreeThreshold,
		},
	}
	if s.Address.Lat != nil && s.Address.Lon != nil {
		res.Location = &geo.Point{Lat: *s.Address.Lat, Lon: *s.Address.Lon}
	}
	return res
}

type SaveSupplierReq struct {
	Supplier Supplier `json:"supplier"`
	// 只在新建时使用
	Password string `json:"password"`
}

type SupplierList struct {
	List  []Supplier `json:"list"`
	Total int64      `json:"total"`
}

type Dashboard struct {
	ProductCount       int64 `json:"productCount"`
	ActiveProductCount int64 `json:"activeProductCount"`
	OrderCount         int64 `json:"orderCount"`
	InFlightOrderCount int64 `json:"inFlightOrderCount"`
	DoneOrderCount     int64 `json:"doneOrderCount"`
}

type ListProductReq struct {
	Page
	Keyword    string `json:"keyword"`
	ActiveOnly bool   `json:"activeOnly"`
}

type Product struct {
	ID          int64   `json:"id"`
	SN          string  `json:"sn"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Origin      string  `json:"origin"`
	Image       string  `json:"image"`
	Price       int64   `json:"price"`
	PriceTTC    int64   `json:"priceTTC"`
	TaxRate     float64 `json:"taxRate"`
	Stock       int64   `json:"stock"`
	Weight      float64 `json:"weight"`
	CategoryID  int64   `json:"categoryId"`
	Status      uint8   `json:"status"`
}

func newProduct(p catalog.Product) Product {
	return Product{
		ID:          p.ID,
		SN:          p.SN,
		Name:        p.Name,
		Description: p.Description,
		Origin:      p.Origin,
		Image:       p.Image,
		Price:       p.Price,
		PriceTTC:    p.PriceTTC(),
		TaxRate:     p.TaxRate,
		Stock:       p.Stock,
		Weight:      p.Weight,
		CategoryID:  p.CategoryID,
		Status:      p.Status.ToUint8(),
	}
}

func (p Product) toDomain() catalog.Product {
	taxRate := p.TaxRate
	if taxRate == 0 {
		taxRate = catalog.DefaultTaxRate
	}
	return catalog.Product{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Origin:      p.Origin,
		Image:       p.Image,
		Price:       p.Price,
		TaxRate:     taxRate,
		Stock:       p.Stock,
		Weight:      p.Weight,
		CategoryID:  p.CategoryID,
		Status:      catalog.ProductStatus(p.Status),
	}
}

type ProductList struct {
	List  []Product `json:"list"`
	Total int64     `json:"total"`
}

type ListOrderReq struct {
	Page
	Status uint8 `json:"status"`
}

type UpdateLineStatusReq struct {
	OrderID int64 `json:"orderId"`
	LineID  int64 `json:"lineId"`
	Status  uint8 `json:"status"`
}

type OrderLine struct {
	ID          int64  `json:"id"`
	ProductID   int64  `json:"productId"`
	ProductName string `json:"productName"`
	Quantity    int64  `json:"quantity"`
	Subtotal    int64  `json:"subtotal"`
	Status      uint8  `json:"status"`
}

type Order struct {
	ID       int64       `json:"id"`
	SN       string      `json:"sn"`
	Status   uint8       `json:"status"`
	Progress float64     `json:"progress"`
	Lines    []OrderLine `json:"lines"`
	Ctime    int64       `json:"ctime"`
}

func newOrder(o order.Order) Order {
	return Order{
		ID:       o.ID,
		SN:       o.SN,
		Status:   o.Status.ToUint8(),
		Progress: o.Progress,
		Lines: slice.Map(o.Lines, func(idx int, src order.CartLine) OrderLine {
			return OrderLine{
				ID:          src.ID,
				ProductID:   src.ProductID,
				ProductName: src.ProductName,
				Quantity:    src.Quantity,
				Subtotal:    src.Subtotal(),
				Status:      src.Status.ToUint8(),
			}
		}),
		Ctime: o.Ctime,
	}
}

type OrderList struct {
	List  []Order `json:"list"`
	Total int64   `json:"total"`
}
