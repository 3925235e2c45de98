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
	"github.com/ecodeclub/epicerie/internal/delivery/internal/domain"
	"github.com/ecodeclub/epicerie/internal/pkg/geo"
)

type IDReq struct {
	ID int64 `json:"id"`
}

type Carrier struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Phone       string   `json:"phone"`
	Email       string   `json:"email"`
	Address     string   `json:"address"`
	ServiceType string   `json:"serviceType"`
	Tariffs     []Tariff `json:"tariffs,omitempty"`
}

func newCarrier(c domain.Carrier) Carrier {
	return Carrier{
		ID:          c.ID,
		Name:        c.Name,
		Phone:       c.Phone,
		Email:       c.Email,
		Address:     c.Address,
		ServiceType: string(c.ServiceType),
		Tariffs:     slice.Map(c.Tariffs, func(idx int, src domain.Tariff) Tariff { return newTariff(src) }),
	}
}

func (c Carrier) toDomain() domain.Carrier {
	return domain.Carrier{
		ID:          c.ID,
		Name:        c.Name,
		Phone:       c.Phone,
		Email:       c.Email,
		Address:     c.Address,
		ServiceType: domain.ServiceType(c.ServiceType),
	}
}

type Tariff struct {
	ID        int64   `json:"id"`
	CarrierID int64   `json:"carrierId"`
	MinWeight float64 `json:"minWeight"`
	MaxWeight float64 `json:"maxWeight"`
	Price     int64   `json:"price"`
	PriceTTC  int64   `json:"priceTTC"`
}

func newTariff(t domain.Tariff) Tariff {
	return Tariff{
		ID:        t.ID,
		CarrierID: t.CarrierID,
		MinWeight: t.MinWeight,
		MaxWeight: t.MaxWeight,
		Price:     t.Price,
		PriceTTC:  t.PriceTTC,
	}
}

type QuoteReq struct {
	CarrierID int64   `json:"carrierId"`
	Weight    float64 `json:"weight"`
}

type Quote struct {
	CarrierID   int64   `json:"carrierId"`
	CarrierName string  `json:"carrierName"`
	TariffID    int64   `json:"tariffId"`
	Weight      float64 `json:"weight"`
	Price       int64   `json:"price"`
}

type RelayPoint struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Street     string  `json:"street"`
	PostalCode string  `json:"postalCode"`
	City       string  `json:"city"`
	Country    string  `json:"country"`
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
	Active     bool    `json:"active"`
	DistanceKm float64 `json:"distanceKm,omitempty"`
}

func newRelayPoint(r domain.RelayPoint) RelayPoint {
	return RelayPoint{
		ID:         r.ID,
		Name:       r.Name,
		Street:     r.Street,
		PostalCode: r.PostalCode,
		City:       r.City,
		Country:    r.Country,
		Lat:        r.Location.Lat,
		Lon:        r.Location.Lon,
		Active:     r.Active,
	}
}

func (r RelayPoint) toDomain() domain.RelayPoint {
	return domain.RelayPoint{
		ID:         r.ID,
		Name:       r.Name,
		Street:     r.Street,
		PostalCode: r.PostalCode,
		City:       r.City,
		Country:    r.Country,
		Location:   geo.Point{Lat: r.Lat, Lon: r.Lon},
		Active:     r.Active,
	}
}

type ListRelayPointReq struct {
	PostalCode string `json:"postalCode"`
	City       string `json:"city"`
}

type NearbyReq struct {
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	RadiusKm float64 `json:"radiusKm"`
}
