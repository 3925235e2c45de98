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
	"github.com/ecodeclub/epicerie/internal/pkg/geo"
	"github.com/ecodeclub/epicerie/internal/user/internal/domain"
)

type RegisterReq struct {
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	Phone     string  `json:"phone"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Address   Address `json:"address"`
}

type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ChangePasswordReq struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

type Address struct {
	Street     string   `json:"street"`
	PostalCode string   `json:"postalCode"`
	City       string   `json:"city"`
	Country    string   `json:"country"`
	Lat        *float64 `json:"lat,omitempty"`
	Lon        *float64 `json:"lon,omitempty"`
}

func (a Address) location() *geo.Point {
	if a.Lat == nil || a.Lon == nil {
		return nil
	}
	return &geo.Point{Lat: *a.Lat, Lon: *a.Lon}
}

type EditReq struct {
	Phone     string  `json:"phone"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Address   Address `json:"address"`
}

type Profile struct {
	ID        int64   `json:"id"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Address   Address `json:"address"`
}

func newProfile(c domain.Client) Profile {
	res := Profile{
		ID:        c.ID,
		Email:     c.Email,
		Phone:     c.Phone,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Address: Address{
			Street:     c.Address.Street,
			PostalCode: c.Address.PostalCode,
			City:       c.Address.City,
			Country:    c.Address.Country,
		},
	}
	if c.Location != nil {
		lat, lon := c.Location.Lat, c.Location.Lon
		res.Address.Lat, res.Address.Lon = &lat, &lon
	}
	return res
}
