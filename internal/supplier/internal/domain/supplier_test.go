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
	"testing"

	"github.com/ecodeclub/epicerie/internal/pkg/geo"
	"github.com/stretchr/testify/assert"
)

func TestSupplier_CanDeliverTo(t *testing.T) {
	lyon := &geo.Point{Lat: 45.7640, Lon: 4.8357}
	villeurbanne := &geo.Point{Lat: 45.7719, Lon: 4.8902}
	paris := &geo.Point{Lat: 48.8566, Lon: 2.3522}
	radius := 20.0
	testCases := []struct {
		name     string
		supplier Supplier
		dst      Destination
		want     bool
	}{
		{
			name:     "全国配送",
			supplier: Supplier{Zone: Zone{Type: ZoneTypeNational}},
			dst:      Destination{},
			want:     true,
		},
		{
			name:     "省份匹配",
			supplier: Supplier{Zone: Zone{Type: ZoneTypeDepartments, Departments: []string{" 69", "75 "}}},
			dst:      Destination{PostalCode: "69003"},
			want:     true,
		},
		{
			name:     "省份不匹配",
			supplier: Supplier{Zone: Zone{Type: ZoneTypeDepartments, Departments: []string{"69"}}},
			dst:      Destination{PostalCode: "13001"},
			want:     false,
		},
		{
			name:     "省份缺少邮编",
			supplier: Supplier{Zone: Zone{Type: ZoneTypeDepartments, Departments: []string{"69"}}},
			dst:      Destination{City: "Lyon"},
			want:     false,
		},
		{
			name:     "城市忽略大小写",
			supplier: Supplier{Zone: Zone{Type: ZoneTypeCities, Cities: []string{"Lyon", " Villeurbanne"}}},
			dst:      Destination{City: "VILLEURBANNE"},
			want:     true,
		},
		{
			name:     "城市缺失",
			supplier: Supplier{Zone: Zone{Type: ZoneTypeCities, Cities: []string{"Lyon"}}},
			dst:      Destination{PostalCode: "69001"},
			want:     false,
		},
		{
			name:     "半径之内",
			supplier: Supplier{Location: lyon, Zone: Zone{Type: ZoneTypeRadius, RadiusKm: &radius}},
			dst:      Destination{Location: villeurbanne},
			want:     true,
		},
		{
			name:     "半径之外",
			supplier: Supplier{Location: lyon, Zone: Zone{Type: ZoneTypeRadius, RadiusKm: &radius}},
			dst:      Destination{Location: paris},
			want:     false,
		},
		{
			name:     "供应商没有坐标",
			supplier: Supplier{Zone: Zone{Type: ZoneTypeRadius, RadiusKm: &radius}},
			dst:      Destination{Location: villeurbanne},
			want:     false,
		},
		{
			name:     "收货地址没有坐标",
			supplier: Supplier{Location: lyon, Zone: Zone{Type: ZoneTypeRadius, RadiusKm: &radius}},
			dst:      Destination{PostalCode: "69100", City: "Villeurbanne"},
			want:     false,
		},
		{
			name:     "没有设置半径",
			supplier: Supplier{Location: lyon, Zone: Zone{Type: ZoneTypeRadius}},
			dst:      Destination{Location: lyon},
			want:     false,
		},
		{
			name:     "未知类型",
			supplier: Supplier{},
			dst:      Destination{PostalCode: "69001", City: "Lyon", Location: lyon},
			want:     false,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.supplier.CanDeliverTo(tc.dst))
		})
	}
}

func TestSupplier_DeliveryFee(t *testing.T) {
	threshold := int64(5000)
	s := Supplier{Fee: FeePolicy{BaseFee: 200, PerKmFee: 50, FreeThreshold: &threshold}}
	ten := 10.0
	testCases := []struct {
		name     string
		supplier Supplier
		subtotal int64
		distance *float64
		want     int64
	}{
		{
			name:     "达到包邮门槛",
			supplier: s,
			subtotal: 6000,
			distance: &ten,
			want:     0,
		},
		{
			name:     "刚好等于门槛",
			supplier: s,
			subtotal: 5000,
			want:     0,
		},
		{
			name:     "按距离计算",
			supplier: s,
			subtotal: 3000,
			distance: &ten,
			want:     700,
		},
		{
			name:     "距离未知只收起步价",
			supplier: s,
			subtotal: 3000,
			want:     200,
		},
		{
			name:     "没有包邮门槛",
			supplier: Supplier{Fee: FeePolicy{BaseFee: 200, PerKmFee: 50}},
			subtotal: 1000000,
			distance: &ten,
			want:     700,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.supplier.DeliveryFee(tc.subtotal, tc.distance))
		})
	}
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"69", "75", "13"}, SplitList(" 69, 75,,13 "))
	assert.Nil(t, SplitList("  "))
}
