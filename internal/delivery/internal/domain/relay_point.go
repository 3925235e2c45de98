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
	"sort"

	"github.com/ecodeclub/epicerie/internal/pkg/geo"
)

type RelayPoint struct {
	ID         int64
	Name       string
	Street     string
	PostalCode string
	City       string
	Country    string
	Location   geo.Point
	Active     bool
	Ctime      int64
	Utime      int64
}

type NearbyRelayPoint struct {
	RelayPoint
	DistanceKm float64
}

// Nearby 按距离升序返回半径内的自提点
func Nearby(points []RelayPoint, center geo.Point, radiusKm float64) []NearbyRelayPoint {
	res := make([]NearbyRelayPoint, 0, len(points))
	for _, p := range points {
		dist := geo.Haversine(center, p.Location)
		if dist <= radiusKm {
			res = append(res, NearbyRelayPoint{RelayPoint: p, DistanceKm: dist})
		}
	}
	sort.SliceStable(res, func(i, j int) bool {
		return res[i].DistanceKm < res[j].DistanceKm
	})
	return res
}
