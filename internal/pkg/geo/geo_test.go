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

package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversine(t *testing.T) {
	paris := Point{Lat: 48.8566, Lon: 2.3522}
	lyon := Point{Lat: 45.7640, Lon: 4.8357}
	testCases := []struct {
		name string
		a    Point
		b    Point
		want float64
	}{
		{
			name: "同一个点",
			a:    paris,
			b:    paris,
			want: 0,
		},
		{
			name: "巴黎到里昂",
			a:    paris,
			b:    lyon,
			want: 391.5,
		},
		{
			name: "反向距离相同",
			a:    lyon,
			b:    paris,
			want: 391.5,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, Haversine(tc.a, tc.b), 1)
		})
	}
	assert.Equal(t, Haversine(paris, lyon), Haversine(lyon, paris))
}
