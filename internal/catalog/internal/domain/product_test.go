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

	"github.com/stretchr/testify/assert"
)

func TestPriceWithTax(t *testing.T) {
	testCases := []struct {
		name    string
		price   int64
		taxRate float64
		want    int64
	}{
		{name: "标准税率", price: 495, taxRate: 20, want: 594},
		{name: "食品税率", price: 199, taxRate: 5.5, want: 210},
		{name: "四舍五入", price: 333, taxRate: 5.5, want: 351},
		{name: "零税率", price: 1000, taxRate: 0, want: 1000},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, PriceWithTax(tc.price, tc.taxRate))
		})
	}
}

func TestBuildTree(t *testing.T) {
	categories := []Category{
		{ID: 1, Name: "Épicerie", Level: 1},
		{ID: 2, ParentID: 1, Name: "Conserves", Level: 2},
		{ID: 3, ParentID: 2, Name: "Légumes", Level: 3},
		{ID: 4, Name: "Frais", Level: 1},
		{ID: 5, ParentID: 99, Name: "孤儿", Level: 2},
	}
	tree := BuildTree(categories)
	assert.Len(t, tree, 2)
	assert.Equal(t, int64(1), tree[0].ID)
	assert.Len(t, tree[0].Children, 1)
	assert.Equal(t, int64(3), tree[0].Children[0].Children[0].ID)
	assert.Empty(t, tree[1].Children)
}

func TestDescendants(t *testing.T) {
	categories := []Category{
		{ID: 1, Level: 1},
		{ID: 2, ParentID: 1, Level: 2},
		{ID: 3, ParentID: 2, Level: 3},
		{ID: 4, ParentID: 2, Level: 3},
		{ID: 5, Level: 1},
	}
	assert.ElementsMatch(t, []int64{1, 2, 3, 4}, Descendants(categories, 1))
	assert.ElementsMatch(t, []int64{2, 3, 4}, Descendants(categories, 2))
	assert.ElementsMatch(t, []int64{5}, Descendants(categories, 5))
}
