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

func linesOf(statuses ...LineStatus) []CartLine {
	res := make([]CartLine, 0, len(statuses))
	for i, s := range statuses {
		res = append(res, CartLine{ID: int64(i + 1), Status: s, Quantity: 1})
	}
	return res
}

func TestAggregate(t *testing.T) {
	testCases := []struct {
		name         string
		lines        []CartLine
		wantStatus   OrderStatus
		wantProgress float64
	}{
		{
			name:         "没有订单行",
			wantStatus:   OrderStatusPending,
			wantProgress: 0,
		},
		{
			name:         "单行完成",
			lines:        linesOf(LineStatusDone),
			wantStatus:   OrderStatusDone,
			wantProgress: 100,
		},
		{
			name:         "全部完成",
			lines:        linesOf(LineStatusDone, LineStatusDone, LineStatusDone),
			wantStatus:   OrderStatusDone,
			wantProgress: 100,
		},
		{
			name:         "有配送中",
			lines:        linesOf(LineStatusDone, LineStatusOutForDelivery, LineStatusPending),
			wantStatus:   OrderStatusOutForDelivery,
			wantProgress: 55.33,
		},
		{
			name:         "有准备中",
			lines:        linesOf(LineStatusPreparing, LineStatusPending),
			wantStatus:   OrderStatusInProgress,
			wantProgress: 25,
		},
		{
			name:         "全部待处理",
			lines:        linesOf(LineStatusPending, LineStatusPending),
			wantStatus:   OrderStatusPending,
			wantProgress: 0,
		},
		{
			name:         "完成与待处理",
			lines:        linesOf(LineStatusDone, LineStatusPending),
			wantStatus:   OrderStatusPending,
			wantProgress: 50,
		},
		{
			name:         "全部已入库",
			lines:        linesOf(LineStatusInStock, LineStatusInStock),
			wantStatus:   OrderStatusInProgress,
			wantProgress: 0,
		},
		{
			name:         "未知状态权重为0",
			lines:        linesOf(LineStatusUnknown, LineStatusDone),
			wantStatus:   OrderStatusInProgress,
			wantProgress: 50,
		},
		{
			name:         "三分之二",
			lines:        linesOf(LineStatusDone, LineStatusDone, LineStatusPending),
			wantStatus:   OrderStatusPending,
			wantProgress: 66.67,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, progress := Aggregate(tc.lines)
			assert.Equal(t, tc.wantStatus, status)
			assert.Equal(t, tc.wantProgress, progress)
		})
	}
}

func TestAggregate_ProgressIsMeanOfWeights(t *testing.T) {
	all := []LineStatus{LineStatusPending, LineStatusPreparing, LineStatusOutForDelivery, LineStatusDone}
	// 枚举长度不超过 3 的所有组合
	var combos [][]LineStatus
	var gen func(prefix []LineStatus, n int)
	gen = func(prefix []LineStatus, n int) {
		if len(prefix) > 0 {
			combos = append(combos, append([]LineStatus(nil), prefix...))
		}
		if n == 0 {
			return
		}
		for _, s := range all {
			gen(append(prefix, s), n-1)
		}
	}
	gen(nil, 3)

	for _, c := range combos {
		var sum int64
		for _, s := range c {
			sum += s.Weight()
		}
		want := float64(sum) / float64(len(c))
		status, progress := Aggregate(linesOf(c...))
		assert.InDelta(t, want, progress, 0.005)
		assert.GreaterOrEqual(t, progress, 0.0)
		assert.LessOrEqual(t, progress, 100.0)
		if progress == 100 {
			assert.Equal(t, OrderStatusDone, status)
		}
	}
}

func TestOrder_LinesOf(t *testing.T) {
	o := Order{Lines: []CartLine{
		{ID: 1, SupplierID: 1},
		{ID: 2, SupplierID: 2},
		{ID: 3, SupplierID: 1},
	}}
	lines := o.LinesOf(1)
	assert.Len(t, lines, 2)
	assert.Equal(t, int64(1), lines[0].ID)
	assert.Equal(t, int64(3), lines[1].ID)
	assert.Empty(t, o.LinesOf(3))
}

func TestOrder_AllLinesDone(t *testing.T) {
	assert.False(t, Order{}.AllLinesDone())
	assert.True(t, Order{Lines: linesOf(LineStatusDone, LineStatusDone)}.AllLinesDone())
	assert.False(t, Order{Lines: linesOf(LineStatusDone, LineStatusInStock)}.AllLinesDone())
}

func TestCart_Summarize(t *testing.T) {
	c := Cart{ID: 1, Lines: []CartLine{
		{ProductID: 1, SupplierID: 2, Price: 1000, PriceTTC: 1200, Weight: 0.5, Quantity: 2},
		{ProductID: 2, SupplierID: 1, Price: 250, PriceTTC: 264, Weight: 1.2, Quantity: 3},
		{ProductID: 3, SupplierID: 2, Price: 100, PriceTTC: 120, Weight: 0.1, Quantity: 1},
	}}
	s := c.Summarize()
	assert.Equal(t, int64(2000+750+100), s.TotalHT)
	assert.Equal(t, int64(2400+792+120), s.TotalTTC)
	assert.InDelta(t, 1.0+3.6+0.1, s.TotalWeight, 1e-9)
	assert.Equal(t, int64(6), s.ItemCount)
	assert.Len(t, s.Groups, 2)
	assert.Equal(t, int64(1), s.Groups[0].SupplierID)
	assert.Equal(t, int64(792), s.Groups[0].Subtotal)
	assert.Equal(t, int64(2), s.Groups[1].SupplierID)
	assert.Equal(t, int64(2520), s.Groups[1].Subtotal)
	assert.Len(t, s.Groups[1].Lines, 2)
}

func TestNewHistory(t *testing.T) {
	o := Order{
		ID: 3, SN: "CMD-20240315-0003ABCDEF", ClientID: 9, CartID: 7,
		Generation: 1, Status: OrderStatusDone, Total: 2400, Ctime: 123,
		Lines: []CartLine{
			{ProductID: 1, ProductSN: "P1", ProductName: "Pommes", Quantity: 2, PriceTTC: 1200, Weight: 1, Status: LineStatusDone},
		},
	}
	h := NewHistory(o, HistoryKindArchive,
		Contact{Name: "Jean Dupont", Email: "jean@example.com", Phone: "0600000000"},
		"Colissimo", "Relais Bastille")
	assert.Equal(t, History{
		OrderID:     3,
		Generation:  1,
		Kind:        HistoryKindArchive,
		OrderSN:     "CMD-20240315-0003ABCDEF",
		ClientID:    9,
		ClientName:  "Jean Dupont",
		ClientEmail: "jean@example.com",
		ClientPhone: "0600000000",
		CarrierName: "Colissimo",
		RelayPoint:  "Relais Bastille",
		CartID:      7,
		Status:      OrderStatusDone,
		Total:       2400,
		OrderCtime:  123,
		Lines: []HistoryLine{
			{ProductID: 1, ProductSN: "P1", ProductName: "Pommes", Quantity: 2, PriceTTC: 1200, Weight: 1, Status: "done"},
		},
	}, h)
}
