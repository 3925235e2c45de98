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

	"github.com/shopspring/decimal"
)

var (
	ErrOrderNotFound      = errors.New("订单不存在")
	ErrLinesNotDone       = errors.New("订单中还有未完成的商品")
	ErrIllegalTransition  = errors.New("订单状态不允许该操作")
	ErrLineNotOwned       = errors.New("订单行不属于该供应商")
	ErrIllegalLineStatus  = errors.New("非法的订单行状态")
	ErrVersionConflict    = errors.New("订单已被并发修改")
	ErrDuplicateSnapshot  = errors.New("订单快照已存在")
	ErrUnknownHistoryKind = errors.New("未知的历史记录类型")
)

type LineStatus uint8

func (s LineStatus) ToUint8() uint8 {
	return uint8(s)
}

func (s LineStatus) String() string {
	switch s {
	case LineStatusPending:
		return "pending"
	case LineStatusPreparing:
		return "preparing"
	case LineStatusOutForDelivery:
		return "out-for-delivery"
	case LineStatusDone:
		return "done"
	case LineStatusInStock:
		return "in-stock"
	default:
		return "unknown"
	}
}

func (s LineStatus) Valid() bool {
	return s >= LineStatusPending && s <= LineStatusInStock
}

// Weight 计算进度时每种状态的权重
func (s LineStatus) Weight() int64 {
	switch s {
	case LineStatusDone:
		return 100
	case LineStatusOutForDelivery:
		return 66
	case LineStatusPreparing:
		return 50
	default:
		return 0
	}
}

const (
	LineStatusUnknown LineStatus = iota
	LineStatusPending
	LineStatusPreparing
	LineStatusOutForDelivery
	LineStatusDone
	// LineStatusInStock 已入库待分拣，不参与进度计算
	LineStatusInStock
)

type OrderStatus uint8

func (s OrderStatus) ToUint8() uint8 {
	return uint8(s)
}

func (s OrderStatus) String() string {
	switch s {
	case OrderStatusPending:
		return "pending"
	case OrderStatusInProgress:
		return "in-progress"
	case OrderStatusOutForDelivery:
		return "out-for-delivery"
	case OrderStatusDone:
		return "done"
	case OrderStatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Closed 已完成或者已取消
func (s OrderStatus) Closed() bool {
	return s == OrderStatusDone || s == OrderStatusCancelled
}

const (
	OrderStatusUnknown OrderStatus = iota
	OrderStatusPending
	OrderStatusInProgress
	OrderStatusOutForDelivery
	OrderStatusDone
	OrderStatusCancelled
)

// InFlightStatuses 需要定时重新汇总的订单状态
var InFlightStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusInProgress,
	OrderStatusOutForDelivery,
}

type Order struct {
	ID       int64
	SN       string
	ClientID int64
	// 订单与购物车一一对应
	CartID       int64
	CarrierID    int64
	RelayPointID int64
	// 含税总价，单位分
	Total    int64
	Shipping int64
	Status   OrderStatus
	// 0 到 100，保留两位小数
	Progress float64
	// 每次重新打开加一
	Generation int64
	Version    int64
	PaymentSN  string
	Lines      []CartLine
	Ctime      int64
	Utime      int64
}

func (o Order) AllLinesDone() bool {
	if len(o.Lines) == 0 {
		return false
	}
	for _, l := range o.Lines {
		if l.Status != LineStatusDone {
			return false
		}
	}
	return true
}

func (o Order) FindLine(lineID int64) (CartLine, bool) {
	for _, l := range o.Lines {
		if l.ID == lineID {
			return l, true
		}
	}
	return CartLine{}, false
}

// LinesOf 只保留某个供应商的订单行
func (o Order) LinesOf(supplierID int64) []CartLine {
	res := make([]CartLine, 0, len(o.Lines))
	for _, l := range o.Lines {
		if l.SupplierID == supplierID {
			res = append(res, l)
		}
	}
	return res
}

// Aggregate 根据订单行状态计算订单状态和进度
// 没有订单行时状态为 pending，进度为 0
func Aggregate(lines []CartLine) (OrderStatus, float64) {
	if len(lines) == 0 {
		return OrderStatusPending, 0
	}
	var sum int64
	var done, outForDelivery, prep, pending int
	for _, l := range lines {
		sum += l.Status.Weight()
		switch l.Status {
		case LineStatusDone:
			done++
		case LineStatusOutForDelivery:
			outForDelivery++
		case LineStatusPreparing:
			prep++
		case LineStatusPending:
			pending++
		}
	}
	progress, _ := decimal.NewFromInt(sum).
		Div(decimal.NewFromInt(int64(len(lines)))).
		Round(2).Float64()

	switch {
	case done == len(lines):
		return OrderStatusDone, progress
	case outForDelivery > 0:
		return OrderStatusOutForDelivery, progress
	case prep > 0:
		return OrderStatusInProgress, progress
	case pending > 0:
		return OrderStatusPending, progress
	default:
		return OrderStatusInProgress, progress
	}
}

// SupplierStats 供应商视角的订单统计，一个订单包含该供应商的任意一行即计入
type SupplierStats struct {
	OrderCount    int64
	InFlightCount int64
	DoneCount     int64
}
