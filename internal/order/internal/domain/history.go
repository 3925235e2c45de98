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

type HistoryKind uint8

func (k HistoryKind) ToUint8() uint8 {
	return uint8(k)
}

func (k HistoryKind) String() string {
	switch k {
	case HistoryKindArchive:
		return "archive"
	case HistoryKindReopen:
		return "reopen"
	default:
		return "unknown"
	}
}

const (
	HistoryKindUnknown HistoryKind = iota
	// HistoryKindArchive 订单完成或者取消时的快照，每一代只有一条
	HistoryKindArchive
	// HistoryKindReopen 重新打开订单时追加的记录，不受快照唯一性约束
	HistoryKindReopen
)

// History 订单的不可变快照，字段都是快照时刻的值
type History struct {
	ID          int64
	OrderID     int64
	Generation  int64
	Kind        HistoryKind
	OrderSN     string
	ClientID    int64
	ClientName  string
	ClientEmail string
	ClientPhone string
	CarrierName string
	RelayPoint  string
	CartID      int64
	Status      OrderStatus
	Total       int64
	OrderCtime  int64
	Lines       []HistoryLine
	Ctime       int64
}

type HistoryLine struct {
	ProductID   int64   `json:"productId"`
	ProductSN   string  `json:"productSN"`
	ProductName string  `json:"productName"`
	Quantity    int64   `json:"quantity"`
	PriceTTC    int64   `json:"priceTTC"`
	Weight      float64 `json:"weight"`
	Status      string  `json:"status"`
}

// Contact 快照时需要的客户信息
type Contact struct {
	Name  string
	Email string
	Phone string
}

// NewHistory 根据订单当前状态生成快照
func NewHistory(o Order, kind HistoryKind, contact Contact, carrierName, relayPoint string) History {
	lines := make([]HistoryLine, 0, len(o.Lines))
	for _, l := range o.Lines {
		lines = append(lines, HistoryLine{
			ProductID:   l.ProductID,
			ProductSN:   l.ProductSN,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			PriceTTC:    l.PriceTTC,
			Weight:      l.Weight,
			Status:      l.Status.String(),
		})
	}
	return History{
		OrderID:     o.ID,
		Generation:  o.Generation,
		Kind:        kind,
		OrderSN:     o.SN,
		ClientID:    o.ClientID,
		ClientName:  contact.Name,
		ClientEmail: contact.Email,
		ClientPhone: contact.Phone,
		CarrierName: carrierName,
		RelayPoint:  relayPoint,
		CartID:      o.CartID,
		Status:      o.Status,
		Total:       o.Total,
		OrderCtime:  o.Ctime,
		Lines:       lines,
	}
}
