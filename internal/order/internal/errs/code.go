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

package errs

var (
	SystemError        = ErrorCode{Code: 405001, Msg: "系统错误"}
	EmptyCart          = ErrorCode{Code: 405002, Msg: "购物车为空"}
	InsufficientStock  = ErrorCode{Code: 405003, Msg: "库存不足"}
	ProductNotFound    = ErrorCode{Code: 405004, Msg: "商品不存在或者已下架"}
	InvalidQuantity    = ErrorCode{Code: 405005, Msg: "商品数量不合法"}
	LineNotFound       = ErrorCode{Code: 405006, Msg: "购物车行不存在"}
	OrderNotFound      = ErrorCode{Code: 405007, Msg: "订单不存在"}
	IllegalTransition  = ErrorCode{Code: 405008, Msg: "订单当前状态不允许该操作"}
	LinesNotDone       = ErrorCode{Code: 405009, Msg: "订单中还有未完成的商品"}
	IllegalLineStatus  = ErrorCode{Code: 405010, Msg: "订单行状态不合法"}
	NoApplicableTariff = ErrorCode{Code: 405011, Msg: "没有适用该重量的运费"}
	CarrierNotFound    = ErrorCode{Code: 405012, Msg: "承运商不存在"}
	DuplicateRequest   = ErrorCode{Code: 405013, Msg: "请勿重复提交订单"}
	ConcurrentModified = ErrorCode{Code: 405014, Msg: "订单已被修改，请重试"}
	RelayPointNotFound = ErrorCode{Code: 405015, Msg: "自提点不存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
