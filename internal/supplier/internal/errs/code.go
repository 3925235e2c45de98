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
	SystemError        = ErrorCode{Code: 403001, Msg: "系统错误"}
	SupplierNotFound   = ErrorCode{Code: 403002, Msg: "供应商不存在"}
	InvalidCredentials = ErrorCode{Code: 403003, Msg: "邮箱或密码错误"}
	DuplicateEmail     = ErrorCode{Code: 403004, Msg: "邮箱已经被使用"}
	InvalidSupplier    = ErrorCode{Code: 403005, Msg: "供应商信息不合法"}
	ProductNotOwned    = ErrorCode{Code: 403006, Msg: "商品不属于当前供应商"}
	OrderLineNotOwned  = ErrorCode{Code: 403007, Msg: "订单行不属于当前供应商"}
	IllegalLineStatus  = ErrorCode{Code: 403008, Msg: "订单行状态不合法"}
	InvalidProduct     = ErrorCode{Code: 403009, Msg: "商品信息不合法"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
