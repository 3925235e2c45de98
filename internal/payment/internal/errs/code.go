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
	SystemError         = ErrorCode{Code: 406001, Msg: "系统错误"}
	EmptyCart           = ErrorCode{Code: 406002, Msg: "购物车为空"}
	UnknownChannel      = ErrorCode{Code: 406003, Msg: "不支持的支付渠道"}
	PaymentNotFound     = ErrorCode{Code: 406004, Msg: "支付记录不存在"}
	PaymentNotSucceeded = ErrorCode{Code: 406005, Msg: "支付尚未成功"}
	CartChanged         = ErrorCode{Code: 406006, Msg: "支付后购物车已变更，请联系客服退款"}
	IllegalRefundAmount = ErrorCode{Code: 406007, Msg: "退款金额不合法"}
	ProcessorError      = ErrorCode{Code: 406008, Msg: "支付服务商返回错误"}
	InsufficientStock   = ErrorCode{Code: 406009, Msg: "库存不足"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
