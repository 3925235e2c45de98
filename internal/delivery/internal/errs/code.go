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
	SystemError        = ErrorCode{Code: 404001, Msg: "系统错误"}
	CarrierNotFound    = ErrorCode{Code: 404002, Msg: "承运商不存在"}
	NoApplicableTariff = ErrorCode{Code: 404003, Msg: "没有匹配该重量的运费"}
	InvalidTariff      = ErrorCode{Code: 404004, Msg: "运费区间不合法"}
	RelayPointNotFound = ErrorCode{Code: 404005, Msg: "自提点不存在"}
	InvalidCarrier     = ErrorCode{Code: 404006, Msg: "承运商信息不合法"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
