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

package ioc

import (
	"github.com/ecodeclub/epicerie/internal/payment"
)

// InitProcessors stripe 必须配置，微信支付按需启用
func InitProcessors() []payment.Processor {
	res := []payment.Processor{InitStripeProcessor(InitStripeConfig())}
	if cfg, ok := InitWechatConfig(); ok {
		res = append(res, InitWechatProcessor(cfg))
	}
	return res
}
