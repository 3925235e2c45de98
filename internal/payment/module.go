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

package payment

import (
	"github.com/ecodeclub/epicerie/internal/payment/internal/domain"
	"github.com/ecodeclub/epicerie/internal/payment/internal/job"
	"github.com/ecodeclub/epicerie/internal/payment/internal/service"
	"github.com/ecodeclub/epicerie/internal/payment/internal/web"
)

type (
	Service                = service.Service
	Processor              = service.Processor
	Record                 = domain.Record
	Channel                = domain.Channel
	Status                 = domain.Status
	Handler                = web.Handler
	AdminHandler           = web.AdminHandler
	SyncPendingPaymentsJob = job.SyncPendingPaymentsJob
)

const (
	ChannelStripe = domain.ChannelStripe
	ChannelWechat = domain.ChannelWechat

	StatusUnpaid     = domain.StatusUnpaid
	StatusProcessing = domain.StatusProcessing
	StatusSucceeded  = domain.StatusSucceeded
	StatusFailed     = domain.StatusFailed
	StatusRefunded   = domain.StatusRefunded
)

var (
	ErrPaymentNotFound     = domain.ErrPaymentNotFound
	ErrPaymentNotSucceeded = domain.ErrPaymentNotSucceeded
)

type Module struct {
	Svc      Service
	Hdl      *Handler
	AdminHdl *AdminHandler
	SyncJob  *SyncPendingPaymentsJob
}
