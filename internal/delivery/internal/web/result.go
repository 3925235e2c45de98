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

package web

import (
	"github.com/ecodeclub/epicerie/internal/delivery/internal/errs"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	carrierNotFoundResult = ginx.Result{
		Code: errs.CarrierNotFound.Code,
		Msg:  errs.CarrierNotFound.Msg,
	}
	noApplicableTariffResult = ginx.Result{
		Code: errs.NoApplicableTariff.Code,
		Msg:  errs.NoApplicableTariff.Msg,
	}
	invalidTariffResult = ginx.Result{
		Code: errs.InvalidTariff.Code,
		Msg:  errs.InvalidTariff.Msg,
	}
	relayPointNotFoundResult = ginx.Result{
		Code: errs.RelayPointNotFound.Code,
		Msg:  errs.RelayPointNotFound.Msg,
	}
	invalidCarrierResult = ginx.Result{
		Code: errs.InvalidCarrier.Code,
		Msg:  errs.InvalidCarrier.Msg,
	}
)
