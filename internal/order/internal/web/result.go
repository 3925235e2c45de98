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
	"errors"

	"github.com/ecodeclub/epicerie/internal/catalog"
	"github.com/ecodeclub/epicerie/internal/delivery"
	"github.com/ecodeclub/epicerie/internal/order/internal/domain"
	"github.com/ecodeclub/epicerie/internal/order/internal/errs"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	emptyCartResult = ginx.Result{
		Code: errs.EmptyCart.Code,
		Msg:  errs.EmptyCart.Msg,
	}
	insufficientStockResult = ginx.Result{
		Code: errs.InsufficientStock.Code,
		Msg:  errs.InsufficientStock.Msg,
	}
	productNotFoundResult = ginx.Result{
		Code: errs.ProductNotFound.Code,
		Msg:  errs.ProductNotFound.Msg,
	}
	invalidQuantityResult = ginx.Result{
		Code: errs.InvalidQuantity.Code,
		Msg:  errs.InvalidQuantity.Msg,
	}
	lineNotFoundResult = ginx.Result{
		Code: errs.LineNotFound.Code,
		Msg:  errs.LineNotFound.Msg,
	}
	orderNotFoundResult = ginx.Result{
		Code: errs.OrderNotFound.Code,
		Msg:  errs.OrderNotFound.Msg,
	}
	illegalTransitionResult = ginx.Result{
		Code: errs.IllegalTransition.Code,
		Msg:  errs.IllegalTransition.Msg,
	}
	linesNotDoneResult = ginx.Result{
		Code: errs.LinesNotDone.Code,
		Msg:  errs.LinesNotDone.Msg,
	}
	illegalLineStatusResult = ginx.Result{
		Code: errs.IllegalLineStatus.Code,
		Msg:  errs.IllegalLineStatus.Msg,
	}
	noApplicableTariffResult = ginx.Result{
		Code: errs.NoApplicableTariff.Code,
		Msg:  errs.NoApplicableTariff.Msg,
	}
	carrierNotFoundResult = ginx.Result{
		Code: errs.CarrierNotFound.Code,
		Msg:  errs.CarrierNotFound.Msg,
	}
	duplicateRequestResult = ginx.Result{
		Code: errs.DuplicateRequest.Code,
		Msg:  errs.DuplicateRequest.Msg,
	}
	concurrentModifiedResult = ginx.Result{
		Code: errs.ConcurrentModified.Code,
		Msg:  errs.ConcurrentModified.Msg,
	}
	relayPointNotFoundResult = ginx.Result{
		Code: errs.RelayPointNotFound.Code,
		Msg:  errs.RelayPointNotFound.Msg,
	}
)

// errorResult 业务错误返回对应的错误码，其余按系统错误处理
func errorResult(err error) (ginx.Result, error) {
	switch {
	case errors.Is(err, domain.ErrEmptyCart):
		return emptyCartResult, nil
	case errors.Is(err, domain.ErrInsufficientStock), errors.Is(err, catalog.ErrInsufficientStock):
		return insufficientStockResult, nil
	case errors.Is(err, domain.ErrProductInactive), errors.Is(err, catalog.ErrProductNotFound):
		return productNotFoundResult, nil
	case errors.Is(err, domain.ErrInvalidQuantity):
		return invalidQuantityResult, nil
	case errors.Is(err, domain.ErrLineNotFound), errors.Is(err, domain.ErrLineNotOwned):
		return lineNotFoundResult, nil
	case errors.Is(err, domain.ErrOrderNotFound):
		return orderNotFoundResult, nil
	case errors.Is(err, domain.ErrIllegalTransition), errors.Is(err, domain.ErrCartNotActive):
		return illegalTransitionResult, nil
	case errors.Is(err, domain.ErrLinesNotDone):
		return linesNotDoneResult, nil
	case errors.Is(err, domain.ErrIllegalLineStatus):
		return illegalLineStatusResult, nil
	case errors.Is(err, delivery.ErrNoApplicableTariff):
		return noApplicableTariffResult, nil
	case errors.Is(err, delivery.ErrCarrierNotFound):
		return carrierNotFoundResult, nil
	case errors.Is(err, delivery.ErrRelayPointNotFound):
		return relayPointNotFoundResult, nil
	case errors.Is(err, domain.ErrVersionConflict):
		return concurrentModifiedResult, nil
	}
	return systemErrorResult, err
}
