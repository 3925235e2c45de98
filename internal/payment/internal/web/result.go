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

	"github.com/ecodeclub/epicerie/internal/order"
	"github.com/ecodeclub/epicerie/internal/payment/internal/domain"
	"github.com/ecodeclub/epicerie/internal/payment/internal/errs"
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
	unknownChannelResult = ginx.Result{
		Code: errs.UnknownChannel.Code,
		Msg:  errs.UnknownChannel.Msg,
	}
	paymentNotFoundResult = ginx.Result{
		Code: errs.PaymentNotFound.Code,
		Msg:  errs.PaymentNotFound.Msg,
	}
	paymentNotSucceededResult = ginx.Result{
		Code: errs.PaymentNotSucceeded.Code,
		Msg:  errs.PaymentNotSucceeded.Msg,
	}
	cartChangedResult = ginx.Result{
		Code: errs.CartChanged.Code,
		Msg:  errs.CartChanged.Msg,
	}
	illegalRefundAmountResult = ginx.Result{
		Code: errs.IllegalRefundAmount.Code,
		Msg:  errs.IllegalRefundAmount.Msg,
	}
	insufficientStockResult = ginx.Result{
		Code: errs.InsufficientStock.Code,
		Msg:  errs.InsufficientStock.Msg,
	}
)

func errorResult(err error) (ginx.Result, error) {
	var pe *domain.ProcessorError
	switch {
	case errors.As(err, &pe):
		return ginx.Result{
			Code: errs.ProcessorError.Code,
			Msg:  errs.ProcessorError.Msg,
			Data: pe.Type,
		}, nil
	case errors.Is(err, order.ErrEmptyCart):
		return emptyCartResult, nil
	case errors.Is(err, domain.ErrUnknownChannel):
		return unknownChannelResult, nil
	case errors.Is(err, domain.ErrPaymentNotFound):
		return paymentNotFoundResult, nil
	case errors.Is(err, domain.ErrPaymentNotSucceeded):
		return paymentNotSucceededResult, nil
	case errors.Is(err, domain.ErrCartChanged):
		return cartChangedResult, err
	case errors.Is(err, domain.ErrIllegalRefundAmount):
		return illegalRefundAmountResult, nil
	case errors.Is(err, order.ErrInsufficientStock):
		return insufficientStockResult, err
	default:
		return systemErrorResult, err
	}
}
