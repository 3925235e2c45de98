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
	"github.com/ecodeclub/epicerie/internal/supplier/internal/errs"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	supplierNotFoundResult = ginx.Result{
		Code: errs.SupplierNotFound.Code,
		Msg:  errs.SupplierNotFound.Msg,
	}
	invalidCredentialsResult = ginx.Result{
		Code: errs.InvalidCredentials.Code,
		Msg:  errs.InvalidCredentials.Msg,
	}
	duplicateEmailResult = ginx.Result{
		Code: errs.DuplicateEmail.Code,
		Msg:  errs.DuplicateEmail.Msg,
	}
	invalidSupplierResult = ginx.Result{
		Code: errs.InvalidSupplier.Code,
		Msg:  errs.InvalidSupplier.Msg,
	}
	productNotOwnedResult = ginx.Result{
		Code: errs.ProductNotOwned.Code,
		Msg:  errs.ProductNotOwned.Msg,
	}
	orderLineNotOwnedResult = ginx.Result{
		Code: errs.OrderLineNotOwned.Code,
		Msg:  errs.OrderLineNotOwned.Msg,
	}
	illegalLineStatusResult = ginx.Result{
		Code: errs.IllegalLineStatus.Code,
		Msg:  errs.IllegalLineStatus.Msg,
	}
	invalidProductResult = ginx.Result{
		Code: errs.InvalidProduct.Code,
		Msg:  errs.InvalidProduct.Msg,
	}
)
