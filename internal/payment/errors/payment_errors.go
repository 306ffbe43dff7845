package paymenterrors

import (
	"net/http"

	"go-feeledger/internal/shared/apperror"
)

var (
	ErrInstallmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"installment not found",
		http.StatusNotFound,
	)
	ErrNonPositiveAmount = apperror.New(
		apperror.CodeInvalidInput,
		"payment amount must be greater than zero",
		http.StatusBadRequest,
	)
	ErrExceedsOutstanding = apperror.New(
		apperror.CodeInvalidInput,
		"payment amount exceeds the outstanding balance",
		http.StatusBadRequest,
	)
	ErrInvalidMode = apperror.New(
		apperror.CodeInvalidInput,
		"unsupported payment mode",
		http.StatusBadRequest,
	)
)
