package receipterrors

import (
	"net/http"

	"go-feeledger/internal/shared/apperror"
)

var (
	ErrPaymentNotFound = apperror.New(
		apperror.CodeNotFound,
		"payment not found",
		http.StatusNotFound,
	)
	ErrReceiptNotFound = apperror.New(
		apperror.CodeNotFound,
		"receipt not found",
		http.StatusNotFound,
	)
)
