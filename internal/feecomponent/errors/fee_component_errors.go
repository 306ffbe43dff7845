package feecomponenterrors

import (
	"net/http"

	"go-feeledger/internal/shared/apperror"
)

var (
	ErrInvalidComponentID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid fee component id",
		http.StatusBadRequest,
	)
	ErrComponentNotFound = apperror.New(
		apperror.CodeNotFound,
		"fee component not found",
		http.StatusNotFound,
	)
	ErrComponentNameTaken = apperror.New(
		apperror.CodeConflict,
		"a fee component with this name already exists",
		http.StatusConflict,
	)
	ErrNegativeBaseAmount = apperror.New(
		apperror.CodeInvalidInput,
		"base_amount cannot be negative",
		http.StatusBadRequest,
	)
	// ErrInvalidComponents is returned with the offending ids as details.
	ErrInvalidComponents = apperror.New(
		apperror.CodeInvalidReference,
		"one or more fee components are inactive or do not belong to this organization",
		http.StatusUnprocessableEntity,
	)
)
