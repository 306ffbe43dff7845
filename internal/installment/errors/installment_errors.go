package installmenterrors

import (
	"net/http"

	"go-feeledger/internal/shared/apperror"
)

var (
	ErrStructureNotFound = apperror.New(
		apperror.CodeNotFound,
		"student fee structure not found",
		http.StatusNotFound,
	)
	ErrInstallmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"installment not found",
		http.StatusNotFound,
	)
	ErrInstallmentsExist = apperror.New(
		apperror.CodeConflict,
		"installments were already generated for this fee structure",
		http.StatusConflict,
	)
	ErrZeroNetAmount = apperror.New(
		apperror.CodeInvalidInput,
		"net amount is zero, nothing to schedule",
		http.StatusBadRequest,
	)
	ErrEmptyPlan = apperror.New(
		apperror.CodeInvalidInput,
		"the installment plan has no entries",
		http.StatusBadRequest,
	)
	ErrPercentagesNotHundred = apperror.New(
		apperror.CodeInvalidInput,
		"installment percentages must add up to exactly 100",
		http.StatusBadRequest,
	)
	ErrNonPositivePercentage = apperror.New(
		apperror.CodeInvalidInput,
		"every installment percentage must be greater than zero",
		http.StatusBadRequest,
	)
	ErrNegativeOffset = apperror.New(
		apperror.CodeInvalidInput,
		"offset days cannot be negative",
		http.StatusBadRequest,
	)
	ErrExplicitSumMismatch = apperror.New(
		apperror.CodeInvalidInput,
		"explicit installment amounts must add up to the net amount",
		http.StatusBadRequest,
	)
	ErrZeroInstallment = apperror.New(
		apperror.CodeInvalidInput,
		"the plan would produce an installment of zero",
		http.StatusBadRequest,
	)
	ErrInvalidDueDate = apperror.New(
		apperror.CodeInvalidInput,
		"due_date must be formatted as YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrSessionNotFound = apperror.New(
		apperror.CodeInvalidReference,
		"academic session of the fee structure was not found",
		http.StatusUnprocessableEntity,
	)
)
