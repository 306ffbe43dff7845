package studentfeeerrors

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
	ErrStructureExists = apperror.New(
		apperror.CodeConflict,
		"the student already has a fee structure for this session",
		http.StatusConflict,
	)
	ErrStudentNotFound = apperror.New(
		apperror.CodeInvalidReference,
		"student does not belong to this branch",
		http.StatusUnprocessableEntity,
	)
	ErrSessionNotFound = apperror.New(
		apperror.CodeInvalidReference,
		"academic session does not belong to this organization",
		http.StatusUnprocessableEntity,
	)
	ErrNonPositiveAmount = apperror.New(
		apperror.CodeInvalidInput,
		"line item amounts must be greater than zero",
		http.StatusBadRequest,
	)
	ErrDuplicateComponent = apperror.New(
		apperror.CodeInvalidInput,
		"a fee component appears more than once",
		http.StatusBadRequest,
	)
)
