package batchfeeerrors

import (
	"net/http"

	"go-feeledger/internal/shared/apperror"
)

var (
	ErrStructureNotFound = apperror.New(
		apperror.CodeNotFound,
		"batch fee structure not found",
		http.StatusNotFound,
	)
	ErrBatchNotFound = apperror.New(
		apperror.CodeInvalidReference,
		"batch does not belong to this branch",
		http.StatusUnprocessableEntity,
	)
	ErrSessionNotFound = apperror.New(
		apperror.CodeInvalidReference,
		"academic session does not belong to this organization",
		http.StatusUnprocessableEntity,
	)
	ErrDuplicateComponent = apperror.New(
		apperror.CodeInvalidInput,
		"a fee component appears more than once",
		http.StatusBadRequest,
	)
	ErrNonPositiveAmount = apperror.New(
		apperror.CodeInvalidInput,
		"line item amounts must be greater than zero",
		http.StatusBadRequest,
	)
	ErrStructureInactive = apperror.New(
		apperror.CodeInvalidInput,
		"batch fee structure is inactive",
		http.StatusBadRequest,
	)
	// ErrOverwriteBlocked carries the blocked students as details.
	ErrOverwriteBlocked = apperror.New(
		apperror.CodeOverwriteBlocked,
		"students with recorded payments cannot be overwritten",
		http.StatusConflict,
	)
)

var ErrConcurrentWrite = apperror.New(
	apperror.CodeConflict,
	"the batch fee structure was written concurrently, retry the request",
	http.StatusConflict,
)

var ErrConcurrentApply = apperror.New(
	apperror.CodeConflict,
	"a student fee structure was created concurrently for this session, retry the request",
	http.StatusConflict,
)
