package reportingerrors

import (
	"net/http"

	"go-feeledger/internal/shared/apperror"
)

var ErrSessionNotFound = apperror.New(
	apperror.CodeNotFound,
	"academic session not found",
	http.StatusNotFound,
)
