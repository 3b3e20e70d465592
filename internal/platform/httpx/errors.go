// Package httpx provides HTTP response utilities.
package httpx

import (
	"errors"
	"net/http"

	"github.com/odyssey-erp/supplierdesk/internal/export"
	"github.com/odyssey-erp/supplierdesk/internal/records"
)

// RespondError maps core errors to HTTP responses using RFC7807.
func RespondError(w http.ResponseWriter, err error) {
	var (
		verr *records.ValidationError
		rerr *records.OutOfRangeError
		serr *export.SinkError
	)
	switch {
	case errors.As(err, &verr):
		w.Header().Set("Content-Type", "application/problem+json")
		writeJSON(w, http.StatusBadRequest, ProblemDetail{
			Title:  "Validation Failed",
			Status: http.StatusBadRequest,
			Detail: verr.Error(),
			Field:  verr.Field,
		})
	case errors.As(err, &rerr):
		Problem(w, http.StatusNotFound, "Out Of Range", rerr.Error())
	case errors.Is(err, records.ErrNotFound):
		Problem(w, http.StatusNotFound, "Not Found", err.Error())
	case errors.As(err, &serr):
		Problem(w, http.StatusBadGateway, "Export Failed", serr.Sink+" sink unavailable")
	default:
		Problem(w, http.StatusInternalServerError, "Internal Error", "")
	}
}
