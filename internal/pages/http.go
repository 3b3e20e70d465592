package pages

import (
	"errors"
	"mime"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/httprate"

	"github.com/odyssey-erp/supplierdesk/internal/export"
	"github.com/odyssey-erp/supplierdesk/internal/records"
)

// ExportLimit caps PDF renders per client IP on top of the global request limit.
func ExportLimit() func(http.Handler) http.Handler {
	return httprate.LimitByIP(20, time.Minute)
}

// WriteArtifact sends an artifact as a file download.
func WriteArtifact(w http.ResponseWriter, artifact export.Artifact) {
	w.Header().Set("Content-Type", artifact.ContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": artifact.Filename}))
	w.Header().Set("Content-Length", strconv.Itoa(len(artifact.Body)))
	w.Header().Set("X-Export-ID", artifact.ID)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(artifact.Body)
}

// FormErrors turns a validation failure into field messages for a form. ok is false
// for any other error.
func FormErrors(err error) (map[string]string, bool) {
	var verr *records.ValidationError
	if !errors.As(err, &verr) {
		return nil, false
	}
	return map[string]string{verr.Field: verr.Error()}, true
}

// StatusOf maps core errors to HTTP status codes.
func StatusOf(err error) int {
	var serr *export.SinkError
	switch {
	case errors.Is(err, records.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, records.ErrNotFound), errors.Is(err, records.ErrOutOfRange):
		return http.StatusNotFound
	case errors.As(err, &serr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
