package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/xbanking-gateway/internal/logger"
	"github.com/MKhiriev/xbanking-gateway/internal/service"
	"github.com/MKhiriev/xbanking-gateway/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidTelegramData: http.StatusUnauthorized,
	service.ErrInvalidQuery:        http.StatusUnprocessableEntity,
	errMissingQueryParam:           http.StatusUnprocessableEntity,
	errInvalidQueryParam:           http.StatusUnprocessableEntity,
	errInvalidPathParam:            http.StatusUnprocessableEntity,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError writes `{"detail": detail}` and logs a failed write.
func writeError(w http.ResponseWriter, r *http.Request, detail string, status int) {
	if _, err := utils.WriteError(w, detail, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing error response")
	}
}

// writeJSON writes data as JSON and logs a failed write.
func writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
