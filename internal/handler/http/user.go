package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/xbanking-gateway/internal/app"
	"github.com/MKhiriev/xbanking-gateway/internal/logger"
	"github.com/MKhiriev/xbanking-gateway/internal/service"
	"github.com/MKhiriev/xbanking-gateway/models"
)

const queryInitData = "init_data"

// getUser handles GET /api/user?init_data=...
//
// Responds with 422 when init_data is absent, 401 with
// {"detail":"Invalid Telegram data"} when verification fails, and
// {"success":true,"user":{...}} otherwise.
func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	query := r.URL.Query()
	if !query.Has(queryInitData) {
		log.Warn().Msg("init_data query parameter is missing")
		writeError(w, r, app.MsgInitDataRequired, statusFromError(errMissingQueryParam))
		return
	}

	user, err := h.services.AuthService.GetUser(ctx, query.Get(queryInitData))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidTelegramData):
			log.Warn().Err(err).Msg("rejected init data")
			writeError(w, r, app.MsgInvalidTelegramData, http.StatusUnauthorized)
		default:
			log.Err(err).Msg("unexpected error occurred during user verification")
			writeError(w, r, app.MsgInternalServerError, http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, r, models.UserResponse{Success: true, User: user}, http.StatusOK)
}
