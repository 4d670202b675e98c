package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/xbanking-gateway/internal/app"
	"github.com/MKhiriev/xbanking-gateway/internal/logger"
	"github.com/go-chi/chi/v5"
)

// getReferralInfo handles GET /api/referral/{user_id}.
func (h *Handler) getReferralInfo(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "user_id"), 10, 64)
	if err != nil {
		logger.FromRequest(r).Warn().Err(err).Msg("invalid user_id")
		writeError(w, r, app.MsgInvalidUserID, statusFromError(errInvalidPathParam))
		return
	}

	info := h.services.ReferralService.GetReferralInfo(r.Context(), userID)
	writeJSON(w, r, info, http.StatusOK)
}
