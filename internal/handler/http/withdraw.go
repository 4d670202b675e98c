package http

import "net/http"

// requestWithdraw handles POST /api/withdraw/request. Any body is ignored.
func (h *Handler) requestWithdraw(w http.ResponseWriter, r *http.Request) {
	resp := h.services.WithdrawService.RequestWithdraw(r.Context())
	writeJSON(w, r, resp, http.StatusOK)
}
