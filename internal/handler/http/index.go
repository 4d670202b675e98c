package http

import (
	"net/http"
	"os"

	"github.com/MKhiriev/xbanking-gateway/internal/app"
	"github.com/MKhiriev/xbanking-gateway/internal/logger"
)

// getMiniApp serves the mini app page. The file is read on every request so
// a redeployed page is picked up without a restart. When it cannot be read a
// placeholder page is served with 200.
func (h *Handler) getMiniApp(w http.ResponseWriter, r *http.Request) {
	page, err := os.ReadFile(h.indexFile)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("index_file", h.indexFile).Msg("error reading mini app page")
		page = []byte(app.MiniAppFallbackHTML)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err = w.Write(page); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing mini app page")
	}
}
