package http

import (
	"net/http"

	"github.com/MKhiriev/xbanking-gateway/internal/app"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

const compressionLevel = 5

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, withLogging, middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	router.Use(middleware.Compress(compressionLevel))

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, app.MsgNotFound, http.StatusNotFound)
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, app.MsgMethodNotAllowed, http.StatusMethodNotAllowed)
	})

	router.Get("/", h.getMiniApp)
	router.Get("/health", h.healthCheck)

	router.Route("/api", func(r chi.Router) {
		r.Get("/version", h.getServerVersion)
		r.Get("/user", h.getUser)

		r.Route("/market", func(r chi.Router) {
			r.Get("/config", h.getMarketConfig)
			r.Get("/wallets/balance", h.getWalletBalance)
			r.Get("/nfts", h.listNFTs)
			r.Get("/nfts/search", h.searchNFTs)
			r.Get("/collections/backdrops", h.getBackdrops)
			r.Get("/user/nfts", h.getUserNFTs)
		})

		r.Get("/referral/{user_id}", h.getReferralInfo)
		r.Post("/withdraw/request", h.requestWithdraw)
	})

	return router
}
