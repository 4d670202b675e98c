package http

import (
	"github.com/MKhiriev/xbanking-gateway/internal/logger"
	"github.com/MKhiriev/xbanking-gateway/internal/service"
	"github.com/MKhiriev/xbanking-gateway/internal/utils"
)

const defaultIndexFile = "index.html"

type Handler struct {
	services *service.Services

	indexFile      string
	allowedOrigins []string
	traceIDs       *utils.UUIDGenerator

	logger *logger.Logger
}

// Option configures a [Handler].
type Option func(h *Handler)

// WithIndexFile sets the path of the mini app page served on GET /.
func WithIndexFile(path string) Option {
	return func(h *Handler) {
		if path != "" {
			h.indexFile = path
		}
	}
}

// WithAllowedOrigins sets the CORS origins accepted by the API.
// Without it every origin is allowed.
func WithAllowedOrigins(origins ...string) Option {
	return func(h *Handler) {
		if len(origins) > 0 {
			h.allowedOrigins = origins
		}
	}
}

func NewHandler(services *service.Services, logger *logger.Logger, opts ...Option) *Handler {
	h := &Handler{
		services:       services,
		indexFile:      defaultIndexFile,
		allowedOrigins: []string{"*"},
		traceIDs:       utils.NewUUIDGenerator(),
		logger:         logger,
	}
	for _, opt := range opts {
		opt(h)
	}

	logger.Info().Msg("http handler created")
	return h
}
