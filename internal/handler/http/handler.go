// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Tracing, logging, and caller identification concerns
// are all handled at this layer before requests are forwarded to the
// service layer.
package http

import (
	"github.com/vparshin/go-note-keeper/internal/logger"
	"github.com/vparshin/go-note-keeper/internal/service"
)

// anonymousCallerID attributes requests that carry no X-User-Id header.
// There is a single well-known anonymous owner rather than one per request.
const anonymousCallerID = "demo-user"

type Handler struct {
	services *service.Services

	defaultCallerID string
	logger          *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:        services,
		defaultCallerID: anonymousCallerID,
		logger:          logger,
	}
}
