package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/vparshin/go-note-keeper/internal/logger"
	"github.com/vparshin/go-note-keeper/internal/utils"
)

const callerIDHeader = "X-User-Id"

// withCallerID is an HTTP middleware that attributes the request to a caller.
//
// It reads the "X-User-Id" header, falling back to the configured default
// when the header is absent or empty. There is no credential check: the
// header value is trusted as-is. The middleware then runs the owner
// bootstrap via [service.IdentityService.EnsureOwner] so every note
// operation downstream can assume the owner row exists, stores the caller
// id in the request context under [utils.CallerIDCtxKey] and tags the
// request-scoped logger with it.
//
// A failed bootstrap rejects the request with HTTP 500; downstream handlers
// never run against an absent owner.
func (h *Handler) withCallerID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		callerID := r.Header.Get(callerIDHeader)
		if callerID == "" {
			callerID = h.defaultCallerID
		}

		ctx := r.Context()
		if err := h.services.IdentityService.EnsureOwner(ctx, callerID); err != nil {
			log.Err(err).Str("func", "*Handler.withCallerID").Str("caller_id", callerID).Msg("error ensuring owner")
			http.Error(w, "error ensuring owner", http.StatusInternalServerError)
			return
		}

		log.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("caller_id", callerID)
		})

		ctx = utils.SetCallerIDToContext(ctx, callerID)
		next.ServeHTTP(w, r.WithContext(log.WithContext(ctx)))
	})
}
