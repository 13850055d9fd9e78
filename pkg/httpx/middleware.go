package httpx

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/illiaantonenko/attendance/pkg/slogx"
)

// Middleware wraps an http.Handler with extra behaviour.
type Middleware func(http.Handler) http.Handler

// Chain applies middlewares so the first listed runs outermost.
// Chain(h, a, b) serves a(b(h)).
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

// Identity headers set by the platform's API gateway after it has
// authenticated the caller. This service never sees credentials.
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"
)

// IdentityMiddleware lifts the gateway-forwarded identity into the request
// context. Requests without a usable identity are rejected; who the caller
// is must be settled before any check-in logic runs.
func IdentityMiddleware() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			rawID := strings.TrimSpace(r.Header.Get(HeaderUserID))
			role := strings.TrimSpace(r.Header.Get(HeaderUserRole))

			userID, err := strconv.ParseInt(rawID, 10, 64)
			if err != nil || userID <= 0 || role == "" {
				log.Warn("request without gateway identity",
					"path", r.URL.Path,
				)
				WriteJSON(w, http.StatusUnauthorized, map[string]string{
					"error":             "unauthorized",
					"error_description": "Missing or invalid identity headers",
				})
				return
			}

			ctx = context.WithValue(ctx, CtxKeyUserID, userID)
			ctx = context.WithValue(ctx, CtxKeyUserRole, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
