package middlewares

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/hrakoto/go-annuaire/app/helpers"
	"github.com/unrolled/render"
	"go.uber.org/zap"
)

// RequestIDMiddleware tags every request with a uuid, echoed back in the
// X-Request-ID header and logged with the request line.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestID)

		start := time.Now()
		next.ServeHTTP(w, r.WithContext(helpers.WithRequestID(r.Context(), requestID)))

		zap.S().Infow("request",
			"id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start),
		)
	})
}

// RecoveryMiddleware keeps a panicking handler from taking the process down;
// the client gets a generic 500.
func RecoveryMiddleware(rnd *render.Render) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					zap.S().Errorw("panic recovered",
						"id", helpers.RequestIDFromContext(r.Context()),
						"path", r.URL.Path,
						"panic", rec,
					)
					_ = rnd.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
