package middleware

import (
	"fmt"
	"io"
	"net/http"
	"runtime/debug"

	"navline/internal/platform/logger"
)

// RecoverText converts panics into a 200 text/plain reply carrying fallback.
// Telephony platforms treat any non-200 as a dropped call, so the status never changes
func RecoverText(fallback string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logger.C(r.Context()).Error().
					Str("panic", fmt.Sprint(rec)).
					Bytes("stack", debug.Stack()).
					Msg("handler panic recovered")

				w.Header().Set("Content-Type", "text/plain; charset=utf-8")
				w.WriteHeader(http.StatusOK)
				_, _ = io.WriteString(w, fallback)
			}()
			next.ServeHTTP(w, r)
		})
	}
}
