package middleware

import (
	"net/http"

	"navline/internal/platform/logger"
	pnet "navline/internal/platform/net"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// CallContext copies the request id and the caller id found in param (query or
// form) onto the context so downstream logs carry both. Run after RequestID
func CallContext(param string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := chimw.GetReqID(r.Context())
			caller := r.FormValue(param)

			ctx := pnet.WithRequest(r.Context(), reqID, caller)
			ctx = logger.WithCall(ctx, reqID, caller)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
