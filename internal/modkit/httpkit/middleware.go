package httpkit

import (
	"net/http"
	"time"

	"navline/internal/platform/net/middleware"
)

// CommonStack returns the baseline middleware slice for JSON modules
// compose with module specific middleware in the module options
func CommonStack() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		// safety
		middleware.Recover(),

		// cache / freshness
		middleware.NoCache(),

		// cross-origin (tweak config in main if needed)
		middleware.CORS(middleware.CORSOptions{}),
		middleware.StripSlashes(),
		middleware.Timeout(30 * time.Second),
	}
}

// TelephonyStack is the stack for the text/plain entry point: panics become a
// spoken fallback and the caller id is attached to the request context
func TelephonyStack(fallback, callerParam string) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		middleware.RecoverText(fallback),
		middleware.CallContext(callerParam),
	}
}

// RootStack is installed once on the server mux: correlation, access log, heartbeat
func RootStack(opt middleware.AccessLogOptions) []func(http.Handler) http.Handler {
	return append(middleware.Defaults(),
		middleware.AccessLogZerolog(opt),
		middleware.Heartbeat("/health"),
	)
}
