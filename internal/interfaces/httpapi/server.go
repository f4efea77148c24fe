package httpapi

import (
	"net/http"

	"github.com/riskibarqy/golf-tracker/internal/platform/logging"
)

type RouterOptions struct {
	CORSAllowedOrigins []string
	InternalJobToken   string
	// MetricsHandler serves /metrics when set.
	MetricsHandler http.Handler
}

func NewRouter(handler *Handler, logger *logging.Logger, opts RouterOptions) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, opts.MetricsHandler)
	registerHandicapRoutes(mux, handler)
	registerStatisticsRoutes(mux, handler)
	registerInternalJobRoutes(mux, handler, opts.InternalJobToken)

	return RequestTracing(RequestLogging(logger, CORS(opts.CORSAllowedOrigins, recoverPanic(logger, mux))))
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.recoverPanic")
		defer span.End()

		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(ctx, "panic recovered", "panic", rec)
				writeInternalError(ctx, w)
			}
		}()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
