package httpapi

import (
	"net/http"

	"github.com/riskibarqy/event-scoring/internal/platform/logging"
	"github.com/riskibarqy/event-scoring/internal/platform/metrics"
)

type RouterConfig struct {
	CORSAllowedOrigins []string
	InternalJobToken   string
	// Metrics is optional; nil disables /metrics and request histograms.
	Metrics *metrics.Registry
}

func NewRouter(handler *Handler, verifier TokenVerifier, logger *logging.Logger, cfg RouterConfig) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, cfg.Metrics)
	registerPublicRoutes(mux, handler)
	registerJuryRoutes(mux, handler, verifier)
	registerAdminRoutes(mux, handler, verifier)
	registerInternalJobRoutes(mux, handler, cfg.InternalJobToken)

	return RequestTracing(RequestLogging(logger, CORS(cfg.CORSAllowedOrigins, recoverPanic(logger, RequestMetrics(cfg.Metrics, mux)))))
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
