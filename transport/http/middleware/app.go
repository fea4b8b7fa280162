package middleware

import (
	"barber/config"
	"barber/infras/otel"
	"barber/shared/constant"
	"barber/shared/limiter"
	"barber/shared/metrics"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

const (
	otelHTTPScopeName = "http"
	routeUnmatched    = "unmatched"
)

type AppMiddleware interface {
	Tracing(next http.Handler) http.Handler
	Metrics(next http.Handler) http.Handler
	Client(next http.Handler) http.Handler
	RateLimit(next http.Handler) http.Handler
	Session(next http.Handler) http.Handler
}

type appMiddleware struct {
	otel    otel.Otel
	config  *config.Config
	limiter limiter.Limiter
	metrics *metrics.Metrics
}

func NewAppMiddleware(otel otel.Otel, config *config.Config, limiter limiter.Limiter, metrics *metrics.Metrics) AppMiddleware {
	return &appMiddleware{
		otel:    otel,
		config:  config,
		limiter: limiter,
		metrics: metrics,
	}
}

func (a *appMiddleware) Tracing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		spanName := fmt.Sprintf("%s %s", request.Method, request.URL.Path)

		ctx, scope := a.otel.NewScope(request.Context(), otelHTTPScopeName, spanName)
		defer scope.End()

		scope.SetAttributes(map[string]any{
			"app.name":        a.config.App.Name,
			"http.path":       request.URL.Path,
			"http.method":     request.Method,
			"http.user_agent": request.Header.Get(constant.RequestHeaderUserAgent),
			"http.host":       request.Host,
			"http.request_id": chiMiddleware.GetReqID(request.Context()),
		})

		wrapped := chiMiddleware.NewWrapResponseWriter(writer, request.ProtoMajor)
		next.ServeHTTP(wrapped, request.WithContext(ctx))

		scope.SetAttributes(map[string]any{
			"http.route":       routePattern(request),
			"http.status_code": statusOf(wrapped),
		})
	})
}

func (a *appMiddleware) Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		start := time.Now()
		wrapped := chiMiddleware.NewWrapResponseWriter(writer, request.ProtoMajor)

		next.ServeHTTP(wrapped, request)

		a.metrics.ObserveRequest(routePattern(request), request.Method, statusOf(wrapped), time.Since(start))
	})
}

// routePattern is only complete once the request went through the router.
func routePattern(request *http.Request) string {
	routeCtx := chi.RouteContext(request.Context())
	if routeCtx == nil {
		return routeUnmatched
	}

	pattern := routeCtx.RoutePattern()
	if pattern == "" {
		return routeUnmatched
	}

	return pattern
}

func statusOf(writer chiMiddleware.WrapResponseWriter) int {
	if writer.Status() == 0 {
		return http.StatusOK
	}

	return writer.Status()
}
