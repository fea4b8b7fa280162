package http_test

import (
	"barber/config"
	otelMocks "barber/infras/otel/mocks"
	"barber/internal/domains/publicbooking/mocks"
	"barber/internal/domains/publicbooking/model/dto"
	"barber/internal/handlers/publicbooking"
	"barber/shared/cache"
	"barber/shared/limiter"
	"barber/shared/metrics"
	"barber/shared/timezone"
	httpTransport "barber/transport/http"
	"barber/transport/http/middleware"
	"barber/transport/http/router"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newServer(t *testing.T, cfg *config.Config) (*httpTransport.HTTP, *mocks.MockPublicBooking) {
	t.Helper()

	ctrl := gomock.NewController(t)
	service := mocks.NewMockPublicBooking(ctrl)
	ot := otelMocks.NewOtel()
	clock := timezone.FixedClock(time.Date(2025, 7, 14, 10, 0, 0, 0, timezone.GetLocation()))
	m := metrics.New()

	appMiddleware := middleware.NewAppMiddleware(ot, cfg, limiter.New(cache.NewMemoryCache(clock)), m)
	r := router.New(router.DomainHandlers{PublicBooking: publicbooking.New(service, ot)}, appMiddleware)

	return httpTransport.New(cfg, r, appMiddleware, m), service
}

func TestHTTP_Health(t *testing.T) {
	server, _ := newServer(t, &config.Config{})

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"OK"}`, rec.Body.String())
	assert.Equal(t, httpTransport.ServerStateReady, server.State())
}

func TestHTTP_RoutesThroughMiddleware(t *testing.T) {
	server, service := newServer(t, &config.Config{})

	service.EXPECT().Availability(gomock.Any(), int64(3), "").Return(dto.AvailabilityResponse{CapsterID: 3, Date: "2025-07-14"}, nil)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/capsters/3/availability", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Result().Cookies(), "public routes carry a session")

	scrape := httptest.NewRecorder()
	server.ServeHTTP(scrape, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, scrape.Code)
	assert.Contains(t, scrape.Body.String(), `barber_http_requests_total{code="200",method="GET",route="/v1/capsters/{id}/availability"} 1`)
}

func TestHTTP_CORS(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.CORS.Enable = true
	cfg.App.CORS.AllowedOrigins = []string{"https://barber.example"}
	cfg.App.CORS.AllowedMethods = []string{http.MethodGet, http.MethodPost}

	server, _ := newServer(t, cfg)

	request := httptest.NewRequest(http.MethodOptions, "/v1/public-bookings", nil)
	request.Header.Set("Origin", "https://barber.example")
	request.Header.Set("Access-Control-Request-Method", http.MethodPost)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, request)

	assert.Equal(t, "https://barber.example", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestHTTP_UnknownRoute(t *testing.T) {
	server, _ := newServer(t, &config.Config{})

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/rooms", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
