package metrics_test

import (
	"barber/shared/metrics"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObservePublicBooking(t *testing.T) {
	m := metrics.New()

	m.ObservePublicBooking("created")
	m.ObservePublicBooking("honeypot")
	m.ObservePublicBooking("honeypot")

	count, err := testutil.GatherAndCount(m.Registry(), "barber_public_booking_attempts_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestHandler(t *testing.T) {
	m := metrics.New()
	m.ObserveRequest("/v1/public-bookings", http.MethodPost, http.StatusCreated, 15*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(body), `barber_http_requests_total{code="201",method="POST",route="/v1/public-bookings"} 1`)
}
