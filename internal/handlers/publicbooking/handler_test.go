package publicbooking_test

import (
	otelMocks "barber/infras/otel/mocks"
	"barber/internal/domains/publicbooking/mocks"
	"barber/internal/domains/publicbooking/model/dto"
	"barber/internal/handlers/publicbooking"
	"barber/shared/failure"
	"barber/shared/session"
	"barber/shared/shift"
	"barber/transport/http/middleware"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const sessionID = "0b7c3f5e-6a34-4c4e-9d0f-2f8d3b7a1c55"

var client = middleware.ClientInfo{IP: "203.0.113.9", UserAgent: "curl/8", Secure: true}

func newRouter(t *testing.T) (chi.Router, *mocks.MockPublicBooking) {
	t.Helper()

	ctrl := gomock.NewController(t)
	service := mocks.NewMockPublicBooking(ctrl)

	handler := publicbooking.New(service, otelMocks.NewOtel())
	router := chi.NewRouter()
	handler.Router(router)

	return router, service
}

func newRequest(method, target, contentType string, body io.Reader) *http.Request {
	request := httptest.NewRequest(method, target, body)
	if contentType != "" {
		request.Header.Set("Content-Type", contentType)
	}

	ctx := middleware.WithClient(session.WithID(request.Context(), sessionID), client)

	return request.WithContext(ctx)
}

func TestHandler_GetForm(t *testing.T) {
	tests := []struct {
		name       string
		setupMock  func(service *mocks.MockPublicBooking)
		wantStatus int
		wantBody   string
	}{
		{
			name: "success",
			setupMock: func(service *mocks.MockPublicBooking) {
				service.EXPECT().Form(gomock.Any(), sessionID).Return(dto.FormResponse{
					Catalog: dto.Catalog{
						Capsters:   []dto.CapsterOption{{ID: 1, Name: "Andi", AvailableNow: true}},
						Prices:     []dto.PriceOption{{ID: 2, Name: "Cukur", Price: 35000}},
						HairModels: []dto.HairModelOption{},
					},
					CaptchaQuestion: "3 + 4",
				}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody: `{"data":{
				"capsters":[{"id":1,"name":"Andi","image_url":null,"work_hour_name":null,"shift":null,"available_now":true}],
				"prices":[{"id":2,"name":"Cukur","price":35000,"description":null}],
				"hair_models":[],
				"captcha_question":"3 + 4"}}`,
		},
		{
			name: "store failure is hidden",
			setupMock: func(service *mocks.MockPublicBooking) {
				service.EXPECT().Form(gomock.Any(), sessionID).Return(dto.FormResponse{}, errors.New("dial tcp: connection refused"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Internal Server Error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, service := newRouter(t)
			tt.setupMock(service)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, newRequest(http.MethodGet, "/public-bookings/form", "", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestHandler_Submit(t *testing.T) {
	jsonBody := `{"capster_id":1,"price_id":"2","booking_date":"2025-07-15","name":"Budi","email":"budi@example.com",` +
		`"whatsapp":"0812","notes":"tipis","captcha_answer":7,"website":null}`
	wantRaw := map[string]string{
		"capster_id":     "1",
		"price_id":       "2",
		"booking_date":   "2025-07-15",
		"name":           "Budi",
		"email":          "budi@example.com",
		"whatsapp":       "0812",
		"notes":          "tipis",
		"captcha_answer": "7",
		"website":        "",
	}

	form := url.Values{}
	for key, value := range wantRaw {
		form.Set(key, value)
	}

	tests := []struct {
		name        string
		contentType string
		body        string
		setupMock   func(service *mocks.MockPublicBooking)
		wantStatus  int
		wantBody    string
	}{
		{
			name:        "accepted json",
			contentType: "application/json",
			body:        jsonBody,
			setupMock: func(service *mocks.MockPublicBooking) {
				service.EXPECT().Submit(gomock.Any(), dto.SubmissionRequest{
					Raw:       wantRaw,
					ClientIP:  client.IP,
					UserAgent: client.UserAgent,
					SessionID: sessionID,
					Secure:    true,
				}).Return(dto.Accept("b-1"), nil)
			},
			wantStatus: http.StatusCreated,
			wantBody:   `{"data":{"booking_id":"b-1","message":"Booking diterima. Kami akan konfirmasi segera."}}`,
		},
		{
			name:        "accepted form",
			contentType: "application/x-www-form-urlencoded",
			body:        form.Encode(),
			setupMock: func(service *mocks.MockPublicBooking) {
				service.EXPECT().Submit(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req dto.SubmissionRequest) (dto.Outcome, error) {
						assert.Equal(t, wantRaw, req.Raw)

						return dto.Accept("b-2"), nil
					})
			},
			wantStatus: http.StatusCreated,
			wantBody:   `{"data":{"booking_id":"b-2","message":"Booking diterima. Kami akan konfirmasi segera."}}`,
		},
		{
			name:        "invalid fields",
			contentType: "application/json",
			body:        `{"email":"budi"}`,
			setupMock: func(service *mocks.MockPublicBooking) {
				service.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(dto.RejectInvalid(
					map[string]string{"email": "email must be a valid email address"},
					map[string]string{"email": "budi"},
				), nil)
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody: `{"error":"Data tidak valid. Silakan cek kembali.",
				"errors":{"email":"email must be a valid email address"},"old":{"email":"budi"}}`,
		},
		{
			name:        "generic rejection",
			contentType: "application/json",
			body:        jsonBody,
			setupMock: func(service *mocks.MockPublicBooking) {
				service.EXPECT().Submit(gomock.Any(), gomock.Any()).
					Return(dto.Reject(dto.ReasonDuplicate, map[string]string{"name": "Budi"}), nil)
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Tidak dapat memproses booking. Silakan coba lagi.","old":{"name":"Budi"}}`,
		},
		{
			name:        "malformed json",
			contentType: "application/json",
			body:        `{"name":`,
			setupMock: func(service *mocks.MockPublicBooking) {
				service.EXPECT().Submit(gomock.Any(), dto.SubmissionRequest{
					Raw:       map[string]string{},
					ClientIP:  client.IP,
					UserAgent: client.UserAgent,
					SessionID: sessionID,
					Secure:    true,
				}).Return(dto.RejectInvalid(map[string]string{"name": "name is required"}, map[string]string{}), nil)
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `{"error":"Data tidak valid. Silakan cek kembali.","errors":{"name":"name is required"}}`,
		},
		{
			name:        "store failure",
			contentType: "application/json",
			body:        jsonBody,
			setupMock: func(service *mocks.MockPublicBooking) {
				service.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(dto.Outcome{}, errors.New("pq: relation does not exist"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Internal Server Error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, service := newRouter(t)
			tt.setupMock(service)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, newRequest(http.MethodPost, "/public-bookings", tt.contentType, strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestHandler_GetAvailability(t *testing.T) {
	window := &shift.Window{DayStart: "Senin", DayEnd: "Jumat", TimeStart: "09:00", TimeEnd: "17:00"}

	tests := []struct {
		name       string
		target     string
		setupMock  func(service *mocks.MockPublicBooking)
		wantStatus int
		wantBody   string
	}{
		{
			name:   "available on date",
			target: "/capsters/3/availability?date=2025-07-15",
			setupMock: func(service *mocks.MockPublicBooking) {
				service.EXPECT().Availability(gomock.Any(), int64(3), "2025-07-15").Return(dto.AvailabilityResponse{
					CapsterID: 3,
					Date:      "2025-07-15",
					Available: true,
					Shift:     window,
				}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody: `{"data":{"capster_id":3,"date":"2025-07-15","available":true,
				"shift":{"day_start":"Senin","day_end":"Jumat","time_start":"09:00","time_end":"17:00"}}}`,
		},
		{
			name:       "invalid id",
			target:     "/capsters/abc/availability",
			setupMock:  func(_ *mocks.MockPublicBooking) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"invalid capster id"}`,
		},
		{
			name:   "invalid date",
			target: "/capsters/3/availability?date=15-07-2025",
			setupMock: func(service *mocks.MockPublicBooking) {
				service.EXPECT().Availability(gomock.Any(), int64(3), "15-07-2025").Return(dto.AvailabilityResponse{}, failure.ErrInvalidDate)
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"invalid date, expected YYYY-MM-DD"}`,
		},
		{
			name:   "unknown capster",
			target: "/capsters/99/availability",
			setupMock: func(service *mocks.MockPublicBooking) {
				service.EXPECT().Availability(gomock.Any(), int64(99), "").Return(dto.AvailabilityResponse{}, failure.NotFound("capster not found"))
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"capster not found"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, service := newRouter(t)
			tt.setupMock(service)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, newRequest(http.MethodGet, tt.target, "", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
