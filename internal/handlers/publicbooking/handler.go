package publicbooking

import (
	"barber/infras/otel"
	"barber/internal/domains/publicbooking/model/dto"
	"barber/internal/domains/publicbooking/service"
	"barber/shared/constant"
	"barber/shared/failure"
	"barber/shared/session"
	"barber/transport/http/middleware"
	"barber/transport/http/response"
	"encoding/json"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.PublicBooking
	otel    otel.Otel
}

func New(service service.PublicBooking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/public-bookings", func(routerGroup chi.Router) {
		routerGroup.Get("/form", handler.GetForm)
		routerGroup.Post("/", handler.Submit)
	})

	router.Get("/capsters/{id}/availability", handler.GetAvailability)
}

// GetForm returns the selectable catalog and a fresh CAPTCHA question bound
// to the visitor's session.
func (handler *Handler) GetForm(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetForm")
	defer scope.End()

	form, err := handler.service.Form(ctx, session.IDFromContext(ctx))
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, failure.Public(err))

		return
	}

	response.WithJSON(writer, http.StatusOK, form)
}

// Submit accepts a public booking as JSON or form values.
func (handler *Handler) Submit(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Submit")
	defer scope.End()

	// An unreadable body still goes through the gates as an empty submission
	// so it is counted and logged like any other attempt.
	raw, err := readSubmission(writer, request)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to read public booking body")

		raw = map[string]string{}
	}

	client := middleware.ClientFromContext(ctx)

	outcome, err := handler.service.Submit(ctx, dto.SubmissionRequest{
		Raw:       raw,
		ClientIP:  client.IP,
		UserAgent: client.UserAgent,
		SessionID: session.IDFromContext(ctx),
		Secure:    client.Secure,
	})
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, failure.Public(err))

		return
	}

	switch {
	case outcome.Accepted:
		response.WithJSON(writer, http.StatusCreated, dto.SubmissionResponse{
			BookingID: outcome.BookingID,
			Message:   outcome.Message,
		})
	case outcome.Reason == dto.ReasonInvalid:
		response.WithRejection(writer, http.StatusUnprocessableEntity, outcome.Message, outcome.Errors, outcome.Old)
	default:
		response.WithRejection(writer, http.StatusBadRequest, outcome.Message, nil, outcome.Old)
	}
}

// GetAvailability reports whether a capster works on the given date, or right
// now when no date is passed.
func (handler *Handler) GetAvailability(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailability")
	defer scope.End()

	capsterID, err := strconv.ParseInt(chi.URLParam(request, constant.RequestParamID), 10, 64)
	if err != nil || capsterID <= 0 {
		response.WithError(writer, failure.BadRequestFromString("invalid capster id"))

		return
	}

	availability, err := handler.service.Availability(ctx, capsterID, request.URL.Query().Get(constant.RequestParamDate))
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, failure.Public(err))

		return
	}

	response.WithJSON(writer, http.StatusOK, availability)
}

func readSubmission(writer http.ResponseWriter, request *http.Request) (map[string]string, error) {
	mediaType, _, _ := mime.ParseMediaType(request.Header.Get(constant.RequestHeaderContentType))

	switch mediaType {
	case constant.ContentTypeJSON:
		var body map[string]json.RawMessage

		decoder := json.NewDecoder(http.MaxBytesReader(writer, request.Body, constant.RequestMaxMemory))
		if err := decoder.Decode(&body); err != nil {
			return nil, err //nolint:wrapcheck
		}

		return dto.RawFromJSON(body), nil
	case constant.ContentTypeMultipartFormData:
		if err := request.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
			return nil, err //nolint:wrapcheck
		}
	default:
		request.Body = http.MaxBytesReader(writer, request.Body, constant.RequestMaxMemory)
		if err := request.ParseForm(); err != nil {
			return nil, err //nolint:wrapcheck
		}
	}

	raw := make(map[string]string, len(request.PostForm))
	for key, values := range request.PostForm {
		if len(values) > 0 {
			raw[key] = values[0]
		}
	}

	return raw, nil
}
