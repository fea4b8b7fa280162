// Package response renders every JSON body the API sends.
package response

import (
	"barber/shared/constant"
	"barber/shared/failure"
	"barber/shared/logger"
	"encoding/json"
	"net/http"
)

// Body is the envelope of all responses; only the members relevant to a
// response are present.
type Body struct {
	Data    any               `json:"data,omitempty"`
	Message string            `json:"message,omitempty"`
	Error   string            `json:"error,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
	Old     map[string]string `json:"old,omitempty"`
}

func WithMessage(writer http.ResponseWriter, code int, message string) {
	write(writer, code, Body{Message: message})
}

func WithJSON(writer http.ResponseWriter, code int, payload any) {
	write(writer, code, Body{Data: payload})
}

// WithError uses the code carried by a failure.Failure, 500 for anything else.
func WithError(writer http.ResponseWriter, err error) {
	write(writer, failure.GetCode(err), Body{Error: err.Error()})
}

// WithRejection answers a refused form submission. Errors holds per-field
// messages and old the values to prefill the form with.
func WithRejection(writer http.ResponseWriter, code int, message string, errors, old map[string]string) {
	write(writer, code, Body{Error: message, Errors: errors, Old: old})
}

func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

func write(writer http.ResponseWriter, code int, body Body) {
	payload, err := json.Marshal(body)
	if err != nil {
		logger.ErrorWithStack(err)
		writer.WriteHeader(http.StatusInternalServerError)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)

	if _, err = writer.Write(payload); err != nil {
		logger.ErrorWithStack(err)
	}
}
