package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hashicorp/go-multierror"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rs/zerolog"
)

type Responder struct {
	logger zerolog.Logger
}

func NewResponder(logger zerolog.Logger) Responder {
	return Responder{logger}
}

func (r Responder) WriteJSON(w http.ResponseWriter, data any) {
	r.writeJSON(w, http.StatusOK, data)
}

// WriteJSONStatus writes data with a status code other than 200
func (r Responder) WriteJSONStatus(w http.ResponseWriter, status int, data any) {
	r.writeJSON(w, status, data)
}

func (r Responder) writeJSON(w http.ResponseWriter, status int, data any) {
	// Marshal the data first to check size and handle errors
	jsonData, err := json.Marshal(data)
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling response data")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if _, err := w.Write(jsonData); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

func (r Responder) WriteError(w http.ResponseWriter, err error) {
	var apiErr *errs.ApiErr

	// For unexpected errors, log and return generic internal error
	if !errors.As(err, &apiErr) {
		r.logger.Error().Err(err).Msg("unexpected error")
		r.writeJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error:   "Internal Server Error",
			Status:  "error",
			Details: "An unexpected error occurred",
		})
		return
	}

	response := ErrorResponse{
		Error:   apiErr.Error(),
		Status:  "error",
		Field:   apiErr.Field,
		Details: apiErr.Details,
	}

	// Add full error chain for debugging
	if apiErr.Cause != nil {
		response.Cause = apiErr.GetFullError()
	}

	if apiErr.StatusCode >= http.StatusInternalServerError {
		r.logger.Error().Err(apiErr.Cause).Int("status", apiErr.StatusCode).Msg(apiErr.Error())
	}

	r.writeJSON(w, apiErr.StatusCode, response)
}

// WriteValidationErrors writes every invalid field of a form. Errors that are
// not field errors fall back to WriteError.
func (r Responder) WriteValidationErrors(w http.ResponseWriter, err error) {
	var merr *multierror.Error
	if !errors.As(err, &merr) {
		r.WriteError(w, err)
		return
	}

	response := ValidationErrorResponse{
		Error:  "Validation error",
		Status: "validation_error",
		Fields: make(map[string]string, len(merr.Errors)),
	}
	for _, fieldErr := range merr.Errors {
		var apiErr *errs.ApiErr
		if !errors.As(fieldErr, &apiErr) || apiErr.Field == "" {
			r.WriteError(w, fieldErr)
			return
		}
		response.Fields[apiErr.Field] = apiErr.Details
		if response.Message == "" {
			response.Message = apiErr.Details
		}
	}

	r.writeJSON(w, http.StatusBadRequest, response)
}
