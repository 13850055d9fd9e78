package http

import (
	"errors"
	"net/http"

	"github.com/illiaantonenko/attendance/internal/checkin/service"
	"github.com/illiaantonenko/attendance/pkg/checkinsdk"
	"github.com/illiaantonenko/attendance/pkg/httpx"
	"github.com/illiaantonenko/attendance/pkg/slogx"
)

// writeServiceError maps the service error taxonomy onto the JSON error
// envelope and its transport status code.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var tooFar *service.TooFarError
	if errors.As(err, &tooFar) {
		eval := tooFar.Evaluation
		httpx.WriteJSON(w, http.StatusBadRequest, checkinsdk.ErrorResponse{
			Error:            checkinsdk.ErrorCodeTooFar,
			ErrorDescription: tooFar.Error(),
			Distance:         &eval,
		})
		return
	}

	status := http.StatusInternalServerError
	code := checkinsdk.ErrorCodeServerError

	switch {
	case errors.Is(err, service.ErrInvalidToken):
		status, code = http.StatusBadRequest, checkinsdk.ErrorCodeInvalidToken
	case errors.Is(err, service.ErrExpiredToken):
		status, code = http.StatusBadRequest, checkinsdk.ErrorCodeExpiredToken
	case errors.Is(err, service.ErrEventNotFound):
		status, code = http.StatusNotFound, checkinsdk.ErrorCodeEventNotFound
	case errors.Is(err, service.ErrQRDisabled):
		status, code = http.StatusBadRequest, checkinsdk.ErrorCodeQRDisabled
	case errors.Is(err, service.ErrTooEarly):
		status, code = http.StatusBadRequest, checkinsdk.ErrorCodeTooEarly
	case errors.Is(err, service.ErrEnded):
		status, code = http.StatusBadRequest, checkinsdk.ErrorCodeEnded
	case errors.Is(err, service.ErrNotEnrolled):
		status, code = http.StatusForbidden, checkinsdk.ErrorCodeNotEnrolled
	case errors.Is(err, service.ErrForbidden):
		status, code = http.StatusForbidden, checkinsdk.ErrorCodeForbidden
	case errors.Is(err, service.ErrLocationRequired):
		status, code = http.StatusBadRequest, checkinsdk.ErrorCodeLocationRequired
	case errors.Is(err, service.ErrAlreadyCheckedIn):
		status, code = http.StatusConflict, checkinsdk.ErrorCodeAlreadyCheckedIn
	case errors.Is(err, service.ErrAlreadyUsed):
		status, code = http.StatusBadRequest, checkinsdk.ErrorCodeAlreadyUsed
	case errors.Is(err, service.ErrExpiredOrInvalid):
		status, code = http.StatusBadRequest, checkinsdk.ErrorCodeExpiredOrInvalid
	case errors.Is(err, service.ErrInvalidEvent), errors.Is(err, service.ErrInvalidStatus):
		status, code = http.StatusBadRequest, checkinsdk.ErrorCodeInvalidRequest
	case errors.Is(err, service.ErrStoreUnavailable):
		status, code = http.StatusServiceUnavailable, checkinsdk.ErrorCodeStoreUnavailable
	default:
		slogx.FromContext(r.Context()).Error("unhandled service error", "err", err)
	}

	httpx.WriteJSON(w, status, checkinsdk.ErrorResponse{
		Error:            code,
		ErrorDescription: userMessage(code, err),
	})
}

func userMessage(code string, err error) string {
	switch code {
	case checkinsdk.ErrorCodeServerError, checkinsdk.ErrorCodeStoreUnavailable:
		// Never leak internals.
		return "The service is temporarily unable to process the request"
	default:
		return err.Error()
	}
}

func writeBadRequest(w http.ResponseWriter, description string) {
	httpx.WriteJSON(w, http.StatusBadRequest, checkinsdk.ErrorResponse{
		Error:            checkinsdk.ErrorCodeInvalidRequest,
		ErrorDescription: description,
	})
}
