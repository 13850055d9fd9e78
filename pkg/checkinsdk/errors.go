package checkinsdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/illiaantonenko/attendance/pkg/geo"
)

// Rejection codes returned in the error envelope.
const (
	ErrorCodeInvalidRequest   = "invalid_request"
	ErrorCodeInvalidToken     = "invalid_token"
	ErrorCodeExpiredToken     = "expired_token"
	ErrorCodeEventNotFound    = "event_not_found"
	ErrorCodeQRDisabled       = "qr_disabled"
	ErrorCodeTooEarly         = "too_early"
	ErrorCodeEnded            = "ended"
	ErrorCodeNotEnrolled      = "not_enrolled"
	ErrorCodeForbidden        = "forbidden"
	ErrorCodeLocationRequired = "location_required"
	ErrorCodeTooFar           = "too_far"
	ErrorCodeAlreadyCheckedIn = "already_checked_in"
	ErrorCodeAlreadyUsed      = "already_used"
	ErrorCodeExpiredOrInvalid = "expired_or_invalid"
	ErrorCodeStoreUnavailable = "store_unavailable"
	ErrorCodeServerError      = "server_error"
)

// APIError is a typed rejection parsed from an error response. The
// Distance field is populated for "too_far" rejections.
type APIError struct {
	StatusCode  int
	Code        string
	Description string
	Distance    *geo.Evaluation
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// parseErrorResponse turns a non-2xx response body into a typed error.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        errResp.Error,
			Description: errResp.ErrorDescription,
			Distance:    errResp.Distance,
		}
	}

	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        ErrorCodeServerError,
		Description: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
