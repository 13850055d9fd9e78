package service

import (
	"errors"
	"fmt"

	"github.com/illiaantonenko/attendance/pkg/geo"
)

var (
	ErrForbidden        = errors.New("requester role is not permitted to perform this action")
	ErrInvalidToken     = errors.New("token is malformed or its signature is invalid")
	ErrExpiredToken     = errors.New("token has expired")
	ErrEventNotFound    = errors.New("event not found")
	ErrQRDisabled       = errors.New("qr check-in is not enabled for this event")
	ErrTooEarly         = errors.New("check-in window has not opened yet")
	ErrEnded            = errors.New("event has already ended")
	ErrNotEnrolled      = errors.New("student is not enrolled in any of the event's groups")
	ErrLocationRequired = errors.New("location is required to check in to this event")
	ErrAlreadyCheckedIn = errors.New("attendance has already been recorded")
	ErrAlreadyUsed      = errors.New("token has already been used")
	ErrExpiredOrInvalid = errors.New("token is expired or was never issued")
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrInvalidEvent     = errors.New("invalid event definition")
	ErrInvalidStatus    = errors.New("invalid attendance status")
)

// TooFarError rejects a check-in from outside the event's geofence. It
// carries the computed distances so the caller can tell the student how
// far off they are.
type TooFarError struct {
	Evaluation geo.Evaluation
}

func (e *TooFarError) Error() string {
	return fmt.Sprintf("location is %s outside the allowed radius",
		geo.FormatDistance(e.Evaluation.ExcessMeters))
}
