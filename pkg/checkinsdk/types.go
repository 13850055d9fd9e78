package checkinsdk

import (
	"time"

	"github.com/illiaantonenko/attendance/pkg/geo"
)

// ErrorResponse is the JSON error envelope every endpoint uses.
type ErrorResponse struct {
	// Error is the machine-readable rejection code (e.g., "expired_token")
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error
	ErrorDescription string `json:"error_description"`

	// Distance carries the geofence evaluation when the rejection is "too_far"
	Distance *geo.Evaluation `json:"distance,omitempty"`
}

// GenerateQRResponse is returned from POST /v1/events/{id}/qr.
type GenerateQRResponse struct {
	// Token is the signed one-time check-in token
	Token string `json:"token"`

	// CheckInURL is the URL encoded into the QR image
	CheckInURL string `json:"check_in_url" example:"https://attendance.example.edu/check-in?token=..."`

	// QRCode is the rendered QR image as a base64 PNG data URI
	QRCode string `json:"qr_code"`

	// ExpiresAt is the unix timestamp after which the token is dead
	ExpiresAt int64 `json:"expires_at"`

	// TTLSeconds is the token lifetime in seconds
	TTLSeconds int `json:"ttl_seconds" example:"600"`
}

// ActiveToken is one unredeemed ledger entry in the dashboard listing.
type ActiveToken struct {
	ID        string    `json:"id"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// ActiveTokensResponse is returned from GET /v1/events/{id}/qr/active.
type ActiveTokensResponse struct {
	EventID int64         `json:"event_id"`
	Tokens  []ActiveToken `json:"tokens"`
}

// ValidateRequest is the body of POST /v1/qr/validate.
type ValidateRequest struct {
	// Token is a bare token or the full scanned check-in URL
	Token string `json:"token"`
}

// ValidateResponse is returned from POST /v1/qr/validate.
type ValidateResponse struct {
	Valid     bool  `json:"valid"`
	EventID   int64 `json:"event_id,omitempty"`
	ExpiresAt int64 `json:"expires_at,omitempty"`
}

// CheckInRequest is the body of POST /v1/check-in.
type CheckInRequest struct {
	// Token is a bare token or the full scanned check-in URL
	Token string `json:"token"`

	// Latitude/Longitude are required when the event enforces a geofence
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`

	// DeviceInfo is free-form client metadata recorded with the check-in
	DeviceInfo string `json:"device_info,omitempty"`
}

// AttendanceResponse is the successful check-in summary.
type AttendanceResponse struct {
	EventID     int64           `json:"event_id"`
	StudentID   int64           `json:"student_id"`
	Status      string          `json:"status" example:"present"`
	CheckedInAt time.Time       `json:"checked_in_at"`
	Distance    *geo.Evaluation `json:"distance,omitempty"`
}

// ManualCheckInRequest is the body of POST /v1/events/{id}/check-in/manual.
type ManualCheckInRequest struct {
	StudentID int64  `json:"student_id"`
	Status    string `json:"status" example:"present"`
}

// StatusResponse is returned from GET /v1/events/{id}/check-in/status.
type StatusResponse struct {
	EventID     int64      `json:"event_id"`
	CheckedIn   bool       `json:"checked_in"`
	Status      string     `json:"status,omitempty"`
	CheckedInAt *time.Time `json:"checked_in_at,omitempty"`
}

// CreateEventRequest is the body of POST /v1/events.
type CreateEventRequest struct {
	Title               string    `json:"title"`
	StartsAt            time.Time `json:"starts_at"`
	EndsAt              time.Time `json:"ends_at"`
	QREnabled           bool      `json:"qr_enabled"`
	GeolocationRequired bool      `json:"geolocation_required"`
	Latitude            *float64  `json:"latitude,omitempty"`
	Longitude           *float64  `json:"longitude,omitempty"`
	AllowedRadiusMeters float64   `json:"allowed_radius_m,omitempty"`
	CheckInLeadMinutes  int       `json:"check_in_lead_min,omitempty"`
}

// EventResponse is returned from POST /v1/events.
type EventResponse struct {
	ID                  int64     `json:"id"`
	Title               string    `json:"title"`
	StartsAt            time.Time `json:"starts_at"`
	EndsAt              time.Time `json:"ends_at"`
	QREnabled           bool      `json:"qr_enabled"`
	GeolocationRequired bool      `json:"geolocation_required"`
	TeacherID           int64     `json:"teacher_id"`
}

// HealthChecks reports the state of critical dependencies.
type HealthChecks struct {
	Database string `json:"database" example:"ok"`
	Signer   string `json:"signer" example:"ok"`
}

// HealthResponse is returned from /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status" example:"ok"`
	Uptime  string        `json:"uptime" example:"1h2m3s"`
	Version string        `json:"version" example:"0.1.0"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
