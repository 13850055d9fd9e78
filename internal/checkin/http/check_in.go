package http

import (
	"encoding/json"
	"net/http"

	"github.com/illiaantonenko/attendance/internal/checkin/service"
	"github.com/illiaantonenko/attendance/pkg/checkinsdk"
	"github.com/illiaantonenko/attendance/pkg/geo"
	"github.com/illiaantonenko/attendance/pkg/httpx"
)

type CheckInHandler struct {
	CheckInService *service.CheckInService
}

// ServeHTTP godoc
//
//	@Summary		Redeem Check-In Token
//	@Description	Redeem a scanned one-time token and record the student's attendance. The token field accepts
//	@Description	either the bare token or the full check-in URL from the QR code. Latitude and longitude are
//	@Description	required when the event enforces a geofence. At most one redemption per token ever succeeds.
//	@Tags			CheckIn
//	@Accept			json
//	@Produce		json
//	@Param			request	body		checkinsdk.CheckInRequest		true	"Check-in request"
//	@Success		200		{object}	checkinsdk.AttendanceResponse	"event_id, student_id, status, checked_in_at"
//	@Failure		400		{object}	checkinsdk.ErrorResponse		"error, error_description, details"
//	@Failure		403		{object}	checkinsdk.ErrorResponse		"error, error_description"
//	@Failure		404		{object}	checkinsdk.ErrorResponse		"error, error_description"
//	@Failure		409		{object}	checkinsdk.ErrorResponse		"error, error_description"
//	@Failure		503		{object}	checkinsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/check-in [post].
func (h *CheckInHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req checkinsdk.CheckInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return
	}
	if req.Token == "" {
		writeBadRequest(w, "token is required")
		return
	}
	if (req.Latitude == nil) != (req.Longitude == nil) {
		writeBadRequest(w, "latitude and longitude must be supplied together")
		return
	}

	var location *geo.Point
	if req.Latitude != nil {
		p := geo.Point{Lat: *req.Latitude, Lng: *req.Longitude}
		if !p.Valid() {
			writeBadRequest(w, "latitude or longitude out of range")
			return
		}
		location = &p
	}

	deviceInfo := req.DeviceInfo
	if deviceInfo == "" {
		deviceInfo = r.UserAgent()
	}

	summary, err := h.CheckInService.CheckIn(ctx, req.Token,
		httpx.UserIDFromCtx(ctx), httpx.UserRoleFromCtx(ctx), location, deviceInfo)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, checkinsdk.AttendanceResponse{
		EventID:     summary.EventID,
		StudentID:   summary.StudentID,
		Status:      summary.Status,
		CheckedInAt: summary.CheckedInAt,
		Distance:    summary.Distance,
	})
}
