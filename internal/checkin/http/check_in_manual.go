package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/illiaantonenko/attendance/internal/checkin/service"
	"github.com/illiaantonenko/attendance/pkg/checkinsdk"
	"github.com/illiaantonenko/attendance/pkg/httpx"
)

type CheckInManualHandler struct {
	CheckInService *service.CheckInService
}

// ServeHTTP godoc
//
//	@Summary		Manual Attendance Override
//	@Description	Record a student's attendance directly, bypassing the token protocol. Only the event's teacher
//	@Description	or an admin may call this. Converges on the same attendance row as QR redemption.
//	@Tags			CheckIn
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int								true	"Event ID"
//	@Param			request	body		checkinsdk.ManualCheckInRequest	true	"student_id, status"
//	@Success		200		{object}	checkinsdk.AttendanceResponse	"event_id, student_id, status, checked_in_at"
//	@Failure		400		{object}	checkinsdk.ErrorResponse		"error, error_description"
//	@Failure		403		{object}	checkinsdk.ErrorResponse		"error, error_description"
//	@Failure		404		{object}	checkinsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/events/{id}/check-in/manual [post].
func (h *CheckInManualHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	eventID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || eventID <= 0 {
		writeBadRequest(w, "invalid event id")
		return
	}

	var req checkinsdk.ManualCheckInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return
	}
	if req.StudentID <= 0 {
		writeBadRequest(w, "student_id is required")
		return
	}
	if req.Status == "" {
		writeBadRequest(w, "status is required")
		return
	}

	summary, err := h.CheckInService.ManualCheckIn(ctx, eventID, req.StudentID, req.Status,
		httpx.UserIDFromCtx(ctx), httpx.UserRoleFromCtx(ctx))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, checkinsdk.AttendanceResponse{
		EventID:     summary.EventID,
		StudentID:   summary.StudentID,
		Status:      summary.Status,
		CheckedInAt: summary.CheckedInAt,
	})
}
