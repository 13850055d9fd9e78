package http

import (
	"net/http"
	"strconv"

	"github.com/illiaantonenko/attendance/internal/checkin/service"
	"github.com/illiaantonenko/attendance/pkg/checkinsdk"
	"github.com/illiaantonenko/attendance/pkg/httpx"
)

type CheckInStatusHandler struct {
	CheckInService *service.CheckInService
}

// ServeHTTP godoc
//
//	@Summary		Check-In Status
//	@Description	Report the caller's attendance state for an event.
//	@Tags			CheckIn
//	@Produce		json
//	@Param			id	path		int							true	"Event ID"
//	@Success		200	{object}	checkinsdk.StatusResponse	"event_id, checked_in, status, checked_in_at"
//	@Failure		400	{object}	checkinsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/events/{id}/check-in/status [get].
func (h *CheckInStatusHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	eventID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || eventID <= 0 {
		writeBadRequest(w, "invalid event id")
		return
	}

	reg, found, err := h.CheckInService.Status(ctx, eventID, httpx.UserIDFromCtx(ctx))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := checkinsdk.StatusResponse{EventID: eventID}
	if found {
		out.CheckedIn = reg.CheckedIn()
		out.Status = reg.Status
		out.CheckedInAt = reg.CheckedInAt
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, out)
}
