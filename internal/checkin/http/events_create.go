package http

import (
	"encoding/json"
	"net/http"

	"github.com/illiaantonenko/attendance/internal/checkin/domain"
	"github.com/illiaantonenko/attendance/internal/checkin/service"
	"github.com/illiaantonenko/attendance/pkg/checkinsdk"
	"github.com/illiaantonenko/attendance/pkg/httpx"
)

type EventsCreateHandler struct {
	EventService *service.EventService
}

// ServeHTTP godoc
//
//	@Summary		Create Event
//	@Description	Minimal event create used by the platform seeder. Full event CRUD lives in the platform's
//	@Description	scheduling service; the check-in service only needs events to exist.
//	@Tags			Events
//	@Accept			json
//	@Produce		json
//	@Param			request	body		checkinsdk.CreateEventRequest	true	"Event definition"
//	@Success		201		{object}	checkinsdk.EventResponse		"id, title, starts_at, ends_at"
//	@Failure		400		{object}	checkinsdk.ErrorResponse		"error, error_description"
//	@Failure		403		{object}	checkinsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/events [post].
func (h *EventsCreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req checkinsdk.CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return
	}

	event, err := h.EventService.CreateEvent(ctx, domain.Event{
		Title:               req.Title,
		StartsAt:            req.StartsAt,
		EndsAt:              req.EndsAt,
		QREnabled:           req.QREnabled,
		GeolocationRequired: req.GeolocationRequired,
		Latitude:            req.Latitude,
		Longitude:           req.Longitude,
		AllowedRadiusMeters: req.AllowedRadiusMeters,
		CheckInLeadMinutes:  req.CheckInLeadMinutes,
	}, httpx.UserIDFromCtx(ctx), httpx.UserRoleFromCtx(ctx))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, checkinsdk.EventResponse{
		ID:                  event.ID,
		Title:               event.Title,
		StartsAt:            event.StartsAt,
		EndsAt:              event.EndsAt,
		QREnabled:           event.QREnabled,
		GeolocationRequired: event.GeolocationRequired,
		TeacherID:           event.TeacherID,
	})
}
