package http

import (
	"net/http"
	"strconv"

	"github.com/illiaantonenko/attendance/internal/checkin/service"
	"github.com/illiaantonenko/attendance/pkg/checkinsdk"
	"github.com/illiaantonenko/attendance/pkg/httpx"
)

type QrActiveHandler struct {
	QrService *service.QrService
}

// ServeHTTP godoc
//
//	@Summary		List Active Tokens
//	@Description	List the unredeemed, unexpired tokens issued for an event, newest first. Dashboard view for the event's teacher.
//	@Tags			QR
//	@Produce		json
//	@Param			id	path		int								true	"Event ID"
//	@Success		200	{object}	checkinsdk.ActiveTokensResponse	"event_id, tokens"
//	@Failure		403	{object}	checkinsdk.ErrorResponse		"error, error_description"
//	@Failure		404	{object}	checkinsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/events/{id}/qr/active [get].
func (h *QrActiveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	eventID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || eventID <= 0 {
		writeBadRequest(w, "invalid event id")
		return
	}

	tokens, err := h.QrService.ActiveTokens(ctx, eventID, httpx.UserIDFromCtx(ctx), httpx.UserRoleFromCtx(ctx))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := checkinsdk.ActiveTokensResponse{
		EventID: eventID,
		Tokens:  make([]checkinsdk.ActiveToken, 0, len(tokens)),
	}
	for _, t := range tokens {
		out.Tokens = append(out.Tokens, checkinsdk.ActiveToken{
			ID:        t.ID,
			ExpiresAt: t.ExpiresAt,
			CreatedAt: t.CreatedAt,
		})
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, out)
}
