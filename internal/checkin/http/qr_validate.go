package http

import (
	"encoding/json"
	"net/http"

	"github.com/illiaantonenko/attendance/internal/checkin/service"
	"github.com/illiaantonenko/attendance/pkg/checkinsdk"
	"github.com/illiaantonenko/attendance/pkg/httpx"
)

type QrValidateHandler struct {
	QrService *service.QrService
}

// ServeHTTP godoc
//
//	@Summary		Validate Token
//	@Description	Decode a token and report whether it is still redeemable, without consuming it. Used by the
//	@Description	scanner UI to give early feedback before the student commits to a check-in.
//	@Tags			QR
//	@Accept			json
//	@Produce		json
//	@Param			request	body		checkinsdk.ValidateRequest	true	"Token or scanned URL"
//	@Success		200		{object}	checkinsdk.ValidateResponse	"valid, event_id, expires_at"
//	@Failure		400		{object}	checkinsdk.ErrorResponse	"error, error_description"
//	@Router			/v1/qr/validate [post].
func (h *QrValidateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req checkinsdk.ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return
	}
	if req.Token == "" {
		writeBadRequest(w, "token is required")
		return
	}

	info, err := h.QrService.Validate(ctx, req.Token)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, checkinsdk.ValidateResponse{
		Valid:     true,
		EventID:   info.EventID,
		ExpiresAt: info.ExpiresAt.Unix(),
	})
}
