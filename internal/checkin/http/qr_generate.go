package http

import (
	"net/http"
	"strconv"

	"github.com/illiaantonenko/attendance/internal/checkin/service"
	"github.com/illiaantonenko/attendance/pkg/checkinsdk"
	"github.com/illiaantonenko/attendance/pkg/httpx"
	"github.com/illiaantonenko/attendance/pkg/qrx"
	"github.com/illiaantonenko/attendance/pkg/slogx"
)

type QrGenerateHandler struct {
	QrService *service.QrService
}

// ServeHTTP godoc
//
//	@Summary		Issue Check-In Token
//	@Description	Mint a one-time QR check-in token for an event. The teacher owning the event (or an admin) may
//	@Description	call this while the display window is open: from two hours before the event starts until it ends.
//	@Description	The response carries the signed token, the check-in URL, and the rendered QR image.
//	@Tags			QR
//	@Produce		json
//	@Param			id	path		int								true	"Event ID"
//	@Success		200	{object}	checkinsdk.GenerateQRResponse	"token, check_in_url, qr_code, expires_at, ttl_seconds"
//	@Failure		400	{object}	checkinsdk.ErrorResponse		"error, error_description"
//	@Failure		403	{object}	checkinsdk.ErrorResponse		"error, error_description"
//	@Failure		404	{object}	checkinsdk.ErrorResponse		"error, error_description"
//	@Router			/v1/events/{id}/qr [post].
func (h *QrGenerateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	eventID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || eventID <= 0 {
		writeBadRequest(w, "invalid event id")
		return
	}

	issued, err := h.QrService.Generate(ctx, eventID, httpx.UserIDFromCtx(ctx), httpx.UserRoleFromCtx(ctx))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	qrImage, err := qrx.EncodeDataURI(issued.CheckInURL, qrx.DefaultSize)
	if err != nil {
		log.Error("failed to render qr image", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, checkinsdk.ErrorResponse{
			Error:            checkinsdk.ErrorCodeServerError,
			ErrorDescription: "Failed to render QR image",
		})
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, checkinsdk.GenerateQRResponse{
		Token:      issued.Token,
		CheckInURL: issued.CheckInURL,
		QRCode:     qrImage,
		ExpiresAt:  issued.ExpiresAt.Unix(),
		TTLSeconds: issued.TTLSeconds,
	})
}
