package checkin_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/illiaantonenko/attendance/pkg/checkinsdk"
	"github.com/stretchr/testify/require"
)

// TestRoleEnforcement verifies that issuing, listing and event creation
// are capability-gated, and that teachers cannot act on events they do
// not own.
func TestRoleEnforcement(t *testing.T) {
	svc, cleanup := setupCheckInService(t)
	defer cleanup()

	teacher := teacherClient(svc)
	student := studentClient(svc, studentID)
	ctx := t.Context()

	event := createOpenEvent(t, teacher)

	// Students cannot mint tokens or list them
	_, err := student.GenerateQR(ctx, event.ID)
	assertAPIError(t, err, http.StatusForbidden, checkinsdk.ErrorCodeForbidden)

	_, err = student.ActiveTokens(ctx, event.ID)
	assertAPIError(t, err, http.StatusForbidden, checkinsdk.ErrorCodeForbidden)

	// Students cannot create events
	now := time.Now()
	_, err = student.CreateEvent(ctx, checkinsdk.CreateEventRequest{
		Title:    "Rogue Lecture",
		StartsAt: now.Add(time.Hour),
		EndsAt:   now.Add(2 * time.Hour),
	})
	assertAPIError(t, err, http.StatusForbidden, checkinsdk.ErrorCodeForbidden)

	// Another teacher cannot mint tokens for an event they do not own
	rival := checkinsdk.NewClient(svc.URL, teacherID+1, "teacher")
	_, err = rival.GenerateQR(ctx, event.ID)
	assertAPIError(t, err, http.StatusForbidden, checkinsdk.ErrorCodeForbidden)

	// Admins can
	admin := checkinsdk.NewClient(svc.URL, adminID, "admin")
	qr, err := admin.GenerateQR(ctx, event.ID)
	require.NoError(t, err)
	require.NotEmpty(t, qr.Token)
}

// TestTamperedAndBogusTokens verifies that forged or mangled tokens are
// rejected without touching attendance state.
func TestTamperedAndBogusTokens(t *testing.T) {
	svc, cleanup := setupCheckInService(t)
	defer cleanup()

	teacher := teacherClient(svc)
	student := studentClient(svc, studentID)
	ctx := t.Context()

	event := createOpenEvent(t, teacher)

	_, err := student.Validate(ctx, "not-a-token")
	assertAPIError(t, err, http.StatusBadRequest, checkinsdk.ErrorCodeInvalidToken)

	_, err = student.CheckIn(ctx, checkinsdk.CheckInRequest{Token: "not-a-token"})
	assertAPIError(t, err, http.StatusBadRequest, checkinsdk.ErrorCodeInvalidToken)

	// A real token with a flipped signature byte
	qr, err := teacher.GenerateQR(ctx, event.ID)
	require.NoError(t, err)

	tampered := qr.Token[:len(qr.Token)-2] + "xx"
	_, err = student.CheckIn(ctx, checkinsdk.CheckInRequest{Token: tampered})
	assertAPIError(t, err, http.StatusBadRequest, checkinsdk.ErrorCodeInvalidToken)

	// Nothing was recorded for the student
	status, err := student.Status(ctx, event.ID)
	require.NoError(t, err)
	require.False(t, status.CheckedIn)
}

// TestQRDisabledEvent verifies that token issuance is refused for events
// that have the QR flow turned off.
func TestQRDisabledEvent(t *testing.T) {
	svc, cleanup := setupCheckInService(t)
	defer cleanup()

	teacher := teacherClient(svc)
	ctx := t.Context()

	now := time.Now()
	event, err := teacher.CreateEvent(ctx, checkinsdk.CreateEventRequest{
		Title:    "Paper Roll Call Only",
		StartsAt: now.Add(5 * time.Minute),
		EndsAt:   now.Add(90 * time.Minute),
	})
	require.NoError(t, err)

	_, err = teacher.GenerateQR(ctx, event.ID)
	assertAPIError(t, err, http.StatusBadRequest, checkinsdk.ErrorCodeQRDisabled)
}

// TestUnknownEvent verifies 404 mapping for token issuance against a
// nonexistent event.
func TestUnknownEvent(t *testing.T) {
	svc, cleanup := setupCheckInService(t)
	defer cleanup()

	teacher := teacherClient(svc)

	_, err := teacher.GenerateQR(t.Context(), 999999)
	assertAPIError(t, err, http.StatusNotFound, checkinsdk.ErrorCodeEventNotFound)
}

// TestMissingIdentity verifies the gateway-identity requirement on
// authenticated routes.
func TestMissingIdentity(t *testing.T) {
	svc, cleanup := setupCheckInService(t)
	defer cleanup()

	req, err := http.NewRequestWithContext(t.Context(), http.MethodPost, svc.URL+"/v1/check-in", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
