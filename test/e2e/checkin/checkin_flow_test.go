package checkin_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/illiaantonenko/attendance/pkg/checkinsdk"
	"github.com/stretchr/testify/require"
)

// TestFullCheckInFlow walks the whole protocol end to end: the teacher
// creates an event and projects a QR code, the student scans it,
// validates it, redeems it, and any replay is refused.
func TestFullCheckInFlow(t *testing.T) {
	svc, cleanup := setupCheckInService(t)
	defer cleanup()

	teacher := teacherClient(svc)
	student := studentClient(svc, studentID)
	ctx := t.Context()

	// Teacher creates the event
	event := createOpenEvent(t, teacher)

	// Teacher projects a QR code
	qr, err := teacher.GenerateQR(ctx, event.ID)
	require.NoError(t, err)
	require.NotEmpty(t, qr.Token)
	require.Contains(t, qr.CheckInURL, "/check-in?token=")
	require.True(t, strings.HasPrefix(qr.QRCode, "data:image/png;base64,"))
	require.Equal(t, 600, qr.TTLSeconds)

	// The dashboard sees one live token
	active, err := teacher.ActiveTokens(ctx, event.ID)
	require.NoError(t, err)
	require.Len(t, active.Tokens, 1)

	// The scanner UI validates before redeeming
	validation, err := student.Validate(ctx, qr.Token)
	require.NoError(t, err)
	require.True(t, validation.Valid)
	require.Equal(t, event.ID, validation.EventID)

	// Student redeems the scanned URL
	att, err := student.CheckIn(ctx, checkinsdk.CheckInRequest{
		Token:      qr.CheckInURL,
		DeviceInfo: "e2e-test-device",
	})
	require.NoError(t, err)
	require.Equal(t, event.ID, att.EventID)
	require.Equal(t, studentID, att.StudentID)
	require.Equal(t, "present", att.Status)
	require.False(t, att.CheckedInAt.IsZero())

	// Status reflects the check-in
	status, err := student.Status(ctx, event.ID)
	require.NoError(t, err)
	require.True(t, status.CheckedIn)
	require.Equal(t, "present", status.Status)
	require.NotNil(t, status.CheckedInAt)

	// The token is gone from the dashboard
	active, err = teacher.ActiveTokens(ctx, event.ID)
	require.NoError(t, err)
	require.Empty(t, active.Tokens)

	// The same student replaying is told they are already in
	_, err = student.CheckIn(ctx, checkinsdk.CheckInRequest{Token: qr.Token})
	assertAPIError(t, err, http.StatusConflict, checkinsdk.ErrorCodeAlreadyCheckedIn)

	// A different student replaying the consumed token is refused
	other := studentClient(svc, studentID+1)
	_, err = other.CheckIn(ctx, checkinsdk.CheckInRequest{Token: qr.Token})
	assertAPIError(t, err, http.StatusBadRequest, checkinsdk.ErrorCodeAlreadyUsed)

	// Validation now reports the token as spent
	_, err = student.Validate(ctx, qr.Token)
	assertAPIError(t, err, http.StatusBadRequest, checkinsdk.ErrorCodeAlreadyUsed)
}

// TestEnrollmentGate verifies that events restricted to groups admit
// only enrolled students, while open events admit anyone.
func TestEnrollmentGate(t *testing.T) {
	svc, cleanup := setupCheckInService(t)
	defer cleanup()

	teacher := teacherClient(svc)
	ctx := t.Context()

	event := createOpenEvent(t, teacher)
	enrollStudent(t, svc, event.ID, studentID)

	// An outsider scans a projected code and is refused
	qr, err := teacher.GenerateQR(ctx, event.ID)
	require.NoError(t, err)

	outsider := studentClient(svc, 777)
	_, err = outsider.CheckIn(ctx, checkinsdk.CheckInRequest{Token: qr.Token})
	assertAPIError(t, err, http.StatusForbidden, checkinsdk.ErrorCodeNotEnrolled)

	// The refusal did not burn the token; the enrolled student still gets in
	enrolled := studentClient(svc, studentID)
	att, err := enrolled.CheckIn(ctx, checkinsdk.CheckInRequest{Token: qr.Token})
	require.NoError(t, err)
	require.Equal(t, "present", att.Status)
}

// TestGeofencedCheckIn exercises the geofence variants: a missing
// position, a position outside the fence, and one inside it.
func TestGeofencedCheckIn(t *testing.T) {
	svc, cleanup := setupCheckInService(t)
	defer cleanup()

	teacher := teacherClient(svc)
	student := studentClient(svc, studentID)
	ctx := t.Context()

	// Lecture hall in Poltava, 100m fence
	event := createGeofencedEvent(t, teacher, 49.5883, 34.5514, 100)

	issueToken := func() string {
		qr, err := teacher.GenerateQR(ctx, event.ID)
		require.NoError(t, err)
		return qr.Token
	}

	// No position supplied
	token := issueToken()
	_, err := student.CheckIn(ctx, checkinsdk.CheckInRequest{Token: token})
	assertAPIError(t, err, http.StatusBadRequest, checkinsdk.ErrorCodeLocationRequired)

	// Far outside the fence; the rejection carries the evaluation
	farLat, farLng := 50.0001, 35.0001
	_, err = student.CheckIn(ctx, checkinsdk.CheckInRequest{
		Token:     token,
		Latitude:  &farLat,
		Longitude: &farLng,
	})
	require.Error(t, err)

	var apiErr *checkinsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	require.Equal(t, checkinsdk.ErrorCodeTooFar, apiErr.Code)
	require.NotNil(t, apiErr.Distance)
	require.False(t, apiErr.Distance.WithinRadius)
	require.Greater(t, apiErr.Distance.DistanceMeters, 100.0)

	// The same token is still live and admits from inside the fence
	nearLat, nearLng := 49.5883, 34.5523
	att, err := student.CheckIn(ctx, checkinsdk.CheckInRequest{
		Token:     token,
		Latitude:  &nearLat,
		Longitude: &nearLng,
	})
	require.NoError(t, err)
	require.Equal(t, "present", att.Status)
	require.NotNil(t, att.Distance)
	require.True(t, att.Distance.WithinRadius)
}

// TestManualOverride verifies the teacher's manual attendance path and
// its convergence with QR check-in on a single registration row.
func TestManualOverride(t *testing.T) {
	svc, cleanup := setupCheckInService(t)
	defer cleanup()

	teacher := teacherClient(svc)
	student := studentClient(svc, studentID)
	ctx := t.Context()

	event := createOpenEvent(t, teacher)

	// Teacher marks the student late
	att, err := teacher.ManualCheckIn(ctx, event.ID, checkinsdk.ManualCheckInRequest{
		StudentID: studentID,
		Status:    "late",
	})
	require.NoError(t, err)
	require.Equal(t, "late", att.Status)

	status, err := student.Status(ctx, event.ID)
	require.NoError(t, err)
	require.True(t, status.CheckedIn)
	require.Equal(t, "late", status.Status)

	// A later manual correction converges on the same row
	att, err = teacher.ManualCheckIn(ctx, event.ID, checkinsdk.ManualCheckInRequest{
		StudentID: studentID,
		Status:    "excused",
	})
	require.NoError(t, err)
	require.Equal(t, "excused", att.Status)

	// Bogus status is rejected
	_, err = teacher.ManualCheckIn(ctx, event.ID, checkinsdk.ManualCheckInRequest{
		StudentID: studentID,
		Status:    "vanished",
	})
	assertAPIError(t, err, http.StatusBadRequest, checkinsdk.ErrorCodeInvalidRequest)

	// Students cannot reach the manual path
	_, err = student.ManualCheckIn(ctx, event.ID, checkinsdk.ManualCheckInRequest{
		StudentID: studentID,
		Status:    "present",
	})
	assertAPIError(t, err, http.StatusForbidden, checkinsdk.ErrorCodeForbidden)
}
