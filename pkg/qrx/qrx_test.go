package qrx_test

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/illiaantonenko/attendance/pkg/qrx"
	"github.com/stretchr/testify/require"
)

func TestEncodePNG(t *testing.T) {
	raw, err := qrx.EncodePNG("https://attendance.example.edu/check-in?token=abc", 200)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	require.Equal(t, 200, img.Bounds().Dx())
	require.Equal(t, 200, img.Bounds().Dy())
}

func TestEncodePNGDefaultsSize(t *testing.T) {
	raw, err := qrx.EncodePNG("hello", 0)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	require.Equal(t, qrx.DefaultSize, img.Bounds().Dx())
}

func TestEncodePNGRejectsEmpty(t *testing.T) {
	_, err := qrx.EncodePNG("", 200)
	require.Error(t, err)
}

func TestEncodeDataURI(t *testing.T) {
	uri, err := qrx.EncodeDataURI("payload", 100)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))
}
