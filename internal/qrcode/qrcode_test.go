package qrcode

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaffURL(t *testing.T) {
	assert.Equal(t, "https://quickfixx.test/staff/QF001", StaffURL("https", "quickfixx.test", "QF001"))
	assert.Equal(t, "http://localhost:8080/staff/a%2Fb", StaffURL("http", "localhost:8080", "a/b"))
}

func TestDataURLIsDecodablePNG(t *testing.T) {
	out, err := DataURL("https://quickfixx.test/staff/QF001", 0)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "data:image/png;base64,"))

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(out, "data:image/png;base64,"))
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, 400, img.Bounds().Dx())
}
