package media

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/webp"
)

func pngOf(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, x%h, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestProcessDownscalesToWebP(t *testing.T) {
	out, err := Process(bytes.NewReader(pngOf(t, 800, 400)), 200)
	require.NoError(t, err)

	cfg, err := webp.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 200, cfg.Width)
	assert.Equal(t, 100, cfg.Height)
}

func TestProcessKeepsSmallImages(t *testing.T) {
	out, err := Process(bytes.NewReader(pngOf(t, 120, 80)), DefaultMaxWidth)
	require.NoError(t, err)

	cfg, err := webp.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 120, cfg.Width)
	assert.Equal(t, 80, cfg.Height)
}

func TestProcessRejectsNonImages(t *testing.T) {
	_, err := Process(strings.NewReader("plain text"), DefaultMaxWidth)
	assert.ErrorIs(t, err, ErrUnsupportedImage)
}

// pngHeader returns a PNG signature and IHDR chunk declaring w x h with no
// pixel data behind it.
func pngHeader(w, h uint32) []byte {
	var buf bytes.Buffer
	buf.Write([]byte("\x89PNG\r\n\x1a\n"))

	data := make([]byte, 13)
	binary.BigEndian.PutUint32(data[0:4], w)
	binary.BigEndian.PutUint32(data[4:8], h)
	data[8] = 8 // bit depth
	data[9] = 6 // RGBA

	chunk := append([]byte("IHDR"), data...)
	_ = binary.Write(&buf, binary.BigEndian, uint32(len(data)))
	buf.Write(chunk)
	_ = binary.Write(&buf, binary.BigEndian, crc32.ChecksumIEEE(chunk))
	return buf.Bytes()
}

func TestProcessRejectsHugeDimensionsBeforeDecoding(t *testing.T) {
	_, err := Process(bytes.NewReader(pngHeader(20000, 20000)), DefaultMaxWidth)
	assert.ErrorIs(t, err, ErrImageTooLarge)
}

func TestNewKey(t *testing.T) {
	key := NewKey("uploads", time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC))
	assert.True(t, strings.HasPrefix(key, "uploads/2026/10/"))
	assert.True(t, strings.HasSuffix(key, ".webp"))
}

func TestNewS3StorePublicURL(t *testing.T) {
	s := NewS3Store(S3Config{Bucket: "media", Region: "eu-west-1"})
	assert.Equal(t, "https://media.s3.eu-west-1.amazonaws.com", s.publicURL)

	s = NewS3Store(S3Config{Bucket: "media", Region: "auto", PublicURL: "https://cdn.test/"})
	assert.Equal(t, "https://cdn.test", s.publicURL)
}
