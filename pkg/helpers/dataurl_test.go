package helpers

import (
	"bytes"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
)

func pngDataURL(payload []byte) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(payload)
}

func TestParseImageDataURL_PNG(t *testing.T) {
	raw := []byte("fake png bytes")

	img, err := ParseImageDataURL(pngDataURL(raw), 2*1024*1024)

	assert.NoError(t, err)
	assert.Equal(t, "image/png", img.MIME)
	assert.Equal(t, "png", img.Ext)
	assert.Equal(t, raw, img.Data)
}

func TestParseImageDataURL_JpegGetsJpgExt(t *testing.T) {
	url := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString([]byte("jpeg"))

	img, err := ParseImageDataURL(url, 1024)

	assert.NoError(t, err)
	assert.Equal(t, "image/jpeg", img.MIME)
	assert.Equal(t, "jpg", img.Ext)
}

func TestParseImageDataURL_Webp(t *testing.T) {
	url := "data:image/webp;base64," + base64.StdEncoding.EncodeToString([]byte("webp"))

	img, err := ParseImageDataURL(url, 1024)

	assert.NoError(t, err)
	assert.Equal(t, "webp", img.Ext)
}

func TestParseImageDataURL_RejectsUnsupportedFormat(t *testing.T) {
	url := "data:image/gif;base64," + base64.StdEncoding.EncodeToString([]byte("gif"))

	_, err := ParseImageDataURL(url, 1024)

	assert.ErrorIs(t, err, ErrInvalidDataURL)
}

func TestParseImageDataURL_RejectsNonDataURL(t *testing.T) {
	_, err := ParseImageDataURL("https://example.com/cat.png", 1024)
	assert.ErrorIs(t, err, ErrInvalidDataURL)

	_, err = ParseImageDataURL("", 1024)
	assert.ErrorIs(t, err, ErrInvalidDataURL)
}

func TestParseImageDataURL_RejectsBadBase64(t *testing.T) {
	_, err := ParseImageDataURL("data:image/png;base64,!!!not base64!!!", 1024)
	assert.ErrorIs(t, err, ErrInvalidDataURL)
}

func TestParseImageDataURL_RejectsOversized(t *testing.T) {
	max := int64(2 * 1024 * 1024)
	raw := bytes.Repeat([]byte{0xAB}, int(max)+1)

	_, err := ParseImageDataURL(pngDataURL(raw), max)

	assert.ErrorIs(t, err, ErrImageTooLarge)
}

func TestParseImageDataURL_AcceptsAtLimit(t *testing.T) {
	max := int64(1024)
	raw := bytes.Repeat([]byte{0xCD}, int(max))

	img, err := ParseImageDataURL(pngDataURL(raw), max)

	assert.NoError(t, err)
	assert.Len(t, img.Data, int(max))
}
