package helpers

import (
	"encoding/base64"
	"errors"
	"regexp"
	"strings"
)

// Avatar uploads arrive as inline data URLs:
// data:image/<format>;base64,<payload>

var ErrInvalidDataURL = errors.New("invalid image data URL")
var ErrImageTooLarge = errors.New("image exceeds size limit")

var dataURLRe = regexp.MustCompile(`^data:(image/(png|jpeg|jpg|webp));base64,(.+)$`)

// DecodedImage is the result of parsing an image data URL.
type DecodedImage struct {
	MIME string
	Ext  string // file extension without the dot
	Data []byte
}

// ParseImageDataURL validates and decodes an image data URL. Only png,
// jpeg/jpg and webp are accepted. maxBytes caps the decoded size; the
// base64 length is checked first so oversized payloads are rejected
// without decoding them.
func ParseImageDataURL(dataURL string, maxBytes int64) (*DecodedImage, error) {
	m := dataURLRe.FindStringSubmatch(strings.TrimSpace(dataURL))
	if m == nil {
		return nil, ErrInvalidDataURL
	}
	mime := strings.ToLower(m[1])
	payload := m[3]

	// base64 expands data by 4/3; reject oversized payloads before decoding
	var padding int64
	if strings.HasSuffix(payload, "==") {
		padding = 2
	} else if strings.HasSuffix(payload, "=") {
		padding = 1
	}
	if decoded := int64(len(payload))/4*3 - padding; decoded > maxBytes {
		return nil, ErrImageTooLarge
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, ErrInvalidDataURL
	}
	if int64(len(data)) > maxBytes {
		return nil, ErrImageTooLarge
	}

	ext := strings.TrimPrefix(mime, "image/")
	if ext == "jpeg" {
		ext = "jpg"
	}
	return &DecodedImage{MIME: mime, Ext: ext, Data: data}, nil
}
