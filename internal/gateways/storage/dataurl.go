package storage

import (
	"encoding/base64"
	"errors"
	"strings"

	"github.com/sunar87/foodgram/foodgram/config"
)

var (
	ErrInvalidDataURL  = errors.New("image must be a base64 data URL")
	ErrUnsupportedType = errors.New("unsupported image type")
	ErrImageTooLarge   = errors.New("image is too large")
)

var extensions = map[string]string{
	"image/png":  "png",
	"image/jpeg": "jpg",
	"image/jpg":  "jpg",
	"image/gif":  "gif",
	"image/webp": "webp",
}

// Blob is a decoded upload.
type Blob struct {
	Data        []byte
	ContentType string
	Ext         string
}

// DecodeDataURL parses "data:image/<type>;base64,<payload>".
func DecodeDataURL(raw string) (*Blob, error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(raw), "data:")
	if !ok {
		return nil, ErrInvalidDataURL
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, ErrInvalidDataURL
	}
	contentType, encoding, ok := strings.Cut(meta, ";")
	if !ok || encoding != "base64" {
		return nil, ErrInvalidDataURL
	}
	contentType = strings.ToLower(contentType)
	ext, ok := extensions[contentType]
	if !ok {
		return nil, ErrUnsupportedType
	}
	if base64.StdEncoding.DecodedLen(len(payload)) > config.MaxImageBytes {
		return nil, ErrImageTooLarge
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil || len(data) == 0 {
		return nil, ErrInvalidDataURL
	}
	return &Blob{Data: data, ContentType: contentType, Ext: ext}, nil
}

// IsInvalidImage reports whether err came from rejecting the upload itself
// rather than from the storage backend.
func IsInvalidImage(err error) bool {
	return errors.Is(err, ErrInvalidDataURL) || errors.Is(err, ErrUnsupportedType) || errors.Is(err, ErrImageTooLarge)
}
