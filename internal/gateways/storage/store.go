package storage

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/sunar87/foodgram/foodgram"
)

// Store keeps uploaded images. Refs are object keys relative to the store
// root, e.g. "recipes/images/<uuid>.png".
type Store interface {
	Save(ctx context.Context, prefix, dataURL string) (string, error)
	Delete(ctx context.Context, ref string) error
	URL(ref string) string
}

// New returns a Spaces store when a bucket is configured and a local
// directory store otherwise.
func New(ctx context.Context, spaces foodgram.SpacesConfig, media foodgram.MediaConfig, baseURL string) (Store, error) {
	if spaces.Bucket != "" {
		return NewSpacesStore(ctx, spaces)
	}
	prefix := media.URLPrefix
	if !strings.HasPrefix(prefix, "http://") && !strings.HasPrefix(prefix, "https://") {
		prefix = baseURL + "/" + strings.Trim(prefix, "/")
	}
	return NewLocalStore(media.Dir, prefix)
}

func objectKey(prefix, ext string) string {
	return path.Join(strings.Trim(prefix, "/"), fmt.Sprintf("%s.%s", uuid.NewString(), ext))
}

// validRef rejects refs that would escape the store root.
func validRef(ref string) bool {
	if ref == "" || strings.HasPrefix(ref, "/") {
		return false
	}
	for _, part := range strings.Split(ref, "/") {
		if part == ".." {
			return false
		}
	}
	return true
}
