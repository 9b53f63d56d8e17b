package storage

import (
	"context"
	"encoding/base64"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngPayload = []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}

func pngDataURL() string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngPayload)
}

func TestDecodeDataURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantExt string
		wantErr error
	}{
		{name: "png", raw: pngDataURL(), wantExt: "png"},
		{name: "jpeg upper case type", raw: "data:IMAGE/JPEG;base64," + base64.StdEncoding.EncodeToString([]byte("jpg")), wantExt: "jpg"},
		{name: "not a data url", raw: "https://example.com/a.png", wantErr: ErrInvalidDataURL},
		{name: "not base64 encoded", raw: "data:image/png,rawbytes", wantErr: ErrInvalidDataURL},
		{name: "broken payload", raw: "data:image/png;base64,@@@", wantErr: ErrInvalidDataURL},
		{name: "empty payload", raw: "data:image/png;base64,", wantErr: ErrInvalidDataURL},
		{name: "unsupported type", raw: "data:text/plain;base64,aGVsbG8=", wantErr: ErrUnsupportedType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blob, err := DecodeDataURL(tt.raw)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.True(t, IsInvalidImage(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantExt, blob.Ext)
			assert.NotEmpty(t, blob.Data)
		})
	}
}

func TestLocalStore(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir, "http://localhost:8080/media/")
	require.NoError(t, err)
	ctx := context.Background()

	ref, err := store.Save(ctx, "recipes/images", pngDataURL())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ref, "recipes/images/"))
	assert.True(t, strings.HasSuffix(ref, ".png"))

	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(ref)))
	require.NoError(t, err)
	assert.Equal(t, pngPayload, data)
	assert.Equal(t, "http://localhost:8080/media/"+ref, store.URL(ref))
	assert.Empty(t, store.URL(""))

	require.NoError(t, store.Delete(ctx, ref))
	_, err = os.Stat(filepath.Join(dir, filepath.FromSlash(ref)))
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, store.Delete(ctx, ref), "deleting a missing image is not an error")
	assert.Error(t, store.Delete(ctx, "../outside.png"))

	_, err = store.Save(ctx, "recipes/images", "garbage")
	assert.ErrorIs(t, err, ErrInvalidDataURL)
}

type fakeObjectClient struct {
	puts    map[string][]byte
	types   map[string]string
	deleted []string
}

func (f *fakeObjectClient) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.puts[*in.Key] = data
	f.types[*in.Key] = *in.ContentType
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeObjectClient) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.deleted = append(f.deleted, *in.Key)
	return &s3.DeleteObjectOutput{}, nil
}

func TestSpacesStore(t *testing.T) {
	client := &fakeObjectClient{puts: map[string][]byte{}, types: map[string]string{}}
	store := newSpacesStore(client, "foodgram", "/media/", "https://fra1.digitaloceanspaces.com")
	ctx := context.Background()

	ref, err := store.Save(ctx, "users", pngDataURL())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ref, "users/"))

	key := "media/" + ref
	assert.Equal(t, pngPayload, client.puts[key])
	assert.Equal(t, "image/png", client.types[key])
	assert.Equal(t, "https://foodgram.fra1.digitaloceanspaces.com/"+key, store.URL(ref))

	require.NoError(t, store.Delete(ctx, ref))
	assert.Equal(t, []string{key}, client.deleted)
}
