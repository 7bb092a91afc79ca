package storage

import (
	"bytes"
	"context"
	"path"
	"strings"

	gcs "cloud.google.com/go/storage"
	"github.com/google/uuid"

	"github.com/croshet/storefront-api/pkg/helpers"
)

// GCSStore keeps avatars in a Google Cloud Storage bucket under
// avatars/<userID>/<id>.<ext>. Selected when GCS_BUCKET is configured.
type GCSStore struct {
	Client *gcs.Client
	Bucket string
}

func NewGCSStore(client *gcs.Client, bucket string) *GCSStore {
	return &GCSStore{Client: client, Bucket: bucket}
}

func (s *GCSStore) Save(ctx context.Context, userID, ext, contentType string, data []byte) (string, error) {
	objectPath := path.Join("avatars", userID, uuid.NewString()+"."+ext)
	return helpers.UploadObject(ctx, s.Client, s.Bucket, objectPath, contentType, bytes.NewReader(data))
}

// Delete removes a previously saved avatar; URLs outside this bucket are ignored.
func (s *GCSStore) Delete(ctx context.Context, avatarURL string) error {
	prefix := helpers.GCSPublicURL(s.Bucket, "")
	if !strings.HasPrefix(avatarURL, prefix) {
		return nil
	}
	objectPath := strings.TrimPrefix(avatarURL, prefix)
	if objectPath == "" {
		return nil
	}
	return helpers.DeleteObject(ctx, s.Client, s.Bucket, objectPath)
}

var _ AvatarStore = (*GCSStore)(nil)
