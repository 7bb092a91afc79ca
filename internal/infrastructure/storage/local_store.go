package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// LocalStore writes avatars under <root>/avatars and serves them at
// <baseURL>/uploads/avatars/<file>.
type LocalStore struct {
	Root    string // uploads directory on disk
	BaseURL string // public base URL, no trailing slash
}

func NewLocalStore(root, baseURL string) *LocalStore {
	return &LocalStore{Root: root, BaseURL: strings.TrimRight(baseURL, "/")}
}

func (s *LocalStore) Save(ctx context.Context, userID, ext, contentType string, data []byte) (string, error) {
	dir := filepath.Join(s.Root, "avatars")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	name := fmt.Sprintf("%s_%d_%s.%s", userID, time.Now().UnixMilli(), uuid.NewString()[:8], ext)
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		return "", err
	}
	return s.BaseURL + "/uploads/avatars/" + name, nil
}

// Delete removes a previously saved avatar. URLs outside this store are
// ignored, as are missing files.
func (s *LocalStore) Delete(ctx context.Context, avatarURL string) error {
	const marker = "/uploads/avatars/"
	idx := strings.Index(avatarURL, marker)
	if idx < 0 {
		return nil
	}
	name := avatarURL[idx+len(marker):]
	// refuse path traversal in stored URLs
	if name == "" || strings.Contains(name, "/") || strings.Contains(name, "..") {
		return nil
	}
	err := os.Remove(filepath.Join(s.Root, "avatars", name))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

var _ AvatarStore = (*LocalStore)(nil)
