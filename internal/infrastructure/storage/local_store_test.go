package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalStore_SaveWritesFileAndBuildsURL(t *testing.T) {
	root := t.TempDir()
	store := NewLocalStore(root, "http://localhost:5001/")

	url, err := store.Save(context.Background(), "user-1", "png", "image/png", []byte("avatar bytes"))

	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "http://localhost:5001/uploads/avatars/"))
	assert.True(t, strings.HasSuffix(url, ".png"))

	name := strings.TrimPrefix(url, "http://localhost:5001/uploads/avatars/")
	data, err := os.ReadFile(filepath.Join(root, "avatars", name))
	assert.NoError(t, err)
	assert.Equal(t, []byte("avatar bytes"), data)
}

func TestLocalStore_SaveGeneratesUniqueNames(t *testing.T) {
	store := NewLocalStore(t.TempDir(), "http://localhost:5001")

	url1, err := store.Save(context.Background(), "user-1", "png", "image/png", []byte("a"))
	assert.NoError(t, err)
	url2, err := store.Save(context.Background(), "user-1", "png", "image/png", []byte("b"))
	assert.NoError(t, err)

	assert.NotEqual(t, url1, url2)
}

func TestLocalStore_DeleteRemovesFile(t *testing.T) {
	root := t.TempDir()
	store := NewLocalStore(root, "http://localhost:5001")

	url, err := store.Save(context.Background(), "user-1", "jpg", "image/jpeg", []byte("old"))
	assert.NoError(t, err)

	assert.NoError(t, store.Delete(context.Background(), url))

	name := strings.TrimPrefix(url, "http://localhost:5001/uploads/avatars/")
	_, err = os.Stat(filepath.Join(root, "avatars", name))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalStore_DeleteIgnoresForeignAndMissing(t *testing.T) {
	store := NewLocalStore(t.TempDir(), "http://localhost:5001")

	assert.NoError(t, store.Delete(context.Background(), "https://storage.googleapis.com/bucket/avatars/x.png"))
	assert.NoError(t, store.Delete(context.Background(), "http://localhost:5001/uploads/avatars/never-existed.png"))
	assert.NoError(t, store.Delete(context.Background(), ""))
}

func TestLocalStore_DeleteRefusesTraversal(t *testing.T) {
	root := t.TempDir()
	store := NewLocalStore(root, "http://localhost:5001")

	outside := filepath.Join(root, "keep.txt")
	assert.NoError(t, os.WriteFile(outside, []byte("keep"), 0o644))

	assert.NoError(t, store.Delete(context.Background(), "http://localhost:5001/uploads/avatars/../keep.txt"))

	_, err := os.Stat(outside)
	assert.NoError(t, err)
}
