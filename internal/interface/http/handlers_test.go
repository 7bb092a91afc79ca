package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/croshet/storefront-api/internal/application"
	"github.com/croshet/storefront-api/internal/domain/entity"
	"github.com/croshet/storefront-api/internal/domain/repository"
	"github.com/croshet/storefront-api/internal/interface/middleware"
	"github.com/croshet/storefront-api/pkg/helpers"
	"github.com/croshet/storefront-api/pkg/validation"
)

// shared fixtures for handler tests: an in-memory user repo, a throwaway
// avatar store, and a router wired the way the real modules wire it.

type memUserRepo struct {
	mu    sync.Mutex
	seq   int
	users map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*entity.User{}}
}

func (r *memUserRepo) Create(ctx context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Username == u.Username || existing.Email == u.Email {
			return repository.ErrDuplicate
		}
	}
	r.seq++
	u.ID = fmt.Sprintf("user-%d", r.seq)
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memUserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memUserRepo) Update(ctx context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.ID]; !ok {
		return repository.ErrNotFound
	}
	for _, existing := range r.users {
		if existing.ID != u.ID && existing.Username == u.Username {
			return repository.ErrDuplicate
		}
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) UpdatePassword(ctx context.Context, id, hash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.Password = hash
	return nil
}

type memAvatarStore struct {
	mu  sync.Mutex
	seq int
}

func (s *memAvatarStore) Save(ctx context.Context, userID, ext, contentType string, data []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	return fmt.Sprintf("http://localhost:5001/uploads/avatars/%s_%d.%s", userID, s.seq, ext), nil
}

func (s *memAvatarStore) Delete(ctx context.Context, avatarURL string) error { return nil }

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// authStack returns a router with the auth and user endpoints registered
// the way the production modules register them, plus the backing repo.
func authStack(t *testing.T) (*gin.Engine, *memUserRepo, *application.UserService) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.Init()

	repo := newMemUserRepo()
	svc := &application.UserService{
		Repo:             repo,
		JWT:              helpers.NewJWTManager("test-secret", 7*24*time.Hour),
		Avatars:          &memAvatarStore{},
		Logger:           testLogger(),
		MaxAvatarBytes:   2 * 1024 * 1024,
		UsernameCooldown: 7 * 24 * time.Hour,
	}

	authH := NewAuthHandler(svc, svc.Logger)
	userH := NewUserHandler(svc, svc.Logger)

	r := gin.New()
	api := r.Group("/api/v1")
	api.POST("/auth/register", authH.Register)
	api.POST("/auth/login", authH.Login)
	me := api.Group("/users", middleware.Auth(repo, svc.JWT))
	me.GET("/me", userH.Me)
	me.PATCH("/me/profile", userH.UpdateProfile)
	return r, repo, svc
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		assert.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, path, &buf)
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
