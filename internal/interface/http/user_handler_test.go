package handlers

import (
	"encoding/base64"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/croshet/storefront-api/pkg/response"
)

// registerAndLogin creates an account through the API and returns its token.
func registerAndLogin(t *testing.T, r *gin.Engine, username, email string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/register", registerBody(username, email), "")
	assert.Equal(t, http.StatusCreated, w.Code)
	data := decodeBody(t, w)["data"].(map[string]any)
	return data["token"].(string)
}

func TestMeEndpoint(t *testing.T) {
	r, _, _ := authStack(t)
	token := registerAndLogin(t, r, "ana", "ana@example.com")

	w := doJSON(t, r, http.MethodGet, "/api/v1/users/me", nil, token)

	assert.Equal(t, http.StatusOK, w.Code)
	user := decodeBody(t, w)["data"].(map[string]any)
	assert.Equal(t, "ana", user["username"])
}

func TestMeEndpoint_RequiresToken(t *testing.T) {
	r, _, _ := authStack(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/users/me", nil, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdateProfileEndpoint_UsernameCooldownFlow(t *testing.T) {
	r, _, _ := authStack(t)
	token := registerAndLogin(t, r, "a1", "a1@example.com")

	// first change succeeds
	w := doJSON(t, r, http.MethodPatch, "/api/v1/users/me/profile",
		gin.H{"username": "a2", "password": "secret1"}, token)
	assert.Equal(t, http.StatusOK, w.Code)
	user := decodeBody(t, w)["data"].(map[string]any)
	assert.Equal(t, "a2", user["username"])
	assert.NotEmpty(t, user["last_username_change_at"])

	// second change inside the window is rejected with days left
	w = doJSON(t, r, http.MethodPatch, "/api/v1/users/me/profile",
		gin.H{"username": "a3", "password": "secret1"}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, response.CodeUsernameCooldown, body["code"])
	assert.Contains(t, body["message"], "7 day(s)")
	details := body["error"].(map[string]any)
	assert.Equal(t, float64(7), details["days_left"])
}

func TestUpdateProfileEndpoint_WrongPassword(t *testing.T) {
	r, _, _ := authStack(t)
	token := registerAndLogin(t, r, "ana", "ana@example.com")

	w := doJSON(t, r, http.MethodPatch, "/api/v1/users/me/profile",
		gin.H{"username": "ana2", "password": "wrong00"}, token)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, response.CodeInvalidPassword, decodeBody(t, w)["code"])
}

func TestUpdateProfileEndpoint_PasswordRequired(t *testing.T) {
	r, _, _ := authStack(t)
	token := registerAndLogin(t, r, "ana", "ana@example.com")

	w := doJSON(t, r, http.MethodPatch, "/api/v1/users/me/profile",
		gin.H{"username": "ana2"}, token)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, response.CodeValidation, decodeBody(t, w)["code"])
}

func TestUpdateProfileEndpoint_UsernameTaken(t *testing.T) {
	r, _, _ := authStack(t)
	registerAndLogin(t, r, "ben", "ben@example.com")
	token := registerAndLogin(t, r, "ana", "ana@example.com")

	w := doJSON(t, r, http.MethodPatch, "/api/v1/users/me/profile",
		gin.H{"username": "ben", "password": "secret1"}, token)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, response.CodeUsernameTaken, decodeBody(t, w)["code"])
}

func TestUpdateProfileEndpoint_Avatar(t *testing.T) {
	r, _, _ := authStack(t)
	token := registerAndLogin(t, r, "ana", "ana@example.com")

	dataURL := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("avatar"))
	w := doJSON(t, r, http.MethodPatch, "/api/v1/users/me/profile",
		gin.H{"avatar": dataURL, "password": "secret1"}, token)

	assert.Equal(t, http.StatusOK, w.Code)
	user := decodeBody(t, w)["data"].(map[string]any)
	assert.Contains(t, user["avatar"], "/uploads/avatars/")
}

func TestUpdateProfileEndpoint_AvatarRejections(t *testing.T) {
	r, _, _ := authStack(t)
	token := registerAndLogin(t, r, "ana", "ana@example.com")

	w := doJSON(t, r, http.MethodPatch, "/api/v1/users/me/profile",
		gin.H{"avatar": "data:image/gif;base64,AAAA", "password": "secret1"}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, response.CodeAvatarInvalid, decodeBody(t, w)["code"])

	big := "data:image/png;base64," + base64.StdEncoding.EncodeToString(make([]byte, 2*1024*1024+64))
	w = doJSON(t, r, http.MethodPatch, "/api/v1/users/me/profile",
		gin.H{"avatar": big, "password": "secret1"}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, response.CodeAvatarTooLarge, decodeBody(t, w)["code"])
}
