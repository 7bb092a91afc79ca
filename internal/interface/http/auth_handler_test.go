package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/croshet/storefront-api/pkg/response"
)

func registerBody(username, email string) gin.H {
	return gin.H{
		"full_name": "Ana Cruz",
		"username":  username,
		"email":     email,
		"password":  "secret1",
	}
}

func TestRegisterEndpoint_CreatesAndLogsIn(t *testing.T) {
	r, _, svc := authStack(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/register", registerBody("ana", "ana@example.com"), "")

	assert.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "user registered successfully", body["message"])

	data := body["data"].(map[string]any)
	token := data["token"].(string)
	claims, err := svc.JWT.ParseToken(token)
	assert.NoError(t, err)

	user := data["user"].(map[string]any)
	assert.Equal(t, claims.UserID, user["id"])
	assert.Equal(t, "ana", user["username"])
	assert.NotContains(t, user, "password")
}

func TestRegisterEndpoint_MissingFields(t *testing.T) {
	r, _, _ := authStack(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/register", gin.H{"username": "ana"}, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, response.CodeValidation, body["code"])
}

func TestRegisterEndpoint_ShortPassword(t *testing.T) {
	r, _, _ := authStack(t)

	payload := registerBody("ana", "ana@example.com")
	payload["password"] = "short"
	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/register", payload, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, response.CodeValidation, body["code"])
	details := body["error"].(map[string]any)
	assert.Contains(t, details, "password")
}

func TestRegisterEndpoint_DuplicateUsername(t *testing.T) {
	r, _, _ := authStack(t)
	doJSON(t, r, http.MethodPost, "/api/v1/auth/register", registerBody("ana", "ana@example.com"), "")

	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/register", registerBody("ana", "other@example.com"), "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, response.CodeUsernameTaken, body["code"])
}

func TestRegisterEndpoint_DuplicateEmail(t *testing.T) {
	r, _, _ := authStack(t)
	doJSON(t, r, http.MethodPost, "/api/v1/auth/register", registerBody("ana", "ana@example.com"), "")

	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/register", registerBody("ana2", "ana@example.com"), "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, response.CodeEmailTaken, body["code"])
}

func TestLoginEndpoint_IdentifierVariants(t *testing.T) {
	r, _, _ := authStack(t)
	doJSON(t, r, http.MethodPost, "/api/v1/auth/register", registerBody("ana", "ana@example.com"), "")

	for _, payload := range []gin.H{
		{"identifier": "ana@example.com", "password": "secret1"},
		{"identifier": "ana", "password": "secret1"},
		{"email": "ANA@example.com", "password": "secret1"},
		{"username": "ana", "password": "secret1"},
	} {
		w := doJSON(t, r, http.MethodPost, "/api/v1/auth/login", payload, "")
		assert.Equal(t, http.StatusOK, w.Code, "payload: %v", payload)
		body := decodeBody(t, w)
		assert.Equal(t, "login successful", body["message"])
	}
}

func TestLoginEndpoint_SameAnswerForUnknownAndWrongPassword(t *testing.T) {
	r, _, _ := authStack(t)
	doJSON(t, r, http.MethodPost, "/api/v1/auth/register", registerBody("ana", "ana@example.com"), "")

	wrongPwd := doJSON(t, r, http.MethodPost, "/api/v1/auth/login", gin.H{"identifier": "ana", "password": "wrong00"}, "")
	unknown := doJSON(t, r, http.MethodPost, "/api/v1/auth/login", gin.H{"identifier": "ghost", "password": "secret1"}, "")

	assert.Equal(t, http.StatusBadRequest, wrongPwd.Code)
	assert.Equal(t, http.StatusBadRequest, unknown.Code)

	b1 := decodeBody(t, wrongPwd)
	b2 := decodeBody(t, unknown)
	assert.Equal(t, response.CodeInvalidCredentials, b1["code"])
	assert.Equal(t, b1["code"], b2["code"])
	assert.Equal(t, b1["message"], b2["message"])
}

func TestLoginEndpoint_MissingIdentifier(t *testing.T) {
	r, _, _ := authStack(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/login", gin.H{"password": "secret1"}, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, response.CodeValidation, body["code"])
}
