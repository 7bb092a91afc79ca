package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/croshet/storefront-api/internal/application"
	"github.com/croshet/storefront-api/pkg/response"
	"github.com/croshet/storefront-api/pkg/validation"
)

type AuthHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.UserService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
}

type loginRequest struct {
	Identifier string `json:"identifier"`
	Email      string `json:"email"`
	Username   string `json:"username"`
	Password   string `json:"password" binding:"required"`
}

// Register POST /api/v1/auth/register
// Creates the account and logs it in immediately.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "all fields are required", validation.ToDetails(err))
		return
	}

	u, token, exp, err := h.Svc.Register(c.Request.Context(), application.RegisterInput{
		FullName: req.FullName,
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, application.ErrUsernameTaken):
			response.Error(c, http.StatusBadRequest, response.CodeUsernameTaken, "username already exists", nil)
		case errors.Is(err, application.ErrEmailTaken):
			response.Error(c, http.StatusBadRequest, response.CodeEmailTaken, "email already registered", nil)
		default:
			h.Logger.WithError(err).Error("register failed")
			response.Error(c, http.StatusInternalServerError, response.CodeInternal, "server error, please try again later", nil)
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"user":  toUserView(u),
		"token": token,
	}, "user registered successfully", gin.H{"expires_at": exp})
}

// Login POST /api/v1/auth/login
// Accepts identifier, email or username plus a password. An identifier
// containing '@' is matched as an email, case-insensitively; anything else
// is a username, matched exactly.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "identifier and password are required", validation.ToDetails(err))
		return
	}

	identifier := req.Email
	if identifier == "" {
		identifier = req.Identifier
	}
	if identifier == "" {
		identifier = req.Username
	}
	if identifier == "" {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "identifier and password are required", nil)
		return
	}

	u, token, exp, err := h.Svc.Login(c.Request.Context(), identifier, req.Password)
	if err != nil {
		// same code and message for unknown identifier and wrong password
		response.Error(c, http.StatusBadRequest, response.CodeInvalidCredentials, "invalid email/username or password", nil)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"user":  toUserView(u),
		"token": token,
	}, "login successful", gin.H{"expires_at": exp})
}

type resetInitRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type resetConfirmRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,pwd"`
}

// ResetInit POST /api/v1/auth/reset/init
// Always answers 200 so callers cannot probe which emails exist.
func (h *AuthHandler) ResetInit(c *gin.Context) {
	var req resetInitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "invalid payload", validation.ToDetails(err))
		return
	}
	if err := h.Svc.ResetInit(c.Request.Context(), req.Email); err != nil {
		h.Logger.WithError(err).Error("reset init failed")
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "server error, please try again later", nil)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "if the email exists, a reset link has been sent", nil)
}

// ResetConfirm POST /api/v1/auth/reset/confirm
func (h *AuthHandler) ResetConfirm(c *gin.Context) {
	var req resetConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "invalid payload", validation.ToDetails(err))
		return
	}
	if err := h.Svc.ResetConfirm(c.Request.Context(), req.Token, req.NewPassword); err != nil {
		if errors.Is(err, application.ErrResetTokenInvalid) {
			response.Error(c, http.StatusBadRequest, response.CodeResetTokenInvalid, "invalid or expired token", nil)
			return
		}
		h.Logger.WithError(err).Error("reset confirm failed")
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "server error, please try again later", nil)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "password updated", nil)
}
