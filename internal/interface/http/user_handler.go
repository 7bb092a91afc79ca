package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/croshet/storefront-api/internal/application"
	"github.com/croshet/storefront-api/internal/interface/middleware"
	"github.com/croshet/storefront-api/pkg/response"
	"github.com/croshet/storefront-api/pkg/validation"
)

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

// Me GET /api/v1/users/me
func (h *UserHandler) Me(c *gin.Context) {
	u := middleware.CurrentUser(c)
	if u == nil {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "unauthorized", nil)
		return
	}
	response.Success(c, http.StatusOK, toUserView(u), "profile", nil)
}

type updateProfileRequest struct {
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfile PATCH /api/v1/users/me/profile
// The account password is always required as a confirmation factor.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "password is required to update profile", validation.ToDetails(err))
		return
	}

	u, err := h.Svc.UpdateProfile(c.Request.Context(), uid, application.UpdateProfileInput{
		Username: req.Username,
		Avatar:   req.Avatar,
		Password: req.Password,
	})
	if err != nil {
		var cooldown *application.CooldownError
		switch {
		case errors.Is(err, application.ErrUserNotFound):
			response.Error(c, http.StatusNotFound, response.CodeUserNotFound, "user not found", nil)
		case errors.Is(err, application.ErrInvalidPassword):
			response.Error(c, http.StatusBadRequest, response.CodeInvalidPassword, "invalid account password", nil)
		case errors.Is(err, application.ErrUsernameTaken):
			response.Error(c, http.StatusBadRequest, response.CodeUsernameTaken, "username already exists", nil)
		case errors.As(err, &cooldown):
			response.Error(c, http.StatusBadRequest, response.CodeUsernameCooldown,
				fmt.Sprintf("you can change your username again in %d day(s)", cooldown.DaysLeft),
				gin.H{"days_left": cooldown.DaysLeft})
		case errors.Is(err, application.ErrAvatarTooLarge):
			response.Error(c, http.StatusBadRequest, response.CodeAvatarTooLarge, "avatar must be at most 2MB", nil)
		case errors.Is(err, application.ErrAvatarInvalid):
			response.Error(c, http.StatusBadRequest, response.CodeAvatarInvalid, "invalid avatar image format", nil)
		default:
			h.Logger.WithError(err).Error("profile update failed")
			response.Error(c, http.StatusInternalServerError, response.CodeInternal, "server error, please try again later", nil)
		}
		return
	}

	response.Success(c, http.StatusOK, toUserView(u), "profile updated", nil)
}
