package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/croshet/storefront-api/internal/container"
	"github.com/croshet/storefront-api/internal/domain/repository"
	handlers "github.com/croshet/storefront-api/internal/interface/http"
	"github.com/croshet/storefront-api/internal/interface/middleware"
)

// UserModule wires the authenticated profile endpoints.
// GET /users/me, PATCH /users/me/profile
type UserModule struct {
	Handler *handlers.UserHandler
	Users   repository.UserRepository
}

func NewUserModule(h *handlers.UserHandler, users repository.UserRepository) *UserModule {
	return &UserModule{Handler: h, Users: users}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/users")
	auth.Use(middleware.Auth(m.Users, container.GetJWT()))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID()))
	{
		auth.GET("/me", m.Handler.Me)
		auth.PATCH("/me/profile", m.Handler.UpdateProfile)
	}
}
