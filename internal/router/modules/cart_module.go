package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/croshet/storefront-api/internal/container"
	"github.com/croshet/storefront-api/internal/domain/repository"
	handlers "github.com/croshet/storefront-api/internal/interface/http"
	"github.com/croshet/storefront-api/internal/interface/middleware"
)

// CartModule wires the authenticated cart endpoints.
type CartModule struct {
	Handler *handlers.CartHandler
	Users   repository.UserRepository
}

func NewCartModule(h *handlers.CartHandler, users repository.UserRepository) *CartModule {
	return &CartModule{Handler: h, Users: users}
}

func (m *CartModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/cart")
	auth.Use(middleware.Auth(m.Users, container.GetJWT()))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID()))
	{
		auth.GET("", m.Handler.Get)
		auth.DELETE("", m.Handler.Clear)
		auth.POST("/items", m.Handler.AddItem)
		auth.PUT("/items/:productID", m.Handler.SetQuantity)
		auth.DELETE("/items/:productID", m.Handler.RemoveItem)
	}
}
