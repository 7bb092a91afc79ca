package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/croshet/storefront-api/internal/container"
	"github.com/croshet/storefront-api/internal/domain/repository"
	handlers "github.com/croshet/storefront-api/internal/interface/http"
	"github.com/croshet/storefront-api/internal/interface/middleware"
)

// OrderModule wires checkout and the admin order dashboard.
type OrderModule struct {
	Handler *handlers.OrderHandler
	Users   repository.UserRepository
}

func NewOrderModule(h *handlers.OrderHandler, users repository.UserRepository) *OrderModule {
	return &OrderModule{Handler: h, Users: users}
}

func (m *OrderModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/orders")
	auth.Use(middleware.Auth(m.Users, container.GetJWT()))
	auth.Use(middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByUserID()))
	{
		auth.POST("", m.Handler.Checkout)
		auth.GET("", m.Handler.ListMine)
	}

	admin := rg.Group("/admin/orders")
	admin.Use(middleware.Auth(m.Users, container.GetJWT()), middleware.RequireAdmin())
	{
		admin.GET("", m.Handler.ListAll)
		admin.PATCH("/:id/status", m.Handler.UpdateStatus)
	}
}
