package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/croshet/storefront-api/internal/container"
	"github.com/croshet/storefront-api/internal/domain/repository"
	handlers "github.com/croshet/storefront-api/internal/interface/http"
	"github.com/croshet/storefront-api/internal/interface/middleware"
)

// ProductModule wires the catalog endpoints. Reads are public; writes
// require an admin account.
type ProductModule struct {
	Handler *handlers.ProductHandler
	Users   repository.UserRepository
}

func NewProductModule(h *handlers.ProductHandler, users repository.UserRepository) *ProductModule {
	return &ProductModule{Handler: h, Users: users}
}

func (m *ProductModule) Register(rg *gin.RouterGroup) {
	publicLimiter := middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP())

	rg.GET("/products", publicLimiter, m.Handler.List)
	rg.GET("/products/search", publicLimiter, m.Handler.Search)
	rg.GET("/products/:id", publicLimiter, m.Handler.Get)

	admin := rg.Group("/products")
	admin.Use(middleware.Auth(m.Users, container.GetJWT()), middleware.RequireAdmin())
	{
		admin.POST("", m.Handler.Create)
		admin.PUT("/:id", m.Handler.Update)
		admin.DELETE("/:id", m.Handler.Delete)
	}
}
