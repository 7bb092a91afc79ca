package router

import (
	"github.com/croshet/storefront-api/internal/application"
	"github.com/croshet/storefront-api/internal/container"
	pginfra "github.com/croshet/storefront-api/internal/infrastructure/postgres"
	"github.com/croshet/storefront-api/internal/infrastructure/redisrepo"
	"github.com/croshet/storefront-api/internal/infrastructure/search"
	handlers "github.com/croshet/storefront-api/internal/interface/http"
	"github.com/croshet/storefront-api/internal/router/modules"
)

// InitModules builds every feature module from the container singletons and
// registers it. Called once during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()

	userRepo := pginfra.NewUserRepository(container.GetPGPool())
	productRepo := pginfra.NewProductRepository(container.GetPGPool())
	orderRepo := pginfra.NewOrderRepository(container.GetPGPool())
	cartRepo := redisrepo.NewCartRepository(container.GetRedis())
	productIndex := search.NewProductIndex(container.GetES(), cfg.ESProductsIndex, logger)

	userSvc := &application.UserService{
		Repo:             userRepo,
		JWT:              container.GetJWT(),
		Avatars:          container.GetAvatarStore(),
		Redis:            container.GetRedis(),
		Logger:           logger,
		Mail:             container.GetRabbitPub(),
		MaxAvatarBytes:   cfg.MaxAvatarBytes,
		UsernameCooldown: cfg.UsernameCooldown,
	}
	productSvc := &application.ProductService{Repo: productRepo, Index: productIndex, Logger: logger}
	cartSvc := &application.CartService{Carts: cartRepo, Products: productRepo}
	orderSvc := &application.OrderService{
		Orders:   orderRepo,
		Products: productRepo,
		Carts:    cartRepo,
		Logger:   logger,
		Mail:     container.GetRabbitPub(),
	}

	r.Add(modules.NewHealthModule(handlers.NewHealthHandler(cfg.AppName, cfg.Env)))
	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(userSvc, logger)))
	r.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, logger), userRepo))
	r.Add(modules.NewProductModule(handlers.NewProductHandler(productSvc, logger), userRepo))
	r.Add(modules.NewCartModule(handlers.NewCartHandler(cartSvc, logger), userRepo))
	r.Add(modules.NewOrderModule(handlers.NewOrderHandler(orderSvc, logger), userRepo))
}
