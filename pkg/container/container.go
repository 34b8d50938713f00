package container

import (
	"context"
	"fmt"

	"cozastore-backend/internal/config"
	infracache "cozastore-backend/internal/infrastructure/cache"
	"cozastore-backend/internal/infrastructure/database"
	"cozastore-backend/pkg/cache"
	"cozastore-backend/pkg/jwt"
	"cozastore-backend/pkg/logger"

	carthandler "cozastore-backend/internal/domains/cart/handler"
	cartrepo "cozastore-backend/internal/domains/cart/repository"
	cartservice "cozastore-backend/internal/domains/cart/service"
	categoryhandler "cozastore-backend/internal/domains/category/handler"
	categoryrepo "cozastore-backend/internal/domains/category/repository"
	categoryservice "cozastore-backend/internal/domains/category/service"
	producthandler "cozastore-backend/internal/domains/product/handler"
	productrepo "cozastore-backend/internal/domains/product/repository"
	productservice "cozastore-backend/internal/domains/product/service"
	userhandler "cozastore-backend/internal/domains/user/handler"
	userrepo "cozastore-backend/internal/domains/user/repository"
	userservice "cozastore-backend/internal/domains/user/service"
)

// Container wires configuration, infrastructure, and every domain's
// repository, service, and handler in dependency order.
type Container struct {
	Config *config.Config

	DB    *database.PostgresDB
	Cache *infracache.RedisCache

	JWTManager *jwt.Manager

	CategoryHandler *categoryhandler.CategoryHandler
	ProductHandler  *producthandler.ProductHandler
	CartHandler     *carthandler.CartHandler
	UserHandler     *userhandler.UserHandler
}

func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	// Infrastructure
	c.DB = database.NewPostgresDB(&cfg.Database)
	if err := c.DB.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	c.Cache = infracache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := c.Cache.Connect(ctx); err != nil {
		// Catalog caching is an optimization. The service runs without it.
		logger.Error("redis unavailable, continuing without cache", err)
		c.Cache = nil
	}

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry)

	// Repositories
	var productCache cache.Cache
	if c.Cache != nil {
		productCache = c.Cache
	}
	categoryRepository := categoryrepo.NewPostgresRepository(c.DB.Pool)
	productRepository := productrepo.NewPostgresRepository(c.DB.Pool, productCache)
	cartRepository := cartrepo.NewPostgresRepository(c.DB.Pool)
	userRepository := userrepo.NewPostgresRepository(c.DB.Pool)

	// Services
	categoryService := categoryservice.NewCategoryService(categoryRepository)
	productService := productservice.NewProductService(productRepository, categoryRepository)
	cartService := cartservice.NewCartService(cartRepository, productRepository)
	userService := userservice.NewUserService(userRepository, c.JWTManager)

	// Handlers
	c.CategoryHandler = categoryhandler.NewCategoryHandler(categoryService)
	c.ProductHandler = producthandler.NewProductHandler(productService)
	c.CartHandler = carthandler.NewCartHandler(cartService)
	c.UserHandler = userhandler.NewUserHandler(userService)

	return c, nil
}

// Cleanup releases infrastructure resources in reverse order.
func (c *Container) Cleanup() {
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			logger.Error("failed to close redis client", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
