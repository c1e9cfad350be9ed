package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"showcase-backend/internal/blocks"
	"showcase-backend/internal/config"
	"showcase-backend/internal/handlers"
	"showcase-backend/internal/middleware"
	"showcase-backend/internal/models"
	"showcase-backend/internal/repository"
	"showcase-backend/internal/seed"
	"showcase-backend/internal/service"
	"showcase-backend/pkg/cache"
	"showcase-backend/pkg/logger"
)

type Options struct {
	// Registry overrides the default block decorator set. Leave nil to use
	// the built-in decorators.
	Registry *blocks.Registry
}

type Application struct {
	cfg     *config.Config
	options Options

	db          *gorm.DB
	cache       *cache.Cache
	rateLimiter *middleware.RateLimitManager

	repositories repositoryContainer
	services     serviceContainer
	handlers     handlerContainer

	router *gin.Engine
	server *http.Server
}

type repositoryContainer struct {
	Page repository.PageRepository
}

type serviceContainer struct {
	Specs    *service.SpecService
	Products *service.ProductService
	Decorate *service.DecorateService
	Page     *service.PageService
}

type handlerContainer struct {
	Decorate *handlers.DecorateHandler
	Page     *handlers.PageHandler
	Dataset  *handlers.DatasetHandler
	Cache    *handlers.CacheHandler
}

func New(cfg *config.Config, opts Options) (*Application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	app := &Application{
		cfg:     cfg,
		options: opts,
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.runMigrations(); err != nil {
		return nil, err
	}

	if err := app.createIndexes(); err != nil {
		return nil, err
	}

	app.initCache()
	app.initRepositories()
	app.initServices()

	if cfg.EnableSeed {
		seed.EnsureDefaultPages(app.services.Page)
	}

	app.initHandlers()
	app.rateLimiter = middleware.NewRateLimitManager(context.Background())
	app.initRouter()

	app.server = &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        app.router,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	return app, nil
}

func (a *Application) Run() error {
	logger.Info("Server starting", map[string]interface{}{
		"port":        a.cfg.Port,
		"environment": a.cfg.Environment,
	})

	return a.server.ListenAndServe()
}

func (a *Application) Shutdown(ctx context.Context) error {
	if a.server != nil {
		if err := a.server.Shutdown(ctx); err != nil {
			return err
		}
	}

	if a.rateLimiter != nil {
		a.rateLimiter.Stop()
	}

	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			logger.Error(err, "Failed to close cache connection", nil)
		}
	}

	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			sqlDB.Close()
		}
	}

	return nil
}

func (a *Application) Router() *gin.Engine {
	return a.router
}

func (a *Application) initDatabase() error {
	logger.Info("Connecting to database", nil)

	db, err := gorm.Open(postgres.Open(a.cfg.DatabaseURL), &gorm.Config{
		Logger: logger.NewGormLogger(),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	a.db = db
	return nil
}

func (a *Application) runMigrations() error {
	if a.db == nil {
		return fmt.Errorf("database connection is not initialized")
	}

	logger.Info("Running database migrations", nil)

	if err := a.db.AutoMigrate(&models.Page{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	logger.Info("Database migration completed", nil)
	return nil
}

func (a *Application) createIndexes() error {
	if a.db == nil {
		return fmt.Errorf("database connection is not initialized")
	}

	logger.Info("Creating database indexes", nil)

	statements := []string{
		"CREATE INDEX IF NOT EXISTS idx_pages_published ON pages(published) WHERE published = true",
		"CREATE INDEX IF NOT EXISTS idx_pages_slug ON pages(slug) WHERE published = true",
		"CREATE INDEX IF NOT EXISTS idx_pages_order ON pages(\"order\" ASC)",
		"CREATE INDEX IF NOT EXISTS idx_pages_blocks ON pages USING GIN (blocks)",
	}

	for _, stmt := range statements {
		if err := a.db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	return nil
}

func (a *Application) initCache() {
	addr := ""
	enable := a.cfg.EnableCache && a.cfg.EnableRedis
	if enable {
		addr = a.cfg.RedisURL
	}

	c, err := cache.NewCache(addr, enable)
	if err != nil {
		logger.Error(err, "Cache unavailable, continuing without it", map[string]interface{}{"addr": addr})
		c, _ = cache.NewCache("", false)
	}
	a.cache = c
}

func (a *Application) initRepositories() {
	a.repositories = repositoryContainer{
		Page: repository.NewPageRepository(a.db),
	}
}

func (a *Application) initServices() {
	specs := service.NewSpecService(a.cfg.SpecsAPIURL, a.cache)
	products := service.NewProductService(a.cfg.ProductAPIURL, a.cache)
	decorate := service.NewDecorateService(a.options.Registry, a.cache, specs, products)

	a.services = serviceContainer{
		Specs:    specs,
		Products: products,
		Decorate: decorate,
		Page:     service.NewPageService(a.repositories.Page, a.cache, decorate),
	}
}

func (a *Application) initHandlers() {
	a.handlers = handlerContainer{
		Decorate: handlers.NewDecorateHandler(a.services.Decorate),
		Page:     handlers.NewPageHandler(a.services.Page),
		Dataset:  handlers.NewDatasetHandler(a.services.Specs, a.services.Products),
		Cache:    handlers.NewCacheHandler(a.cache),
	}
}

func (a *Application) initRouter() {
	if a.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(logger.GinLogger())
	if a.cfg.EnableMetrics {
		router.Use(middleware.MetricsMiddleware())
	}
	router.Use(middleware.RateLimitMiddleware(a.cfg, a.rateLimiter))

	router.Use(cors.New(cors.Config{
		AllowOrigins:     a.cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	if a.cfg.EnableMetrics {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	v1 := router.Group("/api/v1")
	{
		public := v1.Group("")
		{
			public.POST("/decorate", a.handlers.Decorate.Decorate)
			public.GET("/blocks", a.handlers.Decorate.ListTypes)

			public.GET("/pages", a.handlers.Page.List)
			public.GET("/pages/slug/:slug", a.handlers.Page.GetBySlug)
			public.GET("/pages/slug/:slug/decorated", a.handlers.Page.GetDecorated)

			public.GET("/specs", a.handlers.Dataset.GetSpecs)
			public.GET("/products/*path", a.handlers.Dataset.GetProduct)
		}

		admin := v1.Group("/admin")
		admin.Use(middleware.AuthMiddleware(a.cfg.JWTSecret))
		admin.Use(middleware.AdminMiddleware())
		{
			admin.GET("/pages", a.handlers.Page.List)
			admin.POST("/pages", a.handlers.Page.Create)
			admin.PUT("/pages/:id", a.handlers.Page.Update)
			admin.DELETE("/pages/:id", a.handlers.Page.Delete)

			admin.POST("/cache/purge/renders", a.handlers.Cache.PurgeRenders)
			admin.POST("/cache/purge/datasets", a.handlers.Cache.PurgeDatasets)
		}
	}

	a.router = router
}
