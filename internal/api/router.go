package api

import (
	"time"

	"recipe-scaler/internal/api/handlers/health"
	recipeHandler "recipe-scaler/internal/api/handlers/recipe"
	"recipe-scaler/internal/api/middleware"
	"recipe-scaler/internal/core/cache"
	recipeService "recipe-scaler/internal/core/recipe"
	"recipe-scaler/internal/infrastructure/config"
	"recipe-scaler/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Router gin 引擎與需要關閉的資源
type Router struct {
	Engine *gin.Engine
	dedup  *middleware.Deduplicator
}

// Close 釋放中間件資源
func (r *Router) Close() {
	if r.dedup != nil {
		r.dedup.Close()
	}
}

// SetupRouter 設置路由
func SetupRouter(cfg *config.Config, svc *recipeService.Service, store cache.Store) *Router {
	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	r := &Router{Engine: router}

	// 註冊基礎中間件
	router.Use(middleware.Recovery())
	router.Use(requestid.New())
	router.Use(middleware.Logger())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(middleware.BodySizeLimit(cfg.MaxBodySize))
	router.Use(middleware.Timeout(cfg.Server.WriteTimeout))

	// 健康檢查路由
	healthHandler := health.NewHandler(cfg, store)
	router.GET("/health", healthHandler.HealthCheck)
	router.GET("/ready", healthHandler.ReadinessCheck)
	router.GET("/live", healthHandler.LivenessCheck)

	// API 路由組
	api := router.Group("/api/v1")
	if cfg.RateLimit.Enabled {
		api.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}
	if cfg.DedupWindow > 0 {
		r.dedup = middleware.NewDeduplicator(cfg.DedupWindow)
		api.Use(r.dedup.Middleware())
	}

	h := recipeHandler.NewHandler(svc)
	{
		api.GET("/units", h.HandleUnits)
		api.POST("/ingredients/parse", h.HandleParse)

		recipeGroup := api.Group("/recipe")
		{
			recipeGroup.POST("/build", h.HandleBuild)
			recipeGroup.POST("/scale", h.HandleScale)
		}
	}

	common.LogInfo("Router setup completed successfully",
		zap.Bool("cache_enabled", store != nil),
		zap.String("cache_driver", cfg.Cache.Driver),
		zap.Bool("advisor_enabled", cfg.OpenRouter.Enabled),
		zap.Bool("rate_limit_enabled", cfg.RateLimit.Enabled),
		zap.Duration("dedup_window", cfg.DedupWindow),
		zap.Int64("max_body_size", cfg.MaxBodySize),
	)

	return r
}
