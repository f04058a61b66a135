package api

import (
	"context"
	"net/http"
	"time"

	"recipe-generator/internal/api/handlers/health"
	"recipe-generator/internal/api/handlers/page"
	recipeHandler "recipe-generator/internal/api/handlers/recipe"
	"recipe-generator/internal/api/middleware"
	recipeEngine "recipe-generator/internal/core/recipe"
	"recipe-generator/internal/infrastructure/config"
	"recipe-generator/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	// 超時設置
	timeoutDuration = 30 * time.Second
	// 請求體大小限制 (1MB)
	maxBodySize = 1 << 20
)

// SetupRouter 設置路由
func SetupRouter(cfg *config.Config, engine *recipeEngine.Service) (*gin.Engine, error) {
	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	// 設置 gin 模式
	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	// 創建路由引擎
	router := gin.New()

	// 註冊基礎中間件
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(requestid.New()) // 自動生成請求 ID

	// CORS 設置
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 請求體大小限制
	router.Use(middleware.BodySizeLimit(maxBodySize))

	// 速率限制：Redis 啟用時用共享計數器，否則退回單機令牌桶
	if cfg.RateLimit.Enabled {
		if cfg.Redis.Enabled {
			client := redis.NewClient(&redis.Options{
				Addr: cfg.Redis.Addr,
			})
			router.Use(middleware.RedisRateLimit(client, cfg.RateLimit.Requests, cfg.RateLimit.Window))
			common.LogInfo("Rate limiting enabled (redis)",
				zap.String("addr", cfg.Redis.Addr),
				zap.Int("requests", cfg.RateLimit.Requests),
				zap.Duration("window", cfg.RateLimit.Window),
			)
		} else {
			router.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
			common.LogInfo("Rate limiting enabled (in-memory)",
				zap.Int("requests", cfg.RateLimit.Requests),
				zap.Duration("window", cfg.RateLimit.Window),
			)
		}
	}

	// 全局中間件：設置超時和配置
	router.Use(func(c *gin.Context) {
		// 設置請求超時
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)

		// 設置配置
		c.Set("config", cfg)

		// 處理請求
		c.Next()

		// 檢查是否超時
		if ctx.Err() == context.DeadlineExceeded {
			common.LogError("Request timeout",
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", requestid.Get(c)),
				zap.Duration("timeout", timeoutDuration),
			)
			c.JSON(http.StatusGatewayTimeout, gin.H{
				"error": "Request timeout",
				"code":  "REQUEST_TIMEOUT",
				"details": gin.H{
					"timeout": timeoutDuration.String(),
				},
			})
			c.Abort()
			return
		}
	})

	// 前端頁面
	router.GET("/", page.Index)

	// 健康檢查路由
	router.GET("/health", health.HealthCheck)
	router.GET("/ready", health.ReadinessCheck)
	router.GET("/live", health.LivenessCheck)

	// 食譜生成路由（加上去重防護擋連點）
	handler := recipeHandler.NewHandler(engine)
	router.POST("/generate-recipe", middleware.Deduplication(cfg.DedupWindow), handler.HandleGenerateRecipe)

	common.LogInfo("Router setup completed successfully",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
		zap.Bool("rate_limit_enabled", cfg.RateLimit.Enabled),
		zap.Bool("redis_enabled", cfg.Redis.Enabled),
		zap.Duration("timeout", timeoutDuration),
		zap.Int64("max_body_size", maxBodySize),
	)

	return router, nil
}
