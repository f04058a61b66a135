package middleware

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"recipe-generator/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RateLimiter 記憶體限流器（令牌桶）
type RateLimiter struct {
	mu       sync.Mutex
	tokens   int
	capacity int
	rate     float64
	lastTime time.Time
}

// NewRateLimiter 創建新的限流器
func NewRateLimiter(requests int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		tokens:   requests,
		capacity: requests,
		rate:     float64(requests) / window.Seconds(),
		lastTime: time.Now(),
	}
}

// Allow 檢查是否允許請求
func (rl *RateLimiter) Allow() bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(rl.lastTime).Seconds()
	rl.lastTime = now

	// 添加新令牌
	newTokens := int(elapsed * rl.rate)
	if newTokens > 0 {
		rl.tokens = min(rl.capacity, rl.tokens+newTokens)
	}

	// 檢查是否有可用令牌
	if rl.tokens > 0 {
		rl.tokens--
		return true
	}

	return false
}

// RateLimit 限流中間件（單機記憶體版本）
func RateLimit(requests int, window time.Duration) gin.HandlerFunc {
	limiter := NewRateLimiter(requests, window)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			rejectTooManyRequests(c, window)
			return
		}

		c.Next()
	}
}

// RedisRateLimit 限流中間件（Redis 計數器版本）
// 多實例部署時共用同一份計數；以固定視窗 + 原子遞增實作，
// Redis 故障時放行請求，不因限流元件癱瘓服務
func RedisRateLimit(client *redis.Client, requests int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		windowStart := time.Now().Truncate(window)
		key := fmt.Sprintf("ratelimit:%s:%d", c.ClientIP(), windowStart.Unix())

		count, err := incrWithExpire(c.Request.Context(), client, key, window)
		if err != nil {
			common.LogWarn("限流計數失敗，放行請求",
				zap.Error(err),
				zap.String("ip", c.ClientIP()),
			)
			c.Next()
			return
		}

		if count > int64(requests) {
			rejectTooManyRequests(c, window)
			return
		}

		c.Next()
	}
}

// incrWithExpire 以 pipeline 原子遞增計數並更新過期時間
func incrWithExpire(ctx context.Context, client *redis.Client, key string, window time.Duration) (int64, error) {
	pipe := client.Pipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

func rejectTooManyRequests(c *gin.Context, window time.Duration) {
	common.LogInfo("Rate limit exceeded",
		zap.String("ip", c.ClientIP()),
		zap.String("path", c.Request.URL.Path),
	)

	c.Header("Retry-After", fmt.Sprintf("%d", int(window.Seconds())))
	c.JSON(http.StatusTooManyRequests, gin.H{
		"error":       "Too many requests",
		"code":        common.ErrCodeTooManyRequests,
		"retry_after": window.Seconds(),
	})
	c.Abort()
}

// min 返回兩個整數中的較小值
func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
