package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"recipe-generator/internal/pkg/common"
)

// dedupCache 請求指紋緩存，用於短視窗內的重複提交防護
type dedupCache struct {
	sync.RWMutex
	requests map[string]time.Time
}

var (
	requestCache = dedupCache{requests: make(map[string]time.Time)}

	// 啟動自動清理 goroutine（只啟動一次）
	cleanupOnce sync.Once
)

// startDeduplicationCleanup 啟動自動清理 goroutine
func startDeduplicationCleanup(window time.Duration) {
	cleanupOnce.Do(func() {
		interval := 10 * time.Minute
		go func() {
			ticker := time.NewTicker(interval)
			defer ticker.Stop()
			for range ticker.C {
				now := time.Now()
				requestCache.Lock()
				for k, t := range requestCache.requests {
					if now.Sub(t) > 10*window {
						delete(requestCache.requests, k)
					}
				}
				requestCache.Unlock()
			}
		}()
	})
}

// Deduplication 請求去重中間件
// 引擎本身是冪等的，這裡只擋掉前端連點造成的瞬間重複提交
func Deduplication(window time.Duration) gin.HandlerFunc {
	if window <= 0 {
		window = time.Second
	}
	startDeduplicationCleanup(window)

	return func(c *gin.Context) {
		// 只處理 POST 請求
		if c.Request.Method != "POST" {
			c.Next()
			return
		}

		// 計算請求體哈希
		bodyHash := ""
		if c.Request.Body != nil {
			body, err := io.ReadAll(c.Request.Body)
			if err != nil {
				common.LogError("Failed to read request body", zap.Error(err))
				c.Next()
				return
			}

			hash := sha256.Sum256(body)
			bodyHash = hex.EncodeToString(hash[:])

			// 恢復請求體
			c.Request.Body = io.NopCloser(bytes.NewBuffer(body))
		}

		// 生成請求指紋
		fingerprint := c.Request.Method + ":" + c.Request.URL.Path
		if bodyHash != "" {
			fingerprint += ":" + bodyHash
		}

		// 檢查是否是重複請求
		now := time.Now()
		requestCache.RLock()
		lastTime, exists := requestCache.requests[fingerprint]
		requestCache.RUnlock()
		if exists && now.Sub(lastTime) <= window {
			c.JSON(429, gin.H{
				"error": "Request too frequent",
				"code":  common.ErrCodeTooManyRequests,
			})
			c.Abort()
			return
		}

		// 記錄請求
		requestCache.Lock()
		requestCache.requests[fingerprint] = now
		requestCache.Unlock()

		c.Next()
	}
}
