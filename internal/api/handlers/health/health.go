package health

import (
	"context"
	"errors"
	"net/http"
	"runtime"
	"time"

	"recipe-scaler/internal/core/cache"
	"recipe-scaler/internal/infrastructure/config"
	"recipe-scaler/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const probeKey = "health:probe"

// HealthResponse 健康檢查響應
type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Version   string                 `json:"version"`
	Runtime   map[string]interface{} `json:"runtime"`
	Cache     *CacheStatus           `json:"cache,omitempty"`
}

// CacheStatus 快取狀態
type CacheStatus struct {
	Driver string       `json:"driver"`
	Stats  *cache.Stats `json:"stats,omitempty"`
}

// Handler 健康檢查處理器
type Handler struct {
	cfg   *config.Config
	store cache.Store
}

// NewHandler 創建健康檢查處理器；store 可為 nil
func NewHandler(cfg *config.Config, store cache.Store) *Handler {
	return &Handler{cfg: cfg, store: store}
}

// HealthCheck 健康檢查
func (h *Handler) HealthCheck(c *gin.Context) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	response := HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
		Version:   h.cfg.App.Version,
		Runtime: map[string]interface{}{
			"goroutines": runtime.NumGoroutine(),
			"memory": map[string]interface{}{
				"alloc":       m.Alloc,
				"total_alloc": m.TotalAlloc,
				"sys":         m.Sys,
				"num_gc":      m.NumGC,
			},
		},
	}

	if h.store != nil {
		status := &CacheStatus{Driver: h.cfg.Cache.Driver}
		if mgr, ok := h.store.(*cache.Manager); ok {
			stats := mgr.GetStats()
			status.Stats = &stats
		}
		response.Cache = status
	}

	common.LogDebug("Health check request",
		zap.String("client_ip", c.ClientIP()),
		zap.String("path", c.Request.URL.Path),
	)
	c.JSON(http.StatusOK, response)
}

// ReadinessCheck 就緒檢查，快取無法讀取時返回 503
func (h *Handler) ReadinessCheck(c *gin.Context) {
	if h.store != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if _, err := h.store.Get(ctx, probeKey); err != nil && !errors.Is(err, cache.ErrMiss) {
			common.LogWarn("Readiness check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unavailable",
				"cache":  err.Error(),
			})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
	})
}

// LivenessCheck 存活檢查
func (h *Handler) LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "alive",
	})
}
