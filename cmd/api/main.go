package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"recipe-scaler/internal/api"
	"recipe-scaler/internal/core/advisor"
	"recipe-scaler/internal/core/cache"
	"recipe-scaler/internal/core/recipe"
	"recipe-scaler/internal/core/units"
	"recipe-scaler/internal/infrastructure/config"
	"recipe-scaler/internal/pkg/common"

	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		common.LogError("Server exited with error", zap.Error(err))
		common.Sync()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// 載入設定
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// 初始化 logger（需在載入 config 後）
	if err := common.InitLogger(cfg.LogLevel, cfg.LogDir); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer common.Sync()

	common.LogInfo("啟動應用",
		zap.String("version", cfg.App.Version),
		zap.String("env", cfg.App.Env),
		zap.Bool("debug", cfg.App.Debug),
		zap.String("openrouter_key", config.MaskAPIKey(cfg.OpenRouter.APIKey)),
		zap.String("openrouter_model", cfg.OpenRouter.Model),
	)

	// 初始化快取
	initCtx, cancelInit := context.WithTimeout(context.Background(), 5*time.Second)
	store, err := cache.NewStore(initCtx, cfg)
	cancelInit()
	if err != nil {
		return fmt.Errorf("failed to initialize cache: %w", err)
	}
	if store != nil {
		defer store.Close()
	}

	var adv advisor.Advisor
	if cfg.OpenRouter.Enabled {
		adv = advisor.NewOpenRouter(cfg.OpenRouter)
	}

	svc := recipe.NewService(cfg, units.NewDefaultRegistry(), store, adv)
	router := api.SetupRouter(cfg, svc, store)
	defer router.Close()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router.Engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		common.LogInfo("Listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// 等待中斷信號
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
	case <-quit:
	}

	common.LogInfo("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	common.LogInfo("Server exited")
	return nil
}
