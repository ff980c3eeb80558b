package recipe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"recipe-scaler/internal/core/advisor"
	"recipe-scaler/internal/core/cache"
	"recipe-scaler/internal/core/fraction"
	"recipe-scaler/internal/core/ingredient"
	"recipe-scaler/internal/core/scaling"
	"recipe-scaler/internal/core/units"
	"recipe-scaler/internal/infrastructure/config"
	"recipe-scaler/internal/pkg/common"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const cacheType = "ingredient"

// Service 食譜服務：解析、組合與縮放
type Service struct {
	registry *units.Registry
	parser   *ingredient.Parser
	engine   *scaling.Engine
	store    cache.Store
	advisor  advisor.Advisor
	workers  int
	maxLines int
}

// NewService 創建新的食譜服務；store 與 adv 皆可為 nil
func NewService(cfg *config.Config, registry *units.Registry, store cache.Store, adv advisor.Advisor) *Service {
	policy := PolicyFromConfig(cfg.Scaling)
	workers := cfg.Parser.Workers
	if workers <= 0 {
		workers = 1
	}
	return &Service{
		registry: registry,
		parser:   ingredient.NewParser(registry),
		engine:   scaling.NewEngine(registry, fraction.New(policy.SnapTolerance), policy),
		store:    store,
		advisor:  adv,
		workers:  workers,
		maxLines: cfg.Parser.MaxLines,
	}
}

// PolicyFromConfig 以設定覆寫預設縮放規則
func PolicyFromConfig(cfg config.ScalingConfig) scaling.Policy {
	policy := scaling.DefaultPolicy()
	if cfg.SnapTolerance > 0 {
		policy.SnapTolerance = cfg.SnapTolerance
	}
	for category, floor := range cfg.PinchFloors {
		policy = policy.WithPinchFloor(units.Category(category), floor)
	}
	for unit, ceiling := range cfg.UpgradeCeilings {
		policy = policy.WithUpgradeCeiling(unit, ceiling)
	}
	return policy
}

// Units 返回單位表
func (s *Service) Units() []units.Definition {
	return s.registry.Units()
}

// ParseIngredients 並行解析多行食材，輸出順序與輸入一致
func (s *Service) ParseIngredients(ctx context.Context, lines []string) ([]ingredient.ParsedIngredient, error) {
	if err := s.validateLines(lines); err != nil {
		return nil, err
	}

	out := make([]ingredient.ParsedIngredient, len(lines))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, line := range lines {
		i, line := i, line
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = s.parseLine(gctx, line)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("parse ingredients: %w", err)
	}
	return out, nil
}

// BuildRecipe 解析份量與食材行
func (s *Service) BuildRecipe(ctx context.Context, servingsText string, lines []string) (*ingredient.Recipe, error) {
	ingredients, err := s.ParseIngredients(ctx, lines)
	if err != nil {
		return nil, err
	}
	return &ingredient.Recipe{
		Servings:    s.parser.ParseServings(servingsText),
		Ingredients: ingredients,
	}, nil
}

// ScaleRecipe 驗證倍率後縮放食譜，並附加建議服務的提示
func (s *Service) ScaleRecipe(ctx context.Context, recipe ingredient.Recipe, opts scaling.Options) (*scaling.ScaledRecipe, error) {
	if err := opts.Validate(); err != nil {
		return nil, common.ErrInvalidMultiplier.Wrap(err)
	}

	out := s.engine.ScaleRecipe(recipe, opts)
	if s.advisor == nil {
		return &out, nil
	}

	extra, err := s.advisor.Advise(ctx, &out)
	if err != nil {
		common.LogWarn("建議服務失敗，僅返回內建提示",
			zap.Float64("multiplier", opts.Multiplier),
			zap.Error(err),
		)
		return &out, nil
	}
	out.Tips = mergeTips(out.Tips, extra)
	return &out, nil
}

func (s *Service) validateLines(lines []string) error {
	if len(lines) == 0 {
		return common.NewValidationError("lines must contain at least one ingredient line")
	}
	if s.maxLines > 0 && len(lines) > s.maxLines {
		return common.NewValidationError(fmt.Sprintf("too many lines: %d (max %d)", len(lines), s.maxLines))
	}
	return nil
}

// parseLine 解析單行；快取命中時換上新的 ID
func (s *Service) parseLine(ctx context.Context, line string) ingredient.ParsedIngredient {
	if s.store == nil {
		return s.parser.Parse(line)
	}

	key := common.HashKey(cacheType, line)
	if data, err := s.store.Get(ctx, key); err == nil {
		var cached ingredient.ParsedIngredient
		if err := common.ParseJSONBytes(data, &cached); err == nil {
			common.LogCacheHit(cacheType)
			cached.ID = s.parser.NewID()
			return cached
		}
	} else if !errors.Is(err, cache.ErrMiss) {
		common.LogWarn("讀取快取失敗", zap.Error(err))
	}
	common.LogCacheMiss(cacheType)

	parsed := s.parser.Parse(line)
	if data, err := json.Marshal(parsed); err == nil {
		if err := s.store.Set(ctx, key, data); err != nil {
			common.LogWarn("寫入快取失敗", zap.Error(err))
		}
	}
	return parsed
}

func mergeTips(base, extra []string) []string {
	seen := make(map[string]bool, len(base)+len(extra))
	for _, tip := range base {
		seen[strings.ToLower(tip)] = true
	}
	for _, tip := range extra {
		key := strings.ToLower(tip)
		if seen[key] {
			continue
		}
		seen[key] = true
		base = append(base, tip)
	}
	return base
}
