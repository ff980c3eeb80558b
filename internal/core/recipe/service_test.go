package recipe

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"recipe-scaler/internal/core/cache"
	"recipe-scaler/internal/core/ingredient"
	"recipe-scaler/internal/core/scaling"
	"recipe-scaler/internal/core/units"
	"recipe-scaler/internal/infrastructure/config"
	"recipe-scaler/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAdvisor struct {
	tips  []string
	err   error
	calls int
}

func (a *stubAdvisor) Advise(context.Context, *scaling.ScaledRecipe) ([]string, error) {
	a.calls++
	return a.tips, a.err
}

func testConfig() *config.Config {
	return &config.Config{
		Parser: config.ParserConfig{Workers: 4, MaxLines: 50},
		Scaling: config.ScalingConfig{
			SnapTolerance: 0.02,
			PinchFloors:   map[string]float64{"volume": 0.308, "weight": 0.35},
		},
	}
}

func newTestService(store cache.Store, adv *stubAdvisor) *Service {
	if adv == nil {
		return NewService(testConfig(), units.NewDefaultRegistry(), store, nil)
	}
	return NewService(testConfig(), units.NewDefaultRegistry(), store, adv)
}

func TestParseIngredientsKeepsOrder(t *testing.T) {
	s := newTestService(nil, nil)

	lines := make([]string, 40)
	for i := range lines {
		lines[i] = fmt.Sprintf("%d cups ingredient %d", i+1, i)
	}
	got, err := s.ParseIngredients(context.Background(), lines)
	require.NoError(t, err)
	require.Len(t, got, len(lines))

	ids := make(map[string]bool)
	for i, ing := range got {
		assert.Equal(t, lines[i], ing.OriginalText)
		require.NotNil(t, ing.Quantity)
		assert.Equal(t, float64(i+1), ing.Quantity.Value)
		assert.False(t, ids[ing.ID])
		ids[ing.ID] = true
	}
}

func TestParseIngredientsValidatesInput(t *testing.T) {
	s := newTestService(nil, nil)

	_, err := s.ParseIngredients(context.Background(), nil)
	assert.True(t, common.IsValidationError(err))

	_, err = s.ParseIngredients(context.Background(), make([]string, 51))
	assert.True(t, common.IsValidationError(err))
}

func TestParseIngredientsHonoursCancellation(t *testing.T) {
	s := newTestService(nil, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.ParseIngredients(ctx, []string{"1 cup sugar", "2 eggs"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParseIngredientsUsesCache(t *testing.T) {
	store := cache.NewManager(config.CacheConfig{MaxSize: 10, TTL: time.Hour})
	defer store.Close()
	s := newTestService(store, nil)
	ctx := context.Background()

	first, err := s.ParseIngredients(ctx, []string{"2 tbsp olive oil"})
	require.NoError(t, err)
	second, err := s.ParseIngredients(ctx, []string{"2 tbsp olive oil"})
	require.NoError(t, err)

	assert.Equal(t, int64(1), store.GetStats().Hits)
	assert.NotEqual(t, first[0].ID, second[0].ID)
	first[0].ID, second[0].ID = "", ""
	assert.Equal(t, first[0], second[0])
}

func TestBuildRecipe(t *testing.T) {
	s := newTestService(nil, nil)

	recipe, err := s.BuildRecipe(context.Background(), "Serves 6", []string{"1 cup sugar", "salt to taste"})
	require.NoError(t, err)
	assert.Equal(t, 6.0, recipe.Servings.Amount)
	assert.Len(t, recipe.Ingredients, 2)
}

func TestScaleRecipeRejectsInvalidMultiplier(t *testing.T) {
	adv := &stubAdvisor{}
	s := newTestService(nil, adv)

	for _, m := range []float64{0, 0.1, 10.5, -1} {
		_, err := s.ScaleRecipe(context.Background(), ingredient.Recipe{}, scaling.Options{Multiplier: m})
		require.Error(t, err)
		assert.ErrorIs(t, err, common.ErrInvalidMultiplier)
		status, resp := common.ToErrorResponse(err)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, common.ErrCodeInvalidMultiplier, resp.Code)
	}
	assert.Zero(t, adv.calls)

	_, err := s.ScaleRecipe(context.Background(), ingredient.Recipe{}, scaling.Options{Multiplier: 11})
	_, resp := common.ToErrorResponse(err)
	assert.Equal(t, "multiplier must be in (0.1, 10], got 11", resp.Details)
}

func TestScaleRecipeMergesAdvisorTips(t *testing.T) {
	adv := &stubAdvisor{tips: []string{"Chill the dough overnight.", scaling.TipLargerPan}}
	s := newTestService(nil, adv)
	ctx := context.Background()

	recipe, err := s.BuildRecipe(ctx, "4", []string{"2 cups flour"})
	require.NoError(t, err)

	got, err := s.ScaleRecipe(ctx, *recipe, scaling.Options{Multiplier: 2})
	require.NoError(t, err)
	assert.Equal(t, 1, adv.calls)
	assert.Equal(t, []string{scaling.TipLargerPan, scaling.TipLongerCook, "Chill the dough overnight."}, got.Tips)
	assert.Equal(t, "4 cups flour", got.Ingredients[0].DisplayText)
}

func TestScaleRecipeIgnoresAdvisorFailure(t *testing.T) {
	adv := &stubAdvisor{err: errors.New("timeout")}
	s := newTestService(nil, adv)
	ctx := context.Background()

	recipe, err := s.BuildRecipe(ctx, "", []string{"1 cup milk"})
	require.NoError(t, err)

	got, err := s.ScaleRecipe(ctx, *recipe, scaling.Options{Multiplier: 0.5})
	require.NoError(t, err)
	assert.Equal(t, scaling.Tips(0.5), got.Tips)
}

func TestPolicyFromConfig(t *testing.T) {
	p := PolicyFromConfig(config.ScalingConfig{
		SnapTolerance: 0.05,
		PinchFloors:   map[string]float64{"volume": 1},
	})
	assert.Equal(t, 0.05, p.SnapTolerance)
	assert.Equal(t, 1.0, p.PinchFloor(units.CategoryVolume))
	assert.InDelta(t, 0.35, p.PinchFloor(units.CategoryWeight), 1e-12)

	p = PolicyFromConfig(config.ScalingConfig{UpgradeCeilings: map[string]float64{"teaspoon": 3}})
	registry := units.NewDefaultRegistry()
	engine := scaling.NewEngine(registry, nil, p)
	got := engine.ScaleIngredient(ingredient.NewParser(registry).Parse("2 tsp vanilla"), 2)
	assert.Equal(t, "tablespoon", got.ScaledUnit)
	assert.Equal(t, "1 1/3", got.ScaledQuantity.DisplayValue)
}
