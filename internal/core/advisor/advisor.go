package advisor

import (
	"context"

	"recipe-scaler/internal/core/scaling"
)

// Advisor 依縮放結果提供額外的烹飪建議
type Advisor interface {
	Advise(ctx context.Context, recipe *scaling.ScaledRecipe) ([]string, error)
}

// Noop 不提供建議
type Noop struct{}

// Advise 返回空建議
func (Noop) Advise(context.Context, *scaling.ScaledRecipe) ([]string, error) {
	return nil, nil
}
