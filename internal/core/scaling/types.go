package scaling

import (
	"recipe-scaler/internal/core/ingredient"
)

// ScaledQuantity 縮放後的數量；Value = OriginalValue * multiplier
type ScaledQuantity struct {
	Value           float64  `json:"value"`
	ValueTo         *float64 `json:"valueTo,omitempty"`
	DisplayValue    string   `json:"displayValue"`
	DisplayModifier string   `json:"displayModifier,omitempty"`
	WasRounded      bool     `json:"wasRounded"`
	OriginalValue   float64  `json:"originalValue"`
	OriginalValueTo *float64 `json:"originalValueTo,omitempty"`
}

// ScaledIngredient 縮放後的食材
type ScaledIngredient struct {
	ingredient.ParsedIngredient
	ScaledUnit     string          `json:"scaledUnit,omitempty"`
	ScaledQuantity *ScaledQuantity `json:"scaledQuantity,omitempty"`
	DisplayText    string          `json:"displayText"`
}

// ScaledRecipe 縮放後的食譜
type ScaledRecipe struct {
	Multiplier  float64             `json:"multiplier"`
	Servings    ingredient.Servings `json:"servings"`
	Ingredients []ScaledIngredient  `json:"ingredients"`
	Tips        []string            `json:"tips"`
}
