package scaling

import (
	"recipe-scaler/internal/core/fraction"
	"recipe-scaler/internal/core/units"
)

// UpgradeStep 超過 Ceiling（以 From 單位計）時換成 To
type UpgradeStep struct {
	From    string
	To      string
	Ceiling float64
}

// CategoryPolicy 單一計量類別的門檻
type CategoryPolicy struct {
	PinchFloor float64       // 以基準單位計（ml / g），0 表示不套用
	Upgrades   []UpgradeStep // 單位升級規則
}

// Policy 縮放政策
type Policy struct {
	SnapTolerance float64
	Categories    map[units.Category]CategoryPolicy
}

// DefaultPolicy 預設門檻
func DefaultPolicy() Policy {
	return Policy{
		SnapTolerance: fraction.DefaultTolerance,
		Categories: map[units.Category]CategoryPolicy{
			units.CategoryVolume: {
				// 約 1/16 茶匙
				PinchFloor: 0.308,
				Upgrades: []UpgradeStep{
					{From: "teaspoon", To: "tablespoon", Ceiling: 6},
					{From: "tablespoon", To: "cup", Ceiling: 8},
					{From: "fluid ounce", To: "cup", Ceiling: 16},
					{From: "cup", To: "quart", Ceiling: 8},
					{From: "pint", To: "quart", Ceiling: 4},
					{From: "quart", To: "gallon", Ceiling: 8},
					{From: "milliliter", To: "liter", Ceiling: 1000},
				},
			},
			units.CategoryWeight: {
				PinchFloor: 0.35,
				Upgrades: []UpgradeStep{
					{From: "milligram", To: "gram", Ceiling: 1000},
					{From: "gram", To: "kilogram", Ceiling: 1000},
					{From: "ounce", To: "pound", Ceiling: 32},
				},
			},
		},
	}
}

// PinchFloor 返回類別的最低量（基準單位）
func (p Policy) PinchFloor(category units.Category) float64 {
	return p.Categories[category].PinchFloor
}

// nextUpgrade 找出 unit 的升級規則
func (p Policy) nextUpgrade(category units.Category, unit string) (UpgradeStep, bool) {
	for _, step := range p.Categories[category].Upgrades {
		if step.From == unit {
			return step, true
		}
	}
	return UpgradeStep{}, false
}

// WithPinchFloor 覆寫類別的最低量
func (p Policy) WithPinchFloor(category units.Category, floor float64) Policy {
	out := p.clone()
	cp := out.Categories[category]
	cp.PinchFloor = floor
	out.Categories[category] = cp
	return out
}

// WithUpgradeCeiling 覆寫 from 單位的升級門檻；找不到規則時原樣返回
func (p Policy) WithUpgradeCeiling(from string, ceiling float64) Policy {
	out := p.clone()
	for _, cp := range out.Categories {
		for i := range cp.Upgrades {
			if cp.Upgrades[i].From == from {
				cp.Upgrades[i].Ceiling = ceiling
			}
		}
	}
	return out
}

func (p Policy) clone() Policy {
	out := Policy{
		SnapTolerance: p.SnapTolerance,
		Categories:    make(map[units.Category]CategoryPolicy, len(p.Categories)),
	}
	for k, v := range p.Categories {
		v.Upgrades = append([]UpgradeStep(nil), v.Upgrades...)
		out.Categories[k] = v
	}
	return out
}
