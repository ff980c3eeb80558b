package scaling

import (
	"fmt"
	"math"
	"strings"

	"recipe-scaler/internal/core/fraction"
	"recipe-scaler/internal/core/ingredient"
	"recipe-scaler/internal/core/units"
)

const ratioEpsilon = 1e-9

// Engine 縮放引擎；無狀態，可並行使用
type Engine struct {
	registry  *units.Registry
	formatter *fraction.Formatter
	policy    Policy
}

// NewEngine 建立縮放引擎
func NewEngine(registry *units.Registry, formatter *fraction.Formatter, policy Policy) *Engine {
	if formatter == nil {
		formatter = fraction.New(policy.SnapTolerance)
	}
	return &Engine{
		registry:  registry,
		formatter: formatter,
		policy:    policy,
	}
}

// unitDecision 單位決策結果
type unitDecision struct {
	def      units.Definition
	known    bool
	name     string
	factor   float64 // 原單位換算到新單位的係數
	upgraded bool
	from     units.Definition
}

// ScaleIngredient 縮放單一食材
func (e *Engine) ScaleIngredient(ing ingredient.ParsedIngredient, multiplier float64) ScaledIngredient {
	out := ScaledIngredient{
		ParsedIngredient: ing,
		ScaledUnit:       ing.Unit,
	}

	q := ing.Quantity
	if q == nil {
		out.DisplayText = ing.OriginalText
		return out
	}

	decision := e.decideUnit(ing.Unit, q.Value*multiplier)

	sq := &ScaledQuantity{
		OriginalValue: q.Value * decision.factor,
	}
	sq.Value = sq.OriginalValue * multiplier
	isRange := q.IsRange()
	if isRange {
		origTo := *q.ValueTo * decision.factor
		valueTo := origTo * multiplier
		sq.OriginalValueTo = &origTo
		sq.ValueTo = &valueTo
	}
	if decision.upgraded {
		out.ScaledUnit = decision.name
		sq.DisplayModifier = fmt.Sprintf("converted from %s", decision.from.PluralName())
	} else if decision.known {
		out.ScaledUnit = decision.def.Name
	}

	floor := 0.0
	if decision.known {
		floor = e.policy.PinchFloor(decision.def.Category) / decision.def.Factor
	}

	pinched := false
	switch {
	case math.Abs(multiplier-1) < ratioEpsilon && !decision.upgraded:
		// 原倍率沿用原始文字
		sq.DisplayValue = q.DisplayValue
	case isRange:
		loText, loPinch, loRounded := e.display(sq.Value, floor)
		hiText, hiPinch, hiRounded := e.display(*sq.ValueTo, floor)
		sq.WasRounded = loRounded || hiRounded
		// 兩端都低於下限時保留範圍形狀，只去掉單位
		pinched = loPinch && hiPinch
		sq.DisplayValue = loText + ingredient.RangeSeparator(q.DisplayValue) + hiText
	default:
		sq.DisplayValue, pinched, sq.WasRounded = e.display(sq.Value, floor)
	}

	if pinched {
		out.ScaledUnit = ""
		sq.DisplayModifier = ""
	}
	out.ScaledQuantity = sq
	out.DisplayText = e.displayText(out, decision, pinched)
	return out
}

// display 格式化單一邊界，返回文字、是否為 pinch、是否捨入
func (e *Engine) display(value, floor float64) (string, bool, bool) {
	if floor > 0 && value < floor {
		return fraction.PinchText, true, true
	}
	r := e.formatter.Snap(value)
	return r.Text, false, math.Abs(r.Value-value) > ratioEpsilon
}

// decideUnit 根據縮放後的下限決定是否升級單位
func (e *Engine) decideUnit(unit string, scaledLow float64) unitDecision {
	d := unitDecision{name: unit, factor: 1}
	if unit == "" || e.registry == nil {
		return d
	}
	def, ok := e.registry.Resolve(unit)
	if !ok {
		// 未知單位保持原樣
		return d
	}
	d.def, d.known, d.name, d.from = def, true, def.Name, def

	current := def
	value := scaledLow
	for i := 0; i < len(e.policy.Categories[def.Category].Upgrades); i++ {
		step, ok := e.policy.nextUpgrade(current.Category, current.Name)
		if !ok || value < step.Ceiling {
			break
		}
		factor, ok := e.registry.Convert(1, current.Name, step.To)
		if !ok {
			break
		}
		target, ok := e.registry.Get(step.To)
		if !ok {
			break
		}
		value *= factor
		d.factor *= factor
		current = target
	}

	if current.Name != def.Name {
		d.def, d.name, d.upgraded = current, current.Name, true
	}
	return d
}

// displayText 組合顯示文字
func (e *Engine) displayText(si ScaledIngredient, decision unitDecision, pinched bool) string {
	var parts []string
	sq := si.ScaledQuantity

	if pinched {
		parts = append(parts, sq.DisplayValue)
		if si.Ingredient != "" {
			parts = append(parts, "of", si.Ingredient)
		}
	} else {
		parts = append(parts, sq.DisplayValue)
		if si.ScaledUnit != "" {
			parts = append(parts, e.unitWord(si, decision))
		}
		if si.Ingredient != "" {
			parts = append(parts, si.Ingredient)
		}
	}

	text := strings.Join(parts, " ")
	if si.Preparation != "" {
		text += ", " + si.Preparation
	}
	if si.Notes != "" {
		text += " (" + si.Notes + ")"
	}
	return text
}

func (e *Engine) unitWord(si ScaledIngredient, decision unitDecision) string {
	if !decision.known {
		return si.ScaledUnit
	}
	amount := si.ScaledQuantity.Value
	if si.ScaledQuantity.ValueTo != nil {
		amount = *si.ScaledQuantity.ValueTo
	}
	if e.formatter.Snap(amount).Value > 1+ratioEpsilon {
		return decision.def.PluralName()
	}
	return decision.def.Name
}

// ScaleRecipe 縮放整份食譜，輸出順序與輸入一致
func (e *Engine) ScaleRecipe(recipe ingredient.Recipe, opts Options) ScaledRecipe {
	m := opts.Multiplier
	out := ScaledRecipe{
		Multiplier:  m,
		Servings:    ScaleServings(recipe.Servings, m),
		Ingredients: make([]ScaledIngredient, len(recipe.Ingredients)),
		Tips:        Tips(m),
	}
	for i, ing := range recipe.Ingredients {
		out.Ingredients[i] = e.ScaleIngredient(ing, m)
	}
	return out
}

// ScaleServings 份量四捨五入到 0.5
func ScaleServings(s ingredient.Servings, multiplier float64) ingredient.Servings {
	out := s
	if s.Amount <= 0 {
		return out
	}
	out.Amount = math.Round(s.Amount*multiplier*2) / 2
	if out.Amount < 0.5 {
		out.Amount = 0.5
	}
	return out
}
