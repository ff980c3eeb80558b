package ingredient

// QuantityType 數量型別
type QuantityType string

const (
	QuantitySingle QuantityType = "single"
	QuantityRange  QuantityType = "range"
)

// Quantity 食材數量；DisplayValue 保留原始文字
type Quantity struct {
	Type         QuantityType `json:"type"`
	Value        float64      `json:"value"`
	ValueTo      *float64     `json:"valueTo,omitempty"`
	DisplayValue string       `json:"displayValue"`
}

// IsRange 是否為範圍數量
func (q *Quantity) IsRange() bool {
	return q != nil && q.Type == QuantityRange && q.ValueTo != nil
}

// ParsedIngredient 解析後的食材
type ParsedIngredient struct {
	ID              string    `json:"id"`
	OriginalText    string    `json:"originalText"`
	Quantity        *Quantity `json:"quantity,omitempty"`
	Unit            string    `json:"unit,omitempty"`
	Ingredient      string    `json:"ingredient"`
	Preparation     string    `json:"preparation,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	ParseConfidence float64   `json:"parseConfidence"`
}

// Servings 份量
type Servings struct {
	Amount       float64 `json:"amount"`
	Unit         string  `json:"unit"`
	OriginalText string  `json:"originalText"`
}

// Recipe 食譜：份量與依序排列的食材
type Recipe struct {
	Servings    Servings           `json:"servings"`
	Ingredients []ParsedIngredient `json:"ingredients"`
}
