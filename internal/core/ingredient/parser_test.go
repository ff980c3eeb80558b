package ingredient

import (
	"fmt"
	"testing"

	"recipe-scaler/internal/core/units"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestParser() *Parser {
	n := 0
	return NewParser(units.NewDefaultRegistry(), WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("ing-%d", n)
	}))
}

func TestParseQuantityAndUnit(t *testing.T) {
	p := newTestParser()

	tests := []struct {
		line        string
		value       float64
		display     string
		unit        string
		ingredient  string
		preparation string
		notes       string
		confidence  float64
	}{
		{"2 tbsp olive oil", 2, "2", "tablespoon", "olive oil", "", "", ConfidenceFull},
		{"2 1/2 cups flour", 2.5, "2 1/2", "cup", "flour", "", "", ConfidenceFull},
		{"½ cup butter", 0.5, "½", "cup", "butter", "", "", ConfidenceFull},
		{"1½ cups sugar", 1.5, "1½", "cup", "sugar", "", "", ConfidenceFull},
		{"1 ¼ tsp salt", 1.25, "1 ¼", "teaspoon", "salt", "", "", ConfidenceFull},
		{"1/4 teaspoon salt", 0.25, "1/4", "teaspoon", "salt", "", "", ConfidenceFull},
		{"1.5 lbs chicken thighs, cubed", 1.5, "1.5", "pound", "chicken thighs", "cubed", "", ConfidenceFull},
		{"200g dark chocolate", 200, "200", "gram", "dark chocolate", "", "", ConfidenceFull},
		{"8 fl oz heavy cream", 8, "8", "fluid ounce", "heavy cream", "", "", ConfidenceFull},
		{"1 T butter", 1, "1", "tablespoon", "butter", "", "", ConfidenceFull},
		{"1 t vanilla extract", 1, "1", "teaspoon", "vanilla extract", "", "", ConfidenceFull},
		{"2 cups of milk", 2, "2", "cup", "milk", "", "", ConfidenceFull},
		{"1-1/2 cups water", 1.5, "1-1/2", "cup", "water", "", "", ConfidenceFull},
		{"1 (14 oz) can diced tomatoes", 1, "1", "can", "diced tomatoes", "", "14 oz", ConfidenceFull},
		{"3 cloves garlic, minced", 3, "3", "clove", "garlic", "minced", "", ConfidenceFull},
		{"1 Tbsp. sesame oil (optional)", 1, "1", "tablespoon", "sesame oil", "", "optional", ConfidenceFull},
		{"2 eggs", 2, "2", "", "eggs", "", "", ConfidenceCount},
		{"3 large eggs, beaten", 3, "3", "", "large eggs", "beaten", "", ConfidenceCount},
		{"1 onion, diced", 1, "1", "", "onion", "diced", "", ConfidenceCount},
		{"1 cup parsley, for garnish", 1, "1", "cup", "parsley", "", "for garnish", ConfidenceFull},
		{"4 cups", 4, "4", "cup", "", "", "", ConfidenceQuantityUnit},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got := p.Parse(tt.line)
			require.NotNil(t, got.Quantity)
			assert.Equal(t, QuantitySingle, got.Quantity.Type)
			assert.InDelta(t, tt.value, got.Quantity.Value, 1e-12)
			assert.Nil(t, got.Quantity.ValueTo)
			assert.Equal(t, tt.display, got.Quantity.DisplayValue)
			assert.Equal(t, tt.unit, got.Unit)
			assert.Equal(t, tt.ingredient, got.Ingredient)
			assert.Equal(t, tt.preparation, got.Preparation)
			assert.Equal(t, tt.notes, got.Notes)
			assert.Equal(t, tt.confidence, got.ParseConfidence)
			assert.Equal(t, tt.line, got.OriginalText)
		})
	}
}

func TestParseRanges(t *testing.T) {
	p := newTestParser()

	tests := []struct {
		line    string
		value   float64
		valueTo float64
		display string
		unit    string
	}{
		{"1-2 cups milk", 1, 2, "1-2", "cup"},
		{"1–2 cups milk", 1, 2, "1–2", "cup"},
		{"2 - 3 tbsp honey", 2, 3, "2 - 3", "tablespoon"},
		{"1 to 2 tsp chili flakes", 1, 2, "1 to 2", "teaspoon"},
		{"1/2-3/4 cup broth", 0.5, 0.75, "1/2-3/4", "cup"},
		{"3-4 carrots", 3, 4, "3-4", ""},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got := p.Parse(tt.line)
			require.NotNil(t, got.Quantity)
			assert.Equal(t, QuantityRange, got.Quantity.Type)
			assert.True(t, got.Quantity.IsRange())
			assert.InDelta(t, tt.value, got.Quantity.Value, 1e-12)
			require.NotNil(t, got.Quantity.ValueTo)
			assert.InDelta(t, tt.valueTo, *got.Quantity.ValueTo, 1e-12)
			assert.Greater(t, *got.Quantity.ValueTo, got.Quantity.Value)
			assert.Equal(t, tt.display, got.Quantity.DisplayValue)
			assert.Equal(t, tt.unit, got.Unit)
		})
	}
}

func TestParseDescendingRangeFallsBackToSingle(t *testing.T) {
	p := newTestParser()

	got := p.Parse("3-2 cups rice")
	require.NotNil(t, got.Quantity)
	assert.Equal(t, QuantitySingle, got.Quantity.Type)
	assert.Equal(t, 3.0, got.Quantity.Value)
	assert.Nil(t, got.Quantity.ValueTo)
	assert.Equal(t, "cup", got.Unit)
	assert.Equal(t, "rice", got.Ingredient)
}

func TestParseWithoutQuantity(t *testing.T) {
	p := newTestParser()

	got := p.Parse("salt to taste")
	assert.Nil(t, got.Quantity)
	assert.Empty(t, got.Unit)
	assert.Equal(t, "salt", got.Ingredient)
	assert.Equal(t, "to taste", got.Notes)
	assert.Equal(t, ConfidenceNameOnly, got.ParseConfidence)
	assert.Equal(t, "salt to taste", got.OriginalText)

	got = p.Parse("Fresh basil leaves")
	assert.Nil(t, got.Quantity)
	assert.Equal(t, "Fresh basil leaves", got.Ingredient)
	assert.Equal(t, ConfidenceNameOnly, got.ParseConfidence)
}

func TestParseTrailingNoteWithNonASCIIName(t *testing.T) {
	p := newTestParser()

	got := p.Parse("İzmir figs TO TASTE")
	assert.Equal(t, "İzmir figs", got.Ingredient)
	assert.Equal(t, "TO TASTE", got.Notes)

	got = p.Parse("ÇİĞ köfte as needed")
	assert.Equal(t, "ÇİĞ köfte", got.Ingredient)
	assert.Equal(t, "as needed", got.Notes)
}

func TestDefaultIDGenerator(t *testing.T) {
	p := NewParser(units.NewDefaultRegistry())

	a, b := p.Parse("1 cup sugar"), p.Parse("1 cup sugar")
	assert.Len(t, a.ID, 36)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestParseNeverFails(t *testing.T) {
	p := newTestParser()

	for _, line := range []string{"", "   ", "!!!", "--", "()", "(", "1/0", "½½½", "—"} {
		t.Run(line, func(t *testing.T) {
			got := p.Parse(line)
			assert.NotEmpty(t, got.ID)
			assert.Equal(t, line, got.OriginalText)
			assert.GreaterOrEqual(t, got.ParseConfidence, 0.0)
			assert.LessOrEqual(t, got.ParseConfidence, 1.0)
		})
	}

	got := p.Parse("  !!!  ")
	assert.Nil(t, got.Quantity)
	assert.Equal(t, "!!!", got.Ingredient)
	assert.Equal(t, ConfidenceNone, got.ParseConfidence)
}

func TestParseAllKeepsOrderAndUniqueIDs(t *testing.T) {
	p := newTestParser()
	lines := []string{"1 cup sugar", "2 eggs", "salt to taste"}

	got := p.ParseAll(lines)
	require.Len(t, got, len(lines))

	seen := map[string]bool{}
	for i, ing := range got {
		assert.Equal(t, lines[i], ing.OriginalText)
		assert.False(t, seen[ing.ID], "duplicate id %s", ing.ID)
		seen[ing.ID] = true
	}
}

func TestParseServings(t *testing.T) {
	p := newTestParser()

	tests := []struct {
		text   string
		amount float64
		unit   string
	}{
		{"Serves 4", 4, "servings"},
		{"4-6 servings", 4, "servings"},
		{"Makes 12 cookies", 12, "cookies"},
		{"Yield: 2 loaves", 2, "loaves"},
		{"a crowd", 0, "servings"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got := p.ParseServings(tt.text)
			assert.Equal(t, tt.amount, got.Amount)
			assert.Equal(t, tt.unit, got.Unit)
			assert.Equal(t, tt.text, got.OriginalText)
		})
	}
}

func TestRangeSeparator(t *testing.T) {
	assert.Equal(t, "-", RangeSeparator("1-2"))
	assert.Equal(t, "–", RangeSeparator("1–2"))
	assert.Equal(t, " to ", RangeSeparator("1 to 2"))
	assert.Equal(t, "-", RangeSeparator("3"))
}
