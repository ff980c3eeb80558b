package units

// DefaultDefinitions 預設單位表
func DefaultDefinitions() []Definition {
	return []Definition{
		// 美制容量（基準 ml）
		{Name: "teaspoon", Aliases: []string{"tsp", "tsps", "t", "tsp."}, Category: CategoryVolume, Factor: 4.92892},
		{Name: "tablespoon", Aliases: []string{"tbsp", "tbsps", "tbs", "tbl", "tbls", "T", "Tbsp"}, Category: CategoryVolume, Factor: 14.7868},
		{Name: "fluid ounce", Aliases: []string{"fl oz", "fl. oz", "fl.oz", "floz", "fluid oz"}, Category: CategoryVolume, Factor: 29.5735},
		{Name: "cup", Aliases: []string{"c", "C"}, Category: CategoryVolume, Factor: 236.588},
		{Name: "pint", Aliases: []string{"pt", "pts"}, Category: CategoryVolume, Factor: 473.176},
		{Name: "quart", Aliases: []string{"qt", "qts"}, Category: CategoryVolume, Factor: 946.353},
		{Name: "gallon", Aliases: []string{"gal", "gals"}, Category: CategoryVolume, Factor: 3785.41},

		// 公制容量
		{Name: "milliliter", Aliases: []string{"ml", "mL", "millilitre", "millilitres"}, Category: CategoryVolume, Factor: 1},
		{Name: "liter", Aliases: []string{"l", "L", "litre", "litres"}, Category: CategoryVolume, Factor: 1000},

		// 美制重量（基準 g）
		{Name: "ounce", Aliases: []string{"oz", "ozs"}, Category: CategoryWeight, Factor: 28.3495},
		{Name: "pound", Aliases: []string{"lb", "lbs"}, Category: CategoryWeight, Factor: 453.592},

		// 公制重量
		{Name: "milligram", Aliases: []string{"mg"}, Category: CategoryWeight, Factor: 0.001},
		{Name: "gram", Aliases: []string{"g", "gr", "grams", "gramme", "grammes"}, Category: CategoryWeight, Factor: 1},
		{Name: "kilogram", Aliases: []string{"kg", "kgs", "kilo", "kilos"}, Category: CategoryWeight, Factor: 1000},

		// 非正式單位
		{Name: "pinch", Plural: "pinches", Category: CategoryVolume, Factor: 0.31, Informal: true},
		{Name: "dash", Plural: "dashes", Category: CategoryVolume, Factor: 0.62, Informal: true},
		{Name: "stick", Category: CategoryWeight, Factor: 113.4, Informal: true},

		// 計數
		{Name: "clove", Category: CategoryCount, Factor: 1},
		{Name: "can", Category: CategoryCount, Factor: 1},
	}
}
