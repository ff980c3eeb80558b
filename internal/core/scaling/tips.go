package scaling

// 依倍率分級的固定提示
const (
	TipLargerPan     = "Use a larger pan or split the batch across several pans; overfilled pans cook unevenly."
	TipLongerCook    = "Larger batches may need extra cooking time; check for doneness rather than relying on the original timing."
	TipSeasonGradual = "Seasonings and leavening do not always scale linearly; add spices gradually and taste as you go."
	TipMixInBatches  = "Mixers and food processors can overflow at this volume; mix in batches if needed."
	TipSmallerPan    = "Use a smaller pan so the food keeps a similar depth."
	TipReduceBaking  = "Reduce baking time and start checking for doneness early."
	TipEggs          = "Small quantities of eggs are hard to measure; beat the egg and measure by volume if needed."
)

// Tips 返回倍率對應的提示
func Tips(multiplier float64) []string {
	tips := []string{}
	switch {
	case multiplier >= 2:
		tips = append(tips, TipLargerPan, TipLongerCook)
		if multiplier >= 3 {
			tips = append(tips, TipSeasonGradual, TipMixInBatches)
		}
	case multiplier > 1:
		tips = append(tips, TipLongerCook)
	case multiplier < 1:
		tips = append(tips, TipSmallerPan)
		if multiplier < 0.5 {
			tips = append(tips, TipReduceBaking, TipEggs)
		}
	}
	return tips
}
