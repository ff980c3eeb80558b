package scaling

import (
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
)

// 倍率邊界 (MinMultiplier, MaxMultiplier]
const (
	MinMultiplier float64 = 0.1
	MaxMultiplier float64 = 10
)

var validate = validator.New()

// Options 縮放選項
type Options struct {
	Multiplier float64 `json:"multiplier" validate:"gt=0.1,lte=10"`
}

// Validate 檢查倍率，由呼叫端在進入引擎前執行
func (o Options) Validate() error {
	if math.IsNaN(o.Multiplier) || math.IsInf(o.Multiplier, 0) {
		return fmt.Errorf("multiplier must be a finite number")
	}
	if err := validate.Struct(o); err != nil {
		return fmt.Errorf("multiplier must be in (%g, %g], got %g", MinMultiplier, MaxMultiplier, o.Multiplier)
	}
	return nil
}
