package fraction

import (
	"fmt"
	"math"
	"strconv"
)

// DefaultTolerance 小數部分與常用分數的最大差距
const DefaultTolerance = 0.02

// PinchText 低於下限時的顯示文字
const PinchText = "a pinch"

// fractions 常用烹飪分數（半、四分之一、三分之一、八分之一）
var fractions = []struct {
	num, den int
}{
	{1, 8}, {1, 4}, {1, 3}, {3, 8}, {1, 2}, {5, 8}, {2, 3}, {3, 4}, {7, 8},
}

// Result 格式化結果
type Result struct {
	Text  string  // 顯示文字
	Value float64 // 顯示文字所代表的數值
}

// Formatter 將小數格式化為易讀分數
type Formatter struct {
	Tolerance float64
}

// New 建立格式化器，tolerance <= 0 時使用預設值
func New(tolerance float64) *Formatter {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	return &Formatter{Tolerance: tolerance}
}

// Format 返回數值的顯示文字
func (f *Formatter) Format(value float64) string {
	return f.Snap(value).Text
}

// FormatAmount 低於 floor 時返回 "a pinch"
func (f *Formatter) FormatAmount(value, floor float64) (string, bool) {
	if floor > 0 && value < floor {
		return PinchText, true
	}
	return f.Format(value), false
}

// Snap 將數值對齊到最接近的常用分數，否則四捨五入到兩位小數
func (f *Formatter) Snap(value float64) Result {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Result{Text: strconv.FormatFloat(value, 'f', -1, 64), Value: value}
	}
	if value < 0 {
		r := f.Snap(-value)
		return Result{Text: "-" + r.Text, Value: -r.Value}
	}

	whole := math.Floor(value)
	residual := value - whole

	if residual <= f.Tolerance && whole > 0 {
		return wholeResult(whole)
	}
	if 1-residual <= f.Tolerance {
		return wholeResult(whole + 1)
	}

	best := -1
	bestDiff := math.MaxFloat64
	for i, fr := range fractions {
		diff := math.Abs(residual - float64(fr.num)/float64(fr.den))
		if diff < bestDiff {
			best, bestDiff = i, diff
		}
	}
	if best >= 0 && bestDiff <= f.Tolerance {
		fr := fractions[best]
		snapped := whole + float64(fr.num)/float64(fr.den)
		if whole == 0 {
			return Result{Text: fmt.Sprintf("%d/%d", fr.num, fr.den), Value: snapped}
		}
		return Result{Text: fmt.Sprintf("%d %d/%d", int64(whole), fr.num, fr.den), Value: snapped}
	}

	rounded := math.Round(value*100) / 100
	return Result{Text: strconv.FormatFloat(rounded, 'f', -1, 64), Value: rounded}
}

func wholeResult(whole float64) Result {
	return Result{Text: strconv.FormatFloat(whole, 'f', 0, 64), Value: whole}
}
