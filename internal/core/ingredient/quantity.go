package ingredient

import (
	"strconv"
	"strings"
)

// numeric 單一數值運算式
type numeric struct {
	value  float64
	start  int
	end    int
	whole  bool // 純整數
	proper bool // 小於 1 的分數（1/2、½）
	next   int  // 下一個 token 的索引
}

// quantityMatch 行首數量的解析結果
type quantityMatch struct {
	quantity Quantity
	start    int
	end      int
	next     int
}

func kindAt(toks []token, i int) (tokenKind, bool) {
	if i < 0 || i >= len(toks) {
		return 0, false
	}
	return toks[i].kind, true
}

func is(toks []token, i int, kind tokenKind) bool {
	k, ok := kindAt(toks, i)
	return ok && k == kind
}

func isInteger(t token) bool {
	return t.kind == tokNumber && !strings.Contains(t.text, ".")
}

// parseNumeric 解析 toks[i] 開始的數值：
// glyph | 整數 glyph | 數字 "/" 數字 | 整數 數字 "/" 數字 | 數字
func parseNumeric(toks []token, i int) (numeric, bool) {
	if i >= len(toks) {
		return numeric{}, false
	}
	t := toks[i]

	switch t.kind {
	case tokGlyph:
		r := []rune(t.text)[0]
		return numeric{value: glyphValues[r], start: t.start, end: t.end, proper: true, next: i + 1}, true

	case tokNumber:
		v, err := strconv.ParseFloat(t.text, 64)
		if err != nil {
			return numeric{}, false
		}
		if !isInteger(t) {
			return numeric{value: v, start: t.start, end: t.end, next: i + 1}, true
		}

		// 1/2
		if is(toks, i+1, tokSlash) && is(toks, i+2, tokNumber) && isInteger(toks[i+2]) {
			if den, _ := strconv.ParseFloat(toks[i+2].text, 64); den != 0 {
				return numeric{value: v / den, start: t.start, end: toks[i+2].end, proper: v < den, next: i + 3}, true
			}
		}
		// 1½
		if is(toks, i+1, tokGlyph) {
			g := parseGlyph(toks[i+1])
			return numeric{value: v + g, start: t.start, end: toks[i+1].end, next: i + 2}, true
		}
		if is(toks, i+1, tokSpace) {
			// 1 ½
			if is(toks, i+2, tokGlyph) {
				g := parseGlyph(toks[i+2])
				return numeric{value: v + g, start: t.start, end: toks[i+2].end, next: i + 3}, true
			}
			// 2 1/2
			if is(toks, i+2, tokNumber) && isInteger(toks[i+2]) &&
				is(toks, i+3, tokSlash) &&
				is(toks, i+4, tokNumber) && isInteger(toks[i+4]) {
				num, _ := strconv.ParseFloat(toks[i+2].text, 64)
				den, _ := strconv.ParseFloat(toks[i+4].text, 64)
				if den != 0 {
					return numeric{value: v + num/den, start: t.start, end: toks[i+4].end, next: i + 5}, true
				}
			}
		}
		return numeric{value: v, start: t.start, end: t.end, whole: true, next: i + 1}, true
	}

	return numeric{}, false
}

func parseGlyph(t token) float64 {
	return glyphValues[[]rune(t.text)[0]]
}

func skipSpace(toks []token, i int) int {
	if is(toks, i, tokSpace) {
		return i + 1
	}
	return i
}

// parseQuantityAt 解析 toks[i] 開始的數量（單值或範圍）
func parseQuantityAt(s string, toks []token, i int) (quantityMatch, bool) {
	lo, ok := parseNumeric(toks, i)
	if !ok {
		return quantityMatch{}, false
	}

	single := func(n numeric, end, next int) quantityMatch {
		return quantityMatch{
			quantity: Quantity{
				Type:         QuantitySingle,
				Value:        n.value,
				DisplayValue: s[n.start:n.end],
			},
			start: n.start,
			end:   end,
			next:  next,
		}
	}

	k := skipSpace(toks, lo.next)
	joinedByDash := is(toks, k, tokDash)
	joinedByTo := is(toks, k, tokWord) && strings.EqualFold(toks[k].text, "to") && k != lo.next
	if !joinedByDash && !joinedByTo {
		return single(lo, lo.end, lo.next), true
	}

	m := skipSpace(toks, k+1)
	if joinedByTo && m == k+1 {
		return single(lo, lo.end, lo.next), true
	}
	hi, ok := parseNumeric(toks, m)
	if !ok {
		return single(lo, lo.end, lo.next), true
	}

	// 1-1/2 視為帶分數
	tight := k == lo.next && m == k+1
	if joinedByDash && tight && toks[k].text == "-" && lo.whole && hi.proper {
		return quantityMatch{
			quantity: Quantity{
				Type:         QuantitySingle,
				Value:        lo.value + hi.value,
				DisplayValue: s[lo.start:hi.end],
			},
			start: lo.start,
			end:   hi.end,
			next:  hi.next,
		}, true
	}

	// 上限必須大於下限，否則退化為單值
	if hi.value <= lo.value {
		return single(lo, hi.end, hi.next), true
	}

	valueTo := hi.value
	return quantityMatch{
		quantity: Quantity{
			Type:         QuantityRange,
			Value:        lo.value,
			ValueTo:      &valueTo,
			DisplayValue: s[lo.start:hi.end],
		},
		start: lo.start,
		end:   hi.end,
		next:  hi.next,
	}, true
}

// RangeSeparator 從顯示文字推回範圍分隔符號
func RangeSeparator(displayValue string) string {
	switch {
	case strings.Contains(displayValue, "–"):
		return "–"
	case strings.Contains(displayValue, "—"):
		return "—"
	case strings.Contains(strings.ToLower(displayValue), " to "):
		return " to "
	default:
		return "-"
	}
}
