package ingredient

import (
	"unicode"
	"unicode/utf8"
)

type tokenKind int

const (
	tokNumber tokenKind = iota // 123 或 1.5
	tokGlyph                   // ½ ¼ ¾ ...
	tokSlash                   // / 或 ⁄
	tokDash                    // - – —
	tokSpace
	tokWord
	tokPunct
)

type token struct {
	kind  tokenKind
	text  string
	start int // byte offset
	end   int
}

// glyphValues Unicode 分數字元對應的小數
var glyphValues = map[rune]float64{
	'½': 1.0 / 2,
	'⅓': 1.0 / 3,
	'⅔': 2.0 / 3,
	'¼': 1.0 / 4,
	'¾': 3.0 / 4,
	'⅕': 1.0 / 5,
	'⅖': 2.0 / 5,
	'⅗': 3.0 / 5,
	'⅘': 4.0 / 5,
	'⅙': 1.0 / 6,
	'⅚': 5.0 / 6,
	'⅐': 1.0 / 7,
	'⅛': 1.0 / 8,
	'⅜': 3.0 / 8,
	'⅝': 5.0 / 8,
	'⅞': 7.0 / 8,
	'⅑': 1.0 / 9,
	'⅒': 1.0 / 10,
}

func isDash(r rune) bool {
	return r == '-' || r == '–' || r == '—'
}

// lex 將文字切成 token
func lex(s string) []token {
	var tokens []token
	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		start := i

		switch {
		case isDigit(r) || (r == '.' && i+1 < len(s) && isDigit(rune(s[i+1]))):
			i = scanNumber(s, i)
			tokens = append(tokens, token{kind: tokNumber, text: s[start:i], start: start, end: i})
			continue
		case glyphValues[r] != 0:
			tokens = append(tokens, token{kind: tokGlyph, text: s[i : i+size], start: start, end: i + size})
		case r == '/' || r == '⁄':
			tokens = append(tokens, token{kind: tokSlash, text: s[i : i+size], start: start, end: i + size})
		case isDash(r):
			tokens = append(tokens, token{kind: tokDash, text: s[i : i+size], start: start, end: i + size})
		case unicode.IsSpace(r):
			j := i + size
			for j < len(s) {
				r2, s2 := utf8.DecodeRuneInString(s[j:])
				if !unicode.IsSpace(r2) {
					break
				}
				j += s2
			}
			tokens = append(tokens, token{kind: tokSpace, text: s[i:j], start: start, end: j})
			i = j
			continue
		case unicode.IsLetter(r):
			j := i + size
			for j < len(s) {
				r2, s2 := utf8.DecodeRuneInString(s[j:])
				if !unicode.IsLetter(r2) {
					break
				}
				j += s2
			}
			tokens = append(tokens, token{kind: tokWord, text: s[i:j], start: start, end: j})
			i = j
			continue
		default:
			tokens = append(tokens, token{kind: tokPunct, text: s[i : i+size], start: start, end: i + size})
		}
		i += size
	}
	return tokens
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func scanNumber(s string, i int) int {
	for i < len(s) && isDigit(rune(s[i])) {
		i++
	}
	if i+1 < len(s) && s[i] == '.' && isDigit(rune(s[i+1])) {
		i++
		for i < len(s) && isDigit(rune(s[i])) {
			i++
		}
	}
	return i
}
