package ingredient

import (
	"strings"
	"unicode"

	"recipe-scaler/internal/core/units"
	"recipe-scaler/internal/pkg/common"
)

// 信心分數
const (
	ConfidenceFull         = 1.0  // 數量 + 單位 + 名稱
	ConfidenceCount        = 0.75 // 數量 + 名稱（計數型，例如 "2 eggs"）
	ConfidenceQuantityUnit = 0.5  // 數量 + 單位，無名稱
	ConfidenceQuantityOnly = 0.4
	ConfidenceNameOnly     = 0.3 // 只有名稱（例如 "salt to taste"）
	ConfidenceNone         = 0.0
)

// noteMarkers 逗號後屬於備註而非處理方式的子句
var noteMarkers = []string{
	"optional",
	"to taste",
	"for garnish",
	"for serving",
	"for decoration",
	"divided",
	"or more",
	"as needed",
}

// trailingNotes 名稱結尾可拆成備註的片語
var trailingNotes = []string{"to taste", "as needed", "optional"}

// Parser 食材文字解析器
type Parser struct {
	registry *units.Registry
	newID    func() string
}

// Option 解析器選項
type Option func(*Parser)

// WithIDGenerator 自訂 ID 產生器
func WithIDGenerator(fn func() string) Option {
	return func(p *Parser) {
		if fn != nil {
			p.newID = fn
		}
	}
}

// NewParser 建立解析器
func NewParser(registry *units.Registry, opts ...Option) *Parser {
	p := &Parser{
		registry: registry,
		newID:    common.GenerateUUID,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewID 產生新的食材 ID
func (p *Parser) NewID() string {
	return p.newID()
}

// Parse 解析單行食材文字，永遠返回結果
func (p *Parser) Parse(line string) ParsedIngredient {
	trimmed := strings.TrimSpace(line)
	out := ParsedIngredient{
		ID:              p.newID(),
		OriginalText:    line,
		Ingredient:      trimmed,
		ParseConfidence: ConfidenceNone,
	}
	if trimmed == "" {
		return out
	}

	rest := trimmed
	hasQuantity := false
	if m, ok := parseQuantityAt(trimmed, lex(trimmed), 0); ok && m.start == 0 {
		q := m.quantity
		out.Quantity = &q
		rest = trimmed[m.end:]
		hasQuantity = true
	}

	rest, notes := extractParenthetical(rest)

	hasUnit := false
	if hasQuantity {
		if def, remainder, ok := p.matchUnit(rest); ok {
			out.Unit = def.Name
			rest = remainder
			hasUnit = true
		}
	}

	name, preparation, clauseNotes := splitClauses(rest)
	notes = append(notes, clauseNotes...)

	out.Preparation = preparation
	out.Notes = strings.Join(notes, "; ")

	hasName := name != "" && strings.IndexFunc(name, unicode.IsLetter) >= 0
	switch {
	case hasName && hasQuantity && hasUnit:
		out.Ingredient = name
		out.ParseConfidence = ConfidenceFull
	case hasName && hasQuantity:
		out.Ingredient = name
		out.ParseConfidence = ConfidenceCount
	case hasName:
		out.Ingredient = name
		out.ParseConfidence = ConfidenceNameOnly
	case hasQuantity && hasUnit:
		out.Ingredient = name
		out.ParseConfidence = ConfidenceQuantityUnit
	case hasQuantity:
		out.Ingredient = name
		out.ParseConfidence = ConfidenceQuantityOnly
	default:
		// 無法拆出任何結構
		out.Ingredient = trimmed
		out.Preparation = ""
		out.Notes = ""
	}

	return out
}

// ParseAll 依序解析多行
func (p *Parser) ParseAll(lines []string) []ParsedIngredient {
	out := make([]ParsedIngredient, len(lines))
	for i, line := range lines {
		out[i] = p.Parse(line)
	}
	return out
}

// ParseServings 解析份量文字，例如 "Serves 4"、"4-6 servings"
func (p *Parser) ParseServings(text string) Servings {
	out := Servings{Unit: "servings", OriginalText: text}
	trimmed := strings.TrimSpace(text)
	toks := lex(trimmed)

	for i, t := range toks {
		if t.kind != tokNumber && t.kind != tokGlyph {
			continue
		}
		m, ok := parseQuantityAt(trimmed, toks, i)
		if !ok {
			continue
		}
		out.Amount = m.quantity.Value
		if j := skipSpace(toks, m.next); is(toks, j, tokWord) {
			out.Unit = strings.ToLower(toks[j].text)
		}
		break
	}
	return out
}

type field struct {
	text  string
	start int
	end   int
}

func fields(s string) []field {
	var out []field
	start := -1
	for i, r := range s {
		if unicode.IsSpace(r) {
			if start >= 0 {
				out = append(out, field{text: s[start:i], start: start, end: i})
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		out = append(out, field{text: s[start:], start: start, end: len(s)})
	}
	return out
}

// matchUnit 在數量之後尋找單位：先試兩個字（"fl oz"），再試一個字
func (p *Parser) matchUnit(rest string) (units.Definition, string, bool) {
	words := fields(rest)
	for size := 2; size >= 1; size-- {
		if len(words) < size {
			continue
		}
		last := words[size-1]
		candidate := strings.TrimRight(last.text, ",;:")
		if candidate == "" {
			continue
		}
		end := last.start + len(candidate)
		token := rest[words[0].start:end]
		if size == 2 {
			token = words[0].text + " " + candidate
		}
		if def, ok := p.registry.Lookup(token); ok {
			return def, rest[end:], true
		}
	}
	return units.Definition{}, rest, false
}

// extractParenthetical 取出括號內文字作為備註
func extractParenthetical(s string) (string, []string) {
	var notes []string
	var b strings.Builder
	depth := 0
	noteStart := 0

	for i, r := range s {
		switch {
		case r == '(':
			if depth == 0 {
				noteStart = i + 1
			}
			depth++
		case r == ')' && depth > 0:
			depth--
			if depth == 0 {
				if note := strings.TrimSpace(s[noteStart:i]); note != "" {
					notes = append(notes, note)
				}
				b.WriteByte(' ')
			}
		case depth == 0:
			b.WriteRune(r)
		}
	}

	// 未閉合的括號保留原文
	if depth > 0 {
		b.WriteString(s[noteStart-1:])
	}
	return b.String(), notes
}

// splitClauses 拆出名稱、處理方式與備註
func splitClauses(rest string) (name, preparation string, notes []string) {
	rest = collapseSpaces(rest)
	rest = strings.TrimLeft(rest, " ,.;:-–—")
	if lower := strings.ToLower(rest); strings.HasPrefix(lower, "of ") {
		rest = rest[3:]
	}

	name = rest
	if idx := strings.Index(rest, ","); idx >= 0 {
		name = rest[:idx]
		clause := strings.Trim(rest[idx+1:], " ,.;:")
		if clause != "" {
			if isNoteMarker(clause) {
				notes = append(notes, clause)
			} else {
				preparation = clause
			}
		}
	}

	name = trimName(name)
	for _, phrase := range trailingNotes {
		cut := len(name) - len(phrase)
		if cut > 0 && name[cut-1] == ' ' && strings.EqualFold(name[cut:], phrase) {
			notes = append([]string{name[cut:]}, notes...)
			name = trimName(name[:cut])
			break
		}
	}
	return name, preparation, notes
}

func isNoteMarker(clause string) bool {
	lower := strings.ToLower(clause)
	for _, marker := range noteMarkers {
		if lower == marker || strings.HasPrefix(lower, marker+" ") || strings.HasPrefix(lower, "or "+marker) {
			return true
		}
	}
	return false
}

func trimName(s string) string {
	return strings.Trim(s, " \t,.;:-–—*")
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
