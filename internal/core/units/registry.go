package units

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// Category 計量類別
type Category string

const (
	CategoryVolume      Category = "volume"
	CategoryWeight      Category = "weight"
	CategoryCount       Category = "count"
	CategoryTemperature Category = "temperature"
)

// Definition 單位定義
type Definition struct {
	Name     string   `json:"name"`               // 標準名稱
	Plural   string   `json:"plural"`             // 複數顯示
	Aliases  []string `json:"aliases"`            // 別名與縮寫
	Category Category `json:"category"`           // 計量類別
	Factor   float64  `json:"factor"`             // 對基準單位的換算係數（ml / g）
	Informal bool     `json:"informal,omitempty"` // 非正式單位（pinch、dash、stick）
}

// PluralName 返回複數名稱
func (d Definition) PluralName() string {
	if d.Plural != "" {
		return d.Plural
	}
	return d.Name + "s"
}

// Registry 單位表，建立後唯讀
type Registry struct {
	defs   []Definition
	byName map[string]int
	exact  map[string]int
	folded map[string]int
}

// NewRegistry 建立單位表並驗證
func NewRegistry(defs []Definition) (*Registry, error) {
	r := &Registry{
		defs:   make([]Definition, 0, len(defs)),
		byName: make(map[string]int, len(defs)),
		exact:  make(map[string]int),
		folded: make(map[string]int),
	}

	ambiguous := make(map[string]bool)
	for _, def := range defs {
		if def.Name == "" {
			return nil, fmt.Errorf("unit definition without name")
		}
		if def.Factor <= 0 {
			return nil, fmt.Errorf("unit %q: conversion factor must be > 0", def.Name)
		}
		if _, exists := r.byName[def.Name]; exists {
			return nil, fmt.Errorf("duplicate unit %q", def.Name)
		}

		idx := len(r.defs)
		r.defs = append(r.defs, def)
		r.byName[def.Name] = idx

		tokens := append([]string{def.Name, def.PluralName()}, def.Aliases...)
		for _, token := range tokens {
			if prev, exists := r.exact[token]; exists {
				if prev == idx {
					continue
				}
				return nil, fmt.Errorf("alias %q maps to both %q and %q", token, r.defs[prev].Name, def.Name)
			}
			r.exact[token] = idx

			key := fold(token)
			if prev, exists := r.folded[key]; exists && prev != idx {
				ambiguous[key] = true
				continue
			}
			r.folded[key] = idx
		}
	}

	// 大小寫折疊後衝突的鍵只允許精確比對
	for key := range ambiguous {
		delete(r.folded, key)
	}

	return r, nil
}

// MustNewRegistry 建立單位表，失敗時 panic
func MustNewRegistry(defs []Definition) *Registry {
	r, err := NewRegistry(defs)
	if err != nil {
		panic(err)
	}
	return r
}

// NewDefaultRegistry 以預設單位表建立
func NewDefaultRegistry() *Registry {
	return MustNewRegistry(DefaultDefinitions())
}

// Lookup 依文字查找單位：先精確比對，再忽略大小寫
func (r *Registry) Lookup(token string) (Definition, bool) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Definition{}, false
	}

	candidates := []string{token}
	if trimmed := strings.TrimRight(token, "."); trimmed != token && trimmed != "" {
		candidates = append(candidates, trimmed)
	}

	for _, c := range candidates {
		if idx, ok := r.exact[c]; ok {
			return r.defs[idx], true
		}
	}
	for _, c := range candidates {
		if idx, ok := r.folded[fold(c)]; ok {
			return r.defs[idx], true
		}
	}
	return Definition{}, false
}

// Get 依標準名稱取得單位
func (r *Registry) Get(name string) (Definition, bool) {
	idx, ok := r.byName[name]
	if !ok {
		return Definition{}, false
	}
	return r.defs[idx], true
}

// Resolve 先以標準名稱查找，找不到再當作別名
func (r *Registry) Resolve(unit string) (Definition, bool) {
	if def, ok := r.Get(unit); ok {
		return def, true
	}
	return r.Lookup(unit)
}

// Convert 同類別單位換算
func (r *Registry) Convert(value float64, fromUnit, toUnit string) (float64, bool) {
	from, ok := r.Resolve(fromUnit)
	if !ok {
		return 0, false
	}
	to, ok := r.Resolve(toUnit)
	if !ok {
		return 0, false
	}
	if from.Category != to.Category {
		return 0, false
	}
	// 計數與溫度沒有共同基準
	if from.Category == CategoryCount || from.Category == CategoryTemperature {
		if from.Name != to.Name {
			return 0, false
		}
		return value, true
	}
	return value * from.Factor / to.Factor, true
}

// Units 返回單位表副本
func (r *Registry) Units() []Definition {
	out := make([]Definition, len(r.defs))
	copy(out, r.defs)
	return out
}

func fold(s string) string {
	// cases.Caser 不可跨 goroutine 共用
	return cases.Fold().String(s)
}
