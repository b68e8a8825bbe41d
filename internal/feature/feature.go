// Package feature normalizes neighborhood feature sets onto a 0-100 scale.
//
// Values may arrive as 0-1 ratios or 0-100 percentages. A bare value in
// [0, 1] is always read as a ratio, so a raw percentage of exactly 1 is
// indistinguishable from a ratio of 1.0 and is scored as 100.
package feature

import (
	"math"

	"github.com/spf13/cast"
)

// Recognized feature keys.
const (
	FootTraffic      = "foot_traffic"
	Competitors500m  = "competitors_500m"
	RentCost         = "rent_cost"
	AccessScore      = "access_score"
	Accessibility    = "accessibility"
	AvgIncome        = "avg_income"
	AverageIncome    = "average_income"
	IncomePercentile = "income_percentile"
	AvgIncomePct     = "avg_income_percentile"
	IncomePct        = "income_pct"
	IncomeMin        = "income_min"
	IncomeMax        = "income_max"
	MaleRatio        = "male_ratio"
	FemaleRatio      = "female_ratio"
	Age20sRatio      = "age_20s_ratio"
	Age30sRatio      = "age_30s_ratio"
	Age40sRatio      = "age_40s_ratio"
	Age50sRatio      = "age_50s_ratio"
	Age60sRatio      = "age_60s_ratio"
)

// PercentileKeys are the explicit income percentile aliases, in priority order.
var PercentileKeys = []string{IncomePercentile, AvgIncomePct, IncomePct}

// Set maps feature names to raw values as decoded from JSON, CSV or XLSX.
// Unknown keys are ignored by the normalizer.
type Set map[string]any

// Has reports whether key is present, even with a null value.
func (s Set) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Value returns the numeric value of key. ok is false when the key is absent
// or null; values that cannot be read as a finite number yield 0.
func (s Set) Value(key string) (v float64, ok bool) {
	raw, present := s[key]
	if !present || raw == nil {
		return 0, false
	}
	return Number(raw), true
}

// Float returns the numeric value of key, or 0.
func (s Set) Float(key string) float64 {
	v, _ := s.Value(key)
	return v
}

// Income returns avg_income, falling back to average_income. A present but
// non-numeric value reads as 0.
func (s Set) Income() (float64, bool) {
	raw, ok := s.incomeRaw()
	if !ok {
		return 0, false
	}
	return Number(raw), true
}

// StrictIncome is Income without the lenient coercion: ok is false unless the
// value parses as a finite number.
func (s Set) StrictIncome() (float64, bool) {
	raw, ok := s.incomeRaw()
	if !ok {
		return 0, false
	}
	return Parse(raw)
}

func (s Set) incomeRaw() (any, bool) {
	raw, ok := s[AvgIncome]
	if !ok {
		raw = s[AverageIncome]
	}
	return raw, raw != nil
}

// HasExplicitPercentile reports whether any percentile alias is present.
func (s Set) HasExplicitPercentile() bool {
	for _, k := range PercentileKeys {
		if s.Has(k) {
			return true
		}
	}
	return false
}

// Clone returns a shallow copy of s.
func (s Set) Clone() Set {
	out := make(Set, len(s)+1)
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Parse reads v as a finite float64.
func Parse(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}
	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Number coerces v to a finite float64; anything else becomes 0.
func Number(v any) float64 {
	f, _ := Parse(v)
	return f
}

// ToPercent scales a value in [0, 1] by 100 and leaves anything else as is.
func ToPercent(v float64) float64 {
	if v >= 0 && v <= 1 {
		return v * 100
	}
	return v
}

// Clip clamps v to [0, 100]; NaN becomes 0.
func Clip(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(100, v))
}
