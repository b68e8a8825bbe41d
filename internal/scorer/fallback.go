package scorer

import (
	"math"

	"github.com/sodam-labs/sodam/internal/feature"
)

// FallbackTerm is one feature's contribution to a fallback score.
type FallbackTerm struct {
	Value   float64 `json:"value"`
	Weight  float64 `json:"weight"`
	Contrib float64 `json:"contrib"`
}

// FallbackResult is a category-agnostic score.
type FallbackResult struct {
	Score     float64                 `json:"score"`
	Breakdown map[string]FallbackTerm `json:"breakdown"`
}

// fallbackWeights is the fixed linear weight table. Values are used raw,
// without percent scaling.
var fallbackWeights = map[string]float64{
	feature.FootTraffic:     0.35,
	feature.Competitors500m: -0.25,
	feature.AvgIncome:       0.20,
	feature.RentCost:        -0.10,
	feature.Age20sRatio:     0.10,
}

// FallbackWeights returns a copy of the fallback weight table.
func FallbackWeights() map[string]float64 {
	out := make(map[string]float64, len(fallbackWeights))
	for k, v := range fallbackWeights {
		out[k] = v
	}
	return out
}

// Fallback scores features with the fixed linear table, mapping the weighted
// sum through (sum+1)*50 and clamping to [0, 100]. Missing or non-numeric
// features count as 0.
func Fallback(features feature.Set) FallbackResult {
	breakdown := make(map[string]FallbackTerm, len(fallbackWeights))
	var total float64
	for k, w := range fallbackWeights {
		x := feature.Number(features[k])
		contrib := x * w
		breakdown[k] = FallbackTerm{Value: x, Weight: w, Contrib: contrib}
		total += contrib
	}

	normalized := math.Max(0, math.Min(100, (total+1)*50))
	return FallbackResult{Score: round(normalized, 2), Breakdown: breakdown}
}
