package scorer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sodam-labs/sodam/internal/feature"
)

func TestFallbackEmpty(t *testing.T) {
	res := Fallback(feature.Set{})
	assert.Equal(t, 50.0, res.Score)
	assert.Len(t, res.Breakdown, 5)
	for _, term := range res.Breakdown {
		assert.Zero(t, term.Value)
		assert.Zero(t, term.Contrib)
	}
}

func TestFallbackScores(t *testing.T) {
	tests := []struct {
		name     string
		features feature.Set
		want     float64
	}{
		{
			name: "typical ratios",
			features: feature.Set{
				"foot_traffic":     0.9,
				"competitors_500m": 0.3,
				"avg_income":       0.7,
				"rent_cost":        0.5,
				"age_20s_ratio":    0.7,
			},
			want: 70,
		},
		{name: "clamped high", features: feature.Set{"foot_traffic": 90}, want: 100},
		{name: "clamped low", features: feature.Set{"competitors_500m": 40}, want: 0},
		{name: "non-numeric ignored", features: feature.Set{"foot_traffic": "busy", "rent_cost": nil}, want: 50},
		{name: "string number", features: feature.Set{"foot_traffic": "0.2"}, want: 53.5},
		{name: "unknown keys ignored", features: feature.Set{"access_score": 1}, want: 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Fallback(tt.features).Score, 1e-9)
		})
	}
}

func TestFallbackBreakdown(t *testing.T) {
	res := Fallback(feature.Set{"foot_traffic": 0.4, "rent_cost": 0.8})

	ft := res.Breakdown["foot_traffic"]
	assert.InDelta(t, 0.4, ft.Value, 1e-9)
	assert.InDelta(t, 0.35, ft.Weight, 1e-9)
	assert.InDelta(t, 0.14, ft.Contrib, 1e-9)

	rc := res.Breakdown["rent_cost"]
	assert.InDelta(t, -0.10, rc.Weight, 1e-9)
	assert.InDelta(t, -0.08, rc.Contrib, 1e-9)

	// (0.14 - 0.08 + 1) * 50
	assert.InDelta(t, 53, res.Score, 1e-9)
}

func TestFallbackWeightsIsCopy(t *testing.T) {
	w := FallbackWeights()
	w["foot_traffic"] = 99
	assert.InDelta(t, 0.35, FallbackWeights()["foot_traffic"], 1e-9)
}
