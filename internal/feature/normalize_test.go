package feature

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseScore(t *testing.T) {
	tests := []struct {
		name string
		set  Set
		want float64
	}{
		{"empty", Set{}, 0},
		{"only unknown keys", Set{"parking": 0.9}, 0},
		{"foot traffic ratio", Set{"foot_traffic": 0.9}, 90},
		{"foot traffic percent", Set{"foot_traffic": 64}, 64},
		{"inverted competitors and rent", Set{"competitors_500m": 0.3, "rent_cost": 80}, (70 + 20) / 2.0},
		{"all four", Set{"foot_traffic": 0.9, "competitors_500m": 0.3, "rent_cost": 0.5, "access_score": 0.8}, 72.5},
		{"accessibility alias", Set{"accessibility": 0.6}, 60},
		{"access_score wins over alias", Set{"access_score": 0.2, "accessibility": 0.9}, 20},
		{"null counts as zero", Set{"competitors_500m": nil}, 100},
		{"out of range clamps", Set{"foot_traffic": 180, "rent_cost": -20}, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, BaseScore(tt.set), 1e-9)
		})
	}
}

func TestIncomePercentileOf(t *testing.T) {
	tests := []struct {
		name string
		set  Set
		want float64
	}{
		{"no information", Set{}, 50},
		{"explicit percentile", Set{"income_percentile": 82}, 82},
		{"explicit percentile not rescaled", Set{"income_percentile": 0.7}, 0.7},
		{"explicit percentile clamps", Set{"income_pct": 130}, 100},
		{"alias avg_income_percentile", Set{"avg_income_percentile": 33, "avg_income": 90}, 33},
		{"explicit beats min-max", Set{"income_pct": 10, "avg_income": 5000, "income_min": 0, "income_max": 10000}, 10},
		{"min-max", Set{"avg_income": 4000, "income_min": 2000, "income_max": 6000}, 50},
		{"min-max clamps", Set{"avg_income": 9000, "income_min": 2000, "income_max": 6000}, 100},
		{"min-max degenerate falls through", Set{"avg_income": 0.4, "income_min": 5, "income_max": 5}, 40},
		{"income as ratio", Set{"avg_income": 0.62}, 62},
		{"income as percent", Set{"average_income": 70}, 70},
		{"absolute income out of range", Set{"avg_income": 3500000}, 50},
		{"negative income", Set{"avg_income": -3}, 50},
		{"null income", Set{"avg_income": nil}, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, IncomePercentileOf(tt.set), 1e-9)
		})
	}
}

func TestDemographicsOf(t *testing.T) {
	tests := []struct {
		name string
		set  Set
		want Demographics
	}{
		{"defaults", Set{}, Demographics{Male: 50, Female: 50}},
		{"male only", Set{"male_ratio": 0.3}, Demographics{Male: 30, Female: 70}},
		{"female only", Set{"female_ratio": 62}, Demographics{Male: 38, Female: 62}},
		{"both given as is", Set{"male_ratio": 0.4, "female_ratio": 0.4}, Demographics{Male: 40, Female: 40}},
		{"null male derives", Set{"male_ratio": nil, "female_ratio": 0.25}, Demographics{Male: 75, Female: 25}},
		{
			"age aggregates",
			Set{"age_20s_ratio": 0.7, "age_30s_ratio": 0.1, "age_40s_ratio": 12, "age_50s_ratio": 8, "age_60s_ratio": 5},
			Demographics{Male: 50, Female: 50, Age2030: 80, Age4060: 25},
		},
		{
			"age sum clamps",
			Set{"age_20s_ratio": 0.8, "age_30s_ratio": 0.6},
			Demographics{Male: 50, Female: 50, Age2030: 100},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DemographicsOf(tt.set)
			assert.InDelta(t, tt.want.Male, got.Male, 1e-9)
			assert.InDelta(t, tt.want.Female, got.Female, 1e-9)
			assert.InDelta(t, tt.want.Age2030, got.Age2030, 1e-9)
			assert.InDelta(t, tt.want.Age4060, got.Age4060, 1e-9)
		})
	}
}

func TestNormalizeStaysInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	keys := []string{
		FootTraffic, Competitors500m, RentCost, AccessScore, AvgIncome, IncomeMin, IncomeMax,
		MaleRatio, FemaleRatio, Age20sRatio, Age30sRatio, Age40sRatio, Age50sRatio, Age60sRatio,
	}
	for i := 0; i < 500; i++ {
		s := Set{}
		for _, k := range keys {
			if rng.Intn(3) == 0 {
				continue
			}
			s[k] = rng.Float64()*400 - 150
		}
		n := Normalize(s)
		for _, v := range []float64{n.Base, n.IncomePercentile, n.Demographics.Male, n.Demographics.Female, n.Demographics.Age2030, n.Demographics.Age4060} {
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 100.0)
		}
	}
}
