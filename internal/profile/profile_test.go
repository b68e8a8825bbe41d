package profile

import (
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"github.com/sodam-labs/sodam/internal/curve"
	"github.com/sodam-labs/sodam/internal/feature"
)

func TestCatalogSize(t *testing.T) {
	assert.Equal(t, 50, Len())
	assert.Len(t, Names(), 50)
	assert.Len(t, All(), 50)
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate())
}

func TestLookup(t *testing.T) {
	p, err := Lookup("카페")
	require.NoError(t, err)
	assert.Equal(t, "카페", p.Name)
	assert.Equal(t, Weights{Base: 0.50, Income: 0.20, Age: 0.20, Gender: 0.10}, p.Weights)
	assert.Equal(t, curve.Up(55, 85), p.Income)
	assert.Equal(t, TwentiesThirties, p.AgeBinding)
	assert.Equal(t, PreferFemale, p.Gender)
}

func TestLookupCatalogEntries(t *testing.T) {
	tests := []struct {
		name    string
		income  curve.Curve
		binding AgeBinding
		gender  GenderPref
		weights Weights
	}{
		{"국밥집", curve.Down(30, 60), FortiesPlus, PreferMale, Weights{0.50, 0.25, 0.20, 0.05}},
		{"루프탑 술집", curve.Prefer(60, 90, 20), TwentiesThirties, Balanced, Weights{0.50, 0.20, 0.25, 0.05}},
		{"철물점", curve.Down(40, 70), FortiesPlus, PreferMale, Weights{0.60, 0.10, 0.20, 0.10}},
		{"어린이집", curve.Prefer(55, 85, 15), TwentiesThirties, PreferFemale, Weights{0.55, 0.25, 0.15, 0.05}},
		{"골프연습장", curve.Up(65, 95), FortiesPlus, PreferMale, Weights{0.55, 0.30, 0.10, 0.05}},
		{"전통찻집", curve.Up(55, 90), FortiesPlus, PreferFemale, Weights{0.50, 0.25, 0.15, 0.10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Lookup(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.income, p.Income)
			assert.Equal(t, tt.binding, p.AgeBinding)
			assert.Equal(t, tt.gender, p.Gender)
			assert.Equal(t, tt.weights, p.Weights)
		})
	}
}

func TestLookupNormalizesName(t *testing.T) {
	decomposed := norm.NFD.String("카페")
	require.NotEqual(t, "카페", decomposed)

	p, err := Lookup("  " + decomposed + " ")
	require.NoError(t, err)
	assert.Equal(t, "카페", p.Name)
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("우주정거장")
	require.Error(t, err)
	assert.True(t, eris.Is(err, ErrUnknownCategory))

	_, err = Lookup("")
	assert.True(t, eris.Is(err, ErrUnknownCategory))
}

func TestNamesIsACopy(t *testing.T) {
	n := Names()
	n[0] = "changed"
	assert.NotEqual(t, "changed", Names()[0])
}

func TestAgeBindingSelect(t *testing.T) {
	d := feature.Demographics{Age2030: 80, Age4060: 15}
	assert.Equal(t, 80.0, TwentiesThirties.Select(d))
	assert.Equal(t, 15.0, FortiesPlus.Select(d))
}

func TestGenderPrefEval(t *testing.T) {
	assert.Equal(t, 70.0, PreferFemale.Eval(30, 70))
	assert.Equal(t, 30.0, PreferMale.Eval(30, 70))
	assert.Equal(t, 100.0, Balanced.Eval(50, 50))
	assert.InDelta(t, 60.0, Balanced.Eval(30, 70), 1e-9)
	assert.Equal(t, 0.0, Balanced.Eval(100, 0))
	assert.Equal(t, 0.0, GenderPref("other").Eval(40, 60))
}

func TestMarshalCatalogYAML(t *testing.T) {
	out, err := MarshalCatalogYAML()
	require.NoError(t, err)

	var doc struct {
		Profiles []Profile `yaml:"profiles"`
	}
	require.NoError(t, yaml.Unmarshal(out, &doc))
	require.Len(t, doc.Profiles, 50)
	assert.Equal(t, All()[0], doc.Profiles[0])
	assert.Contains(t, string(out), "ramp_up")
}
