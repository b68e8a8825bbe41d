package feature

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToPercent(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{0.35, 35},
		{1, 100}, // ambiguous: a raw 1% reads as a ratio
		{1.5, 1.5},
		{70, 70},
		{-0.2, -0.2},
		{250, 250},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, ToPercent(tt.in), 1e-9, "in=%v", tt.in)
	}
}

func TestClip(t *testing.T) {
	assert.Equal(t, 0.0, Clip(-5))
	assert.Equal(t, 100.0, Clip(140))
	assert.Equal(t, 42.0, Clip(42))
	assert.Equal(t, 0.0, Clip(math.NaN()))
}

func TestNumber(t *testing.T) {
	assert.Equal(t, 0.5, Number(0.5))
	assert.Equal(t, 3.0, Number(3))
	assert.Equal(t, 0.25, Number("0.25"))
	assert.Equal(t, 12.0, Number(json.Number("12")))
	assert.Equal(t, 0.0, Number("not a number"))
	assert.Equal(t, 0.0, Number(nil))
	assert.Equal(t, 0.0, Number([]int{1}))
	assert.Equal(t, 0.0, Number(math.NaN()))
	assert.Equal(t, 0.0, Number(math.Inf(1)))
}

func TestSetValue(t *testing.T) {
	s := Set{"a": 0.4, "b": nil, "c": "junk"}

	v, ok := s.Value("a")
	assert.True(t, ok)
	assert.Equal(t, 0.4, v)

	_, ok = s.Value("b")
	assert.False(t, ok, "null counts as absent")
	assert.True(t, s.Has("b"))

	v, ok = s.Value("c")
	assert.True(t, ok)
	assert.Equal(t, 0.0, v)

	_, ok = s.Value("missing")
	assert.False(t, ok)
}

func TestSetIncomeAlias(t *testing.T) {
	v, ok := Set{"average_income": 40.0}.Income()
	require.True(t, ok)
	assert.Equal(t, 40.0, v)

	v, ok = Set{"avg_income": 55.0, "average_income": 40.0}.Income()
	require.True(t, ok)
	assert.Equal(t, 55.0, v)

	_, ok = Set{"avg_income": nil, "average_income": 40.0}.Income()
	assert.False(t, ok, "explicit null avg_income shadows the alias")
}

func TestSetClone(t *testing.T) {
	s := Set{"foot_traffic": 0.5}
	c := s.Clone()
	c["income_percentile"] = 10.0
	assert.False(t, s.Has("income_percentile"))
	assert.Equal(t, 0.5, c["foot_traffic"])
}

func TestSetStrictIncome(t *testing.T) {
	v, ok := Set{"avg_income": "48000"}.StrictIncome()
	require.True(t, ok)
	assert.Equal(t, 48000.0, v)

	_, ok = Set{"avg_income": "n/a"}.StrictIncome()
	assert.False(t, ok)

	v, ok = Set{"avg_income": "n/a"}.Income()
	assert.True(t, ok, "lenient read keeps the key")
	assert.Equal(t, 0.0, v)

	_, ok = Set{}.StrictIncome()
	assert.False(t, ok)
}
