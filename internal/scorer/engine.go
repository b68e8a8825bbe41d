// Package scorer turns location feature sets into 0-100 suitability scores.
package scorer

import (
	"strconv"

	"github.com/rotisserie/eris"

	"github.com/sodam-labs/sodam/internal/feature"
	"github.com/sodam-labs/sodam/internal/profile"
)

// ProfileBreakdown holds the four clamped sub-scores and the weights used.
type ProfileBreakdown struct {
	Base    float64         `json:"base"`
	Income  float64         `json:"income"`
	Age     float64         `json:"age"`
	Gender  float64         `json:"gender"`
	Weights profile.Weights `json:"weights"`
}

// ProfileResult is a category-aware score.
type ProfileResult struct {
	Category  string           `json:"-"`
	Score     float64          `json:"score"`
	Breakdown ProfileBreakdown `json:"breakdown"`
}

// Engine scores feature sets against the profile catalog. It holds no
// mutable state and is safe for concurrent use.
type Engine struct {
	concurrency int
}

// NewEngine returns an Engine whose batch scoring runs at most concurrency
// items at once. Values below 1 mean one at a time.
func NewEngine(concurrency int) *Engine {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Engine{concurrency: concurrency}
}

// Score computes the category-aware score of one feature set. The only
// error is profile.ErrUnknownCategory.
func (e *Engine) Score(features feature.Set, category string) (*ProfileResult, error) {
	p, err := profile.Lookup(category)
	if err != nil {
		return nil, eris.Wrap(err, "scorer: score")
	}
	res := scoreProfile(p, feature.Normalize(features))
	return &res, nil
}

func scoreProfile(p profile.Profile, n feature.Normalized) ProfileResult {
	d := n.Demographics

	base := feature.Clip(n.Base)
	income := feature.Clip(p.Income.Eval(n.IncomePercentile))
	age := feature.Clip(p.Age.Eval(p.AgeBinding.Select(d)))
	gender := feature.Clip(p.Gender.Eval(d.Male, d.Female))

	w := p.Weights
	final := w.Base*base + w.Income*income + w.Age*age + w.Gender*gender

	return ProfileResult{
		Category: p.Name,
		Score:    round(final, 1),
		Breakdown: ProfileBreakdown{
			Base:    round(base, 1),
			Income:  round(income, 1),
			Age:     round(age, 1),
			Gender:  round(gender, 1),
			Weights: w,
		},
	}
}

// round rounds the exact binary value of v to the given number of decimals.
// Only exact ties go to even, so 2.675 (stored just below) becomes 2.67.
func round(v float64, decimals int) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', decimals, 64), 64)
	if err != nil {
		return v
	}
	return r
}
