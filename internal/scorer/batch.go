package scorer

import (
	"context"
	"math"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sodam-labs/sodam/internal/feature"
	"github.com/sodam-labs/sodam/internal/model"
	"github.com/sodam-labs/sodam/internal/profile"
)

// Cohort holds the absolute income range of one batch.
type Cohort struct {
	Min, Max float64
	Size     int
}

// NewCohort collects absolute incomes from items without an explicit income
// percentile.
func NewCohort(items []model.Item) Cohort {
	c := Cohort{Min: math.Inf(1), Max: math.Inf(-1)}
	for _, it := range items {
		if it.Features.HasExplicitPercentile() {
			continue
		}
		income, ok := it.Features.StrictIncome()
		if !ok {
			continue
		}
		c.Min = math.Min(c.Min, income)
		c.Max = math.Max(c.Max, income)
		c.Size++
	}
	return c
}

// Scaled reports whether the cohort spans a usable income range.
func (c Cohort) Scaled() bool { return c.Size > 0 && c.Max > c.Min }

// Percentile maps an absolute income onto the cohort's range. Without a
// usable range the income is read as a percentage, or 50 when out of range.
func (c Cohort) Percentile(income float64) float64 {
	if c.Scaled() {
		return feature.Clip((income - c.Min) / (c.Max - c.Min) * 100)
	}
	if v := feature.ToPercent(income); v >= 0 && v <= 100 {
		return feature.Clip(v)
	}
	return feature.NeutralPercentile
}

// Enrich returns a copy of each item's features with income_percentile
// injected from the cohort. Items carrying an explicit percentile or no
// income are copied unchanged. Inputs are never modified.
func Enrich(items []model.Item) []feature.Set {
	cohort := NewCohort(items)
	out := make([]feature.Set, len(items))
	for i, it := range items {
		fs := it.Features.Clone()
		if !fs.HasExplicitPercentile() {
			if income, ok := fs.StrictIncome(); ok {
				fs[feature.IncomePercentile] = cohort.Percentile(income)
			}
		}
		out[i] = fs
	}
	return out
}

// ScoreBatch scores items against one category with batch-relative income
// percentiles. Results are in input order.
func (e *Engine) ScoreBatch(ctx context.Context, items []model.Item, category string) ([]ProfileResult, error) {
	p, err := profile.Lookup(category)
	if err != nil {
		return nil, eris.Wrap(err, "scorer: score batch")
	}

	enriched := Enrich(items)
	results := make([]ProfileResult, len(items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)
	for i := range enriched {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = scoreProfile(p, feature.Normalize(enriched[i]))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, eris.Wrap(err, "scorer: score batch")
	}

	zap.L().Debug("scorer: batch scored",
		zap.String("category", p.Name),
		zap.Int("items", len(items)),
	)
	return results, nil
}
