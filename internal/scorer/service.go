package scorer

import (
	"context"
	"encoding/json"
	"strings"

	"go.uber.org/zap"

	"github.com/sodam-labs/sodam/internal/feature"
	"github.com/sodam-labs/sodam/internal/model"
)

// Method names the scoring path that produced a Result.
type Method string

const (
	MethodProfile  Method = "profile"
	MethodFallback Method = "fallback"
)

// Result is either a profile or a fallback score. It encodes as
// {"score", "breakdown"} with the breakdown shape of whichever path ran.
type Result struct {
	Method   Method
	Category string
	Profile  *ProfileResult
	Fallback *FallbackResult
}

// Score returns the final score of whichever path ran.
func (r Result) Score() float64 {
	if r.Profile != nil {
		return r.Profile.Score
	}
	if r.Fallback != nil {
		return r.Fallback.Score
	}
	return 0
}

func (r Result) MarshalJSON() ([]byte, error) {
	if r.Profile != nil {
		return json.Marshal(r.Profile)
	}
	if r.Fallback != nil {
		return json.Marshal(r.Fallback)
	}
	return []byte(`{"score":0,"breakdown":{}}`), nil
}

// ItemResult is a batch item's attributes with its score merged in.
type ItemResult struct {
	Attrs  map[string]any
	Result Result
}

func (ir ItemResult) MarshalJSON() ([]byte, error) {
	scored, err := json.Marshal(ir.Result)
	if err != nil {
		return nil, err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(scored, &fields); err != nil {
		return nil, err
	}

	out := make(map[string]any, len(ir.Attrs)+len(fields))
	for k, v := range ir.Attrs {
		out[k] = v
	}
	for k, v := range fields {
		out[k] = v
	}
	return json.Marshal(out)
}

// Service applies the category-aware engine and falls back to the linear
// scorer whenever no category is given or the engine fails. It never
// returns an error.
type Service struct {
	engine *Engine
}

// NewService wraps engine.
func NewService(engine *Engine) *Service {
	return &Service{engine: engine}
}

// Score scores a single feature set.
func (s *Service) Score(_ context.Context, category string, features feature.Set) Result {
	if features == nil {
		features = feature.Set{}
	}
	if strings.TrimSpace(category) == "" {
		return fallbackResult(features)
	}

	res, err := s.engine.Score(features, category)
	if err != nil {
		zap.L().Warn("scorer: profile scoring failed, using fallback",
			zap.String("category", category),
			zap.Error(err),
		)
		return fallbackResult(features)
	}
	return Result{Method: MethodProfile, Category: res.Category, Profile: res}
}

// ScoreBatch scores items against one category, or with the fallback scorer
// item by item when the category is empty or unusable. Output order matches
// input order. It returns nil when ctx is done before profile scoring
// finishes.
func (s *Service) ScoreBatch(ctx context.Context, category string, items []model.Item) []ItemResult {
	out := make([]ItemResult, len(items))

	if strings.TrimSpace(category) != "" {
		results, err := s.engine.ScoreBatch(ctx, items, category)
		if err == nil {
			for i, it := range items {
				res := results[i]
				out[i] = ItemResult{Attrs: it.Attrs, Result: Result{Method: MethodProfile, Category: res.Category, Profile: &res}}
			}
			return out
		}
		if ctx.Err() != nil {
			zap.L().Debug("scorer: batch abandoned", zap.Error(ctx.Err()))
			return nil
		}
		zap.L().Warn("scorer: profile batch failed, using fallback",
			zap.String("category", category),
			zap.Int("items", len(items)),
			zap.Error(err),
		)
	}

	for i, it := range items {
		out[i] = ItemResult{Attrs: it.Attrs, Result: fallbackResult(it.Features)}
	}
	return out
}

func fallbackResult(features feature.Set) Result {
	fb := Fallback(features)
	return Result{Method: MethodFallback, Fallback: &fb}
}
