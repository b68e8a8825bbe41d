// Package profile holds the fixed catalog of business category profiles.
package profile

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/rotisserie/eris"
	"golang.org/x/text/unicode/norm"

	"github.com/sodam-labs/sodam/internal/curve"
	"github.com/sodam-labs/sodam/internal/feature"
)

// ErrUnknownCategory is returned by Lookup for names not in the catalog.
var ErrUnknownCategory = eris.New("profile: unknown category")

// AgeBinding selects which age aggregate a profile's age curve reads.
type AgeBinding string

const (
	TwentiesThirties AgeBinding = "20s_30s"
	FortiesPlus      AgeBinding = "40s_60s"
)

// Select returns the aggregate this binding refers to.
func (b AgeBinding) Select(d feature.Demographics) float64 {
	if b == FortiesPlus {
		return d.Age4060
	}
	return d.Age2030
}

// GenderPref maps the male/female split onto a 0-100 score.
type GenderPref string

const (
	PreferFemale GenderPref = "female"
	PreferMale   GenderPref = "male"
	// Balanced peaks at an even split and reaches 0 at a fully one-sided split.
	Balanced GenderPref = "balanced"
)

// Eval scores a male/female split given in percent.
func (g GenderPref) Eval(male, female float64) float64 {
	switch g {
	case PreferFemale:
		return female
	case PreferMale:
		return male
	case Balanced:
		return feature.Clip(100 - math.Abs(male-50)*2)
	default:
		return 0
	}
}

// Weights are the four sub-score weights of a profile.
type Weights struct {
	Base   float64 `json:"base" yaml:"base"`
	Income float64 `json:"income" yaml:"income"`
	Age    float64 `json:"age" yaml:"age"`
	Gender float64 `json:"gender" yaml:"gender"`
}

// Sum returns the total of the four weights.
func (w Weights) Sum() float64 { return w.Base + w.Income + w.Age + w.Gender }

// Profile is one business category's weighting and curve configuration.
type Profile struct {
	Name       string      `json:"name" yaml:"name"`
	Weights    Weights     `json:"weights" yaml:"weights"`
	Income     curve.Curve `json:"income_curve" yaml:"income_curve"`
	Age        curve.Curve `json:"age_curve" yaml:"age_curve"`
	AgeBinding AgeBinding  `json:"age_binding" yaml:"age_binding"`
	Gender     GenderPref  `json:"gender" yaml:"gender"`
}

var (
	byName map[string]Profile
	names  []string
)

func init() {
	byName = make(map[string]Profile, len(catalog))
	names = make([]string, 0, len(catalog))
	for _, p := range catalog {
		key := canonical(p.Name)
		if _, dup := byName[key]; dup {
			panic(fmt.Sprintf("profile: duplicate category %q", p.Name))
		}
		byName[key] = p
		names = append(names, p.Name)
	}
}

// canonical trims and NFC-normalizes a category name so decomposed Hangul
// from some clients matches the catalog.
func canonical(name string) string {
	return norm.NFC.String(strings.TrimSpace(name))
}

// Lookup returns the profile registered under name.
func Lookup(name string) (Profile, error) {
	p, ok := byName[canonical(name)]
	if !ok {
		return Profile{}, eris.Wrapf(ErrUnknownCategory, "lookup %q", name)
	}
	return p, nil
}

// Names returns category names in catalog order.
func Names() []string {
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// All returns a copy of every profile in catalog order.
func All() []Profile {
	out := make([]Profile, len(catalog))
	copy(out, catalog)
	return out
}

// Len returns the number of registered categories.
func Len() int { return len(catalog) }

// Validate checks that every profile's weights are non-negative and sum to at
// most 1, which keeps weighted scores within [0, 100].
func Validate() error {
	var errs []string
	for _, p := range catalog {
		w := p.Weights
		if w.Base < 0 || w.Income < 0 || w.Age < 0 || w.Gender < 0 {
			errs = append(errs, fmt.Sprintf("%s: negative weight", p.Name))
		}
		if w.Sum() > 1+1e-9 {
			errs = append(errs, fmt.Sprintf("%s: weights sum to %.3f", p.Name, w.Sum()))
		}
		if p.AgeBinding != TwentiesThirties && p.AgeBinding != FortiesPlus {
			errs = append(errs, fmt.Sprintf("%s: bad age binding %q", p.Name, p.AgeBinding))
		}
	}
	if len(errs) > 0 {
		sort.Strings(errs)
		return eris.Errorf("profile: catalog validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
