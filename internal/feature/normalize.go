package feature

// NeutralPercentile is used when a feature set carries no income information.
const NeutralPercentile = 50.0

// Demographics summarizes gender split and age-band aggregates, all 0-100.
type Demographics struct {
	Male    float64 `json:"male"`
	Female  float64 `json:"female"`
	Age2030 float64 `json:"age_2030"`
	Age4060 float64 `json:"age_4060"`
}

// Normalized is the canonical view of a feature set consumed by the engine.
type Normalized struct {
	Base             float64      `json:"base"`
	IncomePercentile float64      `json:"income_percentile"`
	Demographics     Demographics `json:"demographics"`
}

// Normalize derives the base score, income percentile and demographics.
func Normalize(s Set) Normalized {
	return Normalized{
		Base:             BaseScore(s),
		IncomePercentile: IncomePercentileOf(s),
		Demographics:     DemographicsOf(s),
	}
}

// BaseScore averages foot traffic, inverted competitor density, inverted rent
// and accessibility over whichever of them are present. Absent fields are
// skipped; with none present the score is 0.
func BaseScore(s Set) float64 {
	var parts []float64
	pct := func(key string) float64 { return Clip(ToPercent(s.Float(key))) }

	if s.Has(FootTraffic) {
		parts = append(parts, pct(FootTraffic))
	}
	if s.Has(Competitors500m) {
		parts = append(parts, 100-pct(Competitors500m))
	}
	if s.Has(RentCost) {
		parts = append(parts, 100-pct(RentCost))
	}
	switch {
	case s.Has(AccessScore):
		parts = append(parts, pct(AccessScore))
	case s.Has(Accessibility):
		parts = append(parts, pct(Accessibility))
	}

	if len(parts) == 0 {
		return 0
	}
	var sum float64
	for _, p := range parts {
		sum += p
	}
	return sum / float64(len(parts))
}

// IncomePercentileOf resolves the income percentile (0-100). First match wins:
// an explicit percentile alias, then absolute income scaled by income_min and
// income_max, then absolute income read as a percentage, then 50.
func IncomePercentileOf(s Set) float64 {
	for _, k := range PercentileKeys {
		if s.Has(k) {
			return Clip(s.Float(k))
		}
	}

	income, hasIncome := s.Income()
	minV, hasMin := s.Value(IncomeMin)
	maxV, hasMax := s.Value(IncomeMax)
	if hasIncome && hasMin && hasMax && maxV > minV {
		return Clip((income - minV) / (maxV - minV) * 100)
	}

	if hasIncome {
		if v := ToPercent(income); v >= 0 && v <= 100 {
			return Clip(v)
		}
	}
	return NeutralPercentile
}

// DemographicsOf derives the gender split and the 20s+30s and 40s-60s
// aggregates. A missing gender side is 100 minus the other; both missing is
// an even split.
func DemographicsOf(s Set) Demographics {
	male, hasMale := s.Value(MaleRatio)
	female, hasFemale := s.Value(FemaleRatio)
	male, female = Clip(ToPercent(male)), Clip(ToPercent(female))

	switch {
	case !hasMale && !hasFemale:
		male, female = 50, 50
	case !hasMale:
		male = Clip(100 - female)
	case !hasFemale:
		female = Clip(100 - male)
	}

	age := func(key string) float64 { return Clip(ToPercent(s.Float(key))) }
	return Demographics{
		Male:    male,
		Female:  female,
		Age2030: Clip(age(Age20sRatio) + age(Age30sRatio)),
		Age4060: Clip(age(Age40sRatio) + age(Age50sRatio) + age(Age60sRatio)),
	}
}
