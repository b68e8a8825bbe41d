package store

import (
	"github.com/sodam-labs/sodam/internal/feature"
	"github.com/sodam-labs/sodam/internal/model"
)

func ptr(v float64) *float64 { return &v }

// SampleAreas are the demo locations seeded into an empty database.
func SampleAreas() []model.Area {
	return []model.Area{
		{
			ID:   "A-101",
			Name: "강남역 11번 출구",
			Lat:  ptr(37.4979),
			Lon:  ptr(127.0276),
			Features: feature.Set{
				"foot_traffic": 0.9, "competitors_500m": 0.3, "avg_income": 0.8,
				"rent_cost": 0.6, "age_20s_ratio": 0.7,
			},
		},
		{
			ID:   "A-202",
			Name: "홍대입구역 2번 출구",
			Lat:  ptr(37.5572),
			Lon:  ptr(126.9245),
			Features: feature.Set{
				"foot_traffic": 0.85, "competitors_500m": 0.4, "avg_income": 0.7,
				"rent_cost": 0.5, "age_20s_ratio": 0.8,
			},
		},
		{
			ID:   "A-303",
			Name: "서면역 1번 출구",
			Lat:  ptr(35.1578),
			Lon:  ptr(129.0592),
			Features: feature.Set{
				"foot_traffic": 0.75, "competitors_500m": 0.35, "avg_income": 0.6,
				"rent_cost": 0.45, "age_20s_ratio": 0.65,
			},
		},
	}
}
