// Package store persists the sample areas served by the sample endpoint and
// the areas CLI. Scores are always computed on read and never stored.
package store

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"

	"github.com/sodam-labs/sodam/internal/feature"
	"github.com/sodam-labs/sodam/internal/model"
)

// ErrNotFound is returned when an area id does not exist.
var ErrNotFound = eris.New("store: area not found")

// AreaFilter pages through stored areas.
type AreaFilter struct {
	Limit  int `json:"limit,omitempty"`
	Offset int `json:"offset,omitempty"`
}

// Store defines the persistence interface for sample areas.
type Store interface {
	UpsertArea(ctx context.Context, area model.Area) (*model.Area, error)
	ImportAreas(ctx context.Context, areas []model.Area) (int, error)
	GetArea(ctx context.Context, id string) (*model.Area, error)
	ListAreas(ctx context.Context, filter AreaFilter) ([]model.Area, error)
	SeedSamples(ctx context.Context) (int, error)

	// Lifecycle
	Migrate(ctx context.Context) error
	Close() error
}

const defaultListLimit = 100

func limitOf(f AreaFilter) int {
	if f.Limit <= 0 {
		return defaultListLimit
	}
	return f.Limit
}

// prepareArea assigns an id when missing and encodes the feature set.
func prepareArea(a model.Area) (model.Area, []byte, error) {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if a.Features == nil {
		a.Features = feature.Set{}
	}
	featuresJSON, err := json.Marshal(a.Features)
	if err != nil {
		return a, nil, eris.Wrapf(err, "store: marshal features for area %s", a.ID)
	}
	return a, featuresJSON, nil
}

// latestByID drops repeated ids, keeping the last area for each id at the
// position where that id first appeared. Areas without an id are kept as-is.
func latestByID(areas []model.Area) []model.Area {
	out := make([]model.Area, 0, len(areas))
	pos := make(map[string]int, len(areas))
	for _, a := range areas {
		if a.ID == "" {
			out = append(out, a)
			continue
		}
		if i, ok := pos[a.ID]; ok {
			out[i] = a
			continue
		}
		pos[a.ID] = len(out)
		out = append(out, a)
	}
	return out
}

func decodeFeatures(raw []byte) (feature.Set, error) {
	fs := feature.Set{}
	if len(raw) == 0 {
		return fs, nil
	}
	if err := json.Unmarshal(raw, &fs); err != nil {
		return nil, eris.Wrap(err, "store: unmarshal features")
	}
	return fs, nil
}
