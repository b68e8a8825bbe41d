package model

import (
	"bytes"
	"encoding/json"

	"github.com/rotisserie/eris"

	"github.com/sodam-labs/sodam/internal/feature"
)

// FeaturesKey is the JSON key holding an item's feature set.
const FeaturesKey = "features"

// Item is one candidate location in a batch. Attrs holds every field of the
// incoming object except features (id, name, lat, lon and anything else the
// caller sent) so it can be echoed back next to the score.
type Item struct {
	Attrs    map[string]any
	Features feature.Set
}

// ID returns the item's id attribute, or nil.
func (it Item) ID() any { return it.Attrs["id"] }

// UnmarshalJSON splits an object into attributes and features. Numbers are
// kept as json.Number so ids and coordinates round-trip unchanged.
func (it *Item) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return eris.Wrap(err, "model: decode item")
	}

	it.Attrs = make(map[string]any, len(raw))
	it.Features = feature.Set{}
	for k, v := range raw {
		if k == FeaturesKey {
			if m, ok := v.(map[string]any); ok {
				it.Features = feature.Set(m)
			}
			continue
		}
		it.Attrs[k] = v
	}
	return nil
}

// MarshalJSON emits attributes with the features nested back under their key.
func (it Item) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(it.Attrs)+1)
	for k, v := range it.Attrs {
		out[k] = v
	}
	out[FeaturesKey] = it.Features
	return json.Marshal(out)
}
