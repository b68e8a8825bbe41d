package model

import (
	"time"

	"github.com/spf13/cast"

	"github.com/sodam-labs/sodam/internal/feature"
)

// Area is a stored sample location used by the sample endpoint and CLI.
type Area struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Lat       *float64    `json:"lat,omitempty"`
	Lon       *float64    `json:"lon,omitempty"`
	Features  feature.Set `json:"features"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// Item converts the area into a batch item carrying id, name and coordinates.
func (a Area) Item() Item {
	attrs := map[string]any{"id": a.ID, "name": a.Name}
	if a.Lat != nil {
		attrs["lat"] = *a.Lat
	}
	if a.Lon != nil {
		attrs["lon"] = *a.Lon
	}
	features := a.Features
	if features == nil {
		features = feature.Set{}
	}
	return Item{Attrs: attrs, Features: features}
}

// AreaFromItem builds an area from a batch item, reading id, name, lat and
// lon from its attributes.
func AreaFromItem(it Item) Area {
	a := Area{Features: it.Features}
	if v, ok := it.Attrs["id"]; ok && v != nil {
		a.ID = cast.ToString(v)
	}
	if v, ok := it.Attrs["name"]; ok && v != nil {
		a.Name = cast.ToString(v)
	}
	if v, ok := it.Attrs["lat"]; ok && v != nil {
		f := feature.Number(v)
		a.Lat = &f
	}
	if v, ok := it.Attrs["lon"]; ok && v != nil {
		f := feature.Number(v)
		a.Lon = &f
	}
	return a
}
