package profile

import (
	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// MarshalCatalogYAML renders the full catalog as YAML under a top-level
// "profiles" key.
func MarshalCatalogYAML() ([]byte, error) {
	doc := struct {
		Profiles []Profile `yaml:"profiles"`
	}{Profiles: All()}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, eris.Wrap(err, "profile: marshal catalog")
	}
	return out, nil
}
