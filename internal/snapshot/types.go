// Package snapshot walks an initialized sensors handle into a plain
// data model that tools can render as text or YAML, or turn into
// metrics.
package snapshot

// Chip is one detected chip with everything read from it.
type Chip struct {
	Name     string    `yaml:"name" json:"name"`
	Adapter  string    `yaml:"adapter,omitempty" json:"adapter,omitempty"`
	Bus      string    `yaml:"bus" json:"bus"`
	Path     string    `yaml:"path,omitempty" json:"path,omitempty"`
	Features []Feature `yaml:"features,omitempty" json:"features,omitempty"`
}

// Feature is one capability of a chip with its sub-feature readings.
type Feature struct {
	Name        string       `yaml:"name" json:"name"`
	Label       string       `yaml:"label,omitempty" json:"label,omitempty"`
	Kind        string       `yaml:"kind" json:"kind"`
	Subfeatures []Subfeature `yaml:"subfeatures,omitempty" json:"subfeatures,omitempty"`
}

// nameOrKind falls back to the kind string when a descriptor's name
// is absent or undecodable, so one bad name never aborts a walk.
func nameOrKind(name string, err error, kind string) string {
	if err != nil {
		return kind
	}
	return name
}

// Subfeature is one quantity with its value at collection time. Value
// is nil when the sub-feature is not readable or the read failed;
// Error carries the failure text in the latter case.
type Subfeature struct {
	Name    string   `yaml:"name" json:"name"`
	Kind    string   `yaml:"kind" json:"kind"`
	Access  string   `yaml:"access" json:"access"`
	Unit    string   `yaml:"unit,omitempty" json:"unit,omitempty"`
	Value   *float64 `yaml:"value,omitempty" json:"value,omitempty"`
	Display string   `yaml:"display,omitempty" json:"display,omitempty"`
	Error   string   `yaml:"error,omitempty" json:"error,omitempty"`
}
