//go:build linux && cgo

package snapshot

import (
	"errors"

	"github.com/lmsensors-go/lmsensors/pkg/sensors"
)

// Collect walks every chip matching the given pattern and reads all
// readable sub-features. A nil match collects every detected chip.
// Individual read failures are recorded per sub-feature; only
// enumeration failures abort the walk.
func Collect(h *sensors.Sensors, match *sensors.Chip) ([]Chip, error) {
	var out []Chip

	chips := h.Chips(match)
	for chips.Next() {
		chip := chips.Chip()

		c := Chip{
			Bus:  chip.Bus().Kind().String(),
			Path: chip.Path(),
		}
		name, err := chip.Name()
		if err != nil {
			return nil, err
		}
		c.Name = name
		if adapter, err := chip.Bus().AdapterName(); err == nil {
			c.Adapter = adapter
		}

		features := chip.Features()
		for features.Next() {
			f, err := collectFeature(features.Feature())
			if err != nil {
				return nil, err
			}
			c.Features = append(c.Features, f)
		}
		if err := features.Err(); err != nil {
			return nil, err
		}

		out = append(out, c)
	}
	if err := chips.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func collectFeature(feature sensors.Feature) (Feature, error) {
	f := Feature{Kind: feature.Kind().String()}

	name, err := feature.Name()
	f.Name = nameOrKind(name, err, f.Kind)
	if label, err := feature.Label(); err == nil && label != f.Name {
		f.Label = label
	}

	subs := feature.Subfeatures()
	for subs.Next() {
		f.Subfeatures = append(f.Subfeatures, collectSubfeature(subs.Subfeature()))
	}
	if err := subs.Err(); err != nil {
		return Feature{}, err
	}
	return f, nil
}

func collectSubfeature(sf sensors.Subfeature) Subfeature {
	s := Subfeature{
		Kind:   sf.Kind().String(),
		Access: sf.Access().String(),
		Unit:   sf.Kind().Unit().String(),
	}
	name, err := sf.Name()
	s.Name = nameOrKind(name, err, s.Kind)

	v, err := sf.Value()
	switch {
	case errors.Is(err, sensors.ErrNotReadable):
		// Write-only sub-features carry no value.
	case err != nil:
		s.Error = err.Error()
	default:
		raw := v.Raw()
		s.Value = &raw
		s.Display = v.String()
	}
	return s
}
