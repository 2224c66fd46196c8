package config

import "sort"

// Presets are named parameter bundles per simulation slug, meant as
// teaching setups: each one demonstrates a distinct regime.
var Presets = map[string]map[string]map[string]float64{
	"ellipse": {
		"circle":    {"semiMajor": 200, "eccentricity": 0},
		"classic":   {"semiMajor": 200, "eccentricity": 0.6},
		"stretched": {"semiMajor": 280, "eccentricity": 0.9},
	},
	"snells-law": {
		"air-to-glass":  {"n1": 1.0, "n2": 1.5, "incidentAngle": 30},
		"glass-to-air":  {"n1": 1.5, "n2": 1.0, "incidentAngle": 30},
		"trapped-light": {"n1": 1.5, "n2": 1.0, "incidentAngle": 60},
	},
	"half-life-period": {
		"classroom": {"totalAtoms": 64, "halfLife": 5},
		"slow":      {"totalAtoms": 256, "halfLife": 20},
		"flash":     {"totalAtoms": 512, "halfLife": 1},
	},
	"projectile": {
		"max-range": {"speed": 40, "angle": 45, "gravity": 9.81},
		"mortar":    {"speed": 40, "angle": 80, "gravity": 9.81},
		"moon-shot": {"speed": 40, "angle": 45, "gravity": 1.62},
	},
	"pendulum": {
		"grandfather": {"length": 1, "gravity": 9.81, "initialAngle": 15},
		"wide-swing":  {"length": 1.5, "gravity": 9.81, "initialAngle": 60},
	},
	"spring-mass": {
		"ringing":  {"mass": 1, "stiffness": 40, "damping": 0.1},
		"critical": {"mass": 1, "stiffness": 25, "damping": 10},
		"sluggish": {"mass": 5, "stiffness": 10, "damping": 4},
	},
	"doppler": {
		"subsonic": {"sourceSpeed": 100, "waveSpeed": 340},
		"mach-one": {"sourceSpeed": 340, "waveSpeed": 340},
	},
	"orbital-motion": {
		"circular":   {"velocityFactor": 1},
		"elliptical": {"velocityFactor": 0.8},
		"escape":     {"velocityFactor": 1.5},
	},
	"rc-circuit": {
		"quick":  {"resistance": 1, "capacitance": 100, "sourceVoltage": 9},
		"crawl":  {"resistance": 20, "capacitance": 1000, "sourceVoltage": 9},
		"strong": {"resistance": 5, "capacitance": 200, "sourceVoltage": 24},
	},
	"ideal-gas": {
		"cold-dense": {"particles": 300, "temperature": 100},
		"hot-sparse": {"particles": 50, "temperature": 900},
	},
}

// GetPreset returns one preset's parameter map, or nil when either the
// slug or the preset name is unknown.
func GetPreset(slug, name string) map[string]float64 {
	simPresets, ok := Presets[slug]
	if !ok {
		return nil
	}
	p, ok := simPresets[name]
	if !ok {
		return nil
	}
	return p
}

// ListPresets returns the sorted preset names for a slug; nil when the
// slug has no presets.
func ListPresets(slug string) []string {
	simPresets, ok := Presets[slug]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(simPresets))
	for name := range simPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
