package engine

import "math"

// Parameter describes one slider control: a named scalar with a closed
// range [Min, Max] and a Step granularity. Invariant: Min <= Default <= Max.
type Parameter struct {
	Key     string
	Label   string
	Min     float64
	Max     float64
	Step    float64
	Default float64
	Unit    string
}

// Clamp forces v into the parameter's declared range.
func (pm Parameter) Clamp(v float64) float64 {
	if math.IsNaN(v) {
		return pm.Default
	}
	if v < pm.Min {
		return pm.Min
	}
	if v > pm.Max {
		return pm.Max
	}
	return v
}

// Schema is the ordered list of parameters a simulation declares.
type Schema []Parameter

// Value reads key from the snapshot, falling back to the declared default
// when the key is missing and clamping to the declared range otherwise.
// Unknown keys yield zero; leaves only ask for keys they declare.
func (s Schema) Value(p Params, key string) float64 {
	for _, pm := range s {
		if pm.Key != key {
			continue
		}
		v, ok := p[key]
		if !ok {
			return pm.Default
		}
		return pm.Clamp(v)
	}
	return 0
}

// Find returns the parameter declared under key.
func (s Schema) Find(key string) (Parameter, bool) {
	for _, pm := range s {
		if pm.Key == key {
			return pm, true
		}
	}
	return Parameter{}, false
}

// Defaults builds a fresh snapshot holding every declared default.
func (s Schema) Defaults() Params {
	p := make(Params, len(s))
	for _, pm := range s {
		p[pm.Key] = pm.Default
	}
	return p
}
