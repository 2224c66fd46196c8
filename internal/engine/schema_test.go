package engine

import (
	"math"
	"testing"
)

var testSchema = Schema{
	{Key: "mass", Label: "Mass", Min: 0.1, Max: 10, Step: 0.1, Default: 1.0, Unit: "kg"},
	{Key: "angle", Label: "Angle", Min: -90, Max: 90, Step: 1, Default: 30, Unit: "deg"},
}

func TestSchemaValueDefaultFallback(t *testing.T) {
	v := testSchema.Value(Params{}, "mass")
	if v != 1.0 {
		t.Errorf("expected default 1.0 for missing key, got %f", v)
	}

	v = testSchema.Value(nil, "angle")
	if v != 30 {
		t.Errorf("expected default 30 for nil snapshot, got %f", v)
	}
}

func TestSchemaValueClamps(t *testing.T) {
	tests := []struct {
		key      string
		in, want float64
	}{
		{"mass", 100, 10},
		{"mass", -5, 0.1},
		{"mass", 2.5, 2.5},
		{"angle", 180, 90},
		{"angle", -180, -90},
	}

	for _, tt := range tests {
		got := testSchema.Value(Params{tt.key: tt.in}, tt.key)
		if got != tt.want {
			t.Errorf("Value(%s=%f) = %f, want %f", tt.key, tt.in, got, tt.want)
		}
	}
}

func TestSchemaValueNaN(t *testing.T) {
	got := testSchema.Value(Params{"mass": math.NaN()}, "mass")
	if got != 1.0 {
		t.Errorf("NaN should fall back to default, got %f", got)
	}
}

func TestSchemaDefaults(t *testing.T) {
	p := testSchema.Defaults()
	if len(p) != 2 {
		t.Fatalf("expected 2 defaults, got %d", len(p))
	}
	if p["mass"] != 1.0 || p["angle"] != 30 {
		t.Errorf("unexpected defaults: %v", p)
	}
}

func TestParamsCloneIsIndependent(t *testing.T) {
	p := Params{"a": 1}
	c := p.Clone()
	c["a"] = 2
	if p["a"] != 1 {
		t.Error("mutating the clone leaked into the original")
	}
}
