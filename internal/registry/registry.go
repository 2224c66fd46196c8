// Package registry maps simulation slugs to their catalog entries and
// lazily-resolved engine factories.
package registry

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/superliangbot/simlab/internal/engine"
)

// ErrNotFound is returned when a slug has no catalog entry.
var ErrNotFound = errors.New("simulation not found")

// Factory produces a fresh, independent engine instance per call.
type Factory func() engine.Engine

// SimulationConfig is one catalog entry. The factory behind it is not
// resolved until the simulation is actually opened.
type SimulationConfig struct {
	Slug        string
	Title       string
	Category    string
	Description string
	Long        string
	Color       string
	Schema      engine.Schema
}

type loader struct {
	once    sync.Once
	resolve func() Factory
	factory Factory
}

var loaders = map[string]*loader{}

func register(cfg SimulationConfig, resolve func() Factory) {
	if _, dup := catalog[cfg.Slug]; dup {
		panic(fmt.Sprintf("registry: duplicate slug %q", cfg.Slug))
	}
	catalog[cfg.Slug] = cfg
	order = append(order, cfg.Slug)
	loaders[cfg.Slug] = &loader{resolve: resolve}
}

// Get returns the catalog entry for slug. Missing slugs are not an
// error here; callers render their own not-found view.
func Get(slug string) (*SimulationConfig, bool) {
	cfg, ok := catalog[slug]
	if !ok {
		return nil, false
	}
	return &cfg, true
}

// LoadEngine resolves the factory for slug, at most once per slug.
// Every call to the returned factory yields an independent instance.
func LoadEngine(ctx context.Context, slug string) (Factory, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	l, ok := loaders[slug]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, slug)
	}
	l.once.Do(func() {
		l.factory = l.resolve()
	})
	return l.factory, nil
}

// Slugs returns every registered slug in catalog order.
func Slugs() []string {
	out := make([]string, len(order))
	copy(out, order)
	return out
}

// Categories returns the distinct categories, sorted.
func Categories() []string {
	seen := map[string]bool{}
	var out []string
	for _, slug := range order {
		c := catalog[slug].Category
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	sort.Strings(out)
	return out
}

// ByCategory returns the catalog entries under one category, in
// catalog order.
func ByCategory(category string) []SimulationConfig {
	var out []SimulationConfig
	for _, slug := range order {
		if cfg := catalog[slug]; cfg.Category == category {
			out = append(out, cfg)
		}
	}
	return out
}
