// Package sims holds the simulation catalog: self-contained visual demos
// of physics, math and chemistry, each implementing [engine.Engine].
//
// Every leaf follows the same pattern: an explicit state struct, an
// exported Schema declaring its slider controls, and the eight contract
// methods. Leaves read slider values only through Schema.Value, which
// supplies clamping and default fallback, and keep all mutable state
// inside the struct so instances are fully independent.
//
// Decorative randomness (gas jitter, random decay order, walker noise)
// is intentionally unseeded; nothing user-visible depends on exact
// values, only on structural properties such as particle counts.
package sims
