// Package engine defines the lifecycle contract every simulation
// implements, plus the small vocabulary shared between the host loop
// and the leaves:
//
//   - [Engine]: init/resize/update/render/reset/destroy lifecycle with a
//     state-description hook for external consumers
//   - [Surface]: an opaque 2D raster target the engine draws into
//   - [Parameter] and [Schema]: declared slider controls with closed
//     numeric ranges
//   - [Params]: the per-tick key→value snapshot handed to Update
//
// Engines are interchangeable behind the host loop: the host never knows
// which simulation it is driving, only that the contract holds.
package engine
