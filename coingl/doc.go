// Package coingl is a minimal, predictable software 3D renderer for the coin viewer.
//
// It is intended for one job: rasterizing small per-vertex-shaded, textured meshes
// into a caller-provided pixel Target. It is not a game engine and does not provide
// a GPU abstraction.
//
// Pipeline (fixed):
//
//	Scene → Transform → Projection → NDC mapping → Rasterization → Frame output.
//
// The renderer draws into any Target implementation and avoids allocations in the
// render hot path: the depth buffer is reused across frames and meshes are updated
// in place between frames.
package coingl
