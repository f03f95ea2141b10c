// Package rebound provides the shared plumbing for the rebound rigid-body
// stores: generational handles, the slot arena backing the body and collider
// sets, the sleep state machine and the integration parameters.
//
// The dimension specific stores live in the dim2 and dim3 packages. Picking
// one of them is a build configuration choice, similar to choosing between
// mgl32 and mgl64 in go-gl/mathgl.
package rebound
