// Package solver defines the boundary to an external double-dummy solver:
// the Solver interface the simulation package consumes, and the native
// status-code table mapped onto Go errors. The native binding itself lives
// outside this module; any implementation of Solver plugs in without
// touching the core.
package solver
