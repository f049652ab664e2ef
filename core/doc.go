// Package core defines the shared types used across tinylog.
//
// It provides the Level type (the severity of a record), the Flags
// bitfield that selects which contextual fields are rendered in a
// record prefix, the Caller type describing a source location, and
// the Env type that bundles the opaque providers a record depends on:
// the wall clock, the current thread and process ids, and the last
// system error.
//
// Flag bit values are stable, so a mask stored as an integer keeps its
// meaning across releases. RollOver is only meaningful for the file
// sink; stream sinks ignore it.
//
// Env fields are plain functions so tests can pin the clock and ids.
// DefaultEnv wires the real providers; Env.WithDefaults fills in any
// provider left nil by the caller.
package core
