// Package sysinfo provides the operating-system collaborators a log
// record depends on: the calling thread id, the process id, and a
// process-wide register holding the last system error.
//
// The register plays the role errno plays in C: I/O failures inside
// the sinks are recorded here instead of being returned, and records
// at warning or critical level print its description.
package sysinfo
