// Package filehandler writes log records to a file and rotates to
// numbered sibling files once the current file exceeds a size limit.
//
// A FileHandler is opened with Open (or New followed by Init) and
// released with Close. Records are written through Log or LogToFile,
// which never report failure: a record that cannot be written is
// dropped and counted in Stats.
//
// Rotation is requested per record with core.FlagRollOver. When the
// current file is larger than the configured maximum, the handler
// moves to the first of <stem>_0<ext> ... <stem>_9<ext> that is still
// below the limit. If all ten are full the record is dropped.
package filehandler
