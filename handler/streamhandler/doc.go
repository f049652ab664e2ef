// Package streamhandler writes log records to any io.Writer, such as
// os.Stdout, os.Stderr or an in-memory buffer.
//
// LogToStream is the stateless entry point: it renders one record and
// writes it to the given writer in a single call. StreamHandler wraps a
// writer as a handler.Sink and keeps write statistics. Stream output is
// never rotated, so core.FlagRollOver is ignored.
package streamhandler
