// Package handler defines the Sink interface shared by tinylog's
// destinations, together with their statistics and adapters.
//
// A Sink is best-effort by construction: Log has no error result, so
// callers cannot mistake a logging failure for an application failure.
// Records that cannot be written are dropped and counted in Stats;
// I/O errors are stored in the last-error register that warning and
// critical records print.
//
// Built-in sinks live in subpackages:
//
//   - filehandler writes to a size-bounded file that rotates itself
//     through numbered siblings (run_0.log ... run_9.log).
//   - streamhandler writes to any io.Writer and never rotates.
//
// This package adds MultiSink, which fans one record out to several
// sinks, and two adapters that let other logging front ends write
// through a Sink: SlogHandler for log/slog and ZapCore for
// go.uber.org/zap.
//
// Sinks are synchronous: Log returns once the record has been handed
// to the operating system. The built-in sinks are safe for concurrent
// use.
package handler
