// Package formatter renders log records as text.
//
// A record is a prefix line followed by the message, an optional
// "ERRNO: <description>" line for warning and critical levels, and a
// blank line:
//
//	2026-01-15 12:00:00 INFO [main.go]:main:42 tid:1234 pid:1200
//	x=5
//
// The prefix is assembled into a Prefix, a fixed 1 KiB buffer that is
// never grown. When the enabled fields do not fit, the overflow is
// dropped and Prefix.Truncated reports it; the message itself is not
// bounded.
//
// BuildPrefix is a pure function over an Input so that field order and
// separators can be tested with pinned values. Formatter wraps it with
// the providers of a core.Env and assembles complete records into a
// pooled bytes.Buffer. Buffers larger than 64 KiB are not returned to
// the pool to prevent a single large message from permanently inflating
// memory usage.
package formatter
