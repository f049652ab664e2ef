package streamhandler

import (
	"io"
	"reflect"

	"github.com/philipp01105/tinylog/core"
	"github.com/philipp01105/tinylog/formatter"
	"github.com/philipp01105/tinylog/internal/sysinfo"
)

// flusher is implemented by buffered writers such as *bufio.Writer
type flusher interface {
	Flush() error
}

// LogToStream renders one record and writes it to w on behalf of caller.
// Nothing happens when w is nil. Nil providers in env fall back to the
// defaults. Write failures are stored as the last system error.
func LogToStream(caller core.Caller, w io.Writer, env core.Env, level core.Level, flags core.Flags, format string, args ...any) {
	writeRecord(formatter.New(env), w, caller, level, flags, format, args)
}

// writeRecord reports whether the record reached w
func writeRecord(f *formatter.Formatter, w io.Writer, caller core.Caller, level core.Level, flags core.Flags, format string, args []any) bool {
	if isNilWriter(w) {
		return false
	}

	var prefix formatter.Prefix
	f.FormatPrefix(&prefix, level, flags, caller)

	buf := formatter.GetBuffer()
	f.AppendRecord(buf, prefix.Bytes(), level, format, args)
	_, err := w.Write(buf.Bytes())
	formatter.PutBuffer(buf)
	if err != nil {
		sysinfo.RecordError(err)
		return false
	}

	if fl, ok := w.(flusher); ok {
		if err := fl.Flush(); err != nil {
			sysinfo.RecordError(err)
			return false
		}
	}
	return true
}

// isNilWriter catches a nil interface and any typed nil pointer,
// such as a nil *os.File or *bufio.Writer
func isNilWriter(w io.Writer) bool {
	if w == nil {
		return true
	}
	v := reflect.ValueOf(w)
	switch v.Kind() {
	case reflect.Pointer, reflect.Func:
		return v.IsNil()
	}
	return false
}
