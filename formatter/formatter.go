package formatter

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/philipp01105/tinylog/core"
	"github.com/philipp01105/tinylog/internal/sysinfo"
)

// ErrnoTag starts the error line appended to warning and critical records
const ErrnoTag = "ERRNO: "

// Formatter renders prefixes and complete records using the providers of an Env
type Formatter struct {
	env core.Env
}

// New creates a formatter. Nil providers in env are replaced by the defaults.
func New(env core.Env) *Formatter {
	return &Formatter{env: env.WithDefaults()}
}

// Env returns the providers used by the formatter
func (f *Formatter) Env() core.Env {
	return f.env
}

// FormatPrefix fills p with the prefix for one record. Providers are
// only queried for the fields enabled in flags.
func (f *Formatter) FormatPrefix(p *Prefix, level core.Level, flags core.Flags, caller core.Caller) {
	in := Input{
		Level:  level,
		Flags:  flags,
		Caller: caller,
	}
	if flags&(core.FlagDate|core.FlagTime) != 0 {
		in.Time = f.env.Now()
	}
	if flags&core.FlagTID != 0 {
		in.ThreadID = f.env.ThreadID()
	}
	if flags&core.FlagPID != 0 {
		in.ProcessID = f.env.ProcessID()
	}
	BuildPrefix(p, in)
}

// AppendRecord writes a complete record into buf: the prefix line, the
// message rendered from format and args, the ERRNO line for warning and
// critical levels, and a terminating blank line.
func (f *Formatter) AppendRecord(buf *bytes.Buffer, prefix []byte, level core.Level, format string, args []any) {
	buf.Write(prefix)
	buf.WriteByte('\n')
	fmt.Fprintf(buf, format, args...)
	buf.WriteByte('\n')
	if level.ReportsError() {
		buf.WriteString(ErrnoTag)
		buf.WriteString(sysinfo.Describe(f.env.LastError()))
		buf.WriteByte('\n')
	}
	buf.WriteByte('\n')
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

// GetBuffer returns an empty buffer from the pool
func GetBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// PutBuffer returns buf to the pool
func PutBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
