package formatter

import (
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/philipp01105/tinylog/core"
)

const (
	// BufSize is the capacity of a Prefix in bytes
	BufSize = 1024

	// DateLayout renders the date field
	DateLayout = "2006-01-02"
	// TimeLayout renders the time field
	TimeLayout = "15:04:05"
)

// Input carries the raw values a prefix is built from
type Input struct {
	Time      time.Time
	Level     core.Level
	Flags     core.Flags
	Caller    core.Caller
	ThreadID  int
	ProcessID int
}

// Prefix is a fixed-capacity buffer holding one rendered record prefix.
//
// Appends never grow the buffer. Content that does not fit is cut at
// the last complete UTF-8 sequence that fits, later appends are
// discarded, and Truncated reports true until the next Reset.
type Prefix struct {
	buf       [BufSize]byte
	n         int
	truncated bool
}

// Reset empties the buffer
func (p *Prefix) Reset() {
	p.n = 0
	p.truncated = false
}

// Bytes returns the rendered prefix. The slice aliases the buffer.
func (p *Prefix) Bytes() []byte {
	return p.buf[:p.n]
}

// String returns the rendered prefix as a string
func (p *Prefix) String() string {
	return string(p.buf[:p.n])
}

// Len returns the number of bytes rendered
func (p *Prefix) Len() int {
	return p.n
}

// Truncated reports whether content was dropped for lack of capacity
func (p *Prefix) Truncated() bool {
	return p.truncated
}

func (p *Prefix) appendString(s string) {
	if p.truncated {
		return
	}
	room := BufSize - p.n
	if len(s) > room {
		cut := room
		for cut > 0 && cut < len(s) && !utf8.RuneStart(s[cut]) {
			cut--
		}
		s = s[:cut]
		p.truncated = true
	}
	p.n += copy(p.buf[p.n:], s)
}

func (p *Prefix) appendBytes(b []byte) {
	p.appendString(string(b))
}

func (p *Prefix) appendByte(c byte) {
	if p.truncated {
		return
	}
	if p.n == BufSize {
		p.truncated = true
		return
	}
	p.buf[p.n] = c
	p.n++
}

func (p *Prefix) appendInt(v int) {
	var scratch [20]byte
	p.appendBytes(strconv.AppendInt(scratch[:0], int64(v), 10))
}

func (p *Prefix) appendTime(t time.Time, layout string) {
	var scratch [32]byte
	p.appendBytes(t.AppendFormat(scratch[:0], layout))
}

// separate writes the single space that precedes every field but the first
func (p *Prefix) separate() {
	if p.n > 0 {
		p.appendByte(' ')
	}
}

// BuildPrefix renders in into p, replacing its previous content.
//
// Fields appear in a fixed order: date, time, level, [file], :func,
// :line, tid:<n>, pid:<n>. Every field except func and line is preceded
// by a single space unless it is the first one written. The level token
// is omitted for core.LevelNone.
func BuildPrefix(p *Prefix, in Input) {
	p.Reset()
	flags := in.Flags

	if flags&core.FlagDate != 0 {
		p.separate()
		p.appendTime(in.Time, DateLayout)
	}
	if flags&core.FlagTime != 0 {
		p.separate()
		p.appendTime(in.Time, TimeLayout)
	}
	if name := in.Level.String(); name != "" {
		p.separate()
		p.appendString(name)
	}
	if flags&core.FlagFile != 0 {
		p.separate()
		p.appendByte('[')
		p.appendString(in.Caller.ShortFile())
		p.appendByte(']')
	}
	if flags&core.FlagFunc != 0 {
		p.appendByte(':')
		p.appendString(in.Caller.Function)
	}
	if flags&core.FlagLine != 0 {
		p.appendByte(':')
		p.appendInt(in.Caller.Line)
	}
	if flags&core.FlagTID != 0 {
		p.separate()
		p.appendString("tid:")
		p.appendInt(in.ThreadID)
	}
	if flags&core.FlagPID != 0 {
		p.separate()
		p.appendString("pid:")
		p.appendInt(in.ProcessID)
	}
}
