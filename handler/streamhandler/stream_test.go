package streamhandler

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"os"
	"sync"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/tinylog/core"
	"github.com/philipp01105/tinylog/internal/sysinfo"
)

func testEnv(lastErr error) core.Env {
	return core.Env{
		Now:       func() time.Time { return time.Date(2024, 3, 5, 14, 7, 9, 0, time.Local) },
		ThreadID:  func() int { return 7 },
		ProcessID: func() int { return 42 },
		LastError: func() error { return lastErr },
	}
}

type failingWriter struct{ err error }

func (w failingWriter) Write([]byte) (int, error) { return 0, w.err }

func TestLogToStream(t *testing.T) {
	var buf bytes.Buffer
	caller := core.Caller{File: "/src/main.go", Function: "main", Line: 10}

	LogToStream(caller, &buf, testEnv(nil), core.InfoLevel, core.FlagsAll, "x=%d", 5)

	assert.Equal(t, "2024-03-05 14:07:09 INFO [main.go]:main:10 tid:7 pid:42\nx=5\n\n", buf.String())
}

func TestLogToStream_ErrnoLine(t *testing.T) {
	tests := []struct {
		level core.Level
		errno bool
	}{
		{core.LevelNone, false},
		{core.DebugLevel, false},
		{core.InfoLevel, false},
		{core.WarningLevel, true},
		{core.CriticalLevel, true},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		LogToStream(core.Caller{}, &buf, testEnv(syscall.EACCES), tt.level, 0, "m")

		want := tt.level.String() + "\nm\n"
		if tt.errno {
			want += "ERRNO: " + syscall.EACCES.Error() + "\n"
		}
		assert.Equal(t, want+"\n", buf.String(), "level %d", tt.level)
	}
}

func TestLogToStream_RollOverIgnored(t *testing.T) {
	var plain, rolled bytes.Buffer
	LogToStream(core.Caller{}, &plain, testEnv(nil), core.InfoLevel, core.FlagDate, "m")
	LogToStream(core.Caller{}, &rolled, testEnv(nil), core.InfoLevel, core.FlagDate|core.FlagRollOver, "m")

	assert.Equal(t, plain.String(), rolled.String())
}

func TestLogToStream_NilWriter(t *testing.T) {
	var f *os.File
	var bw *bufio.Writer
	var buf *bytes.Buffer
	assert.NotPanics(t, func() {
		LogToStream(core.Caller{}, nil, testEnv(nil), core.InfoLevel, 0, "m")
		LogToStream(core.Caller{}, f, testEnv(nil), core.InfoLevel, 0, "m")
		LogToStream(core.Caller{}, bw, testEnv(nil), core.InfoLevel, 0, "m")
		LogToStream(core.Caller{}, buf, testEnv(nil), core.InfoLevel, 0, "m")
	})
}

func TestLogToStream_FlushesBufferedWriter(t *testing.T) {
	var out bytes.Buffer
	bw := bufio.NewWriterSize(&out, 4096)

	LogToStream(core.Caller{}, bw, testEnv(nil), core.LevelNone, 0, "hello")

	assert.Zero(t, bw.Buffered())
	assert.Equal(t, "\nhello\n\n", out.String())
}

func TestLogToStream_WriteErrorIsRecorded(t *testing.T) {
	errWrite := errors.New("broken pipe")
	LogToStream(core.Caller{}, failingWriter{err: errWrite}, testEnv(nil), core.InfoLevel, 0, "m")

	assert.ErrorIs(t, sysinfo.LastError(), errWrite)
	sysinfo.RecordError(nil)
}

func TestStreamHandler_Stats(t *testing.T) {
	var buf bytes.Buffer
	h := NewStreamHandler(StreamConfig{Writer: &buf, Env: testEnv(nil)})

	h.Log(core.Caller{}, core.InfoLevel, 0, "a")
	h.Log(core.Caller{}, core.DebugLevel, 0, "b")
	assert.Equal(t, "INFO\na\n\nDEBUG\nb\n\n", buf.String())
	assert.Equal(t, uint64(2), h.Stats().Written)

	broken := NewStreamHandler(StreamConfig{Writer: failingWriter{err: io.ErrClosedPipe}})
	broken.Log(core.Caller{}, core.CriticalLevel, 0, "lost")
	assert.Equal(t, uint64(1), broken.Stats().Dropped[core.CriticalLevel])
	sysinfo.RecordError(nil)
}

func TestStreamHandler_DefaultsToStdout(t *testing.T) {
	h := NewStreamHandler(StreamConfig{})
	assert.Equal(t, os.Stdout, h.writer)
}

func TestStreamHandler_ConcurrentWrites(t *testing.T) {
	var buf bytes.Buffer
	h := NewStreamHandler(StreamConfig{Writer: &buf, Env: testEnv(nil)})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				h.Log(core.Caller{}, core.InfoLevel, 0, "line")
			}
		}()
	}
	wg.Wait()

	require.Equal(t, uint64(400), h.Stats().Written)
	assert.Equal(t, bytes.Repeat([]byte("INFO\nline\n\n"), 400), buf.Bytes())
}
