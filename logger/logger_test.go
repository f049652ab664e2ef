package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/philipp01105/tinylog/core"
	"github.com/philipp01105/tinylog/handler"
	"github.com/philipp01105/tinylog/handler/filehandler"
	"github.com/philipp01105/tinylog/handler/streamhandler"
)

func fixedEnv() core.Env {
	return core.Env{
		Now:       func() time.Time { return time.Date(2024, 3, 5, 14, 7, 9, 0, time.Local) },
		ThreadID:  func() int { return 7 },
		ProcessID: func() int { return 42 },
		LastError: func() error { return nil },
	}
}

func newBufferLogger(buf *bytes.Buffer, flags core.Flags) *Logger {
	h := streamhandler.NewStreamHandler(streamhandler.StreamConfig{Writer: buf, Env: fixedEnv()})
	return NewBuilder().WithSink(h).WithFlags(flags).Build()
}

// line returns the line number of its caller
func line() int {
	_, _, l, _ := runtime.Caller(1)
	return l
}

func TestLogger_LevelMethods(t *testing.T) {
	var buf bytes.Buffer
	log := newBufferLogger(&buf, 0)

	log.Printf("none")
	log.Debugf("debug %d", 1)
	log.Infof("info %s", "x")
	log.Warningf("warning")
	log.Criticalf("critical")
	log.Logf(InfoLevel, "logf")

	want := "\nnone\n\n" +
		"DEBUG\ndebug 1\n\n" +
		"INFO\ninfo x\n\n" +
		"WARNING\nwarning\nERRNO: Success\n\n" +
		"CRITICAL\ncritical\nERRNO: Success\n\n" +
		"INFO\nlogf\n\n"
	if got := buf.String(); got != want {
		t.Errorf("output mismatch\ngot:  %q\nwant: %q", got, want)
	}
}

func TestLogger_CapturesCaller(t *testing.T) {
	var buf bytes.Buffer
	log := newBufferLogger(&buf, FlagFile|FlagFunc|FlagLine)

	want := line() + 1
	log.Infof("here")

	prefix := strings.SplitN(buf.String(), "\n", 2)[0]
	expected := "INFO [logger_test.go]:TestLogger_CapturesCaller:" + strconv.Itoa(want)
	if prefix != expected {
		t.Errorf("prefix = %q, want %q", prefix, expected)
	}
}

type wrapper struct{ log *Logger }

func (w wrapper) info(msg string) { w.log.Infof("%s", msg) }

func TestLogger_CallerSkip(t *testing.T) {
	var buf bytes.Buffer
	h := streamhandler.NewStreamHandler(streamhandler.StreamConfig{Writer: &buf, Env: fixedEnv()})
	w := wrapper{log: NewBuilder().WithSink(h).WithFlags(FlagFunc).WithCallerSkip(1).Build()}

	w.info("wrapped")

	if !strings.HasPrefix(buf.String(), "INFO:TestLogger_CallerSkip\n") {
		t.Errorf("expected the wrapper's caller, got: %q", buf.String())
	}
}

func TestLogger_WithFlags(t *testing.T) {
	var buf bytes.Buffer
	parent := newBufferLogger(&buf, FlagDate)
	child := parent.WithFlags(FlagTime)

	child.Infof("child")
	parent.Infof("parent")

	want := "14:07:09 INFO\nchild\n\n2024-03-05 INFO\nparent\n\n"
	if got := buf.String(); got != want {
		t.Errorf("output mismatch\ngot:  %q\nwant: %q", got, want)
	}
	if parent.Flags() != FlagDate {
		t.Errorf("parent flags changed to %v", parent.Flags())
	}
}

func TestLogger_NoSink(t *testing.T) {
	log := NewBuilder().Build()
	log.Infof("nothing happens")
	if err := log.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestLogger_DefaultFlags(t *testing.T) {
	if got := NewBuilder().Build().Flags(); got != FlagsAll {
		t.Errorf("default flags = %v, want %v", got, FlagsAll)
	}
}

func TestLogger_CloseFileSink(t *testing.T) {
	h, err := filehandler.Open(filepath.Join(t.TempDir(), "app.log"), 0)
	if err != nil {
		t.Fatal(err)
	}
	log := NewBuilder().WithSink(h).Build()

	if err := log.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if h.IsOpen() {
		t.Error("file handler still open after Logger.Close")
	}
}

func TestLogger_MultiSink(t *testing.T) {
	var a, b bytes.Buffer
	ha := streamhandler.NewStreamHandler(streamhandler.StreamConfig{Writer: &a, Env: fixedEnv()})
	hb := streamhandler.NewStreamHandler(streamhandler.StreamConfig{Writer: &b, Env: fixedEnv()})

	log := NewBuilder().WithSink(handler.NewMultiSink(ha, hb)).WithFlags(0).Build()
	log.Infof("both")

	if a.String() != "INFO\nboth\n\n" || a.String() != b.String() {
		t.Errorf("fan-out mismatch: %q / %q", a.String(), b.String())
	}
}

func TestLogger_WithCoarseClock(t *testing.T) {
	var buf bytes.Buffer
	env := fixedEnv()
	env.Now = core.CoarseNow // served by time.Now until the clock is started
	h := streamhandler.NewStreamHandler(streamhandler.StreamConfig{Writer: &buf, Env: env})

	log := NewBuilder().WithSink(h).WithFlags(FlagDate).Build()
	log.Infof("coarse clock message")

	if !strings.Contains(buf.String(), "coarse clock message") {
		t.Errorf("Expected 'coarse clock message' in output, got: %s", buf.String())
	}
}

func TestToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	h, err := filehandler.Open(path, 0, filehandler.WithEnv(fixedEnv()))
	if err != nil {
		t.Fatal(err)
	}
	defer h.Close()

	ToFile(h, InfoLevel, FlagFunc, "x=%d", 5)
	ToFile(nil, InfoLevel, FlagFunc, "ignored")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if want := "INFO:TestToFile\nx=5\n\n"; string(data) != want {
		t.Errorf("file content = %q, want %q", data, want)
	}
}

func TestToStream(t *testing.T) {
	var buf bytes.Buffer
	want := line() + 1
	ToStream(&buf, DebugLevel, FlagFunc|FlagLine, "x=%d", 5)

	expected := "DEBUG:TestToStream:" + strconv.Itoa(want) + "\nx=5\n\n"
	if buf.String() != expected {
		t.Errorf("output = %q, want %q", buf.String(), expected)
	}
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("WARNING")
	if err != nil || lvl != WarningLevel {
		t.Errorf("ParseLevel(WARNING) = %v, %v", lvl, err)
	}
	if _, err := ParseLevel("fatal"); err == nil {
		t.Error("expected error for unknown level")
	}
}
