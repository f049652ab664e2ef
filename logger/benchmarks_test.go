package logger

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/philipp01105/tinylog/core"
	"github.com/philipp01105/tinylog/handler/filehandler"
	"github.com/philipp01105/tinylog/handler/streamhandler"
)

// BenchmarkInfofNoFlags benchmarks Infof() with a bare prefix using a discard writer.
func BenchmarkInfofNoFlags(b *testing.B) {
	h := streamhandler.NewStreamHandler(streamhandler.StreamConfig{Writer: io.Discard})

	logger := NewBuilder().
		WithSink(h).
		WithFlags(0).
		Build()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		logger.Infof("test message")
	}
}

// BenchmarkInfofAllFlags benchmarks Infof() with every prefix field, caller included.
func BenchmarkInfofAllFlags(b *testing.B) {
	h := streamhandler.NewStreamHandler(streamhandler.StreamConfig{Writer: io.Discard})

	logger := NewBuilder().
		WithSink(h).
		WithFlags(FlagsAll).
		Build()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		logger.Infof("test message %d", i)
	}
}

// BenchmarkInfofCoarseClock benchmarks Infof() with date and time served by the coarse clock.
func BenchmarkInfofCoarseClock(b *testing.B) {
	h := streamhandler.NewStreamHandler(streamhandler.StreamConfig{
		Writer: io.Discard,
		Env:    core.CoarseEnv(),
	})

	logger := NewBuilder().
		WithSink(h).
		WithFlags(FlagDate | FlagTime).
		Build()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		logger.Infof("test message")
	}
}

// BenchmarkToFileRollOver benchmarks ToFile() with rotation checks enabled.
func BenchmarkToFileRollOver(b *testing.B) {
	h, err := filehandler.Open(filepath.Join(b.TempDir(), "bench.log"), 1<<30)
	if err != nil {
		b.Fatal(err)
	}
	defer h.Close()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		ToFile(h, InfoLevel, FlagsAllFile, "test message %d", i)
	}
}
