package logger_test

import (
	"os"

	"github.com/philipp01105/tinylog/handler/streamhandler"
	"github.com/philipp01105/tinylog/logger"
)

// Log one record to stdout, capturing the calling function.
func ExampleToStream() {
	logger.ToStream(os.Stdout, logger.InfoLevel, logger.FlagFunc, "x=%d", 5)
	// Output:
	// INFO:ExampleToStream
	// x=5
}

// Create a Logger with the Builder pattern.
func ExampleNewBuilder() {
	h := streamhandler.NewStreamHandler(streamhandler.StreamConfig{Writer: os.Stdout})

	log := logger.NewBuilder().
		WithSink(h).
		WithFlags(0).
		Build()
	defer log.Close()

	log.Debugf("ready on port %d", 8080)
	// Output:
	// DEBUG
	// ready on port 8080
}
