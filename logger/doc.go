// Package logger is the public API of tinylog. Most users only need to
// import this package.
//
// ToFile and ToStream log a single record and capture the caller's
// file, function and line when the flags ask for them:
//
//	logger.ToStream(os.Stdout, logger.InfoLevel, logger.FlagsAll, "x=%d", 5)
//
// A Logger bundles a sink with a set of flags. It is immutable after
// construction and safe for concurrent use when its sink is:
//
//	log := logger.NewBuilder().
//	    WithSink(fileHandler).
//	    WithFlags(logger.FlagsAllFile).
//	    Build()
//	log.Warningf("disk at %d%%", 91)
//
// There is no level filtering and no package-level default logger.
// Warning and critical records carry the description of the last
// system error recorded by the sinks.
package logger
