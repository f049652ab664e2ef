// Package config loads tinylog settings from YAML or JSON files.
//
// A config names the record level used by the command line tool, the
// log file with its rotation threshold and flags, and the stream
// target with its flags:
//
//	level: info
//	file:
//	  path: logs/app.log
//	  max_size: 5242880
//	  flags: [date, time, file, func, line, tid, pid, rollover]
//	stream:
//	  target: stdout
//	  flags: [date, time]
//
// A stream target other than stdout or stderr is a file path. Adding a
// rotate block hands that file to lumberjack, which keeps size-based
// backups independently of the file handler's numbered rotation.
package config
