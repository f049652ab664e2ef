package core

import (
	"path/filepath"
	"runtime"
	"strings"
)

// Caller identifies the source location that issued a record
type Caller struct {
	File     string
	Function string
	Line     int
}

// CallerAt returns the location skip frames above its caller.
// CallerAt(0) describes the function calling CallerAt.
func CallerAt(skip int) Caller {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Caller{}
	}
	return callerFromPC(pc, file, line)
}

// CallerFromPC resolves a program counter, as stored by log/slog records
func CallerFromPC(pc uintptr) Caller {
	if pc == 0 {
		return Caller{}
	}
	frames := runtime.CallersFrames([]uintptr{pc})
	f, _ := frames.Next()
	return Caller{
		File:     f.File,
		Function: ShortFunction(f.Function),
		Line:     f.Line,
	}
}

func callerFromPC(pc uintptr, file string, line int) Caller {
	var funcName string
	if fn := runtime.FuncForPC(pc); fn != nil {
		funcName = ShortFunction(fn.Name())
	}
	return Caller{
		File:     file,
		Function: funcName,
		Line:     line,
	}
}

// ShortFile returns the base name of the caller's file
func (c Caller) ShortFile() string {
	if c.File == "" {
		return ""
	}
	return filepath.Base(c.File)
}

// ShortFunction strips the import path and package name from a
// fully qualified function name: "example.com/pkg.(*T).Run" becomes "(*T).Run".
func ShortFunction(name string) string {
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}
