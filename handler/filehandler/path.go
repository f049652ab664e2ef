package filehandler

import (
	"path/filepath"
	"strconv"
	"strings"
)

const (
	// MaxPathLen is the longest file path, in bytes, a handler will open
	MaxPathLen = 255

	// RollOverMax is the number of numbered files rotation cycles through
	RollOverMax = 10
)

// rotationName is a log file path split into the parts rotation varies.
// Candidates are always derived from these parts, so rotating never
// stacks suffixes.
type rotationName struct {
	dir   string // directory prefix including the trailing separator
	stem  string
	ext   string
	index int // -1 for the base file
}

// parseRotationName splits path into directory, stem, extension and
// rotation index. A stem ending in "_<digit>" names an existing rotation
// file; any other underscore belongs to the stem.
func parseRotationName(path string) rotationName {
	base := filepath.Base(path)
	name := rotationName{
		dir:   path[:len(path)-len(base)],
		stem:  base,
		index: -1,
	}

	if ext := filepath.Ext(base); ext != "" && ext != base {
		name.stem = strings.TrimSuffix(base, ext)
		name.ext = ext
	}

	if i := len(name.stem) - 2; i >= 1 && name.stem[i] == '_' {
		if d := name.stem[i+1]; d >= '0' && d <= '9' {
			name.index = int(d - '0')
			name.stem = name.stem[:i]
		}
	}
	return name
}

// candidate returns the path of rotation file i
func (n rotationName) candidate(i int) string {
	var sb strings.Builder
	sb.Grow(len(n.dir) + len(n.stem) + len(n.ext) + 3)
	sb.WriteString(n.dir)
	sb.WriteString(n.stem)
	sb.WriteByte('_')
	sb.WriteString(strconv.Itoa(i))
	sb.WriteString(n.ext)
	return sb.String()
}

// fits reports whether every candidate path stays within MaxPathLen
func (n rotationName) fits() bool {
	return len(n.candidate(RollOverMax-1)) <= MaxPathLen
}

// validatePath checks path and returns its cleaned form
func validatePath(path string) (string, error) {
	if path == "" {
		return "", ErrEmptyPath
	}
	if strings.IndexByte(path, 0) >= 0 {
		return "", ErrInvalidPath
	}
	path = filepath.Clean(path)
	if len(path) > MaxPathLen {
		return "", ErrPathTooLong
	}
	return path, nil
}
