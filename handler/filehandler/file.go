package filehandler

import (
	"bytes"
	"os"
	"sync"

	"github.com/philipp01105/tinylog/core"
	"github.com/philipp01105/tinylog/formatter"
	"github.com/philipp01105/tinylog/handler"
	"github.com/philipp01105/tinylog/internal/sysinfo"
)

// DefaultMaxSize is the rotation threshold used when none is given
const DefaultMaxSize int64 = 5 << 20

// FileHandler owns one open log file and its rotation state.
// It is safe for concurrent use.
type FileHandler struct {
	mu        sync.Mutex
	file      *os.File
	path      string
	name      rotationName
	maxSize   int64
	mode      os.FileMode
	formatter *formatter.Formatter
	stats     *handler.Stats

	// reused per record under mu
	prefix formatter.Prefix
	buf    bytes.Buffer
}

var (
	_ handler.Sink          = (*FileHandler)(nil)
	_ handler.StatsProvider = (*FileHandler)(nil)
)

// New creates a closed handler. Call Init to open a file.
func New(opts ...Option) *FileHandler {
	h := &FileHandler{}
	for _, opt := range opts {
		opt(h)
	}
	h.setDefaults()
	return h
}

// Open creates a handler writing to path. A maxSize <= 0 selects DefaultMaxSize.
func Open(path string, maxSize int64, opts ...Option) (*FileHandler, error) {
	h := New(opts...)
	if err := h.Init(path, maxSize); err != nil {
		return nil, err
	}
	return h, nil
}

func (h *FileHandler) setDefaults() {
	if h.formatter == nil {
		h.formatter = formatter.New(core.DefaultEnv())
	}
	if h.stats == nil {
		h.stats = handler.NewStats()
	}
	if h.mode == 0 {
		h.mode = DefaultFileMode
	}
}

// Init closes any open file and opens path for appending, creating it
// if needed. A path whose stem ends in "_<digit>" is treated as rotation
// file <digit>. On failure the handler is left closed and the error,
// an *OpenError, is also stored as the last system error.
func (h *FileHandler) Init(path string, maxSize int64) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.setDefaults()
	h.closeLocked()

	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	h.maxSize = maxSize

	clean, err := validatePath(path)
	if err != nil {
		sysinfo.RecordError(err)
		return &OpenError{Path: path, Err: err}
	}
	return h.openLocked(clean, parseRotationName(clean))
}

func (h *FileHandler) openLocked(path string, name rotationName) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, h.mode)
	if err != nil {
		sysinfo.RecordError(err)
		return &OpenError{Path: path, Err: err}
	}
	h.file = f
	h.path = path
	h.name = name
	return nil
}

// Close closes the current file. Closing a closed handler is a no-op.
func (h *FileHandler) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.closeLocked()
}

func (h *FileHandler) closeLocked() error {
	if h.file == nil {
		return nil
	}
	err := h.file.Close()
	h.file = nil
	if err != nil {
		sysinfo.RecordError(err)
	}
	return err
}

// Path returns the path of the current file, which changes on rotation
func (h *FileHandler) Path() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.path
}

// Index returns the rotation index of the current file, or -1 for the base file
func (h *FileHandler) Index() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.name.index
}

// MaxSize returns the rotation threshold in bytes
func (h *FileHandler) MaxSize() int64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.maxSize
}

// IsOpen reports whether the handler has an open file
func (h *FileHandler) IsOpen() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.file != nil
}

// Size returns the size of the current file
func (h *FileHandler) Size() (int64, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.sizeLocked()
}

func (h *FileHandler) sizeLocked() (int64, error) {
	if h.file == nil {
		return 0, os.ErrClosed
	}
	info, err := h.file.Stat()
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

// Stats returns a snapshot of the handler's counters
func (h *FileHandler) Stats() handler.Snapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.setDefaults()
	return h.stats.GetSnapshot()
}
