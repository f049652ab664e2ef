package filehandler

import (
	"github.com/philipp01105/tinylog/internal/sysinfo"
)

// rotateIfNeeded moves to a rotation file when the current file exceeds
// maxSize. It returns false when the pending record must be dropped:
// the candidate paths are too long, or every candidate is full.
func (h *FileHandler) rotateIfNeeded() bool {
	size, err := h.sizeLocked()
	if err != nil {
		sysinfo.RecordError(err)
		return true
	}
	if size <= h.maxSize {
		return true
	}
	if !h.name.fits() {
		return false
	}

	for i := 0; i < RollOverMax; i++ {
		h.closeLocked()

		next := h.name
		next.index = i
		if err := h.openLocked(next.candidate(i), next); err != nil {
			continue
		}

		size, err := h.sizeLocked()
		if err == nil && size < h.maxSize {
			h.stats.IncrementRotations()
			return true
		}
	}
	return false
}
