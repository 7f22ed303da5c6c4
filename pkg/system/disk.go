// Package system reports host facts the doctor command checks before an export.
package system

import (
	"errors"
	"fmt"
	"path/filepath"
)

// ErrUnsupported is returned where the platform offers no disk statistics
var ErrUnsupported = errors.New("disk statistics are not available on this platform")

// DiskUsage describes the volume holding a path, in bytes
type DiskUsage struct {
	Path      string `json:"path"`
	Total     uint64 `json:"total"`
	Free      uint64 `json:"free"`
	Available uint64 `json:"available"` // free space usable by this process
	Used      uint64 `json:"used"`
}

// UsedPct returns the used share of the volume in percent
func (d *DiskUsage) UsedPct() float64 {
	if d.Total == 0 {
		return 0
	}
	return float64(d.Used) / float64(d.Total) * 100
}

// CheckDiskSpace returns usage for the volume containing path
func CheckDiskSpace(path string) (*DiskUsage, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	usage, err := getDiskUsage(absPath)
	if err != nil {
		return nil, err
	}
	usage.Path = absPath
	return usage, nil
}

// FormatBytes renders a byte count with a binary unit, e.g. "1.5 GiB"
func FormatBytes(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := uint64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
