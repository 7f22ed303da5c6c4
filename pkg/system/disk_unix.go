//go:build linux || darwin || freebsd || dragonfly

package system

import (
	"fmt"

	"golang.org/x/sys/unix"
)

func getDiskUsage(path string) (*DiskUsage, error) {
	var stat unix.Statfs_t
	if err := unix.Statfs(path, &stat); err != nil {
		return nil, fmt.Errorf("failed to get disk statistics: %w", err)
	}

	bsize := uint64(stat.Bsize)
	total := uint64(stat.Blocks) * bsize
	free := uint64(stat.Bfree) * bsize

	return &DiskUsage{
		Total:     total,
		Free:      free,
		Available: uint64(stat.Bavail) * bsize,
		Used:      total - free,
	}, nil
}
