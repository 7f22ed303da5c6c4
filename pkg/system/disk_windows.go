//go:build windows

package system

import (
	"fmt"

	"golang.org/x/sys/windows"
)

func getDiskUsage(path string) (*DiskUsage, error) {
	pathPtr, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return nil, fmt.Errorf("failed to convert path to UTF-16: %w", err)
	}

	var available, total, free uint64
	if err := windows.GetDiskFreeSpaceEx(pathPtr, &available, &total, &free); err != nil {
		return nil, fmt.Errorf("GetDiskFreeSpaceEx failed: %w", err)
	}

	return &DiskUsage{
		Total:     total,
		Free:      free,
		Available: available,
		Used:      total - free,
	}, nil
}
