//go:build !windows && !linux && !darwin && !freebsd && !dragonfly

package system

func getDiskUsage(path string) (*DiskUsage, error) {
	return nil, ErrUnsupported
}
