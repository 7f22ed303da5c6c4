//go:build !windows

package nls

// Native returns the platform locale catalog. Only Windows provides one; elsewhere use a snapshot.
func Native() (Catalog, error) {
	return nil, ErrUnsupported
}
