//go:build !windows

package i18n

// getPlatformLocales returns nil; other platforms rely on the environment variables.
func getPlatformLocales() []string {
	return nil
}
