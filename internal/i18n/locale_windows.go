//go:build windows

package i18n

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

const localeNameMaxLength = 85

var (
	kernel32                     = windows.NewLazySystemDLL("kernel32.dll")
	procGetUserDefaultLocaleName = kernel32.NewProc("GetUserDefaultLocaleName")
)

// getPlatformLocales returns the user's preferred UI languages, falling back to the default locale name.
func getPlatformLocales() []string {
	var locales []string

	if langs, err := windows.GetUserPreferredUILanguages(windows.MUI_LANGUAGE_NAME); err == nil {
		for _, l := range langs {
			if l != "" {
				locales = append(locales, l)
			}
		}
	}

	if len(locales) == 0 && procGetUserDefaultLocaleName.Find() == nil {
		buf := make([]uint16, localeNameMaxLength)
		ret, _, _ := procGetUserDefaultLocaleName.Call(uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
		if ret != 0 {
			if name := windows.UTF16ToString(buf); name != "" {
				locales = append(locales, name)
			}
		}
	}

	return locales
}
