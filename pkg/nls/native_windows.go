//go:build windows

package nls

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/huanfeng/localecsv/pkg/models"
	"golang.org/x/sys/windows"
)

const (
	localeAll      = 0 // LOCALE_ALL
	maxDefaultChar = 2
	maxLeadBytes   = 12
	maxPath        = 260
)

var (
	kernel32                = windows.NewLazySystemDLL("kernel32.dll")
	procEnumSystemLocalesEx = kernel32.NewProc("EnumSystemLocalesEx")
	procLocaleNameToLCID    = kernel32.NewProc("LocaleNameToLCID")
	procGetLocaleInfoW      = kernel32.NewProc("GetLocaleInfoW")
	procGetCPInfoExW        = kernel32.NewProc("GetCPInfoExW")
)

// cpInfoEx matches CPINFOEXW
type cpInfoEx struct {
	MaxCharSize        uint32
	DefaultChar        [maxDefaultChar]byte
	LeadByte           [maxLeadBytes]byte
	UnicodeDefaultChar uint16
	CodePage           uint32
	CodePageName       [maxPath]uint16
}

// NewCallback slots are never released, so the enumeration callback is created
// once and feeds a package-level buffer guarded by enumMu.
var (
	enumOnce     sync.Once
	enumCallback uintptr
	enumMu       sync.Mutex
	enumEntries  []models.LocaleEntry
)

type nativeCatalog struct{}

// Native returns the Windows NLS catalog backed by kernel32.
func Native() (Catalog, error) {
	for _, proc := range []*windows.LazyProc{procEnumSystemLocalesEx, procLocaleNameToLCID, procGetLocaleInfoW, procGetCPInfoExW} {
		if err := proc.Find(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnsupported, err)
		}
	}
	return nativeCatalog{}, nil
}

func (nativeCatalog) Locales() ([]models.LocaleEntry, error) {
	enumOnce.Do(func() {
		enumCallback = windows.NewCallback(func(name *uint16, flags uint32, _ uintptr) uintptr {
			enumEntries = append(enumEntries, models.LocaleEntry{
				Name:  windows.UTF16PtrToString(name),
				Flags: models.LocaleFlags(flags),
			})
			return 1 // continue
		})
	})

	enumMu.Lock()
	defer enumMu.Unlock()

	enumEntries = nil
	ret, _, err := procEnumSystemLocalesEx.Call(enumCallback, localeAll, 0, 0)
	entries := enumEntries
	enumEntries = nil
	if ret == 0 {
		return nil, fmt.Errorf("EnumSystemLocalesEx failed: %w", err)
	}
	return entries, nil
}

func (nativeCatalog) LCID(name string) (uint32, error) {
	namePtr, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return 0, fmt.Errorf("failed to convert locale name to UTF-16: %w", err)
	}

	ret, _, callErr := procLocaleNameToLCID.Call(uintptr(unsafe.Pointer(namePtr)), 0)
	if ret == 0 {
		return 0, fmt.Errorf("%w: LocaleNameToLCID(%s): %v", ErrNotFound, name, callErr)
	}
	return uint32(ret), nil
}

func (nativeCatalog) LocaleInfo(lcid uint32, field InfoField) (string, error) {
	// First call reports the required length including the terminating NUL.
	size, _, callErr := procGetLocaleInfoW.Call(uintptr(lcid), uintptr(field), 0, 0)
	if size == 0 {
		return "", fmt.Errorf("%w: GetLocaleInfoW(0x%04X, %s): %v", ErrNotFound, lcid, field, callErr)
	}

	buf := make([]uint16, size)
	n, _, callErr := procGetLocaleInfoW.Call(
		uintptr(lcid),
		uintptr(field),
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(len(buf)),
	)
	if n == 0 {
		return "", fmt.Errorf("%w: GetLocaleInfoW(0x%04X, %s): %v", ErrNotFound, lcid, field, callErr)
	}
	return windows.UTF16ToString(buf[:n]), nil
}

func (nativeCatalog) CodePageName(codePage uint32) (string, error) {
	var info cpInfoEx
	ret, _, callErr := procGetCPInfoExW.Call(uintptr(codePage), 0, uintptr(unsafe.Pointer(&info)))
	if ret == 0 {
		return "", fmt.Errorf("%w: GetCPInfoExW(%d): %v", ErrNotFound, codePage, callErr)
	}
	return windows.UTF16ToString(info.CodePageName[:]), nil
}
