// Package nls exposes the host's locale catalog as plain lookups.
package nls

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/huanfeng/localecsv/pkg/models"
	"golang.org/x/text/language"
)

// InfoField identifies a locale property. Values match the Windows LCTYPE constants.
type InfoField uint32

const (
	FieldNativeLanguage  InfoField = 0x0004 // LOCALE_SNATIVELANGNAME
	FieldOEMCodePage     InfoField = 0x000B // LOCALE_IDEFAULTCODEPAGE
	FieldEnglishLanguage InfoField = 0x1001 // LOCALE_SENGLISHLANGUAGENAME
	FieldEnglishCountry  InfoField = 0x1002 // LOCALE_SENGCOUNTRY
	FieldANSICodePage    InfoField = 0x1004 // LOCALE_IDEFAULTANSICODEPAGE
	FieldScripts         InfoField = 0x006C // LOCALE_SSCRIPTS
)

// InfoFields lists every property the exporter reads
var InfoFields = []InfoField{
	FieldANSICodePage,
	FieldOEMCodePage,
	FieldNativeLanguage,
	FieldEnglishLanguage,
	FieldEnglishCountry,
	FieldScripts,
}

var infoFieldKeys = map[InfoField]string{
	FieldNativeLanguage:  "native_language",
	FieldOEMCodePage:     "oem_code_page",
	FieldEnglishLanguage: "english_language",
	FieldEnglishCountry:  "country",
	FieldANSICodePage:    "ansi_code_page",
	FieldScripts:         "scripts",
}

// Key returns the snapshot key for the field
func (f InfoField) Key() string {
	if k, ok := infoFieldKeys[f]; ok {
		return k
	}
	return fmt.Sprintf("lctype_0x%04x", uint32(f))
}

func (f InfoField) String() string {
	return f.Key()
}

var (
	// ErrUnsupported is returned when no native catalog exists on this platform
	ErrUnsupported = errors.New("native locale catalog is not available on this platform")
	// ErrNotFound is returned when a locale, property or code page is unknown to the catalog
	ErrNotFound = errors.New("not found")
)

// Catalog is the read-only view of a platform's locale metadata
type Catalog interface {
	// Locales returns every locale the platform knows, in platform order.
	Locales() ([]models.LocaleEntry, error)
	// LCID resolves a locale name to its numeric identifier.
	LCID(name string) (uint32, error)
	// LocaleInfo reads one property of a locale.
	LocaleInfo(lcid uint32, field InfoField) (string, error)
	// CodePageName returns the platform's display name of a code page.
	CodePageName(codePage uint32) (string, error)
}

// ParseCodePage parses a code page property value. "0" parses to 0, which callers treat as absent.
func ParseCodePage(value string) (uint32, error) {
	cp, err := strconv.ParseUint(strings.TrimSpace(value), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid code page %q: %w", value, err)
	}
	return uint32(cp), nil
}

// NonBCP47 lists entry names that golang.org/x/text cannot parse as BCP 47 tags.
func NonBCP47(entries []models.LocaleEntry) []string {
	var names []string
	for _, entry := range entries {
		if entry.Name == "" {
			continue
		}
		if _, err := language.Parse(entry.Name); err != nil {
			names = append(names, entry.Name)
		}
	}
	return names
}
