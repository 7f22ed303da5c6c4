package models

import (
	"fmt"
	"strings"
)

// LocaleFlags mirrors the per-entry metadata flags reported by the locale catalog
type LocaleFlags uint32

const (
	LocaleWindows        LocaleFlags = 0x01
	LocaleSupplemental   LocaleFlags = 0x02
	LocaleAlternateSorts LocaleFlags = 0x04
	LocaleReplacement    LocaleFlags = 0x08
	LocaleNeutralData    LocaleFlags = 0x10
	LocaleSpecificData   LocaleFlags = 0x20
)

var localeFlagNames = []struct {
	flag LocaleFlags
	name string
}{
	{LocaleWindows, "windows"},
	{LocaleSupplemental, "supplemental"},
	{LocaleAlternateSorts, "alternate-sorts"},
	{LocaleReplacement, "replacement"},
	{LocaleNeutralData, "neutral"},
	{LocaleSpecificData, "specific"},
}

// Has reports whether all bits of f are set
func (lf LocaleFlags) Has(f LocaleFlags) bool {
	return lf&f == f
}

// Names returns the names of the set flags in a stable order
func (lf LocaleFlags) Names() []string {
	var names []string
	for _, fn := range localeFlagNames {
		if lf.Has(fn.flag) {
			names = append(names, fn.name)
		}
	}
	return names
}

// String returns the set flags joined with "|"
func (lf LocaleFlags) String() string {
	if lf == 0 {
		return "none"
	}
	return strings.Join(lf.Names(), "|")
}

// ParseLocaleFlags converts flag names back into a bit set
func ParseLocaleFlags(names []string) (LocaleFlags, error) {
	var lf LocaleFlags
	for _, name := range names {
		found := false
		for _, fn := range localeFlagNames {
			if strings.EqualFold(strings.TrimSpace(name), fn.name) {
				lf |= fn.flag
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("unknown locale flag %q", name)
		}
	}
	return lf, nil
}

// LocaleEntry is one item of the platform locale catalog
type LocaleEntry struct {
	Name  string      `json:"name"`
	Flags LocaleFlags `json:"flags"`
}

// LocaleRecord is one exported CSV row
type LocaleRecord struct {
	Name            string `json:"name"`
	LCID            uint32 `json:"lcid"`
	ANSICodePage    string `json:"ansi_code_page"`
	ANSICharset     string `json:"ansi_charset"`
	OEMCodePage     string `json:"oem_code_page"`
	OEMCharset      string `json:"oem_charset"`
	NativeLanguage  string `json:"native_language"`
	EnglishLanguage string `json:"english_language"`
	Country         string `json:"country"`
	Script          string `json:"script"`
}

// LCIDString renders the LCID as 0x-prefixed, zero-padded uppercase hex
func (r LocaleRecord) LCIDString() string {
	return fmt.Sprintf("0x%04X", r.LCID)
}

// Fields returns the record in CSV column order
func (r LocaleRecord) Fields() []string {
	return []string{
		r.Name,
		r.LCIDString(),
		r.ANSICodePage,
		r.ANSICharset,
		r.OEMCodePage,
		r.OEMCharset,
		r.NativeLanguage,
		r.EnglishLanguage,
		r.Country,
		r.Script,
	}
}

// RecordHeader is the fixed CSV header, in column order
var RecordHeader = []string{
	"Locale Name",
	"LCID",
	"ANSI CodePage",
	"ANSI Character Set",
	"OEM CodePage",
	"OEM Character Set",
	"Native Language Name",
	"English Language Name",
	"Country",
	"Script",
}
