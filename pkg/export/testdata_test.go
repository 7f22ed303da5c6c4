package export

import (
	"errors"
	"testing"

	"github.com/huanfeng/localecsv/pkg/models"
	"github.com/huanfeng/localecsv/pkg/nls"
	"github.com/huanfeng/localecsv/pkg/utils"
	"github.com/stretchr/testify/require"
)

var testCodePages = map[string]string{
	"1252": "1252  (ANSI - Latin I)",
	"437":  "437   (OEM - United States)",
	"850":  "850   (OEM - Multilingual Latin I)",
	"1251": "1251  (ANSI - Cyrillic)",
	"866":  "866   (OEM - Russian)",
}

func testLocales() []nls.SnapshotLocale {
	return []nls.SnapshotLocale{
		{
			Name:  "ru-RU",
			Flags: []string{"windows", "specific"},
			LCID:  0x0419,
			Info: map[string]string{
				"ansi_code_page":   "1251",
				"oem_code_page":    "866",
				"native_language":  "русский",
				"english_language": "Russian",
				"country":          "Russia",
				"scripts":          "Cyrl;",
			},
		},
		{
			Name:  "en-US",
			Flags: []string{"windows", "specific"},
			LCID:  0x0409,
			Info: map[string]string{
				"ansi_code_page":   "1252",
				"oem_code_page":    "437",
				"native_language":  "English (United States)",
				"english_language": "English",
				"country":          "United States",
				"scripts":          "Latn",
			},
		},
		{
			// Unicode-only locale: no ANSI code page
			Name:  "hi-IN",
			Flags: []string{"windows", "specific"},
			LCID:  0x0439,
			Info: map[string]string{
				"ansi_code_page":   "0",
				"oem_code_page":    "1",
				"native_language":  "हिंदी",
				"english_language": "Hindi",
				"country":          "India",
				"scripts":          "Deva;",
			},
		},
		{
			Name:  "x-unresolved",
			Flags: []string{"supplemental"},
		},
		{
			Name:  "de-DE",
			Flags: []string{"windows", "specific"},
			LCID:  0x0407,
			Info: map[string]string{
				"ansi_code_page":   "1252",
				"oem_code_page":    "850",
				"native_language":  "Deutsch",
				"english_language": "German",
				"country":          "Germany",
				"scripts":          "Latn;",
			},
		},
	}
}

func newTestCatalog(t *testing.T, locales []nls.SnapshotLocale) *nls.Snapshot {
	t.Helper()
	s, err := nls.NewSnapshot("test", locales, testCodePages)
	require.NoError(t, err)
	return s
}

func newTestBuilder(t *testing.T, catalog nls.Catalog, opts ...BuilderOption) *Builder {
	t.Helper()
	charsets, err := NewCharsetNamer(CharsetNamesPlatform, catalog)
	require.NoError(t, err)
	return NewBuilder(catalog, charsets, append([]BuilderOption{WithLogger(quietLogger(t))}, opts...)...)
}

func quietLogger(t *testing.T) utils.Logger {
	t.Helper()
	cfg := utils.DefaultLoggerConfig()
	cfg.Output = discard{}
	cfg.Level = utils.LogLevelError
	logger, err := utils.NewLogger(cfg)
	require.NoError(t, err)
	return logger
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

// brokenCatalog fails the enumeration call itself
type brokenCatalog struct {
	nls.Catalog
}

var errCatalogDown = errors.New("catalog unavailable")

func (brokenCatalog) Locales() ([]models.LocaleEntry, error) {
	return nil, errCatalogDown
}

var errDiskFull = errors.New("disk full")

// failingSink rejects every write
type failingSink struct{}

func (failingSink) Write(p []byte) (int, error) { return 0, errDiskFull }

// countingCatalog records how often the catalog was enumerated
type countingCatalog struct {
	nls.Catalog
	enumerations int
}

func (c *countingCatalog) Locales() ([]models.LocaleEntry, error) {
	c.enumerations++
	return c.Catalog.Locales()
}
