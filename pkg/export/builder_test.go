package export

import (
	"testing"

	"github.com/huanfeng/localecsv/pkg/models"
	"github.com/huanfeng/localecsv/pkg/nls"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_EnglishUnitedStates(t *testing.T) {
	catalog := newTestCatalog(t, testLocales())
	b := newTestBuilder(t, catalog)

	record, reason := b.Build(models.LocaleEntry{Name: "en-US"})
	require.False(t, reason.Skipped())

	assert.Equal(t, []string{
		"en-US",
		"0x0409",
		"1252",
		"1252  (ANSI - Latin I)",
		"437",
		"437   (OEM - United States)",
		"English (United States)",
		"English",
		"United States",
		"Latn",
	}, record.Fields())
}

func TestBuild_SkipsZeroANSICodePage(t *testing.T) {
	b := newTestBuilder(t, newTestCatalog(t, testLocales()))

	_, reason := b.Build(models.LocaleEntry{Name: "hi-IN"})
	assert.Equal(t, SkipANSIZero, reason)
}

func TestBuild_SkipsUnresolvedLCID(t *testing.T) {
	b := newTestBuilder(t, newTestCatalog(t, testLocales()))

	_, reason := b.Build(models.LocaleEntry{Name: "x-unresolved"})
	assert.Equal(t, SkipLCID, reason)

	_, reason = b.Build(models.LocaleEntry{Name: "not-in-catalog"})
	assert.Equal(t, SkipLCID, reason)
}

func TestBuild_SkipsUnreadableANSICodePage(t *testing.T) {
	catalog := newTestCatalog(t, []nls.SnapshotLocale{
		{Name: "aa-ET", LCID: 0x1000, Info: map[string]string{"oem_code_page": "437"}},
		{Name: "bb-ET", LCID: 0x1001, Info: map[string]string{"ansi_code_page": "n/a"}},
	})
	b := newTestBuilder(t, catalog)

	_, reason := b.Build(models.LocaleEntry{Name: "aa-ET"})
	assert.Equal(t, SkipANSILookup, reason)

	_, reason = b.Build(models.LocaleEntry{Name: "bb-ET"})
	assert.Equal(t, SkipANSILookup, reason)
}

func TestBuild_UnknownCodePageName(t *testing.T) {
	catalog := newTestCatalog(t, []nls.SnapshotLocale{
		{Name: "vi-VN", LCID: 0x042A, Info: map[string]string{
			"ansi_code_page": "1258",
			"oem_code_page":  "1258",
		}},
	})
	b := newTestBuilder(t, catalog)

	record, reason := b.Build(models.LocaleEntry{Name: "vi-VN"})
	require.False(t, reason.Skipped())
	assert.Equal(t, "Unknown", record.ANSICharset)
	assert.Equal(t, "1258", record.OEMCodePage)
	assert.Equal(t, "Unknown", record.OEMCharset)
}

func TestBuild_AbsentOEMCodePage(t *testing.T) {
	catalog := newTestCatalog(t, []nls.SnapshotLocale{
		{Name: "zero-oem", LCID: 0x2000, Info: map[string]string{"ansi_code_page": "1252", "oem_code_page": "0"}},
		{Name: "missing-oem", LCID: 0x2001, Info: map[string]string{"ansi_code_page": "1252"}},
	})
	b := newTestBuilder(t, catalog)

	for _, name := range []string{"zero-oem", "missing-oem"} {
		record, reason := b.Build(models.LocaleEntry{Name: name})
		require.False(t, reason.Skipped(), name)
		assert.Equal(t, "0", record.OEMCodePage, name)
		assert.Empty(t, record.OEMCharset, name)
		assert.Equal(t, "1252  (ANSI - Latin I)", record.ANSICharset, name)
	}
}

func TestBuild_MissingDescriptiveFields(t *testing.T) {
	catalog := newTestCatalog(t, []nls.SnapshotLocale{
		{Name: "sparse", LCID: 0x3000, Info: map[string]string{"ansi_code_page": "1252", "english_language": "Sparse"}},
	})

	record, reason := newTestBuilder(t, catalog).Build(models.LocaleEntry{Name: "sparse"})
	require.False(t, reason.Skipped())
	assert.Empty(t, record.NativeLanguage)
	assert.Equal(t, "Sparse", record.EnglishLanguage)
	assert.Empty(t, record.Country)
	assert.Empty(t, record.Script)

	record, _ = newTestBuilder(t, catalog, WithMissingField("n/a")).Build(models.LocaleEntry{Name: "sparse"})
	assert.Equal(t, "n/a", record.NativeLanguage)
	assert.Equal(t, "Sparse", record.EnglishLanguage)
	assert.Equal(t, "n/a", record.Country)
	assert.Equal(t, "n/a", record.Script)
}

func TestBuild_IANACharsetNames(t *testing.T) {
	catalog := newTestCatalog(t, testLocales())
	charsets, err := NewCharsetNamer(CharsetNamesIANA, catalog)
	require.NoError(t, err)
	b := NewBuilder(catalog, charsets, WithLogger(quietLogger(t)))

	record, reason := b.Build(models.LocaleEntry{Name: "en-US"})
	require.False(t, reason.Skipped())
	assert.Equal(t, "windows-1252", record.ANSICharset)
	assert.Equal(t, "IBM437", record.OEMCharset)
}

func TestNewCharsetNamer_RejectsUnknownPolicy(t *testing.T) {
	_, err := NewCharsetNamer("ebcdic", nil)
	assert.Error(t, err)
}

func TestIANANamer_UnmappedCodePage(t *testing.T) {
	_, err := ianaNamer{}.CharsetName(1)
	assert.Error(t, err)
}
