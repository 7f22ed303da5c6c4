package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocaleRecord_LCIDString(t *testing.T) {
	cases := map[uint32]string{
		0x0409:  "0x0409",
		0x7F:    "0x007F",
		0x1000:  "0x1000",
		0x0C0A:  "0x0C0A",
		0x10407: "0x10407",
	}
	for lcid, want := range cases {
		assert.Equal(t, want, LocaleRecord{LCID: lcid}.LCIDString())
	}
}

func TestLocaleRecord_FieldsMatchHeader(t *testing.T) {
	r := LocaleRecord{
		Name:            "en-US",
		LCID:            0x0409,
		ANSICodePage:    "1252",
		ANSICharset:     "ansi",
		OEMCodePage:     "437",
		OEMCharset:      "oem",
		NativeLanguage:  "native",
		EnglishLanguage: "english",
		Country:         "country",
		Script:          "script",
	}

	fields := r.Fields()
	require.Len(t, fields, len(RecordHeader))
	assert.Equal(t, []string{"en-US", "0x0409", "1252", "ansi", "437", "oem", "native", "english", "country", "script"}, fields)
}

func TestLocaleFlags(t *testing.T) {
	lf := LocaleWindows | LocaleNeutralData

	assert.True(t, lf.Has(LocaleWindows))
	assert.False(t, lf.Has(LocaleSpecificData))
	assert.Equal(t, []string{"windows", "neutral"}, lf.Names())
	assert.Equal(t, "windows|neutral", lf.String())
	assert.Equal(t, "none", LocaleFlags(0).String())

	parsed, err := ParseLocaleFlags([]string{"Neutral", " windows "})
	require.NoError(t, err)
	assert.Equal(t, lf, parsed)

	_, err = ParseLocaleFlags([]string{"sideways"})
	assert.Error(t, err)
}
