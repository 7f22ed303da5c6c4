package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func envOf(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func TestNormalizeLocale(t *testing.T) {
	assert.Equal(t, "zh-CN", normalizeLocale("zh_CN.UTF-8"))
	assert.Equal(t, "de-DE", normalizeLocale("de_DE@euro"))
	assert.Equal(t, "en-US", normalizeLocale(" en-US "))
}

func TestCandidateLocales_Order(t *testing.T) {
	env := envOf(map[string]string{
		"LOCALECSV_LANG": "zh",
		"LC_ALL":         "C",
		"LANG":           "en_US.UTF-8",
	})
	platform := func() []string { return []string{"fr-FR"} }

	got := candidateLocales("de", env, platform)
	assert.Equal(t, []string{"de", "zh", "en_US.UTF-8"}, got)
}

func TestCandidateLocales_PlatformFallback(t *testing.T) {
	env := envOf(map[string]string{"LANG": "POSIX"})
	platform := func() []string { return []string{"zh-CN", "en-US"} }

	assert.Equal(t, []string{"zh-CN", "en-US"}, candidateLocales("", env, platform))
	assert.Empty(t, candidateLocales("", env, nil))
}

func TestSelectLanguage(t *testing.T) {
	assert.Equal(t, language.Chinese, selectLanguage([]string{"zh_CN.UTF-8"}))
	assert.Equal(t, language.English, selectLanguage([]string{"en-GB"}))
	assert.Equal(t, language.English, selectLanguage(nil))
	assert.Equal(t, language.English, selectLanguage([]string{"not a tag!"}))
}

func TestT_English(t *testing.T) {
	require.NoError(t, Init("en"))
	assert.Equal(t, language.English, CurrentLanguage())

	assert.Equal(t, "CSV file 'out.csv' has been created.",
		T("cmd.export.done", map[string]interface{}{"output": "out.csv"}))
	assert.Equal(t, "1 of 1 locale written, 0 skipped",
		T("cmd.export.summary", map[string]interface{}{"written": 1, "total": 1, "skipped": 0}))
	assert.Equal(t, "2 of 3 locales written, 1 skipped",
		T("cmd.export.summary", map[string]interface{}{"written": 2, "total": 3, "skipped": 1}))
	assert.Equal(t, "no.such.message", T("no.such.message"))
}

func TestT_Chinese(t *testing.T) {
	require.NoError(t, Init("zh-CN"))
	t.Cleanup(func() { _ = Init("en") })

	assert.Equal(t, language.Chinese, CurrentLanguage())
	assert.Equal(t, "CSV 文件 'out.csv' 已创建。",
		T("cmd.export.done", map[string]interface{}{"output": "out.csv"}))
}
