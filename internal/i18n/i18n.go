// Package i18n localizes the CLI's own messages. Exported CSV data is never translated.
package i18n

import (
	"embed"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

var (
	bundle          *goi18n.Bundle
	localizer       *goi18n.Localizer
	currentLanguage = language.English
	supported       = []language.Tag{
		language.English,
		language.Chinese,
	}
	matcher = language.NewMatcher(supported)
)

//go:embed locales/*.toml
var localeFS embed.FS

// messageFiles are loaded in order; English must come first as the bundle default.
var messageFiles = []string{
	"locales/active.en.toml",
	"locales/active.zh.toml",
}

// Init loads the message bundle and picks the language from, in order:
// langOverride (--lang), LOCALECSV_LANG, LC_ALL, LC_MESSAGES, LANG,
// then the platform's preferred UI languages. English is the fallback.
func Init(langOverride string) error {
	b := goi18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, file := range messageFiles {
		if _, err := b.LoadMessageFileFS(localeFS, file); err != nil {
			return fmt.Errorf("load %s: %w", file, err)
		}
	}

	chosen := selectLanguage(candidateLocales(langOverride, os.Getenv, getPlatformLocales))

	bundle = b
	localizer = goi18n.NewLocalizer(bundle, chosen.String(), language.English.String())
	currentLanguage = chosen
	return nil
}

// T translates a message by ID with optional template data.
// The message ID itself is returned when no translation exists.
func T(id string, data ...map[string]interface{}) string {
	if localizer == nil {
		if err := Init(""); err != nil {
			fmt.Fprintf(os.Stderr, "i18n init failed: %v\n", err)
			return id
		}
	}

	var templateData map[string]interface{}
	if len(data) > 0 {
		templateData = data[0]
	}

	msg, err := localizer.Localize(&goi18n.LocalizeConfig{
		MessageID:      id,
		TemplateData:   templateData,
		PluralCount:    pluralCount(templateData),
		DefaultMessage: &goi18n.Message{ID: id, Other: id},
	})
	if err != nil || msg == "" {
		return id
	}
	return msg
}

// CurrentLanguage returns the chosen language tag
func CurrentLanguage() language.Tag {
	return currentLanguage
}

func candidateLocales(langOverride string, getenv func(string) string, platform func() []string) []string {
	var candidates []string
	if s := strings.TrimSpace(langOverride); s != "" {
		candidates = append(candidates, s)
	}
	for _, key := range []string{"LOCALECSV_LANG", "LC_ALL", "LC_MESSAGES", "LANG"} {
		if val := strings.TrimSpace(getenv(key)); val != "" && val != "C" && val != "POSIX" {
			candidates = append(candidates, val)
		}
	}
	// Windows rarely sets the POSIX variables.
	if len(candidates) == 0 && platform != nil {
		candidates = append(candidates, platform()...)
	}
	return candidates
}

// selectLanguage matches the first candidate that parses against the bundled languages
func selectLanguage(candidates []string) language.Tag {
	var tags []language.Tag
	for _, cand := range candidates {
		if tag, err := language.Parse(normalizeLocale(cand)); err == nil {
			tags = append(tags, tag)
		}
	}
	if len(tags) == 0 {
		return language.English
	}

	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return language.English
	}
	return supported[idx]
}

// normalizeLocale turns POSIX forms like zh_CN.UTF-8@euro into zh-CN
func normalizeLocale(s string) string {
	s = strings.TrimSpace(s)
	if idx := strings.IndexAny(s, ".@"); idx >= 0 {
		s = s[:idx]
	}
	return strings.ReplaceAll(s, "_", "-")
}

func pluralCount(data map[string]interface{}) interface{} {
	for _, key := range []string{"count", "Count", "total", "Total"} {
		if val, ok := data[key]; ok {
			return val
		}
	}
	return nil
}
