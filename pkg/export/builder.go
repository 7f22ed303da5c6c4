package export

import (
	"strconv"

	"github.com/huanfeng/localecsv/pkg/models"
	"github.com/huanfeng/localecsv/pkg/nls"
	"github.com/huanfeng/localecsv/pkg/utils"
)

// SkipReason says why a locale produced no row. The zero value means the record was built.
type SkipReason string

const (
	SkipNone       SkipReason = ""
	SkipLCID       SkipReason = "lcid"
	SkipANSILookup SkipReason = "ansi-lookup"
	SkipANSIZero   SkipReason = "ansi-zero"
)

// Skipped reports whether the locale was left out of the export
func (r SkipReason) Skipped() bool {
	return r != SkipNone
}

// Builder turns one catalog entry into a LocaleRecord
type Builder struct {
	catalog      nls.Catalog
	charsets     CharsetNamer
	missingField string
	logger       utils.Logger
}

// BuilderOption configures a Builder
type BuilderOption func(*Builder)

// WithMissingField sets the text used when a descriptive property cannot be read
func WithMissingField(placeholder string) BuilderOption {
	return func(b *Builder) {
		b.missingField = placeholder
	}
}

// WithLogger sets the diagnostic logger
func WithLogger(logger utils.Logger) BuilderOption {
	return func(b *Builder) {
		b.logger = logger
	}
}

// NewBuilder creates a record builder over catalog. Code pages are named through charsets.
func NewBuilder(catalog nls.Catalog, charsets CharsetNamer, opts ...BuilderOption) *Builder {
	b := &Builder{
		catalog:  catalog,
		charsets: charsets,
		logger:   utils.GetGlobalLogger(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build resolves every column for entry. A non-empty SkipReason means no row must be written.
func (b *Builder) Build(entry models.LocaleEntry) (models.LocaleRecord, SkipReason) {
	log := b.logger.WithField("locale", entry.Name)
	log.Debug("Processing locale (flags: %s)", entry.Flags)

	lcid, err := b.catalog.LCID(entry.Name)
	if err != nil {
		log.Debug("Skipping: LCID not resolved: %v", err)
		return models.LocaleRecord{}, SkipLCID
	}

	ansiValue, err := b.catalog.LocaleInfo(lcid, nls.FieldANSICodePage)
	if err != nil {
		log.Debug("Skipping: ANSI code page unreadable: %v", err)
		return models.LocaleRecord{}, SkipANSILookup
	}
	ansi, err := nls.ParseCodePage(ansiValue)
	if err != nil {
		log.Debug("Skipping: %v", err)
		return models.LocaleRecord{}, SkipANSILookup
	}
	if ansi == 0 {
		log.Debug("Skipping: no ANSI code page")
		return models.LocaleRecord{}, SkipANSIZero
	}
	log.Debug("ANSI code page: %d", ansi)

	record := models.LocaleRecord{
		Name:            entry.Name,
		LCID:            lcid,
		ANSICodePage:    strconv.FormatUint(uint64(ansi), 10),
		ANSICharset:     b.charsetName(log, ansi),
		OEMCodePage:     "0",
		NativeLanguage:  b.describe(log, lcid, nls.FieldNativeLanguage),
		EnglishLanguage: b.describe(log, lcid, nls.FieldEnglishLanguage),
		Country:         b.describe(log, lcid, nls.FieldEnglishCountry),
		Script:          b.describe(log, lcid, nls.FieldScripts),
	}

	if oemValue, err := b.catalog.LocaleInfo(lcid, nls.FieldOEMCodePage); err != nil {
		log.Debug("OEM code page unreadable: %v", err)
	} else if oem, err := nls.ParseCodePage(oemValue); err != nil {
		log.Debug("OEM code page: %v", err)
	} else if oem != 0 {
		record.OEMCodePage = strconv.FormatUint(uint64(oem), 10)
		record.OEMCharset = b.charsetName(log, oem)
	}

	return record, SkipNone
}

func (b *Builder) describe(log utils.Logger, lcid uint32, field nls.InfoField) string {
	value, err := b.catalog.LocaleInfo(lcid, field)
	if err != nil {
		log.Debug("Property %s unavailable: %v", field, err)
		return b.missingField
	}
	return value
}

func (b *Builder) charsetName(log utils.Logger, codePage uint32) string {
	name, err := b.charsets.CharsetName(codePage)
	if err != nil || name == "" {
		log.Debug("Code page %d has no name: %v", codePage, err)
		return UnknownCharset
	}
	return name
}
