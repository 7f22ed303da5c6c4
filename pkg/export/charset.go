package export

import (
	"fmt"
	"strings"

	"github.com/huanfeng/localecsv/pkg/nls"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

// UnknownCharset is the character-set name used when a code page cannot be described
const UnknownCharset = "Unknown"

// Charset naming policies
const (
	CharsetNamesPlatform = "platform"
	CharsetNamesIANA     = "iana"
)

// CharsetNamer resolves a code page to a human-readable character-set name
type CharsetNamer interface {
	CharsetName(codePage uint32) (string, error)
}

// NewCharsetNamer returns the namer for a policy
func NewCharsetNamer(policy string, catalog nls.Catalog) (CharsetNamer, error) {
	switch strings.ToLower(strings.TrimSpace(policy)) {
	case "", CharsetNamesPlatform:
		return platformNamer{catalog: catalog}, nil
	case CharsetNamesIANA:
		return ianaNamer{}, nil
	default:
		return nil, fmt.Errorf("unknown charset naming policy %q (use %q or %q)", policy, CharsetNamesPlatform, CharsetNamesIANA)
	}
}

// platformNamer asks the catalog, i.e. the names GetCPInfoExW reports
type platformNamer struct {
	catalog nls.Catalog
}

func (n platformNamer) CharsetName(codePage uint32) (string, error) {
	return n.catalog.CodePageName(codePage)
}

// windowsCodePages maps Windows code page identifiers to x/text encodings
var windowsCodePages = map[uint32]encoding.Encoding{
	37:    charmap.CodePage037,
	437:   charmap.CodePage437,
	850:   charmap.CodePage850,
	852:   charmap.CodePage852,
	855:   charmap.CodePage855,
	858:   charmap.CodePage858,
	860:   charmap.CodePage860,
	862:   charmap.CodePage862,
	863:   charmap.CodePage863,
	865:   charmap.CodePage865,
	866:   charmap.CodePage866,
	874:   charmap.Windows874,
	1047:  charmap.CodePage1047,
	1140:  charmap.CodePage1140,
	1200:  unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
	1201:  unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
	1250:  charmap.Windows1250,
	1251:  charmap.Windows1251,
	1252:  charmap.Windows1252,
	1253:  charmap.Windows1253,
	1254:  charmap.Windows1254,
	1255:  charmap.Windows1255,
	1256:  charmap.Windows1256,
	1257:  charmap.Windows1257,
	1258:  charmap.Windows1258,
	10000: charmap.Macintosh,
	10007: charmap.MacintoshCyrillic,
	20866: charmap.KOI8R,
	21866: charmap.KOI8U,
	28591: charmap.ISO8859_1,
	28592: charmap.ISO8859_2,
	28593: charmap.ISO8859_3,
	28594: charmap.ISO8859_4,
	28595: charmap.ISO8859_5,
	28596: charmap.ISO8859_6,
	28597: charmap.ISO8859_7,
	28598: charmap.ISO8859_8,
	28599: charmap.ISO8859_9,
	28603: charmap.ISO8859_13,
	28605: charmap.ISO8859_15,
	65001: unicode.UTF8,

	932:   japanese.ShiftJIS,
	20932: japanese.EUCJP,
	50220: japanese.ISO2022JP,
	50221: japanese.ISO2022JP,
	50222: japanese.ISO2022JP,

	949: korean.EUCKR,
	936: simplifiedchinese.GBK,

	950:   traditionalchinese.Big5,
	54936: simplifiedchinese.GB18030,
}

// ianaNamer names code pages by their IANA registry name (e.g. "windows-1252", "IBM437")
type ianaNamer struct{}

func (ianaNamer) CharsetName(codePage uint32) (string, error) {
	enc, ok := windowsCodePages[codePage]
	if !ok {
		return "", fmt.Errorf("no encoding known for code page %d", codePage)
	}
	name, err := ianaindex.IANA.Name(enc)
	if err != nil {
		return "", fmt.Errorf("code page %d has no IANA name: %w", codePage, err)
	}
	return name, nil
}
