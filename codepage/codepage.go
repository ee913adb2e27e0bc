package codepage

import (
	"strconv"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"

	"github.com/wippyai/winutf8io/errors"
)

// EnvVar names the environment variable that forces the legacy code page.
const EnvVar = "WINUTF8IO_CODEPAGE"

// ID is a Windows code page identifier.
type ID uint32

// Pseudo code pages resolved by the platform.
const (
	ACP   ID = 0 // system ANSI code page
	OEMCP ID = 1 // system OEM code page
)

const (
	IBM437      ID = 437
	IBM850      ID = 850
	IBM866      ID = 866
	Windows874  ID = 874
	ShiftJIS    ID = 932
	GBK         ID = 936
	EUCKR       ID = 949
	Big5        ID = 950
	UTF16LE     ID = 1200
	UTF16BE     ID = 1201
	Windows1250 ID = 1250
	Windows1251 ID = 1251
	Windows1252 ID = 1252
	Windows1253 ID = 1253
	Windows1254 ID = 1254
	Windows1255 ID = 1255
	Windows1256 ID = 1256
	Windows1257 ID = 1257
	Windows1258 ID = 1258
	KOI8R       ID = 20866
	EUCJP       ID = 20932
	KOI8U       ID = 21866
	ISO88591    ID = 28591
	ISO88592    ID = 28592
	ISO88595    ID = 28595
	ISO88597    ID = 28597
	ISO885915   ID = 28605
	ISO2022JP   ID = 50220
	GB18030     ID = 54936
	UTF8        ID = 65001
)

type entry struct {
	enc  encoding.Encoding
	name string
}

var registry = map[ID]entry{
	IBM437:      {charmap.CodePage437, "ibm437"},
	IBM850:      {charmap.CodePage850, "ibm850"},
	IBM866:      {charmap.CodePage866, "ibm866"},
	Windows874:  {charmap.Windows874, "windows-874"},
	ShiftJIS:    {japanese.ShiftJIS, "shift_jis"},
	GBK:         {simplifiedchinese.GBK, "gbk"},
	EUCKR:       {korean.EUCKR, "euc-kr"},
	Big5:        {traditionalchinese.Big5, "big5"},
	UTF16LE:     {unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), "utf-16le"},
	UTF16BE:     {unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), "utf-16be"},
	Windows1250: {charmap.Windows1250, "windows-1250"},
	Windows1251: {charmap.Windows1251, "windows-1251"},
	Windows1252: {charmap.Windows1252, "windows-1252"},
	Windows1253: {charmap.Windows1253, "windows-1253"},
	Windows1254: {charmap.Windows1254, "windows-1254"},
	Windows1255: {charmap.Windows1255, "windows-1255"},
	Windows1256: {charmap.Windows1256, "windows-1256"},
	Windows1257: {charmap.Windows1257, "windows-1257"},
	Windows1258: {charmap.Windows1258, "windows-1258"},
	KOI8R:       {charmap.KOI8R, "koi8-r"},
	EUCJP:       {japanese.EUCJP, "euc-jp"},
	KOI8U:       {charmap.KOI8U, "koi8-u"},
	ISO88591:    {charmap.ISO8859_1, "iso-8859-1"},
	ISO88592:    {charmap.ISO8859_2, "iso-8859-2"},
	ISO88595:    {charmap.ISO8859_5, "iso-8859-5"},
	ISO88597:    {charmap.ISO8859_7, "iso-8859-7"},
	ISO885915:   {charmap.ISO8859_15, "iso-8859-15"},
	ISO2022JP:   {japanese.ISO2022JP, "iso-2022-jp"},
	GB18030:     {simplifiedchinese.GB18030, "gb18030"},
	UTF8:        {unicode.UTF8, "utf-8"},
}

// Encoding returns the x/text encoding for a concrete code page.
// ACP and OEMCP must be resolved by the caller first.
func Encoding(id ID) (encoding.Encoding, bool) {
	e, ok := registry[id]
	return e.enc, ok
}

// Known reports whether id has an encoding in the registry.
func Known(id ID) bool {
	_, ok := registry[id]
	return ok
}

// String returns the canonical name of the code page, or "cp<N>" when
// the code page is not in the registry.
func (id ID) String() string {
	switch id {
	case ACP:
		return "acp"
	case OEMCP:
		return "oemcp"
	}
	if e, ok := registry[id]; ok {
		return e.name
	}
	return "cp" + strconv.FormatUint(uint64(id), 10)
}

// Parse resolves a code page from a number ("1252"), a Windows style
// name ("cp1252", "windows-1252") or any WHATWG encoding label
// ("latin1", "sjis", "utf8").
func Parse(s string) (ID, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return 0, errors.InvalidInput(errors.PhaseConfig, "empty code page")
	}
	switch name {
	case "acp":
		return ACP, nil
	case "oemcp":
		return OEMCP, nil
	}

	num := strings.TrimPrefix(name, "cp")
	if n, err := strconv.ParseUint(num, 10, 32); err == nil {
		return ID(n), nil
	}

	for id, e := range registry {
		if e.name == name {
			return id, nil
		}
	}

	enc, err := htmlindex.Get(name)
	if err != nil {
		return 0, errors.New(errors.PhaseConfig, errors.KindUnsupported).
			Detail("unknown code page %q", s).
			Cause(err).
			Build()
	}
	canonical, err := htmlindex.Name(enc)
	if err == nil {
		for id, e := range registry {
			if e.name == canonical {
				return id, nil
			}
		}
	}
	return 0, errors.New(errors.PhaseConfig, errors.KindUnsupported).
		Detail("code page %q has no Windows identifier", s).
		Build()
}
