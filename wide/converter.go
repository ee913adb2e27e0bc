package wide

import (
	"bytes"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/transform"

	"github.com/wippyai/winutf8io/codepage"
	"github.com/wippyai/winutf8io/errors"
)

// Converter is the platform's byte <-> wide character service.
//
// Decode must be strict: bytes that are invalid under cp are an error,
// never silently replaced. Encode must reject ill-formed UTF-16 and
// characters the target code page cannot represent.
type Converter interface {
	Decode(cp codepage.ID, src []byte) ([]uint16, error)
	Encode(cp codepage.ID, src []uint16) ([]byte, error)
	SystemCodePage() codepage.ID
}

// TextConverter implements Converter with golang.org/x/text encodings.
// It is the converter used on hosts without MultiByteToWideChar and in
// tests that need a fixed system code page.
type TextConverter struct {
	system codepage.ID
	oem    codepage.ID
}

// NewTextConverter returns a converter that resolves codepage.ACP to
// system. codepage.OEMCP resolves to IBM437.
func NewTextConverter(system codepage.ID) *TextConverter {
	return &TextConverter{system: system, oem: codepage.IBM437}
}

// SystemCodePage returns the code page ACP resolves to.
func (c *TextConverter) SystemCodePage() codepage.ID {
	return c.system
}

func (c *TextConverter) resolve(cp codepage.ID) codepage.ID {
	switch cp {
	case codepage.ACP:
		return c.system
	case codepage.OEMCP:
		return c.oem
	}
	return cp
}

// Decode converts src from cp to UTF-16.
func (c *TextConverter) Decode(cp codepage.ID, src []byte) ([]uint16, error) {
	cp = c.resolve(cp)
	if cp == codepage.UTF8 {
		if !utf8.Valid(src) {
			e := errors.InvalidUTF8(errors.PhaseDecode, src)
			e.CodePage = cp.String()
			return nil, e
		}
		return appendUTF16(make([]uint16, 0, len(src)), src), nil
	}

	enc, ok := codepage.Encoding(cp)
	if !ok {
		return nil, errors.Unsupported(errors.PhaseDecode, "code page "+cp.String())
	}
	out, _, err := transform.Bytes(enc.NewDecoder(), src)
	if err != nil {
		return nil, errors.New(errors.PhaseDecode, errors.KindIllegalSequence).
			CodePage(cp.String()).
			Cause(err).
			Build()
	}
	// x/text decoders substitute U+FFFD for invalid input; a legacy code
	// page never produces it legitimately.
	if bytes.ContainsRune(out, utf8.RuneError) {
		return nil, errors.IllegalSequence(errors.PhaseDecode, cp.String(), src)
	}
	return appendUTF16(make([]uint16, 0, len(out)), out), nil
}

// Encode converts UTF-16 src to cp.
func (c *TextConverter) Encode(cp codepage.ID, src []uint16) ([]byte, error) {
	cp = c.resolve(cp)
	if err := validUTF16(src); err != nil {
		return nil, err
	}
	u := appendUTF8(make([]byte, 0, len(src)), src)
	if cp == codepage.UTF8 {
		return u, nil
	}

	enc, ok := codepage.Encoding(cp)
	if !ok {
		return nil, errors.Unsupported(errors.PhaseEncode, "code page "+cp.String())
	}
	out, _, err := transform.Bytes(enc.NewEncoder(), u)
	if err != nil {
		return nil, errors.New(errors.PhaseEncode, errors.KindIllegalSequence).
			CodePage(cp.String()).
			Cause(err).
			Build()
	}
	return out, nil
}

func appendUTF16(dst []uint16, src []byte) []uint16 {
	for len(src) > 0 {
		r, size := utf8.DecodeRune(src)
		dst = utf16.AppendRune(dst, r)
		src = src[size:]
	}
	return dst
}

func appendUTF8(dst []byte, src []uint16) []byte {
	for i := 0; i < len(src); i++ {
		r := rune(src[i])
		if utf16.IsSurrogate(r) {
			r = utf16.DecodeRune(r, rune(src[i+1]))
			i++
		}
		dst = utf8.AppendRune(dst, r)
	}
	return dst
}

// validUTF16 rejects unpaired surrogates.
func validUTF16(s []uint16) error {
	const (
		surr1 = 0xd800
		surr2 = 0xdc00
		surr3 = 0xe000
	)
	for i := 0; i < len(s); i++ {
		switch r := s[i]; {
		case r < surr1, surr3 <= r:
		case r < surr2 && i+1 < len(s) && surr2 <= s[i+1] && s[i+1] < surr3:
			i++
		default:
			return errors.InvalidUTF16(errors.PhaseEncode, i, r)
		}
	}
	return nil
}
