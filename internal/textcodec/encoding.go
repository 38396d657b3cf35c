// Package textcodec detects, decodes and re-encodes file contents.
package textcodec

import (
	"strings"
	"unicode/utf8"

	"codeshell/internal/errors"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode/utf32"
)

// SampleSize is how many leading bytes detection looks at.
const SampleSize = 1000

// Encoding is a named character set. The zero value is UTF-8.
type Encoding struct {
	name string
	enc  encoding.Encoding
}

// UTF8 is the encoding used for new or plain UTF-8 files.
var UTF8 = Encoding{name: "UTF-8"}

// Name returns the charset name shown to the user.
func (e Encoding) Name() string {
	if e.name == "" {
		return UTF8.name
	}
	return e.name
}

// IsUTF8 reports whether e is UTF-8.
func (e Encoding) IsUTF8() bool { return e.enc == nil }

var aliases = map[string]encoding.Encoding{
	"utf-32be": utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM),
	"utf-32le": utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM),
}

var htmlAliases = map[string]string{
	"gb-18030": "gb18030",
}

// Lookup returns the encoding registered under name.
func Lookup(name string) (Encoding, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "utf-8" || key == "utf8" {
		return UTF8, true
	}
	if enc, ok := aliases[key]; ok {
		return Encoding{name: strings.ToUpper(key), enc: enc}, true
	}
	if alias, ok := htmlAliases[key]; ok {
		key = alias
	}
	enc, err := htmlindex.Get(key)
	if err != nil {
		return Encoding{}, false
	}
	display := name
	if iana, err := ianaindex.IANA.Name(enc); err == nil && iana != "" {
		display = iana
	}
	if strings.EqualFold(display, "utf-8") {
		return UTF8, true
	}
	return Encoding{name: display, enc: enc}, true
}

var fallback = func() Encoding {
	e, _ := Lookup("windows-1252")
	return e
}()

// DetectSample runs Detect on the first SampleSize bytes of data.
func DetectSample(data []byte) Encoding {
	if len(data) <= SampleSize {
		return Detect(data, true)
	}
	return Detect(data[:SampleSize], false)
}

// Detect guesses the encoding of sample. complete tells whether sample is
// the whole file; when it is not, a multi-byte sequence cut at the end of
// the sample does not count against UTF-8.
func Detect(sample []byte, complete bool) Encoding {
	check := sample
	if !complete {
		check = trimPartialRune(sample)
	}
	if utf8.Valid(check) {
		return UTF8
	}

	res, err := chardet.NewTextDetector().DetectBest(sample)
	if err != nil || res == nil {
		return fallback
	}
	if enc, ok := Lookup(res.Charset); ok && !enc.IsUTF8() {
		return enc
	}
	return fallback
}

func trimPartialRune(b []byte) []byte {
	for i := 1; i < utf8.UTFMax && i <= len(b); i++ {
		if utf8.RuneStart(b[len(b)-i]) {
			if !utf8.FullRune(b[len(b)-i:]) {
				return b[:len(b)-i]
			}
			return b
		}
	}
	return b
}

// Decode turns data into text. Malformed UTF-8 is an error rather than
// being replaced.
func Decode(data []byte, enc Encoding) (string, error) {
	if enc.IsUTF8() {
		if !utf8.Valid(data) {
			return "", errors.NewIoError("malformed "+enc.Name()+" content", "", errors.DecodeFailed, nil)
		}
		return string(data), nil
	}
	out, err := enc.enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", errors.NewIoError("cannot decode "+enc.Name()+" content", "", errors.DecodeFailed, err)
	}
	return string(out), nil
}

// Encode turns text back into bytes. Characters the encoding cannot
// represent make it fail instead of being dropped.
func Encode(text string, enc Encoding) ([]byte, error) {
	if enc.IsUTF8() {
		return []byte(text), nil
	}
	out, err := enc.enc.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, errors.NewIoError("cannot encode text as "+enc.Name(), "", errors.EncodeFailed, err)
	}
	return out, nil
}
