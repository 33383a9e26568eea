package runner

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// Encoding names the character encoding of event files. Older archive files
// are Latin-1; newer ones are UTF-8.
type Encoding string

const (
	EncodingUTF8   Encoding = "utf-8"
	EncodingLatin1 Encoding = "latin1"
)

// ParseEncoding accepts the common spellings of the supported encodings.
// The empty string means UTF-8.
func ParseEncoding(name string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return EncodingUTF8, nil
	case "latin1", "latin-1", "iso-8859-1", "iso8859-1":
		return EncodingLatin1, nil
	default:
		return "", fmt.Errorf("unsupported encoding %q (want utf-8 or latin1)", name)
	}
}

// Reader returns r transcoded to UTF-8.
func (e Encoding) Reader(r io.Reader) (io.Reader, error) {
	enc, err := ParseEncoding(string(e))
	if err != nil {
		return nil, err
	}
	if enc == EncodingLatin1 {
		return charmap.ISO8859_1.NewDecoder().Reader(r), nil
	}
	return r, nil
}
