// Package dsv provides file loading and character-set decoding.
package dsv

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// ParseFile loads and parses a delimited file.
//
// The file content is decoded to UTF-8 (see DecodeReader), the delimiter is
// detected from the file name and first content line, and the result is
// parsed with that delimiter. The detected delimiter is returned alongside
// the data so callers can surface or override it on a re-parse.
//
// Example:
//
//	data, delim, err := dsv.ParseFile("data.tsv", true)
//	if err != nil {
//	    // handle error
//	}
//	// delim == '\t' (extension mapping wins)
func ParseFile(path string, hasHeader bool) (ParsedData, rune, error) {
	f, err := os.Open(path)
	if err != nil {
		return ParsedData{}, 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	decoded, err := DecodeReader(f)
	if err != nil {
		return ParsedData{}, 0, fmt.Errorf("decode %s: %w", path, err)
	}

	content := string(decoded)
	delimiter := DetectDelimiter(content, path)
	return Parse(content, delimiter, hasHeader), delimiter, nil
}

// DecodeReader reads r fully and returns its content as UTF-8 bytes.
//
// A UTF-8 byte order mark is stripped. Content that is already valid UTF-8
// passes through untouched. Otherwise the character set is detected and the
// content transcoded with the matching single-byte decoder; when the charset
// is unrecognized the content is decoded as Latin-1, which maps every byte,
// so the returned bytes are always valid UTF-8.
func DecodeReader(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	data = stripBOM(data)
	if utf8.Valid(data) {
		return data, nil
	}

	cm := charmap.ISO8859_1
	if best, err := chardet.NewTextDetector().DetectBest(data); err == nil && best != nil {
		if known := charmapFor(best.Charset); known != nil {
			cm = known
		}
	}

	decoded, _, err := transform.Bytes(cm.NewDecoder(), data)
	if err != nil {
		return nil, fmt.Errorf("decode input: %w", err)
	}
	return decoded, nil
}

// charmapFor maps a detected charset name to its decoder.
// Returns nil for charsets this package does not transcode.
func charmapFor(charset string) *charmap.Charmap {
	switch charset {
	case "ISO-8859-1":
		return charmap.ISO8859_1
	case "windows-1251":
		return charmap.Windows1251
	case "windows-1252":
		return charmap.Windows1252
	case "KOI8-R":
		return charmap.KOI8R
	default:
		return nil
	}
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// stripBOM removes a leading UTF-8 byte order mark.
func stripBOM(b []byte) []byte {
	if bytes.HasPrefix(b, utf8BOM) {
		return b[len(utf8BOM):]
	}
	return b
}
