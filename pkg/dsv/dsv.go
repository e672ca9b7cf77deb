// Package dsv parses delimiter-separated text into a normalized rectangular
// grid of string cells.
//
// The package handles comma, tab, semicolon, pipe, space, or any single-rune
// delimiter, and applies the usual quoting rules: quoted fields may contain
// delimiters, doubled quotes, and raw line terminators (multi-line cells).
// LF, CRLF, and lone CR row boundaries are all normalized, ragged rows are
// right-padded to a common width, and an optional header row is split off or
// synthesized.
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use by multiple
// goroutines. Each call owns its own scanning state; there is no shared
// parser instance.
//
//	// Safe: concurrent parsing
//	go func() { dsv.Parse(input1, ',', true) }()
//	go func() { dsv.Parse(input2, '\t', false) }()
//
// # Parsing APIs
//
//   - Parse(string, rune, bool) - parses delimited text already in memory
//   - ParseReader(io.Reader, rune, bool) - reads an io.Reader fully, then parses
//   - ParseFile(string, bool) - opens a file, decodes it, detects the
//     delimiter, and parses
//
// Parse never fails: every input string, however irregular, maps to some
// ParsedData value. Unterminated quotes close at end of input and ragged
// rows are padded rather than rejected.
//
// Example:
//
//	data := dsv.Parse("Name,Age,City\nJohn,30,New York\nJane,25,London", ',', true)
//	data.Headers()     // ["Name", "Age", "City"]
//	data.RowCount()    // 2
//	data.Cell(0, 2)    // "New York", true
package dsv

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nhuphucnguyen/dsv/internal/scanner"
)

// Parse parses delimited text into a ParsedData grid.
//
// The scan is a single left-to-right pass honoring double-quote quoting:
// inside quotes, delimiters and line terminators are literal content and a
// doubled quote yields one literal quote. Every field is trimmed of leading
// and trailing whitespace when it closes, whether quoted or not, so a quoted
// value written as "  padded  " parses to "padded".
//
// After scanning, rows narrower than the widest row are right-padded with
// empty cells, so every row in the result has exactly ColumnCount cells.
// When hasHeader is true the first row becomes the headers; otherwise
// headers are synthesized as "Column 1" through "Column N".
//
// Empty or whitespace-only content yields the empty ParsedData (zero rows,
// zero columns). Parse never returns an error.
func Parse(content string, delimiter rune, hasHeader bool) ParsedData {
	if strings.TrimSpace(content) == "" {
		return ParsedData{}
	}

	raw := scanner.Scan(content, delimiter)

	maxColumns := 0
	for _, row := range raw {
		if len(row) > maxColumns {
			maxColumns = len(row)
		}
	}

	rows := make([][]string, len(raw))
	for i, row := range raw {
		padded := make([]string, maxColumns)
		copy(padded, row)
		rows[i] = padded
	}

	var headers []string
	if hasHeader && len(rows) > 0 {
		headers = rows[0]
		rows = rows[1:]
	} else {
		headers = make([]string, maxColumns)
		for i := range headers {
			headers[i] = "Column " + strconv.Itoa(i+1)
		}
	}

	return ParsedData{
		headers:     headers,
		rows:        rows,
		columnCount: maxColumns,
	}
}

// ParseReader parses delimited text from an io.Reader.
//
// The reader is consumed in full before parsing; the input must fit in
// memory. The only error surface is the reader itself - once the content is
// read, parsing cannot fail.
//
// Example:
//
//	file, err := os.Open("data.csv")
//	if err != nil {
//	    // handle error
//	}
//	defer file.Close()
//
//	data, err := dsv.ParseReader(file, ',', true)
func ParseReader(reader io.Reader, delimiter rune, hasHeader bool) (ParsedData, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return ParsedData{}, fmt.Errorf("read input: %w", err)
	}
	return Parse(string(content), delimiter, hasHeader), nil
}
