// Package scanner implements a single-pass, quote-aware row scanner for
// delimiter-separated text.
//
// The scanner is a two-state machine (unquoted, quoted) that walks the input
// once with a sliding two-character window (current, peek). It never fails:
// every input string maps to some row grid. Unterminated quotes close
// implicitly at end of input, and ragged rows are returned as scanned - width
// normalization is the caller's concern.
package scanner

import "strings"

// Scan splits content into rows of trimmed fields using the given delimiter.
//
// Quoting rules:
//   - A quote outside quoted mode enters quoted mode; the matching quote
//     exits it. Neither quote reaches the field value.
//   - A doubled quote inside quoted mode produces one literal quote.
//   - Inside quoted mode, delimiters and line terminators are literal field
//     content, so a field may span multiple physical lines.
//   - A field may re-enter quoted mode after exiting it (ab"cd"ef is legal).
//
// Row boundaries are LF, CRLF, or a lone CR, all equivalent. A boundary at
// the very start of the input (before any field content and before any row
// has been emitted) is suppressed rather than producing an empty row;
// interior empty lines still produce rows.
//
// Every field is trimmed of leading and trailing whitespace when it closes,
// whether or not it contained quoted segments.
func Scan(content string, delimiter rune) [][]string {
	chars := []rune(content)

	var (
		rows   [][]string
		row    []string
		field  strings.Builder
		quoted bool
	)

	closeField := func() {
		row = append(row, strings.TrimSpace(field.String()))
		field.Reset()
	}
	closeRow := func() {
		// Emit only if the row carries content or output has already
		// started; this drops a spurious empty row at the top of the
		// input but keeps interior ones.
		if field.Len() == 0 && len(row) == 0 && len(rows) == 0 {
			return
		}
		closeField()
		rows = append(rows, row)
		row = nil
	}

	for i := 0; i < len(chars); i++ {
		cur := chars[i]
		var peek rune
		if i+1 < len(chars) {
			peek = chars[i+1]
		}

		switch {
		case cur == '"' && !quoted:
			quoted = true
		case cur == '"' && peek == '"':
			// Escaped quote inside a quoted segment.
			field.WriteRune('"')
			i++
		case cur == '"':
			quoted = false
		case cur == delimiter && !quoted:
			closeField()
		case cur == '\r' && peek == '\n' && !quoted:
			closeRow()
			i++
		case (cur == '\n' || cur == '\r') && !quoted:
			closeRow()
		default:
			field.WriteRune(cur)
		}
	}

	// Content without a trailing line terminator still closes its last row.
	if field.Len() > 0 || len(row) > 0 {
		closeField()
		rows = append(rows, row)
	}

	return rows
}
