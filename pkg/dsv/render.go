package dsv

import "strings"

// Render converts a ParsedData back to delimited text.
//
// The headers (when present) are written first, followed by every data row,
// separated by LF. A cell is quoted when it contains the delimiter, a quote,
// or a line terminator; embedded quotes are doubled.
//
// Render is the re-serialization half of the parse contract: values that
// survive parsing unchanged (no trimming applied) round-trip through
// Render and Parse.
//
// Example:
//
//	data := dsv.Parse("name,age\nAlice,30", ',', true)
//	out := dsv.Render(data, ',')
//	// out: name,age\nAlice,30\n
func Render(data ParsedData, delimiter rune) string {
	var sb strings.Builder

	if len(data.headers) > 0 {
		writeRow(&sb, data.headers, delimiter)
	}
	for _, row := range data.rows {
		writeRow(&sb, row, delimiter)
	}

	return sb.String()
}

// writeRow writes a single row to the builder in delimited form, quoting
// cells that contain structural characters.
func writeRow(sb *strings.Builder, cells []string, delimiter rune) {
	for i, cell := range cells {
		if i > 0 {
			sb.WriteRune(delimiter)
		}

		needsQuoting := strings.ContainsRune(cell, delimiter) ||
			strings.ContainsAny(cell, "\"\n\r")

		if needsQuoting {
			sb.WriteByte('"')
			for _, ch := range cell {
				if ch == '"' {
					sb.WriteString(`""`)
				} else {
					sb.WriteRune(ch)
				}
			}
			sb.WriteByte('"')
		} else {
			sb.WriteString(cell)
		}
	}

	sb.WriteByte('\n')
}
