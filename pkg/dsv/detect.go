// Package dsv provides delimiter and header detection for delimited text.
package dsv

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	"github.com/nhuphucnguyen/dsv/internal/scanner"
)

// detectCandidates is the fixed-priority candidate order for content-based
// detection. On a count tie the earlier candidate wins, so comma beats tab
// beats semicolon and so on. The order is part of the observable contract.
var detectCandidates = []rune{',', '\t', ';', '|', ' '}

// extensionDelimiters maps well-known file extensions to their delimiter.
// An extension match wins over content inspection.
var extensionDelimiters = map[string]rune{
	".csv": ',',
	".tsv": '\t',
}

// DetectDelimiter guesses the most likely field delimiter for content.
//
// If fileName is non-empty and its extension is a known mapping (.csv, .tsv,
// case-insensitive), that delimiter is returned without looking at the
// content. Otherwise each candidate delimiter is counted over the first line
// of content, skipping occurrences between quotes (a naive toggle on every
// quote character - a cheap heuristic, not a full parse), and the
// highest-count candidate wins. Ties go to the earlier candidate in priority
// order; if nothing matches, comma is returned.
//
// This is a best-effort heuristic over exactly one line. A pathological
// first line, such as a long quoted multi-line header, can mislead it.
func DetectDelimiter(content string, fileName string) rune {
	if fileName != "" {
		ext := strings.ToLower(filepath.Ext(fileName))
		if delim, ok := extensionDelimiters[ext]; ok {
			return delim
		}
	}

	line := content
	if i := strings.IndexAny(content, "\r\n"); i >= 0 {
		line = content[:i]
	}

	best := ','
	bestCount := 0
	for _, candidate := range detectCandidates {
		if count := countOutsideQuotes(line, candidate); count > bestCount {
			best = candidate
			bestCount = count
		}
	}
	return best
}

// countOutsideQuotes counts occurrences of delim in line, ignoring any that
// fall between an odd and even quote boundary.
func countOutsideQuotes(line string, delim rune) int {
	count := 0
	inQuotes := false

	for _, ch := range line {
		if ch == '"' {
			inQuotes = !inQuotes
		} else if ch == delim && !inQuotes {
			count++
		}
	}

	return count
}

// DetectHeader uses heuristics to decide whether the first row of content
// looks like a header row rather than data.
//
// The first row's fields are scored against header-shaped patterns
// (identifiers, snake_case, camelCase, Title Case) and data-shaped values
// (numbers, emails, dates). At least two rows are required; with a single
// row there is nothing to distinguish a header from data.
//
// The result only informs the caller's header flag - Parse never consults
// this heuristic on its own.
func DetectHeader(content string, delimiter rune) bool {
	rows := scanner.Scan(content, delimiter)
	if len(rows) < 2 {
		return false
	}

	headerScore := 0
	dataScore := 0
	for _, field := range rows[0] {
		if isLikelyHeader(field) {
			headerScore++
		}
		if isLikelyData(field) {
			dataScore++
		}
	}

	return headerScore > dataScore
}

var headerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`),       // identifier or snake_case
	regexp.MustCompile(`^[a-z]+([A-Z][a-z0-9]*)+$`),      // camelCase
	regexp.MustCompile(`^[A-Z][a-z]+([ ][A-Z][a-z]+)*$`), // Title Case
}

var dataPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`),
	regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`),
}

// isLikelyHeader checks if a field looks like a header name.
func isLikelyHeader(s string) bool {
	if s == "" || isNumeric(s) {
		return false
	}
	for _, pattern := range headerPatterns {
		if pattern.MatchString(s) {
			return true
		}
	}
	return false
}

// isLikelyData checks if a field looks like data rather than a header.
func isLikelyData(s string) bool {
	if s == "" {
		return false
	}
	if isNumeric(s) {
		return true
	}
	if strings.Contains(s, "@") {
		return true
	}
	for _, pattern := range dataPatterns {
		if pattern.MatchString(s) {
			return true
		}
	}
	return false
}

// isNumeric checks if a string represents a number.
func isNumeric(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	if s[0] == '-' {
		s = s[1:]
	}
	if s == "" {
		return false
	}

	hasDot := false
	for _, ch := range s {
		if ch == '.' {
			if hasDot {
				return false
			}
			hasDot = true
		} else if !unicode.IsDigit(ch) {
			return false
		}
	}
	return true
}
