package scanner

import (
	"reflect"
	"testing"
)

func TestScan_BasicRows(t *testing.T) {
	tests := []struct {
		name  string
		input string
		delim rune
		want  [][]string
	}{
		{
			name:  "empty input",
			input: "",
			delim: ',',
			want:  nil,
		},
		{
			name:  "single field",
			input: "a",
			delim: ',',
			want:  [][]string{{"a"}},
		},
		{
			name:  "simple row",
			input: "a,b,c",
			delim: ',',
			want:  [][]string{{"a", "b", "c"}},
		},
		{
			name:  "two rows",
			input: "a,b\nc,d",
			delim: ',',
			want:  [][]string{{"a", "b"}, {"c", "d"}},
		},
		{
			name:  "trailing newline adds no row",
			input: "a,b\nc,d\n",
			delim: ',',
			want:  [][]string{{"a", "b"}, {"c", "d"}},
		},
		{
			name:  "empty fields",
			input: "a,,c",
			delim: ',',
			want:  [][]string{{"a", "", "c"}},
		},
		{
			name:  "delimiter-only line keeps every empty field",
			input: ",,,",
			delim: ',',
			want:  [][]string{{"", "", "", ""}},
		},
		{
			name:  "tab delimiter",
			input: "a\tb\tc",
			delim: '\t',
			want:  [][]string{{"a", "b", "c"}},
		},
		{
			name:  "semicolon delimiter leaves commas alone",
			input: "a,b;c",
			delim: ';',
			want:  [][]string{{"a,b", "c"}},
		},
		{
			name:  "fields are trimmed at close",
			input: "  a , b ,c  ",
			delim: ',',
			want:  [][]string{{"a", "b", "c"}},
		},
		{
			name:  "unicode content is preserved",
			input: "名前,年齢\n田中,30",
			delim: ',',
			want:  [][]string{{"名前", "年齢"}, {"田中", "30"}},
		},
		{
			name:  "ragged rows are returned as scanned",
			input: "a,b,c\n1,2\n1,2,3,4",
			delim: ',',
			want:  [][]string{{"a", "b", "c"}, {"1", "2"}, {"1", "2", "3", "4"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Scan(tt.input, tt.delim)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Scan(%q, %q) = %v, want %v", tt.input, tt.delim, got, tt.want)
			}
		})
	}
}

func TestScan_Quoting(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  [][]string
	}{
		{
			name:  "quoted field with delimiter",
			input: `"hello,world",b`,
			want:  [][]string{{"hello,world", "b"}},
		},
		{
			name:  "escaped quote",
			input: `"say ""hello"""`,
			want:  [][]string{{`say "hello"`}},
		},
		{
			name:  "escaped quote only",
			input: `""""`,
			want:  [][]string{{`"`}},
		},
		{
			name:  "empty quoted field",
			input: `"",b`,
			want:  [][]string{{"", "b"}},
		},
		{
			name:  "quoted segment in the middle of a field",
			input: `ab"cd"ef,g`,
			want:  [][]string{{"abcdef", "g"}},
		},
		{
			name:  "multi-line quoted field stays one cell",
			input: "\"line1\nline2\nline3\",b",
			want:  [][]string{{"line1\nline2\nline3", "b"}},
		},
		{
			name:  "CRLF inside quotes is literal",
			input: "\"a\r\nb\",c",
			want:  [][]string{{"a\r\nb", "c"}},
		},
		{
			name:  "unterminated quote closes at end of input",
			input: `"abc`,
			want:  [][]string{{"abc"}},
		},
		{
			name:  "quoting does not force a field boundary",
			input: `"a"b,c`,
			want:  [][]string{{"ab", "c"}},
		},
		{
			name:  "quoted whitespace is trimmed at close",
			input: `"  padded  ",b`,
			want:  [][]string{{"padded", "b"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Scan(tt.input, ',')
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Scan(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestScan_LineEndings(t *testing.T) {
	want := [][]string{{"a", "b"}, {"c", "d"}}

	for _, tt := range []struct {
		name  string
		input string
	}{
		{"LF", "a,b\nc,d"},
		{"CRLF", "a,b\r\nc,d"},
		{"CR", "a,b\rc,d"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got := Scan(tt.input, ',')
			if !reflect.DeepEqual(got, want) {
				t.Errorf("Scan(%q) = %v, want %v", tt.input, got, want)
			}
		})
	}
}

func TestScan_EmptyRowHandling(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  [][]string
	}{
		{
			name:  "leading empty row is suppressed",
			input: "\na,b",
			want:  [][]string{{"a", "b"}},
		},
		{
			name:  "interior empty row is kept",
			input: "a,b\n\nc,d",
			want:  [][]string{{"a", "b"}, {""}, {"c", "d"}},
		},
		{
			name:  "leading CRLF is suppressed",
			input: "\r\na,b",
			want:  [][]string{{"a", "b"}},
		},
		{
			name:  "only newlines produce no rows",
			input: "\n\n\n",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Scan(tt.input, ',')
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Scan(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
