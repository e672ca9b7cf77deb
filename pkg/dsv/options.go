package dsv

// DelimiterOption pairs a delimiter rune with a human-readable label.
// It exists to enumerate the supported delimiters for presentation surfaces
// (pickers, toolbars); it carries no parsing behavior. Parse accepts any
// rune regardless of whether it appears here.
type DelimiterOption struct {
	// Delimiter is the field separator character.
	Delimiter rune
	// Label is the display name for the delimiter.
	Label string
}

// DelimiterOptions returns the supported delimiters in detection priority
// order.
func DelimiterOptions() []DelimiterOption {
	return []DelimiterOption{
		{Delimiter: ',', Label: "Comma (,)"},
		{Delimiter: '\t', Label: "Tab (\\t)"},
		{Delimiter: ';', Label: "Semicolon (;)"},
		{Delimiter: '|', Label: "Pipe (|)"},
		{Delimiter: ' ', Label: "Space ( )"},
	}
}
