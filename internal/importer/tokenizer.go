package importer

import (
	"fmt"
	"strings"
)

// TokenizeLine splits one CSV line into its ordered field values. A double
// quote toggles quoted mode; a comma outside quotes ends the current field.
// After the scan each field has one leading and one trailing quote stripped
// (when present) and surrounding whitespace trimmed.
//
// A line that ends while still inside a quoted field is a parse error rather
// than being silently carried into the next field.
func TokenizeLine(line string) ([]string, error) {
	fields := make([]string, 0, 8)
	var buf strings.Builder
	inQuotes := false

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			buf.WriteRune(r)
		case r == ',' && !inQuotes:
			fields = append(fields, buf.String())
			buf.Reset()
		default:
			buf.WriteRune(r)
		}
	}
	fields = append(fields, buf.String())

	if inQuotes {
		return nil, fmt.Errorf("aspas não fechadas na linha")
	}

	for i, f := range fields {
		fields[i] = unquote(f)
	}
	return fields, nil
}

// unquote strips at most one leading and one trailing double quote, then
// trims surrounding whitespace.
func unquote(field string) string {
	field = strings.TrimSpace(field)
	if strings.HasPrefix(field, `"`) {
		field = field[1:]
	}
	if strings.HasSuffix(field, `"`) {
		field = field[:len(field)-1]
	}
	return strings.TrimSpace(field)
}

// SplitLines breaks raw file content into lines, keeping the original
// 1-based line number of each so row errors can point back at the source.
// Blank lines are dropped but still counted.
type Line struct {
	Number int
	Text   string
}

// SplitLines handles both \n and \r\n terminated input.
func SplitLines(content string) []Line {
	raw := strings.Split(content, "\n")
	lines := make([]Line, 0, len(raw))
	for i, l := range raw {
		l = strings.TrimRight(l, "\r")
		if strings.TrimSpace(l) == "" {
			continue
		}
		lines = append(lines, Line{Number: i + 1, Text: l})
	}
	return lines
}
