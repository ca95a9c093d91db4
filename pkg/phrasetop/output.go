package phrasetop

import (
	"fmt"
	"os"
	"strings"
)

// FormatEntries renders entries as a brace-wrapped, comma-separated list
// of phrase=count pairs in entry order, e.g. {b=3, a=2, c=1}.
func FormatEntries(entries []Entry) string {
	var b strings.Builder
	b.WriteByte('{')
	for i, e := range entries {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s=%d", e.Phrase, e.Count)
	}
	b.WriteByte('}')
	return b.String()
}

// AppendResult renders entries and appends them, with a trailing
// newline, to the file at path, creating it if needed. Appending is
// deliberate: repeated runs accumulate one result line each, so earlier
// results are never clobbered. Any failure is returned to the caller.
func AppendResult(path string, entries []Entry) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open output: %w", err)
	}

	_, werr := f.WriteString(FormatEntries(entries) + "\n")
	cerr := f.Close()
	if werr != nil {
		return fmt.Errorf("write output: %w", werr)
	}
	if cerr != nil {
		return fmt.Errorf("close output: %w", cerr)
	}
	return nil
}
