package phrasetop

import (
	"bufio"
	"io"
	"strings"
)

// DefaultDelimiter separates phrases within one line of input.
const DefaultDelimiter byte = '|'

// Scanner line limit. Lines are phrases, not documents, but split files
// can begin or end mid-line, so leave generous headroom.
const maxLineBytes = 1024 * 1024

// CountPhrases reads r line-by-line, splits each line on the literal
// delimiter and increments the count of every token in counts. The
// delimiter is not escaped or quoted and tokens are not trimmed: a token
// is exactly the text between two delimiters (or line start/end).
//
// Empty tokens are skipped, never counted: an empty line contributes
// nothing, and leading, trailing or adjacent delimiters contribute no
// phrase. Line endings are platform-neutral (a trailing \r is stripped).
func CountPhrases(r io.Reader, delim byte, counts *PhraseCounts) error {
	sep := string(delim)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	for scanner.Scan() {
		for _, token := range strings.Split(scanner.Text(), sep) {
			if token == "" {
				continue
			}
			counts.Add(token)
		}
	}

	return scanner.Err()
}
