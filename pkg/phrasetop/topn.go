package phrasetop

import "sort"

// DefaultLimit is the number of top phrases selected when no limit is
// configured.
const DefaultLimit = 100000

// TopN returns the limit entries with the highest counts, sorted by
// count descending. Ties are broken deterministically: of two phrases
// with equal counts, the one first inserted into counts comes first.
// A limit of zero (or less) selects nothing; a limit at or above the
// number of unique phrases selects everything.
func TopN(counts *PhraseCounts, limit int) []Entry {
	if limit <= 0 {
		return []Entry{}
	}

	// Entries() yields insertion order; the stable sort preserves it
	// within equal counts, which is exactly the tie-break rule.
	entries := counts.Entries()
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}
