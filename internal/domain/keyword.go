package domain

import "strings"

// KeywordEntry pairs a lowercase trigger substring with its canned response.
type KeywordEntry struct {
	Keyword  string
	Response string
}

// KeywordTable is an ordered, read-only list of keyword entries.
// Order matters: when several keywords occur in the same input the earliest
// entry wins.
type KeywordTable struct {
	entries []KeywordEntry
}

// NewKeywordTable copies entries into a new table. Later changes to the
// caller's slice do not affect the table.
func NewKeywordTable(entries []KeywordEntry) KeywordTable {
	copied := make([]KeywordEntry, len(entries))
	copy(copied, entries)
	return KeywordTable{entries: copied}
}

// Len returns the number of entries.
func (t KeywordTable) Len() int {
	return len(t.entries)
}

// Entries returns a copy of the entries in table order.
func (t KeywordTable) Entries() []KeywordEntry {
	out := make([]KeywordEntry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Match lowercases input and scans the table in order, returning the first
// entry whose keyword is a substring of the folded input.
func (t KeywordTable) Match(input string) (KeywordEntry, bool) {
	folded := strings.ToLower(input)
	for _, entry := range t.entries {
		if strings.Contains(folded, entry.Keyword) {
			return entry, true
		}
	}
	return KeywordEntry{}, false
}

// Respond returns the response of the first matching keyword, or fallback
// when nothing matches. It never fails.
func Respond(input string, table KeywordTable, fallback string) string {
	if entry, ok := table.Match(input); ok {
		return entry.Response
	}
	return fallback
}
