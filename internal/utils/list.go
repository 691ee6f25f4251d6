package utils

import "strings"

// SplitList converts a comma separated value into its entries with
// surrounding whitespace removed. Empty entries are kept, so "a,,b" yields
// three entries and "" yields one empty entry.
func SplitList(value string) []string {
	entries := strings.Split(value, ",")
	for i, e := range entries {
		entries[i] = strings.TrimSpace(e)
	}

	return entries
}
