package usecase

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// sortByName stable-sorts items by display name using English collation.
// A collator is not safe for concurrent use, so one is built per call.
func sortByName[T any](items []T, name func(*T) string) {
	c := collate.New(language.English)
	sort.SliceStable(items, func(i, j int) bool {
		return c.CompareString(name(&items[i]), name(&items[j])) < 0
	})
}

// optionalString maps blank input to nil.
func optionalString(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return value
}
