package catalog

import (
	"strings"

	"github.com/flipbooklib/flipbook/model"
)

// Filter returns the subset of list whose title or description, in either
// locale, contains term (case-insensitive). An empty or whitespace-only term
// returns list unchanged.
func Filter(list []*model.EBook, term string) []*model.EBook {
	term = strings.TrimSpace(term)
	if term == "" {
		return list
	}

	needle := strings.ToLower(term)
	filtered := make([]*model.EBook, 0, len(list))
	for _, e := range list {
		if matches(e, needle) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

func matches(e *model.EBook, needle string) bool {
	for _, field := range []string{e.Title, e.TitleLo, e.Description, e.DescriptionLo} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}
