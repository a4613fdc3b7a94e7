// Package classify derives a category and two exclusion flags from an
// item's text fields. It is a pure function over its inputs: no I/O and
// no store state.
//
// Two evaluation strategies are used deliberately: the category is the
// label of the FIRST matching rule in an ordered list, while each
// exclusion flag is true if ANY pattern in its own list matches.
package classify

import (
	"regexp"

	"github.com/mroethli/purchases-cli/internal/core/domain"
)

// Classification is the result of classifying one item.
type Classification struct {
	// Category is one of domain.Categories; "other" when no rule
	// matched.
	Category string

	// Digital is true for items with no physical counterpart.
	Digital bool

	// Consumable is true for items that are used up rather than owned.
	Consumable bool
}

// Classify derives category and exclusion flags from the item's name,
// product URL and vendor category text. The three computations are
// independent passes over the same text.
func Classify(name, itemURL, vendorCategory string) Classification {
	return Classification{
		Category:   firstMatch(categoryRules, name+" "+vendorCategory),
		Digital:    anyMatch(digitalPatterns, name+" "+itemURL+" "+vendorCategory),
		Consumable: anyMatch(consumablePatterns, name+" "+vendorCategory),
	}
}

// firstMatch returns the label of the first rule matching text, or
// "other" when none does. Rule order is semantically significant.
func firstMatch(rules []rule, text string) string {
	for _, r := range rules {
		if r.pattern.MatchString(text) {
			return r.label
		}
	}
	return domain.CategoryOther
}

// anyMatch reports whether any pattern in the list matches text.
func anyMatch(patterns []*regexp.Regexp, text string) bool {
	for _, p := range patterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}
