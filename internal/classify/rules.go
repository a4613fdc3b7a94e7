package classify

import "regexp"

// rule maps a pattern to a category label. Rules are evaluated in order
// and the first match wins, so specific rules must stay ahead of generic
// ones (smart-home before electronics, for example).
type rule struct {
	pattern *regexp.Regexp
	label   string
}

func mustRule(expr, label string) rule {
	return rule{pattern: regexp.MustCompile(`(?i)` + expr), label: label}
}

func mustPattern(expr string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)` + expr)
}

// categoryRules maps vendor text to our categories. Order is
// significant: first match wins.
var categoryRules = []rule{
	mustRule(`Homematic|Smart Home`, "smart-home"),
	mustRule(`3D.*Drucker|Filament|SUNLU|CNC KITCHEN`, "3d-printing"),
	mustRule(`Sports.*Golf|Golf`, "golf"),
	mustRule(`DIY & Tools|Power.*Tool|Hand Tools|Drill|Bosch Professional`, "tools"),
	mustRule(`Electronics|TV.*Video|Headphones|Computer|HDMI|Apple.*Pods`, "electronics"),
	mustRule(`Kitchen.*Appliances|Fryer|Knife|Waterdrop`, "kitchen"),
	mustRule(`Furniture|Desk|Chair`, "furniture"),
	mustRule(`Fashion|Clothing|Shoes|T-Shirt|Sneaker|Socken`, "clothing"),
	mustRule(`Toys|Games|Spielzeug|Puzzle`, "games"),
}

// digitalPatterns flag items with no physical counterpart. Any match
// wins; the URL patterns catch video and digital-order purchases whose
// names look ordinary.
var digitalPatterns = []*regexp.Regexp{
	mustPattern(`Audible`),
	mustPattern(`Kindle`),
	mustPattern(`eBook`),
	mustPattern(`Digital.*Download`),
	mustPattern(`gp/video/detail`),
	mustPattern(`digi_order_details`),
}

// consumablePatterns flag items that are used up rather than owned.
// Any match wins.
var consumablePatterns = []*regexp.Regexp{
	mustPattern(`Battery|Batterie|Alkaline`),
	mustPattern(`Toothbrush.*Head|Aufsteckbürst`),
	mustPattern(`Shampoo|Duschgel|Lotion|Seife|Handcreme`),
	mustPattern(`Magnesium|Vitamin`),
	mustPattern(`Interdentalbürst`),
	mustPattern(`Rasiergel`),
	mustPattern(`Feuerzeuggas`),
	mustPattern(`Gin|Whisky|Spirits`),
	mustPattern(`Grocery|Beer.*Wine.*Spirits`),
}
