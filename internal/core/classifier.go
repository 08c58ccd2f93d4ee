package core

import "strings"

// Taxonomy labels. Every product carries exactly one of these.
const (
	CategoryNutrition     = "Nutritional Supplements"
	CategoryOralCare      = "Oral Care"
	CategoryPersonalCare  = "Personal Care"
	CategoryBaby          = "Baby Products"
	CategoryFeminine      = "Feminine Hygiene"
	CategoryCosmetics     = "Cosmetics"
	CategoryPainRelief    = "Pain Relief"
	CategoryMiscellaneous = "Miscellaneous"
)

// Rule assigns Category when any name trigger occurs in the lower-cased
// product name or any company trigger occurs in the lower-cased company.
// Matching is unanchored, so "oral" also hits "floral".
type Rule struct {
	Category        string
	NameTriggers    []string
	CompanyTriggers []string
}

// Matches reports whether the rule fires for already lower-cased inputs.
func (r Rule) Matches(name, company string) bool {
	return containsAny(name, r.NameTriggers) || containsAny(company, r.CompanyTriggers)
}

// rules is evaluated top to bottom and the first match wins. Trigger sets
// overlap between rules, so reordering changes classifications.
// Miscellaneous has no rule: it is the result when nothing matches.
var rules = []Rule{
	{
		Category:        CategoryNutrition,
		NameTriggers:    []string{"ensure", "similac", "protinex", "glucon", "bournvita", "horlicks", "complan", "pediasure"},
		CompanyTriggers: []string{"abbott", "danone", "heinz", "cadbury"},
	},
	{
		Category:     CategoryOralCare,
		NameTriggers: []string{"colgate", "sensodyne", "brush", "paste", "listerine", "oral"},
	},
	{
		Category: CategoryPersonalCare,
		NameTriggers: []string{
			"dove", "nivea", "soap", "lotion", "shampoo", "dettol",
			"savlon", "himalaya", "patanjali", "boroline", "vaseline", "ponds",
		},
	},
	{
		Category:     CategoryBaby,
		NameTriggers: []string{"pampers", "johnson", "baby", "cerelac", "lactogen", "nan pro", "farex"},
	},
	{
		Category:     CategoryFeminine,
		NameTriggers: []string{"whisper", "stayfree", "carefree"},
	},
	{
		Category:        CategoryCosmetics,
		NameTriggers:    []string{"loreal", "lakme", "maybelline", "fair & lovely"},
		CompanyTriggers: []string{"loreal"},
	},
	{
		Category: CategoryPainRelief,
		NameTriggers: []string{
			"vicks", "amrutanjan", "crocin", "iodex", "burnol", "moov", "volini",
			"aspro", "disprin", "paracetamol", "aspirin", "tiger balm", "zandu balm",
		},
	},
}

// categoryOrder is the order categories are offered in the catalog filter.
var categoryOrder = []string{
	CategoryNutrition,
	CategoryPersonalCare,
	CategoryOralCare,
	CategoryPainRelief,
	CategoryBaby,
	CategoryFeminine,
	CategoryCosmetics,
	CategoryMiscellaneous,
}

// Classify maps a product to its category. It never fails: input that
// matches no rule, including blank input, is Miscellaneous.
func Classify(name, company string) string {
	name = strings.ToLower(name)
	company = strings.ToLower(company)

	for _, r := range rules {
		if r.Matches(name, company) {
			return r.Category
		}
	}
	return CategoryMiscellaneous
}

// Rules returns a copy of the classification rules in evaluation order.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// Categories returns the taxonomy in display order.
func Categories() []string {
	out := make([]string, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// IsCategory reports whether s is a taxonomy label.
func IsCategory(s string) bool {
	for _, c := range categoryOrder {
		if c == s {
			return true
		}
	}
	return false
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
