package core

import (
	"sort"
	"strings"
)

// Query filters the catalog and returns the requested page.
// Stages run in order: search, category, company, pagination. Each stage
// sees the previous stage's output. Only an empty search term is skipped;
// whitespace is matched literally. page is clamped to [1, TotalPages];
// pageSize <= 0 means DefaultPageSize. The catalog is not modified.
func Query(catalog []Product, c Criteria, page, pageSize int) Page {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	filtered := catalog
	if term := strings.ToLower(c.Search); term != "" {
		filtered = filter(filtered, func(p Product) bool {
			return strings.Contains(strings.ToLower(p.Name), term) ||
				strings.Contains(strings.ToLower(p.Company), term)
		})
	}
	if c.Category != "" && c.Category != AllCategories {
		filtered = filter(filtered, func(p Product) bool { return p.Category == c.Category })
	}
	if c.Company != "" && c.Company != AllCompanies {
		filtered = filter(filtered, func(p Product) bool { return p.Company == c.Company })
	}

	total := len(filtered)
	totalPages := (total + pageSize - 1) / pageSize

	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}

	result := Page{
		Items:      []Product{},
		TotalCount: total,
		TotalPages: totalPages,
		Page:       page,
		PageSize:   pageSize,
	}
	if total == 0 {
		return result
	}

	start := (page - 1) * pageSize
	end := min(start+pageSize, total)

	result.Items = append(result.Items, filtered[start:end]...)
	result.First = start + 1
	result.Last = end
	return result
}

// filter returns the products matching keep, short-circuiting on empty input.
func filter(in []Product, keep func(Product) bool) []Product {
	if len(in) == 0 {
		return in
	}
	out := make([]Product, 0, len(in))
	for _, p := range in {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

// IsSpecialOffer reports whether a unit descriptor advertises an offer:
// it mentions "offer" or "free" in any case, or contains a "+" bundle.
func IsSpecialOffer(unit string) bool {
	lower := strings.ToLower(unit)
	return strings.Contains(lower, "offer") ||
		strings.Contains(unit, "+") ||
		strings.Contains(lower, "free")
}

// HasPromotion reports whether the unit explicitly mentions an offer,
// which the catalog page calls out as a promotional note.
func HasPromotion(unit string) bool {
	return strings.Contains(strings.ToLower(unit), "offer")
}

// unitAbbreviations are applied one after another, each to the output of
// the previous, so "KGM" becomes "Kg" rather than "kgM".
var unitAbbreviations = [][2]string{
	{"GM", "g"},
	{"ML", "ml"},
	{"LIT", "L"},
	{"KG", "kg"},
}

// NormalizeUnit rewrites upper-case unit abbreviations for display.
// Only the upper-case forms are replaced; "400gm" is left alone.
func NormalizeUnit(unit string) string {
	for _, r := range unitAbbreviations {
		unit = strings.ReplaceAll(unit, r[0], r[1])
	}
	return unit
}

// View attaches the display-only fields to p.
func View(p Product) ProductView {
	return ProductView{
		Product:      p,
		DisplayUnit:  NormalizeUnit(p.Unit),
		SpecialOffer: IsSpecialOffer(p.Unit),
		Promotion:    HasPromotion(p.Unit),
	}
}

// Views applies View to every product.
func Views(ps []Product) []ProductView {
	out := make([]ProductView, len(ps))
	for i, p := range ps {
		out[i] = View(p)
	}
	return out
}

// Companies returns the distinct company names in the catalog, sorted.
func Companies(catalog []Product) []string {
	seen := make(map[string]struct{}, len(catalog))
	out := make([]string, 0)
	for _, p := range catalog {
		if _, ok := seen[p.Company]; ok {
			continue
		}
		seen[p.Company] = struct{}{}
		out = append(out, p.Company)
	}
	sort.Strings(out)
	return out
}

// pageWindowSize is how many page links the pager shows at once.
const pageWindowSize = 5

// PageWindow returns up to five consecutive page numbers around current,
// shifted so the window stays inside [1, total].
func PageWindow(current, total int) []int {
	if total <= 0 {
		return nil
	}
	current = max(1, min(current, total))

	start := max(1, min(current-pageWindowSize/2, total-pageWindowSize+1))
	end := min(total, start+pageWindowSize-1)

	out := make([]int, 0, end-start+1)
	for p := start; p <= end; p++ {
		out = append(out, p)
	}
	return out
}
