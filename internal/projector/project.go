// Package projector derives the filtered, sorted view of a catalog that presentation layers render.
package projector

import (
	"slices"
	"strings"

	"insighthub/internal/model"
)

// Project filters c by term and orders it by sort. The input is never mutated.
//
// A category is kept when its title matches or any of its subcategories qualifies. A subcategory
// qualifies when its title or any entry title matches. When a category is kept only through its
// subcategories, the non-qualifying ones are dropped. Entries are never filtered individually.
func Project(c model.Catalog, term string, sort model.SortOption) model.Catalog {
	out := c.Clone()
	if out == nil {
		out = model.Catalog{}
	}

	if term != "" {
		out = filter(out, strings.ToLower(term))
	}

	sortCatalog(out, sort)
	return out
}

func filter(c model.Catalog, lowerTerm string) model.Catalog {
	kept := make(model.Catalog, 0, len(c))
	for _, cat := range c {
		if contains(cat.Title, lowerTerm) {
			kept = append(kept, cat)
			continue
		}

		subs := make([]model.Subcategory, 0, len(cat.SubCategories))
		for _, sub := range cat.SubCategories {
			if subQualifies(sub, lowerTerm) {
				subs = append(subs, sub)
			}
		}
		if len(subs) == 0 {
			continue
		}
		cat.SubCategories = subs
		kept = append(kept, cat)
	}
	return kept
}

func subQualifies(sub model.Subcategory, lowerTerm string) bool {
	if contains(sub.Title, lowerTerm) {
		return true
	}
	for _, e := range sub.Links {
		if contains(e.Title, lowerTerm) {
			return true
		}
	}
	return false
}

func contains(s, lowerTerm string) bool {
	return strings.Contains(strings.ToLower(s), lowerTerm)
}

// sortCatalog orders c in place. c must be owned by the caller.
func sortCatalog(c model.Catalog, sort model.SortOption) {
	titleCmp := titleComparator(sort)

	if titleCmp != nil {
		slices.SortStableFunc(c, func(a, b model.Category) int { return titleCmp(a.Title, b.Title) })
	}

	for ci := range c {
		subs := c[ci].SubCategories
		if titleCmp != nil {
			slices.SortStableFunc(subs, func(a, b model.Subcategory) int { return titleCmp(a.Title, b.Title) })
		}

		for si := range subs {
			links := subs[si].Links
			switch {
			case sort == model.SortNewest:
				slices.SortStableFunc(links, func(a, b model.Entry) int { return strings.Compare(b.ID, a.ID) })
			case titleCmp != nil:
				slices.SortStableFunc(links, func(a, b model.Entry) int { return titleCmp(a.Title, b.Title) })
			}
		}
	}
}

// titleComparator returns nil when titles keep their stored order.
func titleComparator(sort model.SortOption) func(a, b string) int {
	switch sort {
	case model.SortAlphaAsc:
		return compareTitles
	case model.SortAlphaDesc:
		return func(a, b string) int { return compareTitles(b, a) }
	default:
		return nil
	}
}

// compareTitles orders case-insensitively, breaking ties by byte order.
func compareTitles(a, b string) int {
	if c := strings.Compare(strings.ToLower(a), strings.ToLower(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}
