package model

import "strings"

// Entry is a single note. ID is immutable once minted and is the merge key for sync.
type Entry struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	URL         string `json:"url,omitempty"`
	Description string `json:"description,omitempty"`
	Content     string `json:"content,omitempty"` // Markdown
}

// Subcategory groups entries inside a category. Title is the lookup key within its category.
type Subcategory struct {
	Title string  `json:"title"`
	Links []Entry `json:"links"`
}

// Category is a top-level group. Title is the lookup key at the top level.
type Category struct {
	Title         string        `json:"title"`
	Description   string        `json:"description,omitempty"`
	SubCategories []Subcategory `json:"subCategories"`
}

// Catalog is the full category -> subcategory -> entry tree.
//
// Every mutating method returns a new Catalog and leaves the receiver untouched.
type Catalog []Category

// EntryRef locates an entry inside the catalog.
type EntryRef struct {
	Entry       Entry
	Category    string
	SubCategory string
}

// Clone returns a deep copy. Nil slices stay nil.
func (c Catalog) Clone() Catalog {
	if c == nil {
		return nil
	}
	out := make(Catalog, len(c))
	for i, cat := range c {
		out[i] = cat.clone()
	}
	return out
}

func (cat Category) clone() Category {
	if cat.SubCategories == nil {
		return cat
	}
	subs := make([]Subcategory, len(cat.SubCategories))
	for i, sub := range cat.SubCategories {
		subs[i] = sub.clone()
	}
	cat.SubCategories = subs
	return cat
}

func (sub Subcategory) clone() Subcategory {
	if sub.Links == nil {
		return sub
	}
	links := make([]Entry, len(sub.Links))
	copy(links, sub.Links)
	sub.Links = links
	return sub
}

// Prune drops every subcategory without entries, then every category without subcategories.
func (c Catalog) Prune() Catalog {
	out := make(Catalog, 0, len(c))
	for _, cat := range c {
		subs := make([]Subcategory, 0, len(cat.SubCategories))
		for _, sub := range cat.SubCategories {
			if len(sub.Links) > 0 {
				subs = append(subs, sub.clone())
			}
		}
		if len(subs) == 0 {
			continue
		}
		cat.SubCategories = subs
		out = append(out, cat)
	}
	return out
}

// FindEntry returns the entry with id and the titles of its parents.
func (c Catalog) FindEntry(id string) (EntryRef, bool) {
	for _, cat := range c {
		for _, sub := range cat.SubCategories {
			for _, e := range sub.Links {
				if e.ID == id {
					return EntryRef{Entry: e, Category: cat.Title, SubCategory: sub.Title}, true
				}
			}
		}
	}
	return EntryRef{}, false
}

// WithoutEntry removes the entry with id wherever it lives and prunes the result.
// The second return value reports whether anything was removed.
func (c Catalog) WithoutEntry(id string) (Catalog, bool) {
	next, removed := c.Clone().dropIDs(id)
	return next.Prune(), removed
}

// Replace removes previousID (when set) and any existing copy of e.ID, then appends e under
// categoryTitle/subCategoryTitle, creating either container when no case-insensitive match exists.
// The result is pruned.
func (c Catalog) Replace(previousID string, e Entry, categoryTitle, subCategoryTitle string) Catalog {
	next, _ := c.Clone().dropIDs(previousID, e.ID)

	ci := next.categoryIndex(categoryTitle)
	if ci < 0 {
		next = append(next, Category{Title: categoryTitle, SubCategories: []Subcategory{}})
		ci = len(next) - 1
	}

	cat := &next[ci]
	si := cat.subCategoryIndex(subCategoryTitle)
	if si < 0 {
		cat.SubCategories = append(cat.SubCategories, Subcategory{Title: subCategoryTitle, Links: []Entry{}})
		si = len(cat.SubCategories) - 1
	}

	sub := &cat.SubCategories[si]
	sub.Links = append(sub.Links, e)

	return next.Prune()
}

// EntryCount returns the number of entries across the whole tree.
func (c Catalog) EntryCount() int {
	n := 0
	for _, cat := range c {
		for _, sub := range cat.SubCategories {
			n += len(sub.Links)
		}
	}
	return n
}

// dropIDs filters entries in place. Callers must own c.
func (c Catalog) dropIDs(ids ...string) (Catalog, bool) {
	removed := false
	for ci := range c {
		for si := range c[ci].SubCategories {
			sub := &c[ci].SubCategories[si]
			kept := sub.Links[:0]
			for _, e := range sub.Links {
				if matchesAny(e.ID, ids) {
					removed = true
					continue
				}
				kept = append(kept, e)
			}
			sub.Links = kept
		}
	}
	return c, removed
}

func matchesAny(id string, ids []string) bool {
	for _, candidate := range ids {
		if candidate != "" && candidate == id {
			return true
		}
	}
	return false
}

func (c Catalog) categoryIndex(title string) int {
	for i, cat := range c {
		if strings.EqualFold(cat.Title, title) {
			return i
		}
	}
	return -1
}

func (cat Category) subCategoryIndex(title string) int {
	for i, sub := range cat.SubCategories {
		if strings.EqualFold(sub.Title, title) {
			return i
		}
	}
	return -1
}
