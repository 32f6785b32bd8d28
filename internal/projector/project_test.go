package projector_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"insighthub/internal/model"
	"insighthub/internal/projector"
)

func fruitCatalog() model.Catalog {
	return model.Catalog{{
		Title: "A",
		SubCategories: []model.Subcategory{{
			Title: "X",
			Links: []model.Entry{{ID: "item-1", Title: "Banana"}, {ID: "item-2", Title: "Apple"}},
		}},
	}}
}

func libraryCatalog() model.Catalog {
	return model.Catalog{
		{
			Title: "Science",
			SubCategories: []model.Subcategory{
				{Title: "Physics", Links: []model.Entry{{ID: "item-3", Title: "Optics"}, {ID: "item-9", Title: "apple falls"}}},
				{Title: "Biology", Links: []model.Entry{{ID: "item-4", Title: "Cells"}}},
			},
		},
		{
			Title: "Cooking",
			SubCategories: []model.Subcategory{
				{Title: "Desserts", Links: []model.Entry{{ID: "item-5", Title: "Pie"}}},
			},
		},
		{
			Title: "apple orchard",
			SubCategories: []model.Subcategory{
				{Title: "Trees", Links: []model.Entry{{ID: "item-6", Title: "Pruning"}}},
			},
		},
	}
}

func titles(c model.Catalog) []string {
	var out []string
	for _, cat := range c {
		out = append(out, cat.Title)
	}
	return out
}

func entryTitles(sub model.Subcategory) []string {
	var out []string
	for _, e := range sub.Links {
		out = append(out, e.Title)
	}
	return out
}

func TestProject(t *testing.T) {
	t.Run("Alpha Asc Orders Entries", func(t *testing.T) {
		got := projector.Project(fruitCatalog(), "", model.SortAlphaAsc)
		if diff := cmp.Diff([]string{"Apple", "Banana"}, entryTitles(got[0].SubCategories[0])); diff != "" {
			t.Errorf("entry order mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Alpha Desc", func(t *testing.T) {
		got := projector.Project(libraryCatalog(), "", model.SortAlphaDesc)
		if diff := cmp.Diff([]string{"Science", "Cooking", "apple orchard"}, titles(got)); diff != "" {
			t.Errorf("category order mismatch (-want +got):\n%s", diff)
		}
		if got[0].SubCategories[0].Title != "Physics" {
			t.Errorf("expected Physics first under desc, got %s", got[0].SubCategories[0].Title)
		}
	})

	t.Run("Newest Orders Entries By Id Desc", func(t *testing.T) {
		got := projector.Project(fruitCatalog(), "", model.SortNewest)
		if diff := cmp.Diff([]string{"Apple", "Banana"}, entryTitles(got[0].SubCategories[0])); diff != "" {
			t.Errorf("entry order mismatch (-want +got):\n%s", diff)
		}

		lib := projector.Project(libraryCatalog(), "", model.SortNewest)
		if diff := cmp.Diff(titles(libraryCatalog()), titles(lib)); diff != "" {
			t.Errorf("newest must keep category order (-want +got):\n%s", diff)
		}
	})

	t.Run("Empty Term Returns Everything", func(t *testing.T) {
		got := projector.Project(libraryCatalog(), "", model.SortAlphaAsc)
		if got.EntryCount() != libraryCatalog().EntryCount() {
			t.Errorf("expected %d entries, got %d", libraryCatalog().EntryCount(), got.EntryCount())
		}
		if diff := cmp.Diff([]string{"apple orchard", "Cooking", "Science"}, titles(got)); diff != "" {
			t.Errorf("category order mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Search Via Entry Title Keeps Whole Subcategory", func(t *testing.T) {
		got := projector.Project(fruitCatalog(), "apple", model.SortAlphaAsc)
		if len(got) != 1 || got[0].Title != "A" {
			t.Fatalf("expected category A, got %v", titles(got))
		}
		if len(got[0].SubCategories) != 1 || got[0].SubCategories[0].Title != "X" {
			t.Fatalf("expected subcategory X, got %+v", got[0].SubCategories)
		}
		if diff := cmp.Diff([]string{"Apple", "Banana"}, entryTitles(got[0].SubCategories[0])); diff != "" {
			t.Errorf("entries mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Search Filters Subcategories Unless Category Matches", func(t *testing.T) {
		got := projector.Project(libraryCatalog(), "APPLE", model.SortAlphaAsc)
		if diff := cmp.Diff([]string{"apple orchard", "Science"}, titles(got)); diff != "" {
			t.Fatalf("category mismatch (-want +got):\n%s", diff)
		}
		science := got[1]
		if len(science.SubCategories) != 1 || science.SubCategories[0].Title != "Physics" {
			t.Errorf("expected only Physics under Science, got %+v", science.SubCategories)
		}
		if len(got[0].SubCategories) != 1 {
			t.Errorf("matching category must keep all subcategories")
		}
	})

	t.Run("Search Without Matches", func(t *testing.T) {
		got := projector.Project(libraryCatalog(), "zzz", model.SortAlphaAsc)
		if got == nil || len(got) != 0 {
			t.Errorf("expected empty non-nil catalog, got %#v", got)
		}
	})

	t.Run("Never Mutates Input", func(t *testing.T) {
		for _, term := range []string{"", "apple", "bio", "zzz"} {
			for _, sort := range []model.SortOption{model.SortAlphaAsc, model.SortAlphaDesc, model.SortNewest, "bogus"} {
				in := libraryCatalog()
				_ = projector.Project(in, term, sort)
				if diff := cmp.Diff(libraryCatalog(), in); diff != "" {
					t.Errorf("Project(%q, %q) mutated input:\n%s", term, sort, diff)
				}
			}
		}
	})

	t.Run("Unknown Sort Keeps Order", func(t *testing.T) {
		got := projector.Project(fruitCatalog(), "", "bogus")
		if diff := cmp.Diff(fruitCatalog(), got); diff != "" {
			t.Errorf("expected stored order (-want +got):\n%s", diff)
		}
	})
}

func TestProjector(t *testing.T) {
	p := projector.New(0, time.Minute)

	first := p.Project(1, fruitCatalog(), "Apple", model.SortAlphaAsc)
	if p.Len() != 1 {
		t.Fatalf("expected 1 cached view, got %d", p.Len())
	}

	first[0].Title = "mutated"
	second := p.Project(1, nil, "apple", model.SortAlphaAsc)
	if len(second) != 1 || second[0].Title != "A" {
		t.Errorf("expected cached view unaffected by caller mutation, got %+v", second)
	}

	third := p.Project(2, model.Catalog{}, "apple", model.SortAlphaAsc)
	if len(third) != 0 {
		t.Errorf("new revision must recompute, got %+v", third)
	}
}
