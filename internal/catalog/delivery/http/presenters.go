package http

import (
	"insighthub/internal/model"
	"insighthub/internal/projector"
	"insighthub/pkg/markdown"
)

// --- Request DTOs ---

type listReq struct {
	Search    string `form:"search"`
	Sort      string `form:"sort"`
	Highlight bool   `form:"highlight"`

	sort model.SortOption
}

// --- Response DTOs ---

type entryResp struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	URL         string              `json:"url,omitempty"`
	Description string              `json:"description,omitempty"`
	HasContent  bool                `json:"has_content"`
	Segments    []projector.Segment `json:"title_segments,omitempty"`
}

type subCategoryResp struct {
	Title    string              `json:"title"`
	Segments []projector.Segment `json:"title_segments,omitempty"`
	Links    []entryResp         `json:"links"`
}

type categoryResp struct {
	Title         string              `json:"title"`
	Description   string              `json:"description,omitempty"`
	Segments      []projector.Segment `json:"title_segments,omitempty"`
	SubCategories []subCategoryResp   `json:"sub_categories"`
}

type listResp struct {
	Categories   []categoryResp `json:"categories"`
	TotalEntries int            `json:"total_entries"`
	Revision     uint64         `json:"revision"`
	Search       string         `json:"search,omitempty"`
	Sort         string         `json:"sort"`
}

func (h *handler) newListResp(view model.Catalog, revision uint64, req listReq) listResp {
	segments := func(text string) []projector.Segment {
		if !req.Highlight || req.Search == "" {
			return nil
		}
		return projector.Highlight(text, req.Search)
	}

	cats := make([]categoryResp, 0, len(view))
	for _, cat := range view {
		subs := make([]subCategoryResp, 0, len(cat.SubCategories))
		for _, sub := range cat.SubCategories {
			links := make([]entryResp, 0, len(sub.Links))
			for _, e := range sub.Links {
				links = append(links, entryResp{
					ID:          e.ID,
					Title:       e.Title,
					URL:         e.URL,
					Description: e.Description,
					HasContent:  e.Content != "",
					Segments:    segments(e.Title),
				})
			}
			subs = append(subs, subCategoryResp{Title: sub.Title, Segments: segments(sub.Title), Links: links})
		}
		cats = append(cats, categoryResp{
			Title:         cat.Title,
			Description:   cat.Description,
			Segments:      segments(cat.Title),
			SubCategories: subs,
		})
	}

	return listResp{
		Categories:   cats,
		TotalEntries: view.EntryCount(),
		Revision:     revision,
		Search:       req.Search,
		Sort:         string(req.sort),
	}
}

type entryDetail struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	URL         string `json:"url,omitempty"`
	Description string `json:"description,omitempty"`
	Content     string `json:"content,omitempty"`
}

type detailResp struct {
	Entry       entryDetail        `json:"entry"`
	Category    string             `json:"category"`
	SubCategory string             `json:"sub_category"`
	HTML        string             `json:"html"`
	Tasks       *markdown.Progress `json:"tasks,omitempty"` // nil when the note has no task list
}

func (h *handler) newDetailResp(ref model.EntryRef) detailResp {
	var tasks *markdown.Progress
	if p := markdown.TaskProgress(ref.Entry.Content); p.Total > 0 {
		tasks = &p
	}
	return detailResp{
		Entry: entryDetail{
			ID:          ref.Entry.ID,
			Title:       ref.Entry.Title,
			URL:         ref.Entry.URL,
			Description: ref.Entry.Description,
			Content:     ref.Entry.Content,
		},
		Category:    ref.Category,
		SubCategory: ref.SubCategory,
		HTML:        markdown.HTML(ref.Entry.Content),
		Tasks:       tasks,
	}
}

