package http

import (
	"insighthub/internal/editor"
)

// --- Request DTOs ---

type saveReq struct {
	Category    string `json:"category"     binding:"max=200"`
	SubCategory string `json:"sub_category" binding:"max=200"`
	Title       string `json:"title"        binding:"max=300"`
	Description string `json:"description"  binding:"max=2000"`
	Content     string `json:"content"`
	URL         string `json:"url"          binding:"omitempty,url"`

	editingID string
}

func (r saveReq) toInput() editor.SaveInput {
	return editor.SaveInput{
		EditingID:   r.editingID,
		Category:    r.Category,
		SubCategory: r.SubCategory,
		Title:       r.Title,
		Description: r.Description,
		Content:     r.Content,
		URL:         r.URL,
	}
}

// --- Response DTOs ---

type entryResp struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	URL         string `json:"url,omitempty"`
	Description string `json:"description,omitempty"`
	Content     string `json:"content,omitempty"`
}

type saveResp struct {
	Entry        entryResp `json:"entry"`
	TotalEntries int       `json:"total_entries"`
	Synced       bool      `json:"synced"`
	Warning      string    `json:"warning,omitempty"`
}

func (h *handler) newSaveResp(out editor.SaveOutput) saveResp {
	return saveResp{
		Entry: entryResp{
			ID:          out.Entry.ID,
			Title:       out.Entry.Title,
			URL:         out.Entry.URL,
			Description: out.Entry.Description,
			Content:     out.Entry.Content,
		},
		TotalEntries: out.Catalog.EntryCount(),
		Synced:       out.Synced,
		Warning:      out.Warning,
	}
}

type deleteResp struct {
	Removed      bool   `json:"removed"`
	TotalEntries int    `json:"total_entries"`
	Synced       bool   `json:"synced"`
	Warning      string `json:"warning,omitempty"`
}

func (h *handler) newDeleteResp(out editor.DeleteOutput) deleteResp {
	return deleteResp{
		Removed:      out.Removed,
		TotalEntries: out.Catalog.EntryCount(),
		Synced:       out.Synced,
		Warning:      out.Warning,
	}
}

type formResp struct {
	EditingID   string `json:"editing_id"`
	Category    string `json:"category"`
	SubCategory string `json:"sub_category"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	URL         string `json:"url"`
}

func (h *handler) newFormResp(in editor.SaveInput) formResp {
	return formResp{
		EditingID:   in.EditingID,
		Category:    in.Category,
		SubCategory: in.SubCategory,
		Title:       in.Title,
		Description: in.Description,
		Content:     in.Content,
		URL:         in.URL,
	}
}
