package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"insighthub/internal/catalog"
	"insighthub/internal/editor"
	"insighthub/internal/model"
)

func (uc *implUseCase) Form(ctx context.Context, id string) (editor.SaveInput, error) {
	ref, err := uc.catalog.FindEntry(ctx, id)
	if err != nil {
		return editor.SaveInput{}, err
	}
	return editor.SaveInput{
		EditingID:   ref.Entry.ID,
		Category:    ref.Category,
		SubCategory: ref.SubCategory,
		Title:       ref.Entry.Title,
		Description: ref.Entry.Description,
		Content:     ref.Entry.Content,
		URL:         ref.Entry.URL,
	}, nil
}

func (uc *implUseCase) Save(ctx context.Context, input editor.SaveInput) (editor.SaveOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	cfg := uc.settings.Get(ctx)
	if !cfg.IsOwner() {
		return editor.SaveOutput{}, editor.ErrReadOnly
	}

	input = normalize(input)
	if err := validate(input); err != nil {
		return editor.SaveOutput{}, err
	}

	id := input.EditingID
	if id != "" {
		if _, err := uc.catalog.FindEntry(ctx, id); err != nil {
			if errors.Is(err, catalog.ErrEntryNotFound) {
				return editor.SaveOutput{}, fmt.Errorf("%w: %s", catalog.ErrEntryNotFound, id)
			}
			return editor.SaveOutput{}, err
		}
	} else {
		id = uc.newID()
	}

	entry := model.Entry{
		ID:          id,
		Title:       input.Title,
		URL:         input.URL,
		Description: input.Description,
		Content:     input.Content,
	}

	updated, err := uc.catalog.Upsert(ctx, catalog.UpsertInput{
		Entry:            entry,
		CategoryTitle:    input.Category,
		SubCategoryTitle: input.SubCategory,
		PreviousID:       input.EditingID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "editor.usecase.Save.Upsert: %v", err)
		return editor.SaveOutput{}, err
	}

	out := editor.SaveOutput{
		Entry:   entry,
		Catalog: updated,
		Synced:  uc.push(ctx, cfg, updated),
	}
	if !out.Synced {
		out.Warning = editor.SyncWarning
	}
	return out, nil
}

func (uc *implUseCase) Delete(ctx context.Context, id string) (editor.DeleteOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	cfg := uc.settings.Get(ctx)
	if !cfg.IsOwner() {
		return editor.DeleteOutput{}, editor.ErrReadOnly
	}

	res, err := uc.catalog.Remove(ctx, strings.TrimSpace(id))
	if err != nil {
		uc.l.Errorf(ctx, "editor.usecase.Delete.Remove: %v", err)
		return editor.DeleteOutput{}, err
	}

	out := editor.DeleteOutput{Catalog: res.Catalog, Removed: res.Removed}
	if !res.Removed {
		return out, nil
	}

	out.Synced = uc.push(ctx, cfg, res.Catalog)
	if !out.Synced {
		out.Warning = editor.SyncWarning
	}
	return out, nil
}

// push mirrors a committed catalog. It outlives the caller's cancellation so a dropped
// request cannot leave the remote copy behind; the pusher's own timeout still bounds it.
func (uc *implUseCase) push(ctx context.Context, cfg model.SyncConfig, c model.Catalog) bool {
	return uc.pusher.Push(context.WithoutCancel(ctx), cfg, c)
}

func normalize(in editor.SaveInput) editor.SaveInput {
	in.EditingID = strings.TrimSpace(in.EditingID)
	in.Category = strings.TrimSpace(in.Category)
	in.SubCategory = strings.TrimSpace(in.SubCategory)
	in.Title = strings.TrimSpace(in.Title)
	in.URL = strings.TrimSpace(in.URL)
	return in
}

func validate(in editor.SaveInput) error {
	var missing []string
	if in.Category == "" {
		missing = append(missing, "category")
	}
	if in.SubCategory == "" {
		missing = append(missing, "subCategory")
	}
	if in.Title == "" {
		missing = append(missing, "title")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", editor.ErrValidation, strings.Join(missing, ", "))
	}
	return nil
}
