package handler

import (
	"github.com/99minutos/diary/internal/core/domain"
	"github.com/99minutos/diary/internal/core/ports"
)

const (
	formModeCreate = "create"
	formModeEdit   = "edit"

	msgLoadFailed   = "Failed to load diary entries."
	msgSaveFailed   = "Failed to save diary entry. Please try again."
	msgDeleteFailed = "Failed to delete diary entry. Please try again."
	msgDeletePrompt = "Are you sure you want to delete this diary entry?"
)

// --- Request → Service input ---

func (r entryRequest) toInput() domain.EntryInput {
	return domain.EntryInput{Title: r.Title, Body: r.Content}
}

// --- Service result → HTTP response ---

func linksFor(id string) entryLinks {
	return entryLinks{Self: entryPath(id), Edit: editPath(id), Delete: deletePath(id)}
}

func toDashboardResponse(r *ports.EntryListResult) dashboardResponse {
	entries := make([]entrySummary, 0, len(r.Entries))
	for _, e := range r.Entries {
		entries = append(entries, entrySummary{
			ID:        e.ID,
			Title:     e.Title,
			Content:   e.Body,
			CreatedAt: e.CreatedAt.UTC(),
			Links:     linksFor(e.ID),
		})
	}

	resp := dashboardResponse{
		User:      r.Principal,
		Entries:   entries,
		Empty:     len(entries) == 0,
		CreateURL: "/create",
	}
	if r.LoadFailed {
		resp.LoadError = msgLoadFailed
	}
	return resp
}

func toEntryDetailResponse(r *ports.EntryResult) entryDetailResponse {
	preview := domain.NewPreview(domain.EntryInput{Title: r.Entry.Title, Body: r.Entry.Body})
	return entryDetailResponse{
		User: r.Principal,
		Entry: entryView{
			ID:            r.Entry.ID,
			Title:         r.Entry.Title,
			Content:       r.Entry.Body,
			ContentLength: preview.BodyLength,
			CreatedAt:     r.Entry.CreatedAt.UTC(),
			UpdatedAt:     r.Entry.UpdatedAt.UTC(),
			Links:         linksFor(r.Entry.ID),
		},
	}
}

func toCounter(p domain.Preview) formCounter {
	return formCounter{
		TitleLength:    p.TitleLength,
		TitleMax:       domain.TitleMaxLength,
		TitleRemaining: p.TitleRemaining,
		BodyLength:     p.BodyLength,
	}
}

// toFormResponse renders a form with the values as the user typed them.
func toFormResponse(mode, entryID string, user *domain.Principal, req entryRequest) entryFormResponse {
	return entryFormResponse{
		User:    user,
		Mode:    mode,
		EntryID: entryID,
		Title:   req.Title,
		Content: req.Content,
		Counter: toCounter(domain.NewPreview(req.toInput())),
	}
}

func toPreviewResponse(r *ports.PreviewResult) previewResponse {
	return previewResponse{
		User:    r.Principal,
		Title:   r.Preview.Title,
		Content: r.Preview.Body,
		Counter: toCounter(r.Preview),
	}
}

func toDeleteConfirmResponse(d *ports.DeleteConfirmation) deleteConfirmResponse {
	return deleteConfirmResponse{
		EntryID: d.EntryID,
		Title:   d.Title,
		Prompt:  msgDeletePrompt,
		Confirm: confirmAction{Method: "POST", Href: deletePath(d.EntryID)},
		Cancel:  entryPath(d.EntryID),
	}
}
