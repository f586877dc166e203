package handler

import (
	"time"

	"github.com/99minutos/diary/internal/core/domain"
)

// --- Request types ---

// entryRequest is the create/edit/preview form. Both JSON and
// form-encoded bodies are accepted.
type entryRequest struct {
	Title   string `json:"title" form:"title"`
	Content string `json:"content" form:"content"`
}

type deleteRequest struct {
	Confirm bool `json:"confirm" form:"confirm"`
}

// --- Response types ---

type entryLinks struct {
	Self   string `json:"self"`
	Edit   string `json:"edit"`
	Delete string `json:"delete"`
}

type entrySummary struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	CreatedAt time.Time  `json:"created_at"`
	Links     entryLinks `json:"_links"`
}

type dashboardResponse struct {
	User      domain.Principal `json:"user"`
	Entries   []entrySummary   `json:"entries"`
	Empty     bool             `json:"empty"`
	LoadError string           `json:"load_error,omitempty"`
	CreateURL string           `json:"create_url"`
}

type entryView struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Content       string     `json:"content"`
	ContentLength int        `json:"content_length"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	Links         entryLinks `json:"_links"`
}

type entryDetailResponse struct {
	User  domain.Principal `json:"user"`
	Entry entryView        `json:"entry"`
}

// formCounter is the live n/100 counter shown under the title field.
type formCounter struct {
	TitleLength    int `json:"title_length"`
	TitleMax       int `json:"title_max"`
	TitleRemaining int `json:"title_remaining"`
	BodyLength     int `json:"body_length"`
}

// entryFormResponse is the create or edit form, either freshly loaded or
// echoed back after a rejected submission.
type entryFormResponse struct {
	User    *domain.Principal `json:"user,omitempty"`
	Mode    string            `json:"mode"`
	EntryID string            `json:"entry_id,omitempty"`
	Title   string            `json:"title"`
	Content string            `json:"content"`
	Counter formCounter       `json:"counter"`
	Field   string            `json:"field,omitempty"`
	Error   string            `json:"error,omitempty"`
}

type previewResponse struct {
	User    domain.Principal `json:"user"`
	Title   string           `json:"title"`
	Content string           `json:"content"`
	Counter formCounter      `json:"counter"`
}

type confirmAction struct {
	Method string `json:"method"`
	Href   string `json:"href"`
}

type deleteConfirmResponse struct {
	EntryID string        `json:"entry_id"`
	Title   string        `json:"title"`
	Prompt  string        `json:"prompt"`
	Confirm confirmAction `json:"confirm"`
	Cancel  string        `json:"cancel"`
}

type deleteFailedResponse struct {
	EntryID string `json:"entry_id"`
	Alert   string `json:"alert"`
}
