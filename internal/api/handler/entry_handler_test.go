package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/diary/internal/core/domain"
	"github.com/99minutos/diary/internal/core/ports"
)

var trip = &domain.Entry{
	ID:        "e1",
	OwnerID:   alice.ID,
	Title:     "Trip",
	Body:      "Went to Kyoto",
	CreatedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	UpdatedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
}

func TestEntryHandler_Dashboard(t *testing.T) {
	stub := &stubEntryService{
		listFn: func(context.Context) (*ports.EntryListResult, error) {
			return &ports.EntryListResult{Principal: alice, Entries: []*domain.Entry{trip}}, nil
		},
	}
	c, rec := newJSONContext(http.MethodGet, "/dashboard", "")

	if err := NewEntryHandler(stub).Dashboard(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	resp := decode(t, rec)
	if resp["empty"] != false {
		t.Fatalf("expected non-empty dashboard: %v", resp)
	}
	if _, ok := resp["load_error"]; ok {
		t.Fatalf("unexpected load_error: %v", resp)
	}
	user := resp["user"].(map[string]any)
	if user["email"] != alice.Email {
		t.Fatalf("expected navbar email, got %v", user)
	}
	entries := resp["entries"].([]any)
	if len(entries) != 1 || entries[0].(map[string]any)["title"] != "Trip" {
		t.Fatalf("unexpected entries: %v", entries)
	}
}

func TestEntryHandler_Dashboard_LoadFailed(t *testing.T) {
	stub := &stubEntryService{
		listFn: func(context.Context) (*ports.EntryListResult, error) {
			return &ports.EntryListResult{Principal: alice, Entries: []*domain.Entry{}, LoadFailed: true}, nil
		},
	}
	c, rec := newJSONContext(http.MethodGet, "/dashboard", "")

	if err := NewEntryHandler(stub).Dashboard(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	resp := decode(t, rec)
	if resp["empty"] != true || resp["load_error"] != msgLoadFailed {
		t.Fatalf("expected empty state plus load error, got %v", resp)
	}
}

func TestEntryHandler_Dashboard_NoSessionPropagates(t *testing.T) {
	stub := &stubEntryService{
		listFn: func(context.Context) (*ports.EntryListResult, error) {
			return nil, domain.ErrAuthRequired
		},
	}
	c, _ := newJSONContext(http.MethodGet, "/dashboard", "")

	err := NewEntryHandler(stub).Dashboard(c)
	if !errors.Is(err, domain.ErrAuthRequired) {
		t.Fatalf("expected ErrAuthRequired, got %v", err)
	}
}

func TestEntryHandler_Create_Success(t *testing.T) {
	stub := &stubEntryService{
		createFn: func(_ context.Context, in domain.EntryInput) (*ports.EntryResult, error) {
			if in.Title != "Trip" || in.Body != "Went to Kyoto" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &ports.EntryResult{Principal: alice, Entry: trip}, nil
		},
	}
	c, rec := newJSONContext(http.MethodPost, "/create", `{"title":"Trip","content":"Went to Kyoto"}`)

	if err := NewEntryHandler(stub).Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	assertRedirect(t, rec, PathDashboard)
	if decode(t, rec)["entry_id"] != "e1" {
		t.Fatalf("expected entry_id in navigation body")
	}
}

func TestEntryHandler_Create_FormEncoded(t *testing.T) {
	var got domain.EntryInput
	stub := &stubEntryService{
		createFn: func(_ context.Context, in domain.EntryInput) (*ports.EntryResult, error) {
			got = in
			return &ports.EntryResult{Principal: alice, Entry: trip}, nil
		},
	}

	form := url.Values{"title": {"Trip"}, "content": {"Went to Kyoto"}}
	req := httptest.NewRequest(http.MethodPost, "/create", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	if err := NewEntryHandler(stub).Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got.Title != "Trip" || got.Body != "Went to Kyoto" {
		t.Fatalf("form fields not bound: %+v", got)
	}
	assertRedirect(t, rec, PathDashboard)
}

func TestEntryHandler_Create_ValidationEchoesForm(t *testing.T) {
	stub := &stubEntryService{
		createFn: func(_ context.Context, in domain.EntryInput) (*ports.EntryResult, error) {
			_, err := domain.ValidateEntryInput(in)
			return &ports.EntryResult{Principal: alice}, err
		},
	}
	c, rec := newJSONContext(http.MethodPost, "/create", `{"title":"   ","content":"kept"}`)

	if err := NewEntryHandler(stub).Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	resp := decode(t, rec)
	if resp["error"] != "title and content are required" || resp["field"] != "title" {
		t.Fatalf("unexpected error payload: %v", resp)
	}
	if resp["content"] != "kept" || resp["mode"] != formModeCreate {
		t.Fatalf("form not echoed back: %v", resp)
	}
	if user, _ := resp["user"].(map[string]any); user["email"] != alice.Email {
		t.Fatalf("expected navbar email on the re-shown form, got %v", resp["user"])
	}
}

func TestEntryHandler_Create_PersistenceFailure(t *testing.T) {
	stub := &stubEntryService{
		createFn: func(context.Context, domain.EntryInput) (*ports.EntryResult, error) {
			return nil, fmt.Errorf("create entry: %w: %w", domain.ErrPersistence, errors.New("timeout"))
		},
	}
	c, rec := newJSONContext(http.MethodPost, "/create", `{"title":"Trip","content":"Went to Kyoto"}`)

	if err := NewEntryHandler(stub).Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	resp := decode(t, rec)
	if resp["error"] != msgSaveFailed || resp["title"] != "Trip" {
		t.Fatalf("unexpected payload: %v", resp)
	}
}

func TestEntryHandler_Detail(t *testing.T) {
	stub := &stubEntryService{
		getFn: func(_ context.Context, id string) (*ports.EntryResult, error) {
			if id != "e1" {
				return nil, domain.ErrEntryNotFound
			}
			return &ports.EntryResult{Principal: alice, Entry: trip}, nil
		},
	}

	t.Run("found", func(t *testing.T) {
		c, rec := newJSONContext(http.MethodGet, "/diary/e1", "")
		c.SetParamNames("id")
		c.SetParamValues("e1")

		if err := NewEntryHandler(stub).Detail(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		entry := decode(t, rec)["entry"].(map[string]any)
		if entry["content_length"] != float64(len("Went to Kyoto")) {
			t.Fatalf("unexpected content_length: %v", entry["content_length"])
		}
		links := entry["_links"].(map[string]any)
		if links["edit"] != "/edit/e1" || links["delete"] != "/diary/e1/delete" {
			t.Fatalf("unexpected links: %v", links)
		}
	})

	t.Run("missing redirects to dashboard", func(t *testing.T) {
		c, rec := newJSONContext(http.MethodGet, "/diary/nope", "")
		c.SetParamNames("id")
		c.SetParamValues("nope")

		if err := NewEntryHandler(stub).Detail(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		assertRedirect(t, rec, PathDashboard)
	})
}

func TestEntryHandler_Delete(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		deleteErr  error
		wantStatus int
		wantKey    string
	}{
		{name: "no confirmation", body: `{}`, deleteErr: domain.ErrConfirmationRequired, wantStatus: http.StatusConflict, wantKey: "prompt"},
		{name: "confirmed", body: `{"confirm":true}`, wantStatus: http.StatusSeeOther, wantKey: "redirect"},
		{name: "store failure", body: `{"confirm":true}`, deleteErr: fmt.Errorf("delete entry: %w", domain.ErrPersistence), wantStatus: http.StatusInternalServerError, wantKey: "alert"},
		{name: "already gone", body: `{"confirm":true}`, deleteErr: domain.ErrEntryNotFound, wantStatus: http.StatusSeeOther, wantKey: "redirect"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var deleted bool
			stub := &stubEntryService{
				deleteFn: func(_ context.Context, id string, confirmed bool) (*ports.DeleteConfirmation, error) {
					if errors.Is(tt.deleteErr, domain.ErrConfirmationRequired) {
						if confirmed {
							t.Fatal("expected unconfirmed delete")
						}
						return &ports.DeleteConfirmation{EntryID: id, Title: "Trip"}, tt.deleteErr
					}
					if tt.deleteErr != nil {
						return nil, tt.deleteErr
					}
					deleted = confirmed
					return &ports.DeleteConfirmation{EntryID: id}, nil
				},
			}

			c, rec := newJSONContext(http.MethodPost, "/diary/e1/delete", tt.body)
			c.SetParamNames("id")
			c.SetParamValues("e1")

			if err := NewEntryHandler(stub).Delete(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, rec.Code)
			}
			if _, ok := decode(t, rec)[tt.wantKey]; !ok {
				t.Fatalf("expected %q in %s", tt.wantKey, rec.Body.String())
			}
			if tt.name == "confirmed" && !deleted {
				t.Fatal("expected delete to run")
			}
		})
	}
}

func TestEntryHandler_DeleteConfirm_NamesEntry(t *testing.T) {
	stub := &stubEntryService{
		confirmDeleteFn: func(_ context.Context, id string) (*ports.DeleteConfirmation, error) {
			return &ports.DeleteConfirmation{EntryID: id, Title: "Trip"}, nil
		},
	}
	c, rec := newJSONContext(http.MethodGet, "/diary/e1/delete", "")
	c.SetParamNames("id")
	c.SetParamValues("e1")

	if err := NewEntryHandler(stub).DeleteConfirm(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	resp := decode(t, rec)
	if resp["title"] != "Trip" || resp["prompt"] != msgDeletePrompt || resp["cancel"] != "/diary/e1" {
		t.Fatalf("unexpected confirmation: %v", resp)
	}
}

func TestEntryHandler_EditForm_SeedsFields(t *testing.T) {
	stub := &stubEntryService{
		getFn: func(context.Context, string) (*ports.EntryResult, error) {
			return &ports.EntryResult{Principal: alice, Entry: trip}, nil
		},
	}
	c, rec := newJSONContext(http.MethodGet, "/edit/e1", "")
	c.SetParamNames("id")
	c.SetParamValues("e1")

	if err := NewEntryHandler(stub).EditForm(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	resp := decode(t, rec)
	if resp["mode"] != formModeEdit || resp["title"] != "Trip" || resp["content"] != "Went to Kyoto" {
		t.Fatalf("form not seeded: %v", resp)
	}
	counter := resp["counter"].(map[string]any)
	if counter["title_length"] != float64(4) || counter["title_max"] != float64(domain.TitleMaxLength) {
		t.Fatalf("unexpected counter: %v", counter)
	}
}

func TestEntryHandler_Edit(t *testing.T) {
	t.Run("success goes to detail", func(t *testing.T) {
		stub := &stubEntryService{
			updateFn: func(_ context.Context, id string, in domain.EntryInput) (*ports.EntryResult, error) {
				updated := *trip
				updated.Title = in.Title
				return &ports.EntryResult{Principal: alice, Entry: &updated}, nil
			},
		}
		c, rec := newJSONContext(http.MethodPost, "/edit/e1", `{"title":"Trip!","content":"Went to Kyoto"}`)
		c.SetParamNames("id")
		c.SetParamValues("e1")

		if err := NewEntryHandler(stub).Edit(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		assertRedirect(t, rec, "/diary/e1")
	})

	t.Run("validation keeps edits", func(t *testing.T) {
		stub := &stubEntryService{
			updateFn: func(_ context.Context, _ string, in domain.EntryInput) (*ports.EntryResult, error) {
				_, err := domain.ValidateEntryInput(in)
				return nil, err
			},
		}
		c, rec := newJSONContext(http.MethodPost, "/edit/e1", `{"title":"Trip!","content":"  "}`)
		c.SetParamNames("id")
		c.SetParamValues("e1")

		if err := NewEntryHandler(stub).Edit(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", rec.Code)
		}
		resp := decode(t, rec)
		if resp["title"] != "Trip!" || resp["entry_id"] != "e1" || resp["field"] != "content" {
			t.Fatalf("unexpected payload: %v", resp)
		}
	})

	t.Run("store failure keeps edits", func(t *testing.T) {
		stub := &stubEntryService{
			updateFn: func(context.Context, string, domain.EntryInput) (*ports.EntryResult, error) {
				return &ports.EntryResult{Principal: alice}, fmt.Errorf("update entry: %w: %w", domain.ErrPersistence, errors.New("timeout"))
			},
		}
		c, rec := newJSONContext(http.MethodPost, "/edit/e1", `{"title":"Trip!","content":"Went to Osaka"}`)
		c.SetParamNames("id")
		c.SetParamValues("e1")

		if err := NewEntryHandler(stub).Edit(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
		resp := decode(t, rec)
		if resp["error"] != msgSaveFailed || resp["mode"] != formModeEdit || resp["entry_id"] != "e1" {
			t.Fatalf("unexpected payload: %v", resp)
		}
		if resp["title"] != "Trip!" || resp["content"] != "Went to Osaka" {
			t.Fatalf("edits not kept: %v", resp)
		}
		if user, _ := resp["user"].(map[string]any); user["email"] != alice.Email {
			t.Fatalf("expected navbar email, got %v", resp["user"])
		}
	})

	t.Run("vanished entry", func(t *testing.T) {
		stub := &stubEntryService{
			updateFn: func(context.Context, string, domain.EntryInput) (*ports.EntryResult, error) {
				return nil, fmt.Errorf("update entry e1: %w", domain.ErrEntryNotFound)
			},
		}
		c, rec := newJSONContext(http.MethodPost, "/edit/e1", `{"title":"a","content":"b"}`)
		c.SetParamNames("id")
		c.SetParamValues("e1")

		if err := NewEntryHandler(stub).Edit(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		assertRedirect(t, rec, PathDashboard)
	})
}

func TestEntryHandler_Preview(t *testing.T) {
	stub := &stubEntryService{
		previewFn: func(_ context.Context, in domain.EntryInput) (*ports.PreviewResult, error) {
			return &ports.PreviewResult{Principal: alice, Preview: domain.NewPreview(in)}, nil
		},
	}
	c, rec := newJSONContext(http.MethodPost, "/preview", `{"title":"Trip","content":"Went"}`)

	if err := NewEntryHandler(stub).Preview(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	counter := decode(t, rec)["counter"].(map[string]any)
	if counter["title_remaining"] != float64(domain.TitleMaxLength-4) || counter["body_length"] != float64(4) {
		t.Fatalf("unexpected counter: %v", counter)
	}
}
