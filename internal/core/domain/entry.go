package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// TitleMaxLength is the interactive limit for entry titles, counted in runes.
const TitleMaxLength = 100

var ErrEntryNotFound = errors.New("entry not found")
var ErrValidation = errors.New("validation failed")
var ErrPersistence = errors.New("persistence failed")
var ErrConfirmationRequired = errors.New("delete requires confirmation")

// Entry is a single diary record. ID is assigned by the caller before the
// first write; OwnerID scopes every read and write to its creator.
type Entry struct {
	ID        string    `json:"id" bson:"_id"`
	OwnerID   string    `json:"user_id" bson:"user_id"`
	Title     string    `json:"title" bson:"title"`
	Body      string    `json:"content" bson:"content"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// EntryPatch carries the mutable fields applied by an update.
type EntryPatch struct {
	Title     string
	Body      string
	UpdatedAt time.Time
}

// ValidationError describes why user input was rejected. It matches
// ErrValidation with errors.Is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// EntryInput is raw title/body text as typed by the user.
type EntryInput struct {
	Title string
	Body  string
}

// Normalize trims surrounding whitespace from both fields.
func (in EntryInput) Normalize() EntryInput {
	return EntryInput{
		Title: strings.TrimSpace(in.Title),
		Body:  strings.TrimSpace(in.Body),
	}
}

// ValidateEntryInput trims the input and checks the title and body rules.
// The returned input is the trimmed form that should be persisted.
func ValidateEntryInput(in EntryInput) (EntryInput, error) {
	out := in.Normalize()
	if out.Title == "" || out.Body == "" {
		field := "title"
		if out.Title != "" {
			field = "content"
		}
		return out, &ValidationError{Field: field, Message: "title and content are required"}
	}
	if utf8.RuneCountInString(out.Title) > TitleMaxLength {
		return out, &ValidationError{
			Field:   "title",
			Message: fmt.Sprintf("title must be at most %d characters", TitleMaxLength),
		}
	}
	return out, nil
}

// Preview is the live rendering of a form while it is being typed.
type Preview struct {
	Title          string
	Body           string
	TitleLength    int
	TitleRemaining int
	BodyLength     int
}

// NewPreview counts characters as the user sees them (runes, untrimmed).
func NewPreview(in EntryInput) Preview {
	titleLen := utf8.RuneCountInString(in.Title)
	remaining := TitleMaxLength - titleLen
	if remaining < 0 {
		remaining = 0
	}
	return Preview{
		Title:          in.Title,
		Body:           in.Body,
		TitleLength:    titleLen,
		TitleRemaining: remaining,
		BodyLength:     utf8.RuneCountInString(in.Body),
	}
}
