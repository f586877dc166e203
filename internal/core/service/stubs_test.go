package service

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/diary/internal/core/domain"
	"github.com/99minutos/diary/internal/core/ports"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// In-memory stub entry repository
// ---------------------------------------------------------------------------

type stubEntryRepo struct {
	entries map[string]*domain.Entry
	calls   int // every repository call, reads included

	listErr   error
	getErr    error
	insertErr error
	updateErr error
	deleteErr error
}

func newStubEntryRepo() *stubEntryRepo {
	return &stubEntryRepo{entries: make(map[string]*domain.Entry)}
}

func (r *stubEntryRepo) List(_ context.Context, ownerID string) ([]*domain.Entry, error) {
	r.calls++
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []*domain.Entry
	for _, e := range r.entries {
		if e.OwnerID != ownerID {
			continue
		}
		clone := *e
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *stubEntryRepo) Get(_ context.Context, ownerID, id string) (*domain.Entry, error) {
	r.calls++
	if r.getErr != nil {
		return nil, r.getErr
	}
	e, ok := r.entries[id]
	if !ok || e.OwnerID != ownerID {
		return nil, domain.ErrEntryNotFound
	}
	clone := *e
	return &clone, nil
}

func (r *stubEntryRepo) Insert(_ context.Context, e *domain.Entry) error {
	r.calls++
	if r.insertErr != nil {
		return r.insertErr
	}
	clone := *e
	r.entries[e.ID] = &clone
	return nil
}

func (r *stubEntryRepo) Update(_ context.Context, ownerID, id string, patch domain.EntryPatch) (*domain.Entry, error) {
	r.calls++
	if r.updateErr != nil {
		return nil, r.updateErr
	}
	e, ok := r.entries[id]
	if !ok || e.OwnerID != ownerID {
		return nil, domain.ErrEntryNotFound
	}
	e.Title = patch.Title
	e.Body = patch.Body
	// Mirrors the stores: updated_at never precedes created_at.
	e.UpdatedAt = patch.UpdatedAt
	if e.UpdatedAt.Before(e.CreatedAt) {
		e.UpdatedAt = e.CreatedAt
	}
	clone := *e
	return &clone, nil
}

func (r *stubEntryRepo) Delete(_ context.Context, ownerID, id string) error {
	r.calls++
	if r.deleteErr != nil {
		return r.deleteErr
	}
	e, ok := r.entries[id]
	if !ok || e.OwnerID != ownerID {
		return domain.ErrEntryNotFound
	}
	delete(r.entries, id)
	return nil
}

// ---------------------------------------------------------------------------
// Stub session provider
// ---------------------------------------------------------------------------

type stubSessions struct {
	principal *domain.Principal
	err       error
	calls     int
}

func signedIn(id string) *stubSessions {
	return &stubSessions{principal: &domain.Principal{ID: id, Email: id + "@example.com"}}
}

func (s *stubSessions) CurrentPrincipal(context.Context) (*domain.Principal, error) {
	s.calls++
	return s.principal, s.err
}

// ---------------------------------------------------------------------------
// Activity recorder, clock, id generator
// ---------------------------------------------------------------------------

type recordingActivity struct {
	mu      sync.Mutex
	records []domain.EntryActivity
}

func (r *recordingActivity) Record(a domain.EntryActivity) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, a)
}

// stepClock returns start, start+step, start+2*step, ...
func stepClock(start time.Time, step time.Duration) func() time.Time {
	next := start
	return func() time.Time {
		now := next
		next = next.Add(step)
		return now
	}
}

func sequentialIDs(prefix string) ports.IDGenerator {
	n := 0
	return func() string {
		n++
		return prefix + strconv.Itoa(n)
	}
}

// ---------------------------------------------------------------------------
// In-memory session store and auth repository
// ---------------------------------------------------------------------------

type memSessionStore struct {
	codes   map[string]domain.Principal
	revoked map[string]time.Time

	saveErr    error
	revokedErr error
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{
		codes:   make(map[string]domain.Principal),
		revoked: make(map[string]time.Time),
	}
}

func (m *memSessionStore) SaveAuthCode(_ context.Context, code string, p domain.Principal, _ time.Duration) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.codes[code] = p
	return nil
}

func (m *memSessionStore) ConsumeAuthCode(_ context.Context, code string) (*domain.Principal, error) {
	p, ok := m.codes[code]
	if !ok {
		return nil, domain.ErrInvalidAuthCode
	}
	delete(m.codes, code)
	return &p, nil
}

func (m *memSessionStore) Revoke(_ context.Context, tokenID string, until time.Time) error {
	m.revoked[tokenID] = until
	return nil
}

func (m *memSessionStore) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	if m.revokedErr != nil {
		return false, m.revokedErr
	}
	_, ok := m.revoked[tokenID]
	return ok, nil
}

type stubAuthRepo struct {
	users map[string]*domain.User
}

func newStubAuthRepo() *stubAuthRepo {
	return &stubAuthRepo{users: make(map[string]*domain.User)}
}

func (r *stubAuthRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrUserExists
	}
	clone := *user
	clone.ID = "user-" + user.Email
	r.users[user.Email] = &clone
	out := clone
	return &out, nil
}

func (r *stubAuthRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

// ---------------------------------------------------------------------------
// In-memory theme store
// ---------------------------------------------------------------------------

type memThemeStore struct {
	prefs   map[string]string
	saves   int
	loadErr error
	saveErr error
}

func newMemThemeStore() *memThemeStore {
	return &memThemeStore{prefs: make(map[string]string)}
}

func (m *memThemeStore) Load(_ context.Context, deviceID string) (string, error) {
	if m.loadErr != nil {
		return "", m.loadErr
	}
	return m.prefs[deviceID], nil
}

func (m *memThemeStore) Save(_ context.Context, deviceID string, t domain.Theme) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.prefs[deviceID] = string(t)
	return nil
}
