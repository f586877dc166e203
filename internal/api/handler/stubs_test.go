package handler

import (
	"context"

	"github.com/99minutos/diary/internal/core/domain"
	"github.com/99minutos/diary/internal/core/ports"
)

var alice = domain.Principal{ID: "u1", Email: "alice@example.com"}

type stubEntryService struct {
	principalFn     func(ctx context.Context) (*domain.Principal, error)
	listFn          func(ctx context.Context) (*ports.EntryListResult, error)
	createFn        func(ctx context.Context, in domain.EntryInput) (*ports.EntryResult, error)
	getFn           func(ctx context.Context, id string) (*ports.EntryResult, error)
	updateFn        func(ctx context.Context, id string, in domain.EntryInput) (*ports.EntryResult, error)
	confirmDeleteFn func(ctx context.Context, id string) (*ports.DeleteConfirmation, error)
	deleteFn        func(ctx context.Context, id string, confirmed bool) (*ports.DeleteConfirmation, error)
	previewFn       func(ctx context.Context, in domain.EntryInput) (*ports.PreviewResult, error)
}

func (s *stubEntryService) Principal(ctx context.Context) (*domain.Principal, error) {
	return s.principalFn(ctx)
}

func (s *stubEntryService) List(ctx context.Context) (*ports.EntryListResult, error) {
	return s.listFn(ctx)
}

func (s *stubEntryService) Create(ctx context.Context, in domain.EntryInput) (*ports.EntryResult, error) {
	return s.createFn(ctx, in)
}

func (s *stubEntryService) Get(ctx context.Context, id string) (*ports.EntryResult, error) {
	return s.getFn(ctx, id)
}

func (s *stubEntryService) Update(ctx context.Context, id string, in domain.EntryInput) (*ports.EntryResult, error) {
	return s.updateFn(ctx, id, in)
}

func (s *stubEntryService) ConfirmDelete(ctx context.Context, id string) (*ports.DeleteConfirmation, error) {
	return s.confirmDeleteFn(ctx, id)
}

func (s *stubEntryService) Delete(ctx context.Context, id string, confirmed bool) (*ports.DeleteConfirmation, error) {
	return s.deleteFn(ctx, id, confirmed)
}

func (s *stubEntryService) Preview(ctx context.Context, in domain.EntryInput) (*ports.PreviewResult, error) {
	return s.previewFn(ctx, in)
}

type stubAuthService struct {
	signupFn   func(ctx context.Context, email, password string) (*domain.User, string, error)
	loginFn    func(ctx context.Context, email, password string) (string, error)
	exchangeFn func(ctx context.Context, code string) (*domain.Session, error)
	signOutFn  func(ctx context.Context, token string) error
}

func (s *stubAuthService) Signup(ctx context.Context, email, password string) (*domain.User, string, error) {
	return s.signupFn(ctx, email, password)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) ExchangeAuthCode(ctx context.Context, code string) (*domain.Session, error) {
	return s.exchangeFn(ctx, code)
}

func (s *stubAuthService) SignOut(ctx context.Context, token string) error {
	return s.signOutFn(ctx, token)
}

type stubThemeService struct {
	resolveFn func(ctx context.Context, deviceID, ambient string) (domain.Theme, error)
	toggleFn  func(ctx context.Context, deviceID, ambient string) (domain.Theme, error)
}

func (s *stubThemeService) Resolve(ctx context.Context, deviceID, ambient string) (domain.Theme, error) {
	return s.resolveFn(ctx, deviceID, ambient)
}

func (s *stubThemeService) Toggle(ctx context.Context, deviceID, ambient string) (domain.Theme, error) {
	return s.toggleFn(ctx, deviceID, ambient)
}

type stubSessionProvider struct {
	principal *domain.Principal
	err       error
}

func (s stubSessionProvider) CurrentPrincipal(context.Context) (*domain.Principal, error) {
	return s.principal, s.err
}
