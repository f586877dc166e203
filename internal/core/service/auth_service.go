package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/99minutos/diary/internal/core/domain"
	"github.com/99minutos/diary/internal/core/ports"
)

const (
	defaultTokenTTL = 24 * time.Hour
	defaultCodeTTL  = 5 * time.Minute
)

// sessionClaims is the payload of a session token. Subject carries the
// user ID and ID (jti) is what sign-out revokes.
type sessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// AuthService implements sign-up, sign-in via one-time codes, sign-out and
// the session lookup used by the session guard.
type AuthService struct {
	repo      ports.AuthRepository
	sessions  ports.SessionStore
	jwtSecret []byte
	tokenTTL  time.Duration
	codeTTL   time.Duration
	log       zerolog.Logger
	now       func() time.Time
}

func NewAuthService(
	repo ports.AuthRepository,
	sessions ports.SessionStore,
	jwtSecret string,
	tokenTTL, codeTTL time.Duration,
	log zerolog.Logger,
) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}
	if codeTTL <= 0 {
		codeTTL = defaultCodeTTL
	}
	return &AuthService{
		repo:      repo,
		sessions:  sessions,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
		codeTTL:   codeTTL,
		log:       log,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Signup creates the account and returns a code that completes the first
// sign-in through the callback.
func (s *AuthService) Signup(ctx context.Context, email, password string) (*domain.User, string, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, "", domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	now := s.now()
	created, err := s.repo.Create(ctx, &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, "", err
	}

	code, err := s.issueCode(ctx, domain.Principal{ID: created.ID, Email: created.Email})
	if err != nil {
		return nil, "", err
	}

	s.log.Info().Str("user_id", created.ID).Msg("user signed up")
	return created, code, nil
}

// Login checks the credentials and returns a one-time auth code. Unknown
// emails and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", domain.ErrInvalidCredentials
	}

	return s.issueCode(ctx, domain.Principal{ID: user.ID, Email: user.Email})
}

// ExchangeAuthCode consumes a one-time code and issues a session token.
func (s *AuthService) ExchangeAuthCode(ctx context.Context, code string) (*domain.Session, error) {
	if strings.TrimSpace(code) == "" {
		return nil, domain.ErrInvalidAuthCode
	}

	principal, err := s.sessions.ConsumeAuthCode(ctx, code)
	if err != nil {
		if !errors.Is(err, domain.ErrInvalidAuthCode) {
			s.log.Error().Err(err).Msg("auth code lookup failed")
		}
		return nil, fmt.Errorf("exchange auth code: %w", err)
	}

	session, err := s.generateSession(*principal)
	if err != nil {
		return nil, fmt.Errorf("exchange auth code: %w", err)
	}

	s.log.Info().Str("user_id", principal.ID).Msg("session issued")
	return session, nil
}

// SignOut revokes the token until it would have expired anyway. Tokens that
// are already invalid or expired need no revocation.
func (s *AuthService) SignOut(ctx context.Context, token string) error {
	claims, err := s.parse(token)
	if err != nil {
		s.log.Debug().Err(err).Msg("sign-out with unusable token")
		return nil
	}
	if claims.ID == "" || claims.ExpiresAt == nil {
		return nil
	}

	if err := s.sessions.Revoke(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
		return fmt.Errorf("sign out: %w", err)
	}
	s.log.Info().Str("user_id", claims.Subject).Msg("session revoked")
	return nil
}

// CurrentPrincipal implements ports.SessionProvider for the token attached
// to ctx. It returns (nil, nil) when the request carries no session or the
// session was signed out.
func (s *AuthService) CurrentPrincipal(ctx context.Context) (*domain.Principal, error) {
	token, ok := ports.SessionTokenFrom(ctx)
	if !ok {
		return nil, nil
	}

	claims, err := s.parse(token)
	if err != nil {
		return nil, fmt.Errorf("parse session token: %w", err)
	}

	revoked, err := s.sessions.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("check revocation: %w", err)
	}
	if revoked {
		return nil, nil
	}

	return &domain.Principal{ID: claims.Subject, Email: claims.Email}, nil
}

func (s *AuthService) issueCode(ctx context.Context, p domain.Principal) (string, error) {
	code := uuid.NewString()
	if err := s.sessions.SaveAuthCode(ctx, code, p, s.codeTTL); err != nil {
		return "", fmt.Errorf("save auth code: %w", err)
	}
	return code, nil
}

func (s *AuthService) generateSession(p domain.Principal) (*domain.Session, error) {
	now := s.now()
	expiresAt := now.Add(s.tokenTTL)
	tokenID := uuid.NewString()

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		Email: p.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.ID,
			ID:        tokenID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})
	signed, err := t.SignedString(s.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &domain.Session{
		Token:     signed,
		TokenID:   tokenID,
		Principal: p,
		ExpiresAt: expiresAt,
	}, nil
}

func (s *AuthService) parse(token string) (*sessionClaims, error) {
	claims := &sessionClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !tkn.Valid || claims.Subject == "" {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
