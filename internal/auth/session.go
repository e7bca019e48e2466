// Package auth holds the client side of the authentication session: the
// upstream bearer token, the current user, and the login/register/logout
// transitions. The only states are anonymous, pending verification, and
// authenticated; a rejected token falls straight back to anonymous.
package auth

import (
	"context"
	"net/http"

	"github.com/Gabrielduah055/menHealthClient/internal/api"
	"github.com/Gabrielduah055/menHealthClient/internal/model"
)

// TokenStorage persists the bearer token between requests.
type TokenStorage interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

type Session struct {
	api    *api.Client
	tokens TokenStorage
	token  string
	user   *model.AuthUser
}

// NewSession reconciles the persisted token against /api/auth/me. Any
// failure — expired token, upstream down, whatever — discards the token and
// leaves the session anonymous. One attempt, no retry.
func NewSession(ctx context.Context, client *api.Client, tokens TokenStorage) *Session {
	s := &Session{api: client, tokens: tokens}
	token, err := tokens.Load()
	if err != nil || token == "" {
		return s
	}
	u, err := client.Me(ctx, token)
	if err != nil {
		_ = tokens.Clear()
		return s
	}
	s.token = token
	s.user = &u
	return s
}

// LoginOutcome describes where a successful login call landed: fully
// authenticated, or parked at the verification step.
type LoginOutcome struct {
	RequiresVerification bool
	Email                string
}

func (s *Session) Login(ctx context.Context, email, password string) (LoginOutcome, error) {
	res, err := s.api.Login(ctx, email, password)
	if err != nil {
		return LoginOutcome{}, err
	}
	if res.RequiresVerification {
		return LoginOutcome{RequiresVerification: true, Email: res.Email}, nil
	}
	if res.Token != "" {
		if err := s.tokens.Save(res.Token); err == nil {
			s.token = res.Token
		}
		s.user = res.User
	}
	return LoginOutcome{}, nil
}

// Register creates an unverified account and returns the email for the
// verification step. It never signs the session in.
func (s *Session) Register(ctx context.Context, req model.RegisterRequest) (string, error) {
	return s.api.Register(ctx, req)
}

// VerifyEmail submits the emailed one-time code. Success moves the account
// out of pending verification; the user still signs in afterwards.
func (s *Session) VerifyEmail(ctx context.Context, email, code string) error {
	return s.api.VerifyEmail(ctx, email, code)
}

func (s *Session) ResendCode(ctx context.Context, email string) error {
	return s.api.ResendCode(ctx, email)
}

// Logout is local only: the upstream keeps no session to tear down.
func (s *Session) Logout() {
	_ = s.tokens.Clear()
	s.token = ""
	s.user = nil
}

func (s *Session) User() *model.AuthUser { return s.user }
func (s *Session) Token() string         { return s.token }
func (s *Session) IsAuthenticated() bool { return s.user != nil }

// TokenCookieKey matches the storage key the web client has always used.
const TokenCookieKey = "mensHealthToken"

// CookieTokenStorage keeps the sealed token in an HttpOnly cookie.
type CookieTokenStorage struct {
	sealer *Sealer
	r      *http.Request
	w      http.ResponseWriter
}

func NewCookieTokenStorage(sealer *Sealer, w http.ResponseWriter, r *http.Request) *CookieTokenStorage {
	return &CookieTokenStorage{sealer: sealer, r: r, w: w}
}

func (c *CookieTokenStorage) Load() (string, error) {
	ck, err := c.r.Cookie(TokenCookieKey)
	if err != nil || ck.Value == "" {
		return "", nil
	}
	return c.sealer.Open(ck.Value)
}

func (c *CookieTokenStorage) Save(token string) error {
	sealed, err := c.sealer.Seal(token)
	if err != nil {
		return err
	}
	http.SetCookie(c.w, &http.Cookie{
		Name:     TokenCookieKey,
		Value:    sealed,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(SessionTTL.Seconds()),
	})
	return nil
}

func (c *CookieTokenStorage) Clear() error {
	http.SetCookie(c.w, &http.Cookie{
		Name:     TokenCookieKey,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
	return nil
}

// MemoryTokenStorage backs tests.
type MemoryTokenStorage struct {
	token string
}

func (m *MemoryTokenStorage) Load() (string, error) { return m.token, nil }
func (m *MemoryTokenStorage) Save(tok string) error { m.token = tok; return nil }
func (m *MemoryTokenStorage) Clear() error          { m.token = ""; return nil }
