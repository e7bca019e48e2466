package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gabrielduah055/menHealthClient/internal/api"
	"github.com/Gabrielduah055/menHealthClient/internal/model"
)

// fakeUpstream is a minimal auth API: one verified user, one unverified.
func fakeUpstream(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/auth/login":
			var in struct{ Email, Password string }
			decodeJSON(t, r, &in)
			switch {
			case in.Email == "verified@example.com" && in.Password == "good":
				w.Write([]byte(`{"token":"bearer-1","user":{"_id":"u1","fullName":"Ama Mensah","email":"verified@example.com","isVerified":true}}`))
			case in.Email == "pending@example.com" && in.Password == "good":
				w.Write([]byte(`{"requiresVerification":true,"email":"pending@example.com"}`))
			default:
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"message":"Invalid email or password"}`))
			}
		case "/api/auth/register":
			w.Write([]byte(`{"email":"new@example.com","message":"verification code sent"}`))
		case "/api/auth/me":
			if r.Header.Get("Authorization") == "Bearer bearer-1" {
				w.Write([]byte(`{"_id":"u1","fullName":"Ama Mensah","email":"verified@example.com","isVerified":true}`))
				return
			}
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message":"invalid token"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func decodeJSON(t *testing.T, r *http.Request, v any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(r.Body).Decode(v))
}

func TestSession_Login(t *testing.T) {
	srv := fakeUpstream(t)
	defer srv.Close()
	client := api.New(srv.URL, nil)

	t.Run("verified credentials set token and user", func(t *testing.T) {
		tokens := &MemoryTokenStorage{}
		s := NewSession(context.Background(), client, tokens)

		outcome, err := s.Login(context.Background(), "verified@example.com", "good")
		require.NoError(t, err)
		assert.False(t, outcome.RequiresVerification)
		assert.True(t, s.IsAuthenticated())
		assert.Equal(t, "bearer-1", s.Token())

		stored, _ := tokens.Load()
		assert.Equal(t, "bearer-1", stored)
		require.NotNil(t, s.User())
		assert.Equal(t, "Ama Mensah", s.User().FullName)
	})

	t.Run("unverified account requires verification, no token persisted", func(t *testing.T) {
		tokens := &MemoryTokenStorage{}
		s := NewSession(context.Background(), client, tokens)

		outcome, err := s.Login(context.Background(), "pending@example.com", "good")
		require.NoError(t, err)
		assert.True(t, outcome.RequiresVerification)
		assert.Equal(t, "pending@example.com", outcome.Email)
		assert.False(t, s.IsAuthenticated())

		stored, _ := tokens.Load()
		assert.Empty(t, stored)
	})

	t.Run("bad credentials propagate the upstream error", func(t *testing.T) {
		tokens := &MemoryTokenStorage{}
		s := NewSession(context.Background(), client, tokens)

		_, err := s.Login(context.Background(), "verified@example.com", "wrong")
		require.Error(t, err)
		assert.True(t, api.IsStatus(err, http.StatusUnauthorized))
		assert.False(t, s.IsAuthenticated())
	})
}

func TestSession_Register(t *testing.T) {
	srv := fakeUpstream(t)
	defer srv.Close()
	client := api.New(srv.URL, nil)

	tokens := &MemoryTokenStorage{}
	s := NewSession(context.Background(), client, tokens)

	email, err := s.Register(context.Background(), model.RegisterRequest{
		FullName: "New User",
		Email:    "new@example.com",
		Password: "pw",
	})
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", email)

	// Registration never signs the session in.
	assert.False(t, s.IsAuthenticated())
	stored, _ := tokens.Load()
	assert.Empty(t, stored)
}

func TestSession_Logout(t *testing.T) {
	srv := fakeUpstream(t)
	defer srv.Close()
	client := api.New(srv.URL, nil)

	tokens := &MemoryTokenStorage{}
	s := NewSession(context.Background(), client, tokens)
	_, err := s.Login(context.Background(), "verified@example.com", "good")
	require.NoError(t, err)
	require.True(t, s.IsAuthenticated())

	s.Logout()

	assert.False(t, s.IsAuthenticated())
	assert.Empty(t, s.Token())
	stored, _ := tokens.Load()
	assert.Empty(t, stored)
}

func TestNewSession_Reconciliation(t *testing.T) {
	srv := fakeUpstream(t)
	defer srv.Close()
	client := api.New(srv.URL, nil)

	t.Run("valid persisted token restores the user", func(t *testing.T) {
		tokens := &MemoryTokenStorage{}
		require.NoError(t, tokens.Save("bearer-1"))

		s := NewSession(context.Background(), client, tokens)

		assert.True(t, s.IsAuthenticated())
		assert.Equal(t, "verified@example.com", s.User().Email)
	})

	t.Run("rejected token is discarded", func(t *testing.T) {
		tokens := &MemoryTokenStorage{}
		require.NoError(t, tokens.Save("stale-token"))

		s := NewSession(context.Background(), client, tokens)

		assert.False(t, s.IsAuthenticated())
		stored, _ := tokens.Load()
		assert.Empty(t, stored)
	})

	t.Run("no token stays anonymous without calling upstream", func(t *testing.T) {
		s := NewSession(context.Background(), client, &MemoryTokenStorage{})
		assert.False(t, s.IsAuthenticated())
	})
}
