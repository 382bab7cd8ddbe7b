package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artfolio/artfolio-cli/internal/client/api"
	"github.com/artfolio/artfolio-cli/internal/client/models"
	"github.com/artfolio/artfolio-cli/internal/client/sessionstore"
)

// fakeBackend emulates the slice of the backend the session needs: login,
// profile and logout, keyed off the token it issued.
type fakeBackend struct {
	token       string
	profileCode int
	logoutCode  int

	logoutCalls int
}

func (b *fakeBackend) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/login/"):
			w.Write([]byte(`{"token":"` + b.token + `","user":{"id":1,"username":"alice"}}`))

		case strings.HasSuffix(r.URL.Path, "/profile/"):
			if b.profileCode != 0 {
				w.WriteHeader(b.profileCode)
				w.Write([]byte(`{"detail":"nope"}`))
				return
			}
			if r.Header.Get("Authorization") == "" {
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"detail":"no credentials"}`))
				return
			}
			w.Write([]byte(`{"id":1,"username":"alice","email":"a@example.org"}`))

		case strings.HasSuffix(r.URL.Path, "/logout/"):
			b.logoutCalls++
			if b.logoutCode != 0 {
				w.WriteHeader(b.logoutCode)
				w.Write([]byte(`{"detail":"backend down"}`))
				return
			}
			w.Write([]byte(`{}`))

		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}
}

func newSessionFixture(t *testing.T, backend *fakeBackend) (*Session, *sessionstore.MemoryStore) {
	t.Helper()
	srv := httptest.NewServer(backend.handler())
	t.Cleanup(srv.Close)

	store := sessionstore.NewMemoryStore()
	client := api.New(api.Options{
		BaseURL:        srv.URL,
		RequestTimeout: 5 * time.Second,
	}, store, testLogger())
	auth := NewAuthService(client, store)
	return NewSession(client, store, auth, testLogger()), store
}

func TestSessionInit_RestoresFromStoredToken(t *testing.T) {
	s, store := newSessionFixture(t, &fakeBackend{token: "t"})

	ctx := context.Background()
	require.NoError(t, store.SetToken(ctx, "persisted"))

	s.Init(ctx)

	user := s.CurrentUser()
	require.NotNil(t, user)
	assert.Equal(t, "alice", user.Username)
}

func TestSessionInit_NoToken_StaysAnonymous(t *testing.T) {
	s, _ := newSessionFixture(t, &fakeBackend{token: "t"})

	s.Init(context.Background())
	assert.Nil(t, s.CurrentUser())
}

func TestSessionInit_ProfileFailureKeepsToken(t *testing.T) {
	s, store := newSessionFixture(t, &fakeBackend{token: "t", profileCode: http.StatusInternalServerError})

	ctx := context.Background()
	require.NoError(t, store.SetToken(ctx, "persisted"))

	s.Init(ctx)

	assert.Nil(t, s.CurrentUser())
	token, err := store.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "persisted", token, "a transient profile failure must not drop the token")
}

func TestSessionInit_401DropsToken(t *testing.T) {
	s, store := newSessionFixture(t, &fakeBackend{token: "t", profileCode: http.StatusUnauthorized})

	ctx := context.Background()
	require.NoError(t, store.SetToken(ctx, "expired"))

	s.Init(ctx)

	assert.Nil(t, s.CurrentUser())
	token, err := store.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, token, "a 401 on the profile fetch invalidates the session")
}

func TestSessionLogin_PublishesUser(t *testing.T) {
	s, store := newSessionFixture(t, &fakeBackend{token: "fresh"})

	var published []*models.User
	s.Subscribe(func(u *models.User) { published = append(published, u) })

	ctx := context.Background()
	user, pending, err := s.Login(ctx, "alice", "pw")
	require.NoError(t, err)
	assert.Nil(t, pending)
	require.NotNil(t, user)
	assert.Equal(t, "alice", user.Username)

	require.Len(t, published, 1)
	assert.Equal(t, user, published[0])

	token, err := store.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "fresh", token)
}

func TestSessionLogout_BestEffort(t *testing.T) {
	backend := &fakeBackend{token: "t", logoutCode: http.StatusInternalServerError}
	s, store := newSessionFixture(t, backend)

	ctx := context.Background()
	_, _, err := s.Login(ctx, "alice", "pw")
	require.NoError(t, err)

	var published []*models.User
	s.Subscribe(func(u *models.User) { published = append(published, u) })

	s.Logout(ctx)

	assert.Equal(t, 1, backend.logoutCalls)
	assert.Nil(t, s.CurrentUser())

	token, err := store.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, token, "local cleanup must not depend on the backend call")

	require.Len(t, published, 1)
	assert.Nil(t, published[0])
}

func TestSessionRefresh_Republishes(t *testing.T) {
	s, _ := newSessionFixture(t, &fakeBackend{token: "t"})

	ctx := context.Background()
	_, _, err := s.Login(ctx, "alice", "pw")
	require.NoError(t, err)

	var count int
	s.Subscribe(func(*models.User) { count++ })

	user := s.Refresh(ctx)
	require.NotNil(t, user)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, 1, count)
}

func TestSessionRelogin_Overwrites(t *testing.T) {
	backend := &fakeBackend{token: "first"}
	s, store := newSessionFixture(t, backend)

	ctx := context.Background()
	_, _, err := s.Login(ctx, "alice", "pw")
	require.NoError(t, err)

	backend.token = "second"
	_, _, err = s.Login(ctx, "alice", "pw")
	require.NoError(t, err)

	token, err := store.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second", token, "a new login replaces the stored token")
}
