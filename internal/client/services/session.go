package services

import (
	"context"
	"sync"

	"github.com/artfolio/artfolio-cli/internal/client/api"
	"github.com/artfolio/artfolio-cli/internal/client/models"
	"github.com/artfolio/artfolio-cli/internal/client/sessionstore"
	"github.com/artfolio/artfolio-cli/internal/logging"
)

// Session is the process-wide holder of "who is logged in". It is the only
// owner of the in-memory user; every consumer reads it through CurrentUser
// or a Subscribe callback.
//
// All mutating operations are serialized behind one mutex, including their
// network calls, so two concurrent logins cannot race to publish different
// users. Profile-fetch failures never propagate as errors: the session
// degrades to anonymous and leaves the stored token for the gateway to
// invalidate on a later request.
type Session struct {
	mu    sync.Mutex
	api   *api.Client
	store sessionstore.Store
	auth  AuthService
	log   logging.Logger

	user *models.User
	subs []func(*models.User)
}

func NewSession(client *api.Client, store sessionstore.Store, auth AuthService, log logging.Logger) *Session {
	return &Session{
		api:   client,
		store: store,
		auth:  auth,
		log:   log.With("component", "session"),
	}
}

// Init restores the session on start-up: when a token is already persisted,
// it fetches the profile once. Any failure leaves the session anonymous
// without touching the token.
func (s *Session) Init(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	token, err := s.store.Token(ctx)
	if err != nil {
		s.log.Warn(ctx, "session store unreadable on init", "error", err)
		return
	}
	if token == "" {
		return
	}

	s.publish(s.fetchProfile(ctx))
}

// CurrentUser returns the published user, nil when anonymous.
func (s *Session) CurrentUser() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// Subscribe registers fn to be called on every publish. Callbacks run with
// the session lock held and must not call back into the Session.
func (s *Session) Subscribe(fn func(*models.User)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Login runs the password flow. When the backend requires a face capture,
// the returned PendingFaceLogin is non-nil and no user is published yet; the
// caller finishes via CompleteFaceLogin.
func (s *Session) Login(ctx context.Context, username, password string) (*models.User, *PendingFaceLogin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.auth.Login(ctx, username, password)
	if err != nil {
		return nil, nil, err
	}
	if res.Pending != nil {
		return nil, res.Pending, nil
	}

	user := s.ensureUser(ctx, res.User)
	s.publish(user)
	return user, nil, nil
}

// CompleteFaceLogin submits the capture for a pending face login and, on
// success, publishes the resulting user.
func (s *Session) CompleteFaceLogin(ctx context.Context, pending *PendingFaceLogin, image []byte, fileName string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := pending.Submit(ctx, image, fileName)
	if err != nil {
		return nil, err
	}

	user = s.ensureUser(ctx, user)
	s.publish(user)
	return user, nil
}

// Register runs the registration flow and publishes the new identity.
func (s *Session) Register(ctx context.Context, req *api.RegisterRequest) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.auth.Register(ctx, req)
	if err != nil {
		return nil, err
	}

	user := s.ensureUser(ctx, res.User)
	s.publish(user)
	return user, nil
}

// Logout revokes the token server-side best-effort, then unconditionally
// clears the local session. A backend failure never blocks local cleanup.
func (s *Session) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.api.Logout(ctx); err != nil {
		s.log.Warn(ctx, "backend logout failed, clearing local session anyway", "error", err)
	}
	if err := s.store.Clear(ctx); err != nil {
		s.log.Error(ctx, "failed to clear session store", "error", err)
	}
	s.publish(nil)
}

// Refresh re-fetches the profile and republishes it without touching the
// token. A failed fetch publishes nil.
func (s *Session) Refresh(ctx context.Context) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.fetchProfile(ctx)
	s.publish(user)
	return user
}

// IsAdmin reports the staff flag for the current session; any error counts
// as false.
func (s *Session) IsAdmin(ctx context.Context) bool {
	return s.api.IsAdmin(ctx)
}

// ensureUser falls back to a profile fetch when the auth response embedded
// no user object.
func (s *Session) ensureUser(ctx context.Context, user *models.User) *models.User {
	if user != nil {
		return user
	}
	return s.fetchProfile(ctx)
}

// fetchProfile is the tolerant profile read: any failure is logged and
// reported as "no user".
func (s *Session) fetchProfile(ctx context.Context) *models.User {
	user, err := s.api.Profile(ctx)
	if err != nil {
		s.log.Warn(ctx, "profile fetch failed", "error", err)
		return nil
	}
	return user
}

// publish must be called with the lock held.
func (s *Session) publish(user *models.User) {
	s.user = user
	for _, fn := range s.subs {
		fn(user)
	}
}
