// Package services contains the application services for the Artfolio
// client: the credential flows (password, registration, face-augmented
// login) and the session provider that owns the "current user" state.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/artfolio/artfolio-cli/internal/client/api"
	"github.com/artfolio/artfolio-cli/internal/client/models"
	"github.com/artfolio/artfolio-cli/internal/client/sessionstore"
	"github.com/artfolio/artfolio-cli/internal/common"
)

// AuthService defines the credential flows.
//
// Contract:
//   - Login: password flow; may hand back a pending face step instead of a
//     completed session when the account has an enrolled face.
//   - Register: validates the form locally, then creates the account.
//
// Both flows are the only writers of the session store's token (besides the
// gateway's 401 invalidation). They surface *api.ValidationError,
// *api.RejectedError and *api.NetworkError verbatim.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	Register(ctx context.Context, req *api.RegisterRequest) (*LoginResult, error)
}

// LoginResult is the outcome of a login or registration attempt. Exactly one
// of the two branches applies: Pending is non-nil when the backend demands a
// face capture (no token stored yet); otherwise the token has been stored
// and User carries the embedded user, when the response had one.
type LoginResult struct {
	User    *models.User
	Pending *PendingFaceLogin
}

// errNoTokenInResponse covers a malformed success response: 2xx, no
// face_required flag, and no token under either field name.
var errNoTokenInResponse = errors.New("login response carried no token")

type authService struct {
	api   *api.Client
	store sessionstore.Store
}

// NewAuthService constructs an AuthService bound to the given API client and
// session store.
func NewAuthService(client *api.Client, store sessionstore.Store) AuthService {
	return &authService{api: client, store: store}
}

// Login submits username/password. If the backend flags face_required, no
// token is stored and the returned result carries a PendingFaceLogin that
// keeps the credentials alive for the capture step.
func (a *authService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	resp, err := a.api.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}

	if resp.FaceRequired {
		return &LoginResult{Pending: &PendingFaceLogin{
			svc:      a,
			username: username,
			password: password,
		}}, nil
	}

	user, err := a.completeLogin(ctx, resp)
	if err != nil {
		return nil, err
	}
	return &LoginResult{User: user}, nil
}

// Register creates an account. Local preconditions (matching passwords,
// minimum length) are enforced by the API layer before any network call; a
// violation comes back as *api.ValidationError. On success, token handling
// is identical to password login.
func (a *authService) Register(ctx context.Context, req *api.RegisterRequest) (*LoginResult, error) {
	resp, err := a.api.Register(ctx, req)
	if err != nil {
		return nil, err
	}

	user, err := a.completeLogin(ctx, resp)
	if err != nil {
		return nil, err
	}
	return &LoginResult{User: user}, nil
}

// completeLogin extracts the token from a successful auth response and
// persists it.
func (a *authService) completeLogin(ctx context.Context, resp *models.AuthResponse) (*models.User, error) {
	token := resp.SessionToken()
	if token == "" {
		return nil, errNoTokenInResponse
	}
	if err := a.store.SetToken(ctx, token); err != nil {
		return nil, fmt.Errorf("persist token: %w", err)
	}
	return resp.User, nil
}

// PendingFaceLogin is the transient state of the two-step face login: the
// credentials from step A, held until step B completes. The captured image
// is never retained here — a failed submit requires a fresh capture, while
// the credentials survive for the retry. A pending login belongs to exactly
// one flow instance and is dead once it succeeds.
type PendingFaceLogin struct {
	svc      *authService
	username string
	password string
	done     bool
}

// Submit sends the captured image together with the step-A credentials. Only
// on success is a token stored. On failure the pending state stays usable;
// call Submit again with a new capture.
func (p *PendingFaceLogin) Submit(ctx context.Context, image []byte, fileName string) (*models.User, error) {
	if p == nil || p.svc == nil || p.done {
		return nil, common.ErrNoPendingLogin
	}
	if len(image) == 0 {
		return nil, common.ErrNoFaceImage
	}

	resp, err := p.svc.api.LoginWithFace(ctx, p.username, p.password, image, fileName)
	if err != nil {
		return nil, err
	}

	user, err := p.svc.completeLogin(ctx, resp)
	if err != nil {
		return nil, err
	}

	p.done = true
	p.password = ""
	return user, nil
}
