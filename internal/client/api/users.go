package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/artfolio/artfolio-cli/internal/client/models"
)

const (
	pathRegister   = "/api/users/register/"
	pathLogin      = "/api/users/login/"
	pathLogout     = "/api/users/logout/"
	pathProfile    = "/api/users/profile/"
	pathUserList   = "/api/users/list/"
	pathIsAdmin    = "/api/users/is-admin/"
	pathUploadFace = "/api/users/upload-face/"
)

// faceImageField is the multipart field name the backend expects for face
// captures, both during login and enrollment.
const faceImageField = "face_image"

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterRequest carries the registration form. The validate tags are the
// client-side preconditions checked before any network call.
type RegisterRequest struct {
	Username  string          `json:"username" validate:"required"`
	Email     string          `json:"email" validate:"required,email"`
	Password  string          `json:"password" validate:"required,min=8"`
	Password2 string          `json:"password2" validate:"required,eqfield=Password"`
	FirstName string          `json:"first_name" validate:"required"`
	LastName  string          `json:"last_name" validate:"required"`
	UserType  models.UserType `json:"user_type,omitempty" validate:"omitempty,oneof=user artist"`
}

// Login submits username/password. The response may carry a token, an
// embedded user, or face_required=true — the caller decides what to do next.
func (c *Client) Login(ctx context.Context, username, password string) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	err := c.gw.PostJSON(ctx, pathLogin, &LoginRequest{Username: username, Password: password}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// LoginWithFace repeats the login call as multipart, adding the captured
// face image to the original credentials.
func (c *Client) LoginWithFace(ctx context.Context, username, password string, image []byte, fileName string) (*models.AuthResponse, error) {
	fields := map[string]string{
		"username": username,
		"password": password,
	}
	files := []FilePart{{Field: faceImageField, FileName: fileName, Content: image}}

	var resp models.AuthResponse
	if err := c.gw.SendMultipart(ctx, http.MethodPost, pathLogin, fields, files, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates an account. Preconditions (matching passwords, minimum
// password length) are validated locally first; violations surface as
// *ValidationError without any request being made.
func (c *Client) Register(ctx context.Context, req *RegisterRequest) (*models.AuthResponse, error) {
	if err := checkValid(req); err != nil {
		return nil, err
	}

	var resp models.AuthResponse
	if err := c.gw.PostJSON(ctx, pathRegister, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Logout tells the backend to revoke the current token. Callers treat this
// as best-effort; local cleanup must not depend on it succeeding.
func (c *Client) Logout(ctx context.Context) error {
	return c.gw.PostJSON(ctx, pathLogout, nil, nil)
}

// Profile fetches the current user. Depending on the backend revision the
// user arrives either as the top-level body or nested under "user".
func (c *Client) Profile(ctx context.Context) (*models.User, error) {
	var raw json.RawMessage
	if err := c.gw.GetJSON(ctx, pathProfile, nil, &raw); err != nil {
		return nil, err
	}

	var envelope struct {
		User *models.User `json:"user"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.User != nil {
		return envelope.User, nil
	}

	var user models.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ListUsers returns all users; the backend serves this anonymously.
func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.gw.GetJSON(ctx, pathUserList, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// IsAdmin reports whether the current user is staff. Any failure, network
// or otherwise, is reported as false; the staff flag is advisory and never
// blocks a flow.
func (c *Client) IsAdmin(ctx context.Context) bool {
	var resp struct {
		IsAdmin bool `json:"is_admin"`
	}
	if err := c.gw.GetJSON(ctx, pathIsAdmin, nil, &resp); err != nil {
		return false
	}
	return resp.IsAdmin
}

// UploadFace enrolls a face capture for the current account so later logins
// require the biometric step.
func (c *Client) UploadFace(ctx context.Context, image []byte, fileName string) error {
	files := []FilePart{{Field: faceImageField, FileName: fileName, Content: image}}
	return c.gw.SendMultipart(ctx, http.MethodPost, pathUploadFace, nil, files, nil)
}
