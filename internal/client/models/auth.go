package models

// AuthResponse is the body returned by the login and register endpoints.
//
// Different backend revisions put the issued token either in "token" or in
// "access"; SessionToken picks the first one present. When the account has an
// enrolled face, login responds with FaceRequired=true and no token — the
// caller must repeat the call with a face image.
type AuthResponse struct {
	Token        string `json:"token,omitempty"`
	Access       string `json:"access,omitempty"`
	Refresh      string `json:"refresh,omitempty"`
	User         *User  `json:"user,omitempty"`
	Message      string `json:"message,omitempty"`
	FaceRequired bool   `json:"face_required,omitempty"`
}

// SessionToken returns the credential token from the response, checking the
// primary field first and falling back to the secondary one. Empty means the
// response carried no token.
func (r *AuthResponse) SessionToken() string {
	if r.Token != "" {
		return r.Token
	}
	return r.Access
}
