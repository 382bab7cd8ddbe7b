// Package models defines the API data types exchanged with the Artfolio
// backend. JSON tags follow the backend's field names verbatim, including the
// French ones on complaints.
package models

// UserType classifies an account kind.
type UserType string

const (
	UserTypeUser   UserType = "user"
	UserTypeArtist UserType = "artist"
)

// User is the authenticated identity as returned by the profile endpoint.
type User struct {
	ID             int64    `json:"id"`
	Username       string   `json:"username"`
	Email          string   `json:"email"`
	FirstName      string   `json:"first_name,omitempty"`
	LastName       string   `json:"last_name,omitempty"`
	UserType       UserType `json:"user_type,omitempty"`
	Bio            string   `json:"bio,omitempty"`
	ProfilePicture string   `json:"profile_picture,omitempty"`
	PhoneNumber    string   `json:"phone_number,omitempty"`
	DateOfBirth    string   `json:"date_of_birth,omitempty"`
	DateJoined     string   `json:"date_joined,omitempty"`
}

// IsArtist reports whether the user registered with the artist role.
func (u *User) IsArtist() bool {
	return u != nil && u.UserType == UserTypeArtist
}
