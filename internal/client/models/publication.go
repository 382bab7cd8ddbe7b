package models

// Publication is a published artwork.
type Publication struct {
	ID             int64  `json:"id"`
	Title          string `json:"title"`
	CreationDate   string `json:"creation_date"` // YYYY-MM-DD
	Description    string `json:"description,omitempty"`
	Image          string `json:"image,omitempty"` // URL
	Artist         int64  `json:"artist"`
	ArtistUsername string `json:"artist_username,omitempty"`
	CreatedAt      string `json:"created_at,omitempty"`
	UpdatedAt      string `json:"updated_at,omitempty"`
}

// Comment is a user comment attached to a publication.
type Comment struct {
	ID             int64  `json:"id"`
	Publication    int64  `json:"publication"`
	Author         int64  `json:"author"`
	AuthorUsername string `json:"author_username,omitempty"`
	Content        string `json:"content"`
	CreatedAt      string `json:"created_at,omitempty"`
	UpdatedAt      string `json:"updated_at,omitempty"`
}

// CommentSummary is the AI-generated digest of a publication's comments.
// Summary is nil when the backend has nothing to summarize.
type CommentSummary struct {
	Summary *string `json:"summary"`
	Detail  string  `json:"detail,omitempty"`
}
