package models

// ComplaintSubject classifies who a complaint is about.
type ComplaintSubject string

const (
	ComplaintSubjectSystem ComplaintSubject = "system"
	ComplaintSubjectUser   ComplaintSubject = "user"
)

// Complaint is a user complaint ("reclamation"). The backend runs a local
// sentiment/emotion analysis on the text; those fields are read-only here.
// JSON keys mirror the backend's French field names.
type Complaint struct {
	ID        int64              `json:"id"`
	Author    int64              `json:"auteur"`
	Target    *int64             `json:"cible,omitempty"`
	Subject   ComplaintSubject   `json:"sujet"`
	Content   string             `json:"contenu"`
	Sentiment string             `json:"sentiment_local,omitempty"`
	Emotions  map[string]float64 `json:"emotions_local,omitempty"`
	CreatedAt string             `json:"date_creation,omitempty"`
}
