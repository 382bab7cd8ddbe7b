package models

// ReportType classifies a staff report.
type ReportType string

const (
	ReportTypeDescriptive ReportType = "descriptif"
	ReportTypeAnalysis    ReportType = "analyse"
	ReportTypeEvaluation  ReportType = "evaluation"
)

// Report is a staff report over an uploaded picture. Result is filled in by
// the backend asynchronously after creation; an empty Result means generation
// is still pending.
type Report struct {
	ID        int64      `json:"id"`
	User      int64      `json:"user,omitempty"`
	Name      string     `json:"name"`
	Type      ReportType `json:"type"`
	Picture   string     `json:"picture,omitempty"` // URL
	Result    string     `json:"result,omitempty"`
	CreatedAt string     `json:"created_at,omitempty"`
}
