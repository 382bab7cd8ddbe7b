package api

import (
	"context"
	"fmt"

	"github.com/artfolio/artfolio-cli/internal/client/models"
)

const (
	pathComplaints         = "/api/reclamation/"
	pathComplaintsReceived = "/api/reclamation/received/"
	pathComplaintsSent     = "/api/reclamation/sent/"
)

type ComplaintCreate struct {
	// Target is the complained-about user; nil for system complaints.
	Target  *int64                  `json:"cible,omitempty"`
	Subject models.ComplaintSubject `json:"sujet" validate:"required,oneof=system user"`
	Content string                  `json:"contenu" validate:"required"`
}

// ComplaintUpdate is a partial update; nil fields are left untouched.
type ComplaintUpdate struct {
	Target  *int64                   `json:"cible,omitempty"`
	Subject *models.ComplaintSubject `json:"sujet,omitempty"`
	Content *string                  `json:"contenu,omitempty"`
}

func (c *Client) ListComplaints(ctx context.Context) ([]models.Complaint, error) {
	return c.complaintList(ctx, pathComplaints)
}

// ReceivedComplaints lists complaints where the current user is the target.
func (c *Client) ReceivedComplaints(ctx context.Context) ([]models.Complaint, error) {
	return c.complaintList(ctx, pathComplaintsReceived)
}

// SentComplaints lists complaints authored by the current user.
func (c *Client) SentComplaints(ctx context.Context) ([]models.Complaint, error) {
	return c.complaintList(ctx, pathComplaintsSent)
}

func (c *Client) complaintList(ctx context.Context, path string) ([]models.Complaint, error) {
	var complaints []models.Complaint
	if err := c.gw.GetJSON(ctx, path, nil, &complaints); err != nil {
		return nil, err
	}
	return complaints, nil
}

func (c *Client) GetComplaint(ctx context.Context, id int64) (*models.Complaint, error) {
	var complaint models.Complaint
	if err := c.gw.GetJSON(ctx, fmt.Sprintf("%s%d/", pathComplaints, id), nil, &complaint); err != nil {
		return nil, err
	}
	return &complaint, nil
}

// CreateComplaint files a complaint. The backend runs sentiment analysis on
// the content and returns the annotated record.
func (c *Client) CreateComplaint(ctx context.Context, req *ComplaintCreate) (*models.Complaint, error) {
	if err := checkValid(req); err != nil {
		return nil, err
	}

	var complaint models.Complaint
	if err := c.gw.PostJSON(ctx, pathComplaints, req, &complaint); err != nil {
		return nil, err
	}
	return &complaint, nil
}

func (c *Client) UpdateComplaint(ctx context.Context, id int64, req *ComplaintUpdate) (*models.Complaint, error) {
	var complaint models.Complaint
	if err := c.gw.PatchJSON(ctx, fmt.Sprintf("%s%d/", pathComplaints, id), req, &complaint); err != nil {
		return nil, err
	}
	return &complaint, nil
}

func (c *Client) DeleteComplaint(ctx context.Context, id int64) error {
	return c.gw.Delete(ctx, fmt.Sprintf("%s%d/", pathComplaints, id))
}
