package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/artfolio/artfolio-cli/internal/client/models"
)

const (
	pathPublications   = "/api/publications/"
	pathComments       = "/api/comments/"
	pathCommentSummary = "/api/comments/summary"
)

type PublicationCreate struct {
	Title        string `json:"title" validate:"required"`
	CreationDate string `json:"creation_date" validate:"required"` // YYYY-MM-DD
	Description  string `json:"description,omitempty"`
	// Artist is optional; the backend defaults to the current user.
	Artist int64 `json:"artist,omitempty"`
}

// PublicationUpdate is a partial update; nil fields are left untouched.
type PublicationUpdate struct {
	Title        *string `json:"title,omitempty"`
	CreationDate *string `json:"creation_date,omitempty"`
	Description  *string `json:"description,omitempty"`
}

// ListPublications returns publications, optionally filtered by artist id.
func (c *Client) ListPublications(ctx context.Context, artist *int64) ([]models.Publication, error) {
	var query url.Values
	if artist != nil {
		query = url.Values{"artist": []string{strconv.FormatInt(*artist, 10)}}
	}

	var pubs []models.Publication
	if err := c.gw.GetJSON(ctx, pathPublications, query, &pubs); err != nil {
		return nil, err
	}
	return pubs, nil
}

func (c *Client) GetPublication(ctx context.Context, id int64) (*models.Publication, error) {
	var pub models.Publication
	if err := c.gw.GetJSON(ctx, fmt.Sprintf("%s%d/", pathPublications, id), nil, &pub); err != nil {
		return nil, err
	}
	return &pub, nil
}

func (c *Client) CreatePublication(ctx context.Context, req *PublicationCreate) (*models.Publication, error) {
	if err := checkValid(req); err != nil {
		return nil, err
	}

	var pub models.Publication
	if err := c.gw.PostJSON(ctx, pathPublications, req, &pub); err != nil {
		return nil, err
	}
	return &pub, nil
}

func (c *Client) UpdatePublication(ctx context.Context, id int64, req *PublicationUpdate) (*models.Publication, error) {
	var pub models.Publication
	if err := c.gw.PatchJSON(ctx, fmt.Sprintf("%s%d/", pathPublications, id), req, &pub); err != nil {
		return nil, err
	}
	return &pub, nil
}

func (c *Client) DeletePublication(ctx context.Context, id int64) error {
	return c.gw.Delete(ctx, fmt.Sprintf("%s%d/", pathPublications, id))
}

// ListComments returns the comments of one publication.
func (c *Client) ListComments(ctx context.Context, publication int64) ([]models.Comment, error) {
	query := url.Values{"publication": []string{strconv.FormatInt(publication, 10)}}

	var comments []models.Comment
	if err := c.gw.GetJSON(ctx, pathComments, query, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (c *Client) CreateComment(ctx context.Context, publication int64, content string) (*models.Comment, error) {
	if content == "" {
		return nil, &ValidationError{Field: "content", Message: "is required"}
	}

	body := struct {
		Publication int64  `json:"publication"`
		Content     string `json:"content"`
	}{Publication: publication, Content: content}

	var comment models.Comment
	if err := c.gw.PostJSON(ctx, pathComments, &body, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

func (c *Client) UpdateComment(ctx context.Context, id int64, content string) (*models.Comment, error) {
	body := struct {
		Content string `json:"content"`
	}{Content: content}

	var comment models.Comment
	if err := c.gw.PatchJSON(ctx, fmt.Sprintf("%s%d/", pathComments, id), &body, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

func (c *Client) DeleteComment(ctx context.Context, id int64) error {
	return c.gw.Delete(ctx, fmt.Sprintf("%s%d/", pathComments, id))
}

// CommentSummary asks the backend for an AI digest of a publication's
// comments.
func (c *Client) CommentSummary(ctx context.Context, publication int64) (*models.CommentSummary, error) {
	query := url.Values{"publication": []string{strconv.FormatInt(publication, 10)}}

	var summary models.CommentSummary
	if err := c.gw.GetJSON(ctx, pathCommentSummary, query, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}
