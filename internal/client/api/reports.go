package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/artfolio/artfolio-cli/internal/client/models"
	"github.com/sethvargo/go-retry"
)

// The backend registers the report viewset under this prefix.
const pathReports = "/api/rapport/rapports/"

type ReportCreate struct {
	Name        string            `validate:"required"`
	Type        models.ReportType `validate:"required,oneof=descriptif analyse evaluation"`
	Picture     []byte            `validate:"required"`
	PictureName string
}

// ReportUpdate is a partial update; empty fields are left untouched. A new
// picture may be supplied alongside the metadata.
type ReportUpdate struct {
	Name        string
	Type        models.ReportType
	Picture     []byte
	PictureName string
}

func (c *Client) ListReports(ctx context.Context) ([]models.Report, error) {
	var reports []models.Report
	if err := c.gw.GetJSON(ctx, pathReports, nil, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

func (c *Client) GetReport(ctx context.Context, id int64) (*models.Report, error) {
	var report models.Report
	if err := c.gw.GetJSON(ctx, fmt.Sprintf("%s%d/", pathReports, id), nil, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// CreateReport uploads a picture and report metadata as multipart form data.
// The backend generates Result asynchronously; use WaitForResult to block
// until it is populated.
func (c *Client) CreateReport(ctx context.Context, req *ReportCreate) (*models.Report, error) {
	if err := checkValid(req); err != nil {
		return nil, err
	}

	fields := map[string]string{
		"name": req.Name,
		"type": string(req.Type),
	}
	fileName := req.PictureName
	if fileName == "" {
		fileName = "report.jpg"
	}
	files := []FilePart{{Field: "picture", FileName: fileName, Content: req.Picture}}

	var report models.Report
	if err := c.gw.SendMultipart(ctx, http.MethodPost, pathReports, fields, files, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// UpdateReport patches metadata and, optionally, the picture.
func (c *Client) UpdateReport(ctx context.Context, id int64, req *ReportUpdate) (*models.Report, error) {
	fields := map[string]string{}
	if req.Name != "" {
		fields["name"] = req.Name
	}
	if req.Type != "" {
		fields["type"] = string(req.Type)
	}
	var files []FilePart
	if len(req.Picture) > 0 {
		fileName := req.PictureName
		if fileName == "" {
			fileName = "report.jpg"
		}
		files = append(files, FilePart{Field: "picture", FileName: fileName, Content: req.Picture})
	}

	var report models.Report
	if err := c.gw.SendMultipart(ctx, http.MethodPatch, fmt.Sprintf("%s%d/", pathReports, id), fields, files, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (c *Client) DeleteReport(ctx context.Context, id int64) error {
	return c.gw.Delete(ctx, fmt.Sprintf("%s%d/", pathReports, id))
}

var errResultPending = errors.New("report result not ready")

// WaitForResult polls the report until the backend fills in Result. The
// contract is a bounded retry: fixed interval, no backoff, and a hard
// deadline — the poll ends on the first populated result or when the
// deadline elapses, whichever comes first. Transient fetch errors do not
// abort the loop; they count against the same deadline.
func (c *Client) WaitForResult(ctx context.Context, id int64) (*models.Report, error) {
	backoff := retry.WithMaxDuration(c.pollTimeout, retry.NewConstant(c.pollInterval))

	var report *models.Report
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		r, err := c.GetReport(ctx, id)
		if err != nil {
			return retry.RetryableError(err)
		}
		if r.Result == "" {
			return retry.RetryableError(errResultPending)
		}
		report = r
		return nil
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, &TimeoutExceededError{Operation: "report result"}
	}
	return report, nil
}
