package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/artfolio/artfolio-cli/internal/client/sessionstore"
	"github.com/artfolio/artfolio-cli/internal/common"
	"github.com/artfolio/artfolio-cli/internal/logging"
	"github.com/google/uuid"
)

// Gateway decorates every outbound backend call.
//
// Before the call it reads the session store and, when a token is present,
// attaches it as "Authorization: Token <value>"; anonymous requests go out
// without the header. After the call, any 401 response clears the store
// unconditionally — for every endpoint, including ones that never needed a
// token — before the error reaches the caller.
//
// The gateway never swallows errors: side effects run first, then the
// original failure is surfaced as *RejectedError or *NetworkError.
type Gateway struct {
	baseURL string
	http    *http.Client
	store   sessionstore.Store
	log     logging.Logger
}

func NewGateway(baseURL string, store sessionstore.Store, log logging.Logger, timeout time.Duration) *Gateway {
	return &Gateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		store:   store,
		log:     log.With("component", "gateway"),
	}
}

// GetJSON issues a GET and decodes the JSON response into out.
func (g *Gateway) GetJSON(ctx context.Context, path string, query url.Values, out any) error {
	return g.do(ctx, http.MethodGet, path, query, nil, "", out)
}

// PostJSON issues a POST with a JSON body and decodes the response into out.
// Both in and out may be nil.
func (g *Gateway) PostJSON(ctx context.Context, path string, in, out any) error {
	body, err := encodeJSON(in)
	if err != nil {
		return err
	}
	return g.do(ctx, http.MethodPost, path, nil, body, "application/json", out)
}

// PatchJSON issues a PATCH with a JSON body and decodes the response into out.
func (g *Gateway) PatchJSON(ctx context.Context, path string, in, out any) error {
	body, err := encodeJSON(in)
	if err != nil {
		return err
	}
	return g.do(ctx, http.MethodPatch, path, nil, body, "application/json", out)
}

// Delete issues a DELETE. The backend answers 204 with no body.
func (g *Gateway) Delete(ctx context.Context, path string) error {
	return g.do(ctx, http.MethodDelete, path, nil, nil, "", nil)
}

// FilePart is one file field of a multipart request.
type FilePart struct {
	Field    string
	FileName string
	Content  []byte
}

// SendMultipart issues method (POST or PATCH) with a multipart/form-data
// body built from fields and files, and decodes the response into out.
func (g *Gateway) SendMultipart(ctx context.Context, method, path string, fields map[string]string, files []FilePart, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return fmt.Errorf("write field %s: %w", name, err)
		}
	}
	for _, f := range files {
		part, err := w.CreateFormFile(f.Field, f.FileName)
		if err != nil {
			return fmt.Errorf("create file part %s: %w", f.Field, err)
		}
		if _, err := part.Write(f.Content); err != nil {
			return fmt.Errorf("write file part %s: %w", f.Field, err)
		}
	}
	if err := w.Close(); err != nil {
		return err
	}

	return g.do(ctx, method, path, nil, &buf, w.FormDataContentType(), out)
}

func encodeJSON(in any) (io.Reader, error) {
	if in == nil {
		return nil, nil
	}
	data, err := json.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}
	return bytes.NewReader(data), nil
}

// do is the single choke point for all backend traffic. Token attachment
// happens synchronously before dispatch; 401 invalidation happens
// synchronously in the response path before the error is returned.
func (g *Gateway) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string, out any) error {
	u := g.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	requestID := uuid.NewString()
	req.Header.Set(common.RequestIDHeaderName, requestID)

	token, err := g.store.Token(ctx)
	if err != nil {
		// an unreadable store degrades to an anonymous request
		g.log.Warn(ctx, "session store unreadable, sending anonymous request", "error", err)
		token = ""
	}
	if token != "" {
		req.Header.Set(common.AuthHeaderName, common.AuthScheme+" "+token)
	}

	resp, err := g.http.Do(req)
	if err != nil {
		g.log.Debug(ctx, "request failed", "method", method, "path", path, "request_id", requestID, "error", err)
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Err: err}
	}

	g.log.Debug(ctx, "request finished",
		"method", method, "path", path, "status", resp.StatusCode, "request_id", requestID)

	if resp.StatusCode == http.StatusUnauthorized {
		// blanket policy: any 401 invalidates the stored session, even when
		// the request itself was anonymous-safe
		if clearErr := g.store.Clear(ctx); clearErr != nil {
			g.log.Error(ctx, "failed to clear session after 401", "error", clearErr)
		}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return &RejectedError{
			StatusCode: resp.StatusCode,
			Message:    extractMessage(respBody),
			Body:       respBody,
		}
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
