package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/artfolio/artfolio-cli/internal/common"
)

func TestRejectedError_SentinelMapping(t *testing.T) {
	unauthorized := &RejectedError{StatusCode: http.StatusUnauthorized, Message: "expired"}
	assert.True(t, errors.Is(unauthorized, common.ErrUnauthorized))
	assert.False(t, errors.Is(unauthorized, common.ErrNotFound))

	notFound := &RejectedError{StatusCode: http.StatusNotFound, Message: "gone"}
	assert.True(t, errors.Is(notFound, common.ErrNotFound))

	badRequest := &RejectedError{StatusCode: http.StatusBadRequest}
	assert.False(t, errors.Is(badRequest, common.ErrUnauthorized))
}

func TestExtractMessage(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected string
	}{
		{name: "detail wins", body: `{"detail":"Invalid token.","error":"other"}`, expected: "Invalid token."},
		{name: "error second", body: `{"error":"No face enrolled","message":"ignored"}`, expected: "No face enrolled"},
		{name: "message third", body: `{"message":"try later"}`, expected: "try later"},
		{name: "non_field_errors fallback", body: `{"non_field_errors":["Unable to log in with provided credentials."]}`, expected: "Unable to log in with provided credentials."},
		{name: "empty string skipped", body: `{"detail":"","error":"real"}`, expected: "real"},
		{name: "non-string skipped", body: `{"detail":42,"error":"real"}`, expected: "real"},
		{name: "empty object", body: `{}`, expected: genericRejectedMessage},
		{name: "not json", body: `<html>502</html>`, expected: genericRejectedMessage},
		{name: "empty non_field_errors", body: `{"non_field_errors":[]}`, expected: genericRejectedMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractMessage([]byte(tt.body)))
		})
	}
}
