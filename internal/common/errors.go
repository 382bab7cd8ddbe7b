// Package common defines shared constants and sentinel errors used across
// the Artfolio client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Backend-level errors.
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")

	// Face-login flow errors.
	ErrNoPendingLogin = errors.New("no pending face login")
	ErrNoFaceImage    = errors.New("no face image captured")
)
