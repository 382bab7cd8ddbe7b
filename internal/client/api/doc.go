// Package api implements the HTTP client for the Artfolio backend.
//
// It has two layers. The Gateway is the single choke point for traffic: it
// attaches the stored session token to every request, tags requests with an
// id, and reacts to 401 responses by clearing the session store before the
// error reaches the caller. The Client on top of it provides one method per
// backend endpoint (users, publications, comments, reports, complaints) plus
// the bounded report-result poll.
//
// Errors follow a fixed taxonomy: *ValidationError for local precondition
// failures (no request made), *RejectedError for non-success responses, and
// *NetworkError for transport failures; see errors.go.
package api
