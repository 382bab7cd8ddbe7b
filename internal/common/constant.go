package common

// AuthHeaderName is the HTTP header used to carry the session token on
// outbound requests.
const AuthHeaderName = "Authorization"

// AuthScheme is the token scheme the backend expects in the Authorization
// header, i.e. "Token <value>".
const AuthScheme = "Token"

// RequestIDHeaderName carries the client-generated request id, mostly for
// correlating client logs with backend logs.
const RequestIDHeaderName = "X-Request-ID"
