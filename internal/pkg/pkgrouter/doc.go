// Package pkgrouter wraps HTTP routing and the middleware pipeline used by the API.
//
// It provides a small router abstraction over httprouter plus the shared
// concerns every request goes through, in order: request id assignment,
// scoped request/response logging with header redaction, prometheus metrics,
// and panic recovery. Unmatched requests and handler errors are answered with
// the pkgerror envelope.
package pkgrouter
