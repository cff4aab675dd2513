// Package pkglog contains logging helpers used across the application.
//
// It is built around slog and keeps logs consistent by:
//   - Initializing a JSON handler with stable keys.
//   - Attaching the request id and the request scope (method, path, protocol,
//     api version) from the context to each log record.
//   - Forwarding error records to Sentry when it is enabled.
package pkglog
