// Package pkgerror defines the error envelope returned by every failing
// endpoint, plus the sentinel errors used across the application.
//
// It keeps error handling consistent by:
//   - Giving every failure occurrence its own id, which is both returned to
//     the client and attached to the server-side log record.
//   - Mapping arbitrary internal errors to a fixed status and a safe public
//     message, so causes never reach the response body.
//   - Logging client errors at warn and server errors at error, exactly once
//     per envelope.
package pkgerror
