// Package pkguid provides helpers for generating unique identifiers.
//
// Request ids and error ids both come from a StringID so handlers, middleware
// and the error envelope never hard-code a specific UID strategy.
package pkguid
