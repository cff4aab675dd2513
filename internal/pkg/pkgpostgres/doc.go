// Package pkgpostgres wraps a pgx connection pool for the application.
//
// The pool connects lazily, bounds every acquisition with a timeout, and
// returns errors whose messages never contain the connection password.
package pkgpostgres
