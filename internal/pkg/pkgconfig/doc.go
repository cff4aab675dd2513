// Package pkgconfig provides a small abstraction for reading configuration values.
//
// The application expects config values to come from a concrete implementation
// (for example Viper). Business code should depend on the Config interface so it
// stays easy to test and does not care where values come from (file, env, etc).
//
// Values are resolved from, in order of precedence: environment variables
// (a key like "database.url" is read from DATABASE_URL), an optional config
// file, then the built-in defaults.
package pkgconfig
