package pkgpostgres

import (
	"fmt"
	"regexp"
	"strings"
)

const redacted = "[REDACTED]"

//nolint:gochecknoglobals // compiled once
var (
	reKeywordPassword = regexp.MustCompile(`(?i)(password\s*=\s*)('[^']*'|\S+)`)
	reURLUserInfo     = regexp.MustCompile(`(://[^:/@\s]+:)[^@\s]+@`)
)

// Error is returned by Pool operations. Its message has credentials removed,
// while Unwrap still exposes the driver error.
type Error struct {
	Op  string
	Err error

	secrets []string
}

func (e *Error) Error() string {
	return Redact(fmt.Sprintf("%s: %v", e.Op, e.Err), e.secrets...)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Redact removes connection passwords from s: every non-empty secret, any
// "password=..." keyword and the password part of URL user info.
func Redact(s string, secrets ...string) string {
	for _, secret := range secrets {
		if secret != "" {
			s = strings.ReplaceAll(s, secret, redacted)
		}
	}
	s = reKeywordPassword.ReplaceAllString(s, "${1}"+redacted)
	s = reURLUserInfo.ReplaceAllString(s, "${1}"+redacted+"@")
	return s
}
