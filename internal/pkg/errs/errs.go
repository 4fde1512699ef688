// Package errs wraps cockroachdb/errors so the rest of the codebase never
// imports it directly. Sentinel errors live in domain_errors.go and are
// attached with Mark; handlers branch on errors.Is against them.
package errs

import (
	"fmt"
	"strings"

	cockroach "github.com/cockroachdb/errors"
)

func New(msg string) error {
	return cockroach.New(msg)
}

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cockroach.Wrap(err, msg)
}

// Mark attaches a sentinel to err so errors.Is(err, markErr) holds while
// the original message and stack survive.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cockroach.Mark(err, markErr)
}

// ExtractStackLines renders err verbosely and returns at most maxLines
// lines, for structured log fields where a full stack is too noisy.
func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	lines := strings.Split(fmt.Sprintf("%+v", err), "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
