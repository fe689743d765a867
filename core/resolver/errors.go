package resolver

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoMatch is matched by every NoMatchError.
	ErrNoMatch = errors.New("no matching card")
	// ErrMultipleMatch is matched by every MultipleMatchError.
	ErrMultipleMatch = errors.New("multiple matching cards")
)

// NoMatchError is returned when no composite key matches a record.
type NoMatchError struct {
	Row Row
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("no matching card for %s", e.Row)
}

// Is makes errors.Is(err, ErrNoMatch) match.
func (e *NoMatchError) Is(target error) bool {
	return target == ErrNoMatch
}

// MultipleMatchError is returned when the deciding composite key matches several cards.
type MultipleMatchError struct {
	Row Row
	// Candidates are the matching identifiers, sorted.
	Candidates []string
}

func (e *MultipleMatchError) Error() string {
	return fmt.Sprintf("multiple matching cards for %s: %s", e.Row, strings.Join(e.Candidates, ", "))
}

// Is makes errors.Is(err, ErrMultipleMatch) match.
func (e *MultipleMatchError) Is(target error) bool {
	return target == ErrMultipleMatch
}
