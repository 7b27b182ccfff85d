// internal/hypercube/errors.go
package hypercube

import "fmt"

// FailureKind classifies generation failures for logging and metrics; every
// failure still surfaces as the one *Error type.
type FailureKind int

const (
	// FailurePlacement: no valid location within the sampling budget.
	FailurePlacement FailureKind = iota
	// FailureDefinition: no catalog definition satisfies a role's pairing
	// constraints. Never recoverable by geometric retry alone.
	FailureDefinition
	// FailureAttempts: whole-attempt retries exhausted.
	FailureAttempts
)

func (k FailureKind) String() string {
	switch k {
	case FailureDefinition:
		return "definition"
	case FailureAttempts:
		return "attempts"
	default:
		return "placement"
	}
}

// Error is the single domain failure kind of the generator. Cause is always
// human-readable.
type Error struct {
	Kind  FailureKind
	Cause string
	Err   error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s failure: %s: %v", e.Kind, e.Cause, e.Err)
	}
	return fmt.Sprintf("%s failure: %s", e.Kind, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func placementFailure(cause string, err error) *Error {
	return &Error{Kind: FailurePlacement, Cause: cause, Err: err}
}

func definitionFailure(format string, args ...any) *Error {
	return &Error{Kind: FailureDefinition, Cause: fmt.Sprintf(format, args...)}
}
