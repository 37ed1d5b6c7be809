package services

import "fmt"

// ValidationError reports malformed or out-of-range input. The caller can fix
// the request and retry.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// PermissionError reports a caller without the organizer capability or
// ownership of the target committee.
type PermissionError struct {
	Message string
}

func (e *PermissionError) Error() string { return e.Message }

// NotFoundError reports an absent entity or relationship.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string { return e.Resource + " not found" }

// ConflictError reports a violated uniqueness or one-time invariant.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// EligibilityError reports a domain rule blocking a payout.
type EligibilityError struct {
	Message string
}

func (e *EligibilityError) Error() string { return e.Message }
