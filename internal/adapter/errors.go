package adapter

import "errors"

var (
	// ErrProfileRequestFailed is returned when the outbound request could
	// not be completed at all (connection error, timeout, DNS failure).
	ErrProfileRequestFailed = errors.New("profile service request failed")

	// ErrProfileNotFound is returned when the profile service reports that
	// no profile exists for the given account identifier.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrProfileUnexpectedStatus is returned for any other non-2xx response
	// from the profile service.
	ErrProfileUnexpectedStatus = errors.New("unexpected profile service response")
)
