package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain operations
var (
	// ErrTransport indicates the provider could not be reached or answered with a non-success status
	ErrTransport = errors.New("provider transport failure")

	// ErrProvider indicates the provider answered with a well-formed failure body
	ErrProvider = errors.New("provider reported failure")

	// ErrTracker indicates a popularity store call failed
	ErrTracker = errors.New("popularity tracker failure")

	// ErrNotFound indicates the requested document does not exist
	ErrNotFound = errors.New("document not found")
)

// DefaultProviderMessage is shown when the provider signals failure without a message
const DefaultProviderMessage = "Failed to fetch movies"

// TransportErrorMessage is the user-facing text for any transport failure
const TransportErrorMessage = "Failed to fetch movies, please try again later."

// TransportError carries the HTTP status of a failed provider call.
// StatusCode is 0 when the request never produced a response.
type TransportError struct {
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode == 0 {
		if e.Err != nil {
			return fmt.Sprintf("provider request failed: %v", e.Err)
		}
		return "provider request failed"
	}
	return fmt.Sprintf("provider returned HTTP %d", e.StatusCode)
}

func (e *TransportError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrTransport, e.Err}
	}
	return []error{ErrTransport}
}

// ProviderError carries the provider's own failure message
type ProviderError struct {
	Message string
}

func (e *ProviderError) Error() string {
	return "provider error: " + e.UserMessage()
}

func (e *ProviderError) Unwrap() error { return ErrProvider }

// UserMessage returns the provider message or the generic fallback
func (e *ProviderError) UserMessage() string {
	if e.Message == "" {
		return DefaultProviderMessage
	}
	return e.Message
}

// TrackerError wraps a popularity store failure with the operation that failed
type TrackerError struct {
	Op  string
	Err error
}

func (e *TrackerError) Error() string {
	return fmt.Sprintf("tracker %s: %v", e.Op, e.Err)
}

func (e *TrackerError) Unwrap() []error { return []error{ErrTracker, e.Err} }

// UserMessage converts a fetch-path error into the single message shown to the user
func UserMessage(err error) string {
	var perr *ProviderError
	if errors.As(err, &perr) {
		return perr.UserMessage()
	}
	return TransportErrorMessage
}
