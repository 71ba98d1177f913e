package domain

import "fmt"

// ValidationError is returned for input rejected before any request is sent.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Reason)
}

// RetrievalError groups every failure of the format request: transport,
// non-2xx status, unparseable body and schema violations.
type RetrievalError struct {
	URL string
	Err error
}

func (e *RetrievalError) Error() string {
	return fmt.Sprintf("failed to retrieve formats for %q: %v", e.URL, e.Err)
}

func (e *RetrievalError) Unwrap() error {
	return e.Err
}

// SchemaError reports a response that is valid JSON but does not have the
// expected shape.
type SchemaError struct {
	Field  string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("unexpected response shape at %s: %s", e.Field, e.Reason)
}

// StatusError is a non-2xx answer from the backend.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend answered with status %s", e.Status)
}
