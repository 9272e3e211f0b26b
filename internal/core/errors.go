package core

import "fmt"

// ValidationError means the submitted form fields are unacceptable. It is
// raised before any inference or storage happens.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// StorageError wraps a failed record insert. The diagnosis that preceded it
// is still returned to the caller.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("failed to store prediction: %v", e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// NotificationError wraps a failed report generation or email dispatch. It is
// non-fatal: the stored record is never rolled back because of it.
type NotificationError struct {
	Err error
}

func (e *NotificationError) Error() string {
	return fmt.Sprintf("failed to send result email: %v", e.Err)
}

func (e *NotificationError) Unwrap() error {
	return e.Err
}
