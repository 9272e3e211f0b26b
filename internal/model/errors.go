package model

import "fmt"

// InvalidInputError means the feature vector cannot be handed to a classifier
// at all (wrong length, non-finite values, unknown disease). The caller must
// correct the input; nothing is persisted.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return "invalid input: " + e.Reason
}

// InferenceError wraps any failure raised by the underlying classifier.
type InferenceError struct {
	Err error
}

func (e *InferenceError) Error() string {
	return fmt.Sprintf("inference failed: %v", e.Err)
}

func (e *InferenceError) Unwrap() error {
	return e.Err
}
