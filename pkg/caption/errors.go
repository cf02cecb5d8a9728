package caption

import (
	"errors"
	"fmt"
)

// ErrEmptyCaption is returned when generation produced no usable text
// after cleaning.
var ErrEmptyCaption = errors.New("empty caption generated")

// DecodeError indicates the image could not be opened, decoded or encoded
// for the model.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string { return fmt.Sprintf("decode failed: %v", e.Err) }
func (e *DecodeError) Unwrap() error { return e.Err }

// InferenceError indicates the backend call failed.
type InferenceError struct {
	Path string
	Err  error
}

func (e *InferenceError) Error() string { return fmt.Sprintf("inference failed: %v", e.Err) }
func (e *InferenceError) Unwrap() error { return e.Err }

// IsSkippable reports whether err belongs to one of the per-image error
// classes. These mean "skip this image"; anything else is unexpected and
// must propagate to the caller.
func IsSkippable(err error) bool {
	var decodeErr *DecodeError
	var inferenceErr *InferenceError
	return errors.As(err, &decodeErr) ||
		errors.As(err, &inferenceErr) ||
		errors.Is(err, ErrEmptyCaption)
}
