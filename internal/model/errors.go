package model

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned when there is nothing to classify.
// Recoverable: callers should re-prompt rather than abort.
var ErrEmptyInput = errors.New("empty input: nothing to classify")

// InferenceError indicates the classifier call itself failed, which
// usually means a broken or mismatched model artifact. It is surfaced
// to the caller with a diagnostic; the verdict is withheld.
//
// Vectorizer failures never produce an InferenceError; the assembler
// absorbs them into a neutral zero vector.
type InferenceError struct {
	Stage string // "predict" or "probabilities"
	Err   error
}

func (e *InferenceError) Error() string {
	return fmt.Sprintf("inference failed at %s: %v", e.Stage, e.Err)
}

func (e *InferenceError) Unwrap() error {
	return e.Err
}
