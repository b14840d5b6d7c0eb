package service

import "fmt"

// Outcome is the result of a domain operation: a success flag, a message
// suitable for direct display, and the affected record on success.
type Outcome[T any] struct {
	OK      bool
	Message string
	Value   T
}

func success[T any](msg string, v T) Outcome[T] {
	return Outcome[T]{OK: true, Message: msg, Value: v}
}

func failure[T any](msg string) Outcome[T] {
	return Outcome[T]{OK: false, Message: msg}
}

// persistFailure wraps a storage write error into a displayable outcome.
// The mutation stays applied in memory; only the write-through failed.
func persistFailure[T any](err error) Outcome[T] {
	return failure[T](fmt.Sprintf("Failed to save data: %v", err))
}
