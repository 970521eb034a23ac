package usecase

import "errors"

// ErrPersistence indicates an infrastructure/repository failure inside a use case
var ErrPersistence = errors.New("messaging use case persistence error")

// ErrUnauthenticated indicates the caller's identity could not be resolved
var ErrUnauthenticated = errors.New("messaging: sender identity is missing")
