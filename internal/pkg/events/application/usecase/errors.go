package usecase

import "errors"

// ErrPersistence indicates an infrastructure/repository failure inside a use case
var ErrPersistence = errors.New("events use case persistence error")

// ErrNotFound signals a lookup for an event that does not exist.
var ErrNotFound = errors.New("events: event not found")
