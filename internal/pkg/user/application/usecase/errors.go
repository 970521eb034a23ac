package usecase

import "errors"

// ErrPersistence indicates an infrastructure/repository failure inside a use case
var ErrPersistence = errors.New("user use case persistence error")

// ErrInvalidCredentials covers both unknown email and wrong password, so the
// response never reveals which one failed.
var ErrInvalidCredentials = errors.New("users: invalid email or password")

// ErrNotFound signals a lookup for an account that does not exist.
var ErrNotFound = errors.New("users: account not found")
