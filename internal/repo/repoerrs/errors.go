package repoerrs

import "errors"

var (
	ErrNotFound            = errors.New("not found")
	ErrAlreadyExists       = errors.New("already exists")
	ErrServerNotRegistered = errors.New("server is not registered")
	ErrUnknownChart        = errors.New("unknown chart")
)
