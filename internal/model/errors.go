package model

import "errors"

var (
	// ErrNotFound is returned by stores when the requested row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned by stores when a uniqueness constraint rejects an insert.
	ErrAlreadyExists = errors.New("already exists")
)
