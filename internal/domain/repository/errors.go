package repository

import "errors"

var (
	// ErrRecordNotFound is returned by Update, Delete and Move when the id is unknown.
	ErrRecordNotFound = errors.New("record not found")
	// ErrDuplicateKey is returned when a unique column already holds the value.
	ErrDuplicateKey = errors.New("duplicate key")
)
