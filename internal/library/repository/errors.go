package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert")
	ErrNotFound       = errors.New("not found")
	ErrFailedToList   = errors.New("failed to list")
)
