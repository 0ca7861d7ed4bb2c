package repository

import "errors"

// ErrNotFound is returned when a requested record is not found in the store.
// This abstracts away the underlying storage implementation from the
// service layer.
var ErrNotFound = errors.New("record not found")
