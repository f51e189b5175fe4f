package local

import "errors"

// ErrNotFound means the slot holds no record.
var ErrNotFound = errors.New("record not found")
