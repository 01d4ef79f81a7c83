package models

import "errors"

// ErrNotFound is returned by every record store when a lookup matches nothing.
var ErrNotFound = errors.New("record not found")
