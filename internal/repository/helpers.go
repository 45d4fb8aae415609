package repository

import "errors"

// ErrNotFound indicates the requested row does not exist.
var ErrNotFound = errors.New("not found")

// dateKey is the canonical string form dates are stored under.
const dateKey = "2006-01-02"
