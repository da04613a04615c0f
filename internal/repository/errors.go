package repository

import "errors"

// ErrDuplicateEdge is returned when a friendship edge already exists.
var ErrDuplicateEdge = errors.New("friendship edge already exists")
