package repository

import (
	"errors"
)

// ErrNotFound is returned when an id or unique key resolves to no row.
// Repositories translate pgx.ErrNoRows into this so callers outside the
// storage layer never depend on driver errors.
var ErrNotFound = errors.New("not found")
