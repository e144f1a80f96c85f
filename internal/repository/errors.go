// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios. For
// example, ErrDrawerNotFound indicates that the active (room, drawer)
// selection no longer resolves to a seeded drawer, while ErrConstraint
// signals that the underlying store rejected a write because of a
// uniqueness or foreign-key violation.
package repository

import "errors"

// ErrRoomNotFound is returned when a room cannot be found in the DB.
var ErrRoomNotFound = errors.New("room not found")

// ErrDrawerNotFound is returned when a (room, drawer) pair cannot be
// resolved to a seeded drawer. Handlers should translate this into an
// HTTP 404 response.
var ErrDrawerNotFound = errors.New("drawer not found")

// ErrConstraint is returned when the store rejects an insert due to a
// uniqueness or foreign-key violation. Seeding treats it as a no-op;
// the confirm path treats it as a not-found class failure because it
// means the referenced drawer row does not exist.
var ErrConstraint = errors.New("constraint violation")
