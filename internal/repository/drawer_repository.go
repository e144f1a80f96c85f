package repository

import (
	"context"
	"database/sql"
	"errors"
)

// DrawerRepo encapsulates all database queries related to drawers
// (gavetas). Drawers are created only by the seed step; at request time
// the repository only resolves (room, drawer) name pairs to drawer ids.
type DrawerRepo struct {
	db *sql.DB
}

// NewDrawerRepo constructs a DrawerRepo with the provided DB handle.
func NewDrawerRepo(db *sql.DB) *DrawerRepo {
	return &DrawerRepo{db: db}
}

// ResolveID maps a (room name, drawer name) pair to the drawer's
// primary key. It returns ErrDrawerNotFound when no seeded drawer
// matches the pair; the confirm path relies on this to fail closed when
// the active location no longer resolves.
func (r *DrawerRepo) ResolveID(ctx context.Context, roomName, drawerName string) (uint64, error) {
	const q = `SELECT g.id FROM gavetas g
	           JOIN salas s ON s.id = g.sala_id
	           WHERE s.nome = ? AND g.nome = ?`
	var id uint64
	if err := r.db.QueryRowContext(ctx, q, roomName, drawerName).Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrDrawerNotFound
		}
		return 0, err
	}
	return id, nil
}

// CountByRoomAndName returns how many drawers carry the given name in
// the given room. The uniqueness invariant keeps this at zero or one;
// the seeding tests use it to verify re-seeding never duplicates rows.
func (r *DrawerRepo) CountByRoomAndName(ctx context.Context, roomName, drawerName string) (int, error) {
	const q = `SELECT COUNT(*) FROM gavetas g
	           JOIN salas s ON s.id = g.sala_id
	           WHERE s.nome = ? AND g.nome = ?`
	var n int
	if err := r.db.QueryRowContext(ctx, q, roomName, drawerName).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
