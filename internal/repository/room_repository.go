// Package repository contains data access logic separated from HTTP handlers.
// This file defines repository methods for room (sala) lookups. Rooms are
// created only by the seed step, so the repository exposes reads only.
package repository

import (
	"context"      // context allows passing deadlines and cancellation signals to DB operations
	"database/sql" // sql provides generic database operations and drivers
	"errors"       // errors is used for sentinel comparisons
)

// RoomRepo encapsulates all database queries related to rooms. It
// depends on a sql.DB connection which should be configured elsewhere.
type RoomRepo struct {
	db *sql.DB // db is the underlying database connection pool
}

// NewRoomRepo constructs a RoomRepo with the provided DB handle. This
// function allows dependency injection of the database in tests and at
// startup. There is no initialization logic beyond assigning the field.
func NewRoomRepo(db *sql.DB) *RoomRepo {
	return &RoomRepo{db: db}
}

// GetIDByName resolves a room name to its primary key. It returns
// ErrRoomNotFound if no row matches.
func (r *RoomRepo) GetIDByName(ctx context.Context, name string) (uint64, error) {
	const q = "SELECT id FROM salas WHERE nome = ?"
	var id uint64
	if err := r.db.QueryRowContext(ctx, q, name).Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrRoomNotFound
		}
		return 0, err
	}
	return id, nil
}

// ListNames returns all room names ordered by name. Name order is part
// of the listing contract so that hierarchy output is deterministic.
func (r *RoomRepo) ListNames(ctx context.Context) ([]string, error) {
	const q = "SELECT nome FROM salas ORDER BY nome"
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
