package repository

import (
	"context"
	"database/sql"
)

// HierarchyRepo builds the full room → drawer → student-name snapshot
// used by the listing endpoint. It spans all three relations, so it
// lives apart from the per-entity repositories.
type HierarchyRepo struct {
	db *sql.DB
}

// NewHierarchyRepo constructs a HierarchyRepo with the provided DB handle.
func NewHierarchyRepo(db *sql.DB) *HierarchyRepo {
	return &HierarchyRepo{db: db}
}

// Snapshot returns every seeded room and drawer with the student names
// filed under each drawer. Rooms and drawers are ordered by name and
// folders by creation order. The left joins keep empty drawers (and
// rooms without drawers) in the result with an empty, non-nil name
// slice so they serialize as [] rather than null.
func (r *HierarchyRepo) Snapshot(ctx context.Context) (map[string]map[string][]string, error) {
	const q = `SELECT s.nome, g.nome, p.nome_aluno
	           FROM salas s
	           LEFT JOIN gavetas g ON g.sala_id = s.id
	           LEFT JOIN pastas p ON p.gaveta_id = g.id
	           ORDER BY s.nome, g.nome, p.id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]map[string][]string)
	for rows.Next() {
		var room string
		var drawer, student sql.NullString
		if err := rows.Scan(&room, &drawer, &student); err != nil {
			return nil, err
		}
		if _, ok := out[room]; !ok {
			out[room] = make(map[string][]string)
		}
		if !drawer.Valid {
			continue // room with no drawers
		}
		if _, ok := out[room][drawer.String]; !ok {
			out[room][drawer.String] = make([]string, 0)
		}
		if student.Valid {
			out[room][drawer.String] = append(out[room][drawer.String], student.String)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
