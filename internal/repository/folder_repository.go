package repository

import (
	"context"
	"database/sql"
	"strings"
)

// FolderRepo encapsulates all database queries related to student
// folders (pastas). Folders are append-only: the core never updates or
// deletes them.
type FolderRepo struct {
	db *sql.DB
}

// NewFolderRepo constructs a FolderRepo with the provided DB handle.
func NewFolderRepo(db *sql.DB) *FolderRepo {
	return &FolderRepo{db: db}
}

// Append inserts a new folder under the given drawer and returns the
// generated id. The registration timestamp is filled by the database
// default. A foreign-key rejection means the drawer row does not exist
// and is reported as ErrConstraint; callers surface it as not-found.
func (r *FolderRepo) Append(ctx context.Context, drawerID uint64, studentName string) (uint64, error) {
	const q = "INSERT INTO pastas (gaveta_id, nome_aluno) VALUES (?, ?)"
	res, err := r.db.ExecContext(ctx, q, drawerID, studentName)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, ErrConstraint
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// ListByDrawer returns the student names filed under a drawer in
// creation order (insertion ids are monotonic on both engines).
func (r *FolderRepo) ListByDrawer(ctx context.Context, drawerID uint64) ([]string, error) {
	const q = "SELECT nome_aluno FROM pastas WHERE gaveta_id = ? ORDER BY id"
	rows, err := r.db.QueryContext(ctx, q, drawerID)
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

// Count returns the total number of folder rows across all drawers.
func (r *FolderRepo) Count(ctx context.Context) (int, error) {
	const q = "SELECT COUNT(*) FROM pastas"
	var n int
	if err := r.db.QueryRowContext(ctx, q).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// isForeignKeyViolation sniffs driver error text for a foreign-key
// rejection. MySQL reports errno 1452; modernc SQLite reports a
// "FOREIGN KEY constraint failed" message.
func isForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "1452") || strings.Contains(msg, "FOREIGN KEY constraint failed")
}
