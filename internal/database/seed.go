package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
)

// taxonomyEntry pairs a room name with the drawers it contains.
type taxonomyEntry struct {
	Room    string
	Drawers []string
}

// Taxonomy is the fixed seed set of rooms and drawers. It is applied on
// every startup; the insert-or-ignore statements make re-runs no-ops.
var Taxonomy = []taxonomyEntry{
	{Room: "Sala 1", Drawers: []string{"Gaveta 1", "Gaveta 2", "Gaveta 3"}},
	{Room: "Sala 2", Drawers: []string{"Gaveta 1", "Gaveta 2"}},
	{Room: "Sala 3", Drawers: []string{"Gaveta 1", "Gaveta 2", "Gaveta 3", "Gaveta 4"}},
}

// insertIgnore returns the dialect spelling of an insert that silently
// skips rows violating a unique constraint.
func insertIgnore(d Dialect, rest string) string {
	if d == MySQL {
		return "INSERT IGNORE " + rest
	}
	return "INSERT OR IGNORE " + rest
}

// Seed ensures the fixed taxonomy exists. Each room and each drawer is
// upserted independently so that a failure on one unit never blocks the
// rest of the seed set; failures are logged and folded into the returned
// error. Existing folder rows are never touched.
func Seed(ctx context.Context, db *sql.DB, d Dialect) error {
	var failed int
	for _, entry := range Taxonomy {
		if err := seedRoom(ctx, db, d, entry); err != nil {
			log.Printf("seed: room %q: %v", entry.Room, err)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("seed: %d of %d rooms failed to apply", failed, len(Taxonomy))
	}
	return nil
}

// seedRoom upserts one room and its drawers. The drawer inserts need the
// room id, so the room is resolved right after its insert-or-ignore.
func seedRoom(ctx context.Context, db *sql.DB, d Dialect, entry taxonomyEntry) error {
	if _, err := db.ExecContext(ctx, insertIgnore(d, "INTO salas (nome) VALUES (?)"), entry.Room); err != nil {
		return fmt.Errorf("insert room: %w", err)
	}
	var roomID uint64
	if err := db.QueryRowContext(ctx, "SELECT id FROM salas WHERE nome = ?", entry.Room).Scan(&roomID); err != nil {
		return fmt.Errorf("resolve room id: %w", err)
	}
	for _, drawer := range entry.Drawers {
		if _, err := db.ExecContext(ctx,
			insertIgnore(d, "INTO gavetas (sala_id, nome) VALUES (?, ?)"), roomID, drawer); err != nil {
			return fmt.Errorf("insert drawer %q: %w", drawer, err)
		}
	}
	return nil
}
