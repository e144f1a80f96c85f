package model

import "time"

// Room represents a physical room (sala) that groups drawers.
// Rooms are created exclusively by the seed step at startup and are
// never mutated or deleted at runtime.  This struct corresponds to a
// row in the `salas` table.
//
// Fields:
//  ID        – primary key identifier.
//  Name      – globally unique room name (e.g. "Sala 1").
//  CreatedAt – timestamp when the row was created.
type Room struct {
    ID        uint64    // salas.id
    Name      string    // salas.nome
    CreatedAt time.Time // salas.created_at
}
