package model

import "time"

// Drawer represents a physical drawer (gaveta) inside a room.  Each
// drawer belongs to exactly one room and its name is unique within
// that room.  Drawers are created only by the seed step.  This struct
// corresponds to a row in the `gavetas` table.
//
// Fields:
//  ID        – primary key identifier.
//  RoomID    – id of the owning room (non-nullable).
//  Name      – drawer name, unique per room (e.g. "Gaveta 2").
//  CreatedAt – timestamp when the row was created.
type Drawer struct {
    ID        uint64    // gavetas.id
    RoomID    uint64    // gavetas.sala_id
    Name      string    // gavetas.nome
    CreatedAt time.Time // gavetas.created_at
}
