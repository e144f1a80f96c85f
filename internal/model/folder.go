package model

import "time"

// Folder represents a single student folder (pasta) filed under one
// drawer.  Folders are created exclusively by the confirm operation
// and are immutable afterwards; the core never updates or deletes
// them.  This struct corresponds to a row in the `pastas` table.
//
// Fields:
//  ID           – primary key identifier.
//  DrawerID     – id of the owning drawer (non-nullable).
//  StudentName  – free-text student name as confirmed by the user.
//  RegisteredAt – timestamp when the folder was registered.
type Folder struct {
    ID           uint64    // pastas.id
    DrawerID     uint64    // pastas.gaveta_id
    StudentName  string    // pastas.nome_aluno
    RegisteredAt time.Time // pastas.data_cadastro
}
