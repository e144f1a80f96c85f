// Package queue defines message payloads exchanged over the message broker.
package queue

// FolderRegisteredEvent is published when a folder is confirmed and
// persisted. It carries enough information for downstream consumers to
// log or notify without querying the primary database.
type FolderRegisteredEvent struct {
    FolderID     uint64 `json:"folder_id"`
    StudentName  string `json:"student_name"`
    RoomName     string `json:"room_name"`
    DrawerName   string `json:"drawer_name"`
    RegisteredAt string `json:"registered_at"`
}
