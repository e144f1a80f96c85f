// Package database owns the connection constructors, the schema DDL and
// the idempotent seed of the fixed room/drawer taxonomy. Everything that
// differs between the MySQL and SQLite engines lives in this package so
// the repositories can stay dialect-agnostic.
package database

import (
	"context"
	"database/sql"
)

// Schema DDL per dialect. All statements use IF NOT EXISTS so that
// startup against an already-initialized database is a no-op.
var mysqlDDL = []string{
	`CREATE TABLE IF NOT EXISTS salas (
    id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
    nome VARCHAR(100) NOT NULL UNIQUE,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`,
	`CREATE TABLE IF NOT EXISTS gavetas (
    id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
    sala_id BIGINT UNSIGNED NOT NULL,
    nome VARCHAR(100) NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    UNIQUE KEY uq_gavetas_sala_nome (sala_id, nome),
    FOREIGN KEY (sala_id) REFERENCES salas (id)
)`,
	`CREATE TABLE IF NOT EXISTS pastas (
    id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
    gaveta_id BIGINT UNSIGNED NOT NULL,
    nome_aluno VARCHAR(200) NOT NULL,
    data_cadastro TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (gaveta_id) REFERENCES gavetas (id)
)`,
}

var sqliteDDL = []string{
	`CREATE TABLE IF NOT EXISTS salas (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    nome TEXT NOT NULL UNIQUE,
    created_at TEXT NOT NULL DEFAULT (datetime('now'))
)`,
	`CREATE TABLE IF NOT EXISTS gavetas (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    sala_id INTEGER NOT NULL REFERENCES salas (id),
    nome TEXT NOT NULL,
    created_at TEXT NOT NULL DEFAULT (datetime('now')),
    UNIQUE (sala_id, nome)
)`,
	`CREATE TABLE IF NOT EXISTS pastas (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    gaveta_id INTEGER NOT NULL REFERENCES gavetas (id),
    nome_aluno TEXT NOT NULL,
    data_cadastro TEXT NOT NULL DEFAULT (datetime('now'))
)`,
}

// InitSchema creates the three relations if they do not exist yet.
// A failure here is fatal to startup; the caller is expected to abort.
func InitSchema(ctx context.Context, db *sql.DB, d Dialect) error {
	ddl := sqliteDDL
	if d == MySQL {
		ddl = mysqlDDL
	}
	for _, stmt := range ddl {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
