package sqlite

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

func init() {
	// Le driver modernc s'enregistre sous "sqlite", inconnu de sqlx.
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// Schéma créé de façon idempotente à chaque ouverture.
const schema = `
CREATE TABLE IF NOT EXISTS courses (
	id     TEXT PRIMARY KEY,
	name   TEXT NOT NULL,
	length INTEGER NOT NULL,
	url    TEXT NOT NULL,
	notes  TEXT NULL
);`

type DB struct {
	SQL *sqlx.DB
}

func Open(ctx context.Context, path string) (*DB, error) {
	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Une seule connexion : les opérations du repository se sérialisent au
	// niveau du store, le fichier reste le seul point de contention.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	ctxPing, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := db.PingContext(ctxPing); err != nil {
		_ = db.Close()
		return nil, err
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &DB{SQL: db}, nil
}

func (d *DB) Close() error {
	return d.SQL.Close()
}
