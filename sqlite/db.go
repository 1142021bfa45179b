// Package sqlite implements daytrack's Database and KVStore on a local sqlite
// file.
package sqlite

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/benjamonnguyen/daytrack"

	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var Migrations embed.FS

type Database struct {
	conn *sql.DB
}

var _ daytrack.Database = (*Database)(nil)

func Open(url string) (*Database, error) {
	conn, err := sql.Open("sqlite", url)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", url, err)
	}
	// one writer at a time; sqlite would answer SQLITE_BUSY otherwise
	conn.SetMaxOpenConns(1)
	if err := conn.Ping(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open %s: %w", url, err)
	}
	return &Database{
		conn: conn,
	}, nil
}

func (db *Database) DB() *sql.DB {
	return db.conn
}

// Migrate applies every *.up.sql under migrations/ in migrations. Running it on
// an up to date database is a no-op.
func (db *Database) Migrate(migrations fs.FS) error {
	src, err := iofs.New(migrations, "migrations")
	if err != nil {
		return err
	}
	d, err := migratesqlite.WithInstance(db.conn, &migratesqlite.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite", d)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

func (db *Database) Close() error {
	return db.conn.Close()
}
