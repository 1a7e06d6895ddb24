// Package sqlite implementa los puertos de persistencia sobre una única base
// de datos SQLite respaldada por archivo (driver puro Go, sin cgo).
package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // registra el driver "sqlite"
)

// Querier abstrae *sql.DB y *sql.Tx para que los repositorios funcionen igual
// dentro y fuera de una transacción.
type Querier interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

var (
	_ Querier = (*sql.DB)(nil)
	_ Querier = (*sql.Tx)(nil)
)

// Store envuelve la conexión SQLite compartida por los repositorios.
type Store struct {
	DB *sql.DB
}

// NewStore abre (o crea) el archivo de base de datos y verifica la conexión.
func NewStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	return &Store{DB: db}, nil
}

// Close cierra la conexión subyacente.
func (s *Store) Close() error {
	return s.DB.Close()
}

// InitSchema crea las tres relaciones de forma idempotente. No hay mecanismo
// de migraciones: el esquema se aplica con IF NOT EXISTS en cada arranque.
func (s *Store) InitSchema() error {
	query := `
	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY,
		username TEXT,
		registered_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS products (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		description TEXT,
		price NUMERIC NOT NULL,
		sizes TEXT NOT NULL,
		photo_ref TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS orders (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		username TEXT,
		product_id INTEGER,
		size TEXT,
		address TEXT,
		status TEXT DEFAULT 'New',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (user_id) REFERENCES users(id)
	);
	`
	if _, err := s.DB.Exec(query); err != nil {
		return fmt.Errorf("crear esquema: %w", err)
	}
	return nil
}
