package gen3peek

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// DB is a catalog of scanned cartridge images and their detected
// profiles, keyed by the CRC-32 of the file contents.
type DB struct {
	db *sql.DB
}

// OpenDB opens the catalog database at file, creating it if needed.
func OpenDB(file string) (*DB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS rom (id INTEGER PRIMARY KEY NOT NULL, path TEXT NOT NULL, crc TEXT NOT NULL UNIQUE, code TEXT NOT NULL, revision INTEGER NOT NULL, profile TEXT NOT NULL, matched INTEGER NOT NULL)"); err != nil {
		return nil, err
	}

	return &DB{db: db}, nil
}

// ROMInfo is one catalog row.
type ROMInfo struct {
	Path     string
	CRC      string
	Code     string
	Revision uint8
	Profile  string
	Matched  bool
}

// Add inserts the row for info's CRC, replacing any previous scan of
// the same image.
func (db *DB) Add(info ROMInfo) error {
	_, err := db.db.Exec("INSERT OR REPLACE INTO rom (path, crc, code, revision, profile, matched) VALUES (?, ?, ?, ?, ?, ?)",
		info.Path, info.CRC, info.Code, info.Revision, info.Profile, info.Matched)
	return err
}

// FindByCRC returns the catalog row for crc, or nil when absent.
func (db *DB) FindByCRC(crc string) (*ROMInfo, error) {
	info := ROMInfo{CRC: crc}
	switch err := db.db.QueryRow("SELECT path, code, revision, profile, matched FROM rom WHERE crc = ?", crc).Scan(&info.Path, &info.Code, &info.Revision, &info.Profile, &info.Matched); err {
	case sql.ErrNoRows:
		return nil, nil
	case nil:
		return &info, nil
	default:
		return nil, err
	}
}

// Close closes the underlying database.
func (db *DB) Close() error {
	return db.db.Close()
}
