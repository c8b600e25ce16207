package storage

import "fmt"

// NewStore builds a Store from a kind string, typically sourced from a CLI
// flag or config file. "memory" (or "") is always available; "sqlite"
// requires the binary to have been built with the sqlite build tag, and a
// usable path.
func NewStore(kind, sqlitePath string) (Store, error) {
	switch kind {
	case "", "memory":
		return NewMemoryStore(), nil
	case "sqlite":
		return newSQLiteStore(sqlitePath)
	default:
		return nil, fmt.Errorf("unknown store kind %q", kind)
	}
}
