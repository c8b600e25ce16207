//go:build !sqlite

package storage

import "errors"

func newSQLiteStore(path string) (Store, error) {
	return nil, errors.New("sqlite store requested but binary was not built with the sqlite tag")
}
