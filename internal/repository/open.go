package repository

import (
	"fmt"

	"github.com/alexanderramin/timetrack/internal/db"
)

// Open returns the EventStore for backend at path.
func Open(backend, path string) (EventStore, error) {
	switch backend {
	case BackendSQLite, "":
		database, err := db.OpenDB(path)
		if err != nil {
			return nil, err
		}
		return NewSQLiteEventStore(database), nil
	case BackendBunt:
		return OpenBuntEventStore(path)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}
