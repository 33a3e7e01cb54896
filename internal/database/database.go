package database

import "context"

// Database is the optional capability the diagnostic endpoint probes.
// A nil Database means no backend was configured at startup; the service
// itself never writes through it.
type Database interface {
	Name() string
	ListCollectionNames(ctx context.Context) ([]string, error)
}
