package health

import "context"

// DBPinger checks index availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}
