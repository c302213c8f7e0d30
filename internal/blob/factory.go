package blob

import (
	"context"
	"fmt"
)

// Open selects and constructs a Store implementation from cfg. An unknown or
// empty driver is an error; storage is a hard requirement at startup.
func Open(ctx context.Context, cfg Config) (Store, error) {
	switch cfg.Driver {
	case DriverS3:
		return NewS3(ctx, cfg)
	case DriverSQLite:
		return NewSQLite(cfg.SQLitePath)
	case DriverFilesystem:
		return NewFilesystem(cfg.FSRoot)
	case DriverMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown blob driver %q", cfg.Driver)
	}
}
