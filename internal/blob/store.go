// Package blob provides named text-blob storage behind a narrow interface.
// The dashboard keeps exactly two blobs: the mutable growth-record CSV and
// the immutable WHO reference CSV.
package blob

import (
	"context"
	"errors"
)

// Driver identifies a blob backend driver.
type Driver string

const (
	DriverS3         Driver = "s3"
	DriverSQLite     Driver = "sqlite"
	DriverFilesystem Driver = "fs"
	DriverMemory     Driver = "memory"
)

// ErrNotFound indicates the named blob does not exist.
var ErrNotFound = errors.New("blob not found")

// Store is the port for outbound blob storage. Writes are full overwrites;
// there is no append or versioning.
type Store interface {
	// ReadText returns the full content of the named blob, or ErrNotFound.
	ReadText(ctx context.Context, name string) (string, error)
	// WriteText replaces the named blob with content, creating it if absent.
	WriteText(ctx context.Context, name string, content string) error
}

// Config holds construction parameters for every driver. Only the fields for
// the selected driver are consulted.
type Config struct {
	Driver Driver

	// fs driver
	FSRoot string

	// sqlite driver
	SQLitePath string

	// s3 driver
	S3Bucket    string
	S3Region    string
	S3Endpoint  string // optional, for MinIO-style endpoints
	S3PathStyle bool
}
