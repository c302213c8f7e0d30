package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"crescita/internal/blob"
)

type Config struct {
	// HTTP Server
	Port string

	// Blob storage
	BlobDriver   string
	BlobFSRoot   string
	SQLiteDBPath string
	S3Bucket     string
	S3Region     string
	S3Endpoint   string
	S3PathStyle  bool

	// Blob names
	GrowthBlob string
	WHOBlob    string

	// Logging
	LogLevel string
}

func Load() *Config {
	return &Config{
		Port: getEnv("PORT", "8080"),

		BlobDriver:   getEnv("BLOB_DRIVER", ""),
		BlobFSRoot:   getEnv("BLOB_FS_ROOT", "./blobdata"),
		SQLiteDBPath: getEnv("SQLITE_DB_PATH", "./data/crescita.db"),
		S3Bucket:     getEnv("S3_BUCKET", ""),
		S3Region:     getEnv("S3_REGION", ""),
		S3Endpoint:   getEnv("S3_ENDPOINT", ""),
		S3PathStyle:  getEnvBool("S3_PATH_STYLE", false),

		GrowthBlob: getEnv("GROWTH_BLOB", "baby_growth_data.csv"),
		WHOBlob:    getEnv("WHO_BLOB", "tab_wfa_girls_p_0_13.csv"),

		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

// Validate checks the configuration and returns an error if invalid. Missing
// storage configuration is a startup-fatal condition; the dashboard cannot
// serve without its two blobs.
func (c *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch blob.Driver(c.BlobDriver) {
	case blob.DriverS3:
		if c.S3Bucket == "" {
			errors = append(errors, "S3_BUCKET is required when using the s3 blob driver")
		}
	case blob.DriverSQLite:
		if c.SQLiteDBPath == "" {
			errors = append(errors, "SQLITE_DB_PATH cannot be empty when using the sqlite blob driver")
		}
	case blob.DriverFilesystem:
		if c.BlobFSRoot == "" {
			errors = append(errors, "BLOB_FS_ROOT cannot be empty when using the fs blob driver")
		}
	case blob.DriverMemory:
		// Valid but nothing persists; intended for tests.
	case "":
		errors = append(errors, "BLOB_DRIVER is required: one of s3, sqlite, fs, memory")
	default:
		errors = append(errors, fmt.Sprintf("invalid blob driver '%s': must be one of s3, sqlite, fs, memory", c.BlobDriver))
	}

	if c.GrowthBlob == "" {
		errors = append(errors, "GROWTH_BLOB cannot be empty")
	}
	if c.WHOBlob == "" {
		errors = append(errors, "WHO_BLOB cannot be empty")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}
	return nil
}

// BlobConfig maps the app configuration onto blob driver settings.
func (c *Config) BlobConfig() blob.Config {
	return blob.Config{
		Driver:      blob.Driver(c.BlobDriver),
		FSRoot:      c.BlobFSRoot,
		SQLitePath:  c.SQLiteDBPath,
		S3Bucket:    c.S3Bucket,
		S3Region:    c.S3Region,
		S3Endpoint:  c.S3Endpoint,
		S3PathStyle: c.S3PathStyle,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
