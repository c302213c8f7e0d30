package log

// Common field names for structured logging
const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldClientIP   = "client_ip"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldQuery      = "query"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldUserAgent  = "user_agent"
	FieldSuccess    = "success"
	FieldError      = "error"
	FieldOperation  = "operation"
	FieldBlobName   = "blob_name"
	FieldDriver     = "driver"
	FieldRecordDate = "record_date"
	FieldAgeDays    = "age_days"
	FieldWeightKg   = "weight_kg"
	FieldRowCount   = "row_count"
)

// Components defines standard component names
const (
	ComponentApp    = "app"
	ComponentHTTP   = "http"
	ComponentConfig = "config"
	ComponentBlob   = "blob"
	ComponentStore  = "store"
	ComponentWHO    = "who"
	ComponentChart  = "chart"
)

// Operations defines standard operation names
const (
	OpLoad     = "load"
	OpAdd      = "add"
	OpReplace  = "replace"
	OpPersist  = "persist"
	OpParse    = "parse"
	OpRender   = "render"
	OpStartup  = "startup"
	OpShutdown = "shutdown"
)
