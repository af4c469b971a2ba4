package logschema

// Field names used by the pipeline's diagnostic logs.
const (
	SchemaID    = "splunklogger.log.v1"
	FieldSchema = "log_schema"

	FieldTimestamp = "ts"
	FieldLevel     = "level"
	FieldMessage   = "msg"
	FieldLogger    = "logger"
	FieldCaller    = "caller"
	FieldStack     = "stack"

	FieldComponent = "component"
	FieldEvent     = "event"
	FieldResult    = "result"
	FieldError     = "error"
)

// Keys of a forwarded event. Top-level keys follow the HTTP Event Collector format.
const (
	EventTime       = "time"
	EventHost       = "host"
	EventSource     = "source"
	EventSourceType = "sourcetype"
	EventIndex      = "index"
	EventBody       = "event"

	EventMessage   = "message"
	EventStack     = "stack"
	EventLevel     = "level"
	EventLogger    = "logger"
	EventTag       = "tag"
	EventURL       = "url"
	EventUserAgent = "userAgent"
	EventLine      = "line"
	EventColumn    = "col"
)

