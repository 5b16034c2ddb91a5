package logging

// Common structured log field keys to keep logs searchable/consistent.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldProvider   = "provider"
	FieldRequestID  = "request_id"
	FieldPath       = "path"
	FieldMethod     = "method"
	FieldStatusCode = "status_code"
	FieldDurationMS = "duration_ms"
	FieldUser       = "user"
	FieldGameweek   = "gameweek"
	FieldTransfers  = "transfers"
	FieldPointsCost = "points_cost"
	FieldChip       = "chip"
	FieldCount      = "count"
)
