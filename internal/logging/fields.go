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
	FieldCategory   = "category"
	FieldTeam       = "team"
	FieldDate       = "date"
	FieldEventID    = "event_id"
	FieldPrevEvent  = "previous_event_id"
	FieldTransition = "transition"
	FieldReason     = "reason"
	FieldIssue      = "issue"
	FieldScore      = "score"
	FieldTier       = "tier"
	FieldCount      = "count"
	FieldDurationMS = "duration_ms"
)
