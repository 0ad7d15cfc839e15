package log

const (
	// Request
	FieldRequestID = "request_id"
	FieldMethod    = "method"
	FieldPath      = "path"
	FieldStatus    = "status"
	FieldLatency   = "latency_ms"
	FieldClientIP  = "client_ip"

	// Event
	FieldEventType = "event_type"
	FieldEventID   = "event_id"
	FieldRoomID    = "room_id"
	FieldOutcome   = "outcome"

	// Service
	FieldService = "service"
)
