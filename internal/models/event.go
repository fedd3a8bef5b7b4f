package models

// Activity event actions published to Kafka.
const (
	ActionSessionSaved  = "session_saved"
	ActionScoreRecorded = "score_recorded"
	ActionUserDeleted   = "user_deleted"
)

// ActivityEvent is the payload published for user activity.
type ActivityEvent struct {
	EventID   string `json:"event_id"`  // UUID of the event
	Timestamp int64  `json:"timestamp"` // Unix time the event was produced
	UserID    int64  `json:"user_id"`   // Acting user
	Action    string `json:"action"`    // One of the Action* constants
	Detail    string `json:"detail"`    // Model name, game name, etc.
}
