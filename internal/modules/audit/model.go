package audit

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Action is the kind of mutation an entry records.
type Action string

const (
	ActionCreate Action = "CREATE"
	ActionUpdate Action = "UPDATE"
	ActionDelete Action = "DELETE"
)

// Entry is an immutable record of a mutating action taken by an identified
// actor. Entries are append-only; nothing in the system edits or deletes them.
type Entry struct {
	ID        uuid.UUID       `json:"id"`
	UserID    *uuid.UUID      `json:"user_id,omitempty"`
	UserName  string          `json:"user_name,omitempty"`
	UserEmail string          `json:"user_email,omitempty"`
	Action    Action          `json:"action"`
	TableName string          `json:"table_name"`
	RecordID  string          `json:"record_id,omitempty"`
	OldValues json.RawMessage `json:"old_values,omitempty"`
	NewValues json.RawMessage `json:"new_values,omitempty"`
	IPAddress string          `json:"ip_address,omitempty"`
	UserAgent string          `json:"user_agent,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// Filter narrows an audit query. Zero values mean "no constraint".
type Filter struct {
	UserName  string // substring match on actor name
	Action    string
	TableName string
	StartDate time.Time
	EndDate   time.Time
	Limit     int
	Offset    int
}
