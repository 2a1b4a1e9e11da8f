package audit

import (
	"context"
	"encoding/json"
	"log"

	"github.com/google/uuid"
)

// Recorder is the write side of the audit trail. Other modules depend on
// this narrow interface rather than the full service.
type Recorder interface {
	// Record appends an entry describing a mutation. The actor is taken from
	// the context; recording failures are logged, never propagated, so an
	// audit outage cannot fail the underlying operation.
	Record(ctx context.Context, action Action, tableName, recordID string, oldValues, newValues interface{})
}

// Service defines audit trail business logic.
type Service interface {
	Recorder

	// Query returns entries matching the filter plus the total match count.
	Query(ctx context.Context, f Filter) ([]*Entry, int, error)
}

type service struct {
	repo Repository
}

// NewService creates a new audit service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Record(ctx context.Context, action Action, tableName, recordID string, oldValues, newValues interface{}) {
	e := &Entry{
		ID:        uuid.New(),
		Action:    action,
		TableName: tableName,
		RecordID:  recordID,
		OldValues: marshalValues(oldValues),
		NewValues: marshalValues(newValues),
	}
	if actor, ok := ActorFromContext(ctx); ok {
		e.UserID = actor.UserID
		e.UserName = actor.Name
		e.UserEmail = actor.Email
		e.IPAddress = actor.IPAddress
		e.UserAgent = actor.UserAgent
	}

	if err := s.repo.Insert(ctx, e); err != nil {
		log.Printf("audit: failed to record %s on %s/%s: %v", action, tableName, recordID, err)
	}
}

func (s *service) Query(ctx context.Context, f Filter) ([]*Entry, int, error) {
	if f.Limit < 0 {
		f.Limit = 0
	}
	return s.repo.Query(ctx, f)
}

func marshalValues(v interface{}) json.RawMessage {
	if v == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return b
}
