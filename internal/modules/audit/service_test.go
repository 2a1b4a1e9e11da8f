package audit

import (
	"context"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryRepo struct {
	entries   []*Entry
	insertErr error
}

func (m *memoryRepo) Insert(_ context.Context, e *Entry) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.entries = append(m.entries, e)
	return nil
}

func (m *memoryRepo) Query(_ context.Context, f Filter) ([]*Entry, int, error) {
	return m.entries, len(m.entries), nil
}

func TestRecordStampsActorFromContext(t *testing.T) {
	repo := &memoryRepo{}
	svc := NewService(repo)

	actorID := uuid.New()
	ctx := WithActor(context.Background(), Actor{
		UserID:    &actorID,
		Name:      "Ana Cruz",
		Email:     "ana@example.com",
		IPAddress: "203.0.113.7",
		UserAgent: "tarpa-web/1.0",
	})

	svc.Record(ctx, ActionUpdate, "orders", "order-1",
		map[string]string{"status": "pending"},
		map[string]string{"status": "processing"})

	require.Len(t, repo.entries, 1)
	e := repo.entries[0]
	assert.Equal(t, ActionUpdate, e.Action)
	assert.Equal(t, "orders", e.TableName)
	assert.Equal(t, "order-1", e.RecordID)
	require.NotNil(t, e.UserID)
	assert.Equal(t, actorID, *e.UserID)
	assert.Equal(t, "Ana Cruz", e.UserName)
	assert.Equal(t, "203.0.113.7", e.IPAddress)
	assert.JSONEq(t, `{"status":"pending"}`, string(e.OldValues))
	assert.JSONEq(t, `{"status":"processing"}`, string(e.NewValues))
}

func TestRecordWithoutActorStillWrites(t *testing.T) {
	repo := &memoryRepo{}
	svc := NewService(repo)

	svc.Record(context.Background(), ActionCreate, "orders", "order-2", nil, map[string]int{"quantity": 3})

	require.Len(t, repo.entries, 1)
	e := repo.entries[0]
	assert.Nil(t, e.UserID)
	assert.Empty(t, e.UserName)
	assert.Nil(t, e.OldValues)
	assert.NotNil(t, e.NewValues)
}

func TestRecordSwallowsRepositoryFailure(t *testing.T) {
	repo := &memoryRepo{insertErr: fmt.Errorf("db down")}
	svc := NewService(repo)

	// Must not panic or surface the error; the mutation it describes already
	// succeeded.
	svc.Record(context.Background(), ActionDelete, "materials", "m-1", nil, nil)
	assert.Empty(t, repo.entries)
}

func TestRequestFingerprint(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = "192.0.2.10:54321"
	r.Header.Set("User-Agent", "tarpa-web/1.0")

	ip, ua := RequestFingerprint(r)
	assert.Equal(t, "192.0.2.10", ip)
	assert.Equal(t, "tarpa-web/1.0", ua)

	r.Header.Set("X-Forwarded-For", "203.0.113.7")
	ip, _ = RequestFingerprint(r)
	assert.Equal(t, "203.0.113.7", ip)
}
