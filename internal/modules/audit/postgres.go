package audit

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a new PostgreSQL audit log repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Insert(ctx context.Context, e *Entry) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO audit_logs
		  (id, user_id, user_name, user_email, action, table_name, record_id,
		   old_values, new_values, ip_address, user_agent)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		e.ID, e.UserID, e.UserName, e.UserEmail, e.Action, e.TableName, e.RecordID,
		nullableJSON(e.OldValues), nullableJSON(e.NewValues), e.IPAddress, e.UserAgent)
	return err
}

// Query builds the WHERE clause dynamically from the non-zero filter fields,
// the same shape the original get_logs endpoint accepted.
func (r *postgresRepo) Query(ctx context.Context, f Filter) ([]*Entry, int, error) {
	where := ` WHERE 1=1`
	args := []interface{}{}
	n := 0
	next := func() string { n++; return fmt.Sprintf("$%d", n) }

	if f.UserName != "" {
		where += ` AND user_name ILIKE ` + next()
		args = append(args, "%"+f.UserName+"%")
	}
	if f.Action != "" {
		where += ` AND action = ` + next()
		args = append(args, f.Action)
	}
	if f.TableName != "" {
		where += ` AND table_name = ` + next()
		args = append(args, f.TableName)
	}
	if !f.StartDate.IsZero() {
		where += ` AND created_at >= ` + next()
		args = append(args, f.StartDate)
	}
	if !f.EndDate.IsZero() {
		where += ` AND created_at <= ` + next()
		args = append(args, f.EndDate)
	}

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM audit_logs`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT id, user_id, user_name, user_email, action, table_name, record_id,
		       old_values, new_values, ip_address, user_agent, created_at
		FROM audit_logs` + where + ` ORDER BY created_at DESC`
	if f.Limit > 0 {
		query += ` LIMIT ` + next()
		args = append(args, f.Limit)
	}
	if f.Offset > 0 {
		query += ` OFFSET ` + next()
		args = append(args, f.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		e := &Entry{}
		var userID sql.NullString
		var userName, userEmail, recordID, ipAddress, userAgent sql.NullString
		var oldValues, newValues []byte
		if err := rows.Scan(&e.ID, &userID, &userName, &userEmail, &e.Action, &e.TableName,
			&recordID, &oldValues, &newValues, &ipAddress, &userAgent, &e.CreatedAt); err != nil {
			return nil, 0, err
		}
		if userID.Valid {
			uid, _ := uuid.Parse(userID.String)
			e.UserID = &uid
		}
		e.UserName = userName.String
		e.UserEmail = userEmail.String
		e.RecordID = recordID.String
		e.OldValues = oldValues
		e.NewValues = newValues
		e.IPAddress = ipAddress.String
		e.UserAgent = userAgent.String
		entries = append(entries, e)
	}
	return entries, total, rows.Err()
}

func nullableJSON(b []byte) interface{} {
	if len(b) == 0 {
		return nil
	}
	return b
}
