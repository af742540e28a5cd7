package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/desertthunder/callx/internal/models"
	"github.com/desertthunder/callx/internal/shared"
)

var _ models.Repository = (*CallRepository)(nil)

const callColumns = `id, sequence, call_id, x_call_id, sip_from, sip_from_user, sip_to, sip_to_user,
	source, destination, method, transport, state, reason, warning, msg_count,
	started_at, answered_at, ended_at, created_at`

// CallRepository persists [models.Call] records.
type CallRepository struct {
	db *sql.DB
}

// NewCallRepository creates a new CallRepository with the given database connection
func NewCallRepository(db *sql.DB) *CallRepository {
	return &CallRepository{db: db}
}

// Create inserts a call with a generated ID and sequence.
//
// A call whose Call-ID is already stored fails with [shared.ErrDuplicateCall].
func (r *CallRepository) Create(call *models.Call) error {
	if err := call.Validate(); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrInvalidInput, err)
	}

	sequence, err := NextSequence(r.db, "calls")
	if err != nil {
		return fmt.Errorf("failed to generate sequence: %w", err)
	}

	call.ID = shared.GenerateID()
	call.Sequence = sequence
	if call.CreatedAt.IsZero() {
		call.CreatedAt = time.Now().UTC()
	}

	query := `INSERT INTO calls (` + callColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.Exec(query,
		call.ID,
		call.Sequence,
		call.CallID,
		call.XCallID,
		call.From,
		call.FromUser,
		call.To,
		call.ToUser,
		call.Source,
		call.Dest,
		call.Method,
		call.Transport,
		call.State,
		call.Reason,
		call.Warning,
		call.MsgCount,
		call.StartedAt,
		nullTime(call.AnsweredAt),
		nullTime(call.EndedAt),
		call.CreatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint") {
			return fmt.Errorf("%w: %s", shared.ErrDuplicateCall, call.CallID)
		}
		return fmt.Errorf("failed to insert call: %w", err)
	}

	return nil
}

// Get retrieves a call by ID
func (r *CallRepository) Get(id string) (*models.Call, error) {
	return r.scan(r.db.QueryRow(`SELECT `+callColumns+` FROM calls WHERE id = ?`, id))
}

// GetByCallID retrieves a call by its SIP Call-ID
func (r *CallRepository) GetByCallID(callID string) (*models.Call, error) {
	return r.scan(r.db.QueryRow(`SELECT `+callColumns+` FROM calls WHERE call_id = ?`, callID))
}

// Delete removes a call by ID
func (r *CallRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM calls WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete call: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s", shared.ErrCallNotFound, id)
	}

	return nil
}

// List returns calls in sequence order. A limit of zero or less returns every call.
func (r *CallRepository) List(limit int) ([]*models.Call, error) {
	query := `SELECT ` + callColumns + ` FROM calls ORDER BY sequence ASC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query calls: %w", err)
	}
	defer rows.Close()

	var calls []*models.Call
	for rows.Next() {
		call, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		calls = append(calls, call)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return calls, nil
}

// Count returns the number of stored calls.
func (r *CallRepository) Count() (int, error) {
	var n int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM calls`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count calls: %w", err)
	}
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

// scan reads one row of [callColumns] from either [sql.Row] or [sql.Rows]
func (r *CallRepository) scan(s scanner) (*models.Call, error) {
	var (
		call       models.Call
		answeredAt sql.NullTime
		endedAt    sql.NullTime
	)

	err := s.Scan(
		&call.ID, &call.Sequence, &call.CallID, &call.XCallID, &call.From, &call.FromUser, &call.To, &call.ToUser,
		&call.Source, &call.Dest, &call.Method, &call.Transport, &call.State, &call.Reason, &call.Warning, &call.MsgCount,
		&call.StartedAt, &answeredAt, &endedAt, &call.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, shared.ErrCallNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan call: %w", err)
	}

	if answeredAt.Valid {
		call.AnsweredAt = &answeredAt.Time
	}
	if endedAt.Valid {
		call.EndedAt = &endedAt.Time
	}

	return &call, nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
