// package testing contains shared testing utilities
package testing

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"testing"
	"time"

	"github.com/desertthunder/callx/internal/models"
	"github.com/desertthunder/callx/internal/shared"
)

// MockRepository is an in-memory test double for [models.Repository]
type MockRepository struct {
	Calls []*models.Call
	Err   error
}

func (m *MockRepository) Create(call *models.Call) error {
	if m.Err != nil {
		return m.Err
	}
	call.Sequence = len(m.Calls) + 1
	if call.ID == "" {
		call.ID = fmt.Sprintf("mock-%d", call.Sequence)
	}
	m.Calls = append(m.Calls, call)
	return nil
}

func (m *MockRepository) Get(id string) (*models.Call, error) {
	for _, c := range m.Calls {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, shared.ErrCallNotFound
}

func (m *MockRepository) GetByCallID(callID string) (*models.Call, error) {
	for _, c := range m.Calls {
		if c.CallID == callID {
			return c, nil
		}
	}
	return nil, shared.ErrCallNotFound
}

func (m *MockRepository) Delete(id string) error {
	for i, c := range m.Calls {
		if c.ID == id {
			m.Calls = append(m.Calls[:i], m.Calls[i+1:]...)
			return nil
		}
	}
	return shared.ErrCallNotFound
}

func (m *MockRepository) List(limit int) ([]*models.Call, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if limit > 0 && limit < len(m.Calls) {
		return m.Calls[:limit], nil
	}
	return m.Calls, nil
}

// SampleCall builds a populated call with the given SIP Call-ID
func SampleCall(callID string) *models.Call {
	start := time.Date(2024, 3, 9, 14, 30, 5, 0, time.UTC)
	answered := start.Add(2 * time.Second)
	ended := start.Add(95 * time.Second)
	return &models.Call{
		CallID:     callID,
		From:       "sip:alice@example.com",
		FromUser:   "alice",
		To:         "sip:bob@example.com",
		ToUser:     "bob",
		Source:     "10.0.0.1:5060",
		Dest:       "10.0.0.2:5060",
		Method:     "INVITE",
		Transport:  "UDP",
		State:      "COMPLETED",
		MsgCount:   7,
		StartedAt:  start,
		AnsweredAt: &answered,
		EndedAt:    &ended,
	}
}

// NewTestDB opens a migrated in-memory database closed on cleanup
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to create database: %v", err)
	}
	db.SetMaxOpenConns(1)
	if err := shared.RunMigrations(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}

func MustWriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write file %s: %v", path, err)
	}
}
