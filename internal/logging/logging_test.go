package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/stresscast/internal/models"
	"github.com/ahmetcoskunkizilkaya/stresscast/internal/testdb"
	"github.com/google/uuid"
)

func TestPGHandlerPersistsErrorsOnly(t *testing.T) {
	db := testdb.Open(t)
	pg := NewPGHandler(db, time.Hour)

	var stdout bytes.Buffer
	logger := slog.New(NewMultiHandler(NewStdoutHandler(&stdout), pg))

	ctx := WithRequestID(context.Background(), "req-1")
	logger.InfoContext(ctx, "entry created", "entry_id", 1)
	logger.WarnContext(ctx, "prediction provider failed", "failure_kind", "timeout")
	logger.With("action", "create_entry").ErrorContext(ctx, "failed to store prediction",
		"error", "disk full",
		"user_id", "7",
		"failure_kind", "storage",
		"latency_ms", int64(42),
		"entry_id", 3,
	)

	pg.Stop()

	if got := strings.Count(stdout.String(), "\n"); got != 3 {
		t.Errorf("stdout got %d lines, want 3", got)
	}

	var rows []models.SystemLog
	if err := db.Find(&rows).Error; err != nil {
		t.Fatalf("query system_logs: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d system_logs rows, want 1", len(rows))
	}

	row := rows[0]
	if row.Level != "ERROR" || row.Message != "failed to store prediction" {
		t.Errorf("row = %s %q", row.Level, row.Message)
	}
	if row.RequestID != "req-1" {
		t.Errorf("RequestID = %q, want req-1", row.RequestID)
	}
	if row.Action != "create_entry" {
		t.Errorf("Action = %q, want create_entry", row.Action)
	}
	if row.UserID == nil || *row.UserID != "7" {
		t.Errorf("UserID = %v, want 7", row.UserID)
	}
	if row.FailureKind != "storage" || row.Error != "disk full" || row.LatencyMs != 42 {
		t.Errorf("row fields = %q %q %d", row.FailureKind, row.Error, row.LatencyMs)
	}
	if !strings.Contains(string(row.Extra), `"entry_id":3`) {
		t.Errorf("Extra = %s, want entry_id", row.Extra)
	}
}

func TestPurgeBefore(t *testing.T) {
	db := testdb.Open(t)
	now := time.Now().UTC()

	logs := []models.SystemLog{
		{ID: uuid.New(), Timestamp: now.AddDate(0, 0, -40), Level: "ERROR", Message: "old"},
		{ID: uuid.New(), Timestamp: now.Add(-time.Hour), Level: "ERROR", Message: "recent"},
	}
	if err := db.Create(&logs).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	deleted, err := PurgeBefore(db, now.AddDate(0, 0, -30))
	if err != nil {
		t.Fatalf("PurgeBefore: %v", err)
	}
	if deleted != 1 {
		t.Errorf("deleted = %d, want 1", deleted)
	}

	var remaining []models.SystemLog
	db.Find(&remaining)
	if len(remaining) != 1 || remaining[0].Message != "recent" {
		t.Errorf("remaining = %+v", remaining)
	}
}

func TestRequestIDFrom(t *testing.T) {
	if got := RequestIDFrom(context.Background()); got != "" {
		t.Errorf("RequestIDFrom(empty) = %q", got)
	}
	if got := RequestIDFrom(WithRequestID(context.Background(), "abc")); got != "abc" {
		t.Errorf("RequestIDFrom = %q, want abc", got)
	}
}

type failingHandler struct{ slog.Handler }

func (failingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (failingHandler) Handle(context.Context, slog.Record) error { return errors.New("sink down") }

func TestMultiHandlerKeepsGoingAfterFailure(t *testing.T) {
	var buf bytes.Buffer
	h := NewMultiHandler(failingHandler{}, nil, NewStdoutHandler(&buf))

	err := h.Handle(context.Background(), slog.NewRecord(time.Now(), slog.LevelInfo, "hello", 0))
	if err == nil || err.Error() != "sink down" {
		t.Errorf("Handle err = %v, want sink down", err)
	}
	if !strings.Contains(buf.String(), `"msg":"hello"`) {
		t.Errorf("stdout = %q, want the record", buf.String())
	}
}
