package log

import (
	"testing"
	"time"
)

func TestAppendAndReadAll(t *testing.T) {
	logger, err := NewLogger(t.TempDir())
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}

	events := []LogEvent{
		{Event: EventTokenExchanged},
		{Event: EventLogsFetched, Count: 3, Filters: "severity high"},
		{Event: EventLogDeleted, LogID: 42},
	}
	for _, e := range events {
		if err := logger.Append(e); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	got, err := logger.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 events, got %d", len(got))
	}
	if got[0].Event != EventTokenExchanged {
		t.Errorf("event[0]: got %q", got[0].Event)
	}
	if got[1].Count != 3 || got[1].Filters != "severity high" {
		t.Errorf("event[1] fields: %+v", got[1])
	}
	if got[2].LogID != 42 {
		t.Errorf("event[2].LogID: got %d, want 42", got[2].LogID)
	}
	if got[0].Time.IsZero() {
		t.Error("Append should set Time when zero")
	}
}

func TestReadAllMissingFile(t *testing.T) {
	logger, err := NewLogger(t.TempDir())
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}

	events, err := logger.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll on missing file: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("expected no events, got %d", len(events))
	}
}

func TestAppendPreservesExplicitTime(t *testing.T) {
	logger, err := NewLogger(t.TempDir())
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}

	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	if err := logger.Append(LogEvent{Event: EventRequestFailed, Error: "boom", Time: at}); err != nil {
		t.Fatalf("Append: %v", err)
	}

	got, err := logger.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if !got[0].Time.Equal(at) {
		t.Errorf("Time: got %v, want %v", got[0].Time, at)
	}
}
