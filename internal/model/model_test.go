package model

import "testing"

func TestDeriveDatetime(t *testing.T) {
	d := LogDraft{Date: "2024-03-05", TimeHour: 8, TimeMinute: 5}
	d.DeriveDatetime()
	if d.Datetime != "2024-03-05T08:05:00Z" {
		t.Errorf("Datetime: got %q, want %q", d.Datetime, "2024-03-05T08:05:00Z")
	}
}

func TestMissingFields(t *testing.T) {
	tests := []struct {
		name  string
		draft LogDraft
		want  int
	}{
		{"all present", LogDraft{Date: "2024-01-01", InvolvedName: "A", InvolvedCompany: "B"}, 0},
		{"all missing", LogDraft{}, 3},
		{"whitespace counts as missing", LogDraft{Date: "  ", InvolvedName: "A", InvolvedCompany: "B"}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(tt.draft.MissingFields()); got != tt.want {
				t.Errorf("MissingFields: got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFilterValuesOmitEmpty(t *testing.T) {
	f := FilterCriteria{FromDate: "2024-01-01", ToDate: "2024-01-31", Severity: "high"}
	v := f.Values()

	if len(v) != 3 {
		t.Fatalf("expected exactly 3 params, got %d: %v", len(v), v)
	}
	if v.Get("from_date") != "2024-01-01" || v.Get("to_date") != "2024-01-31" || v.Get("severity") != "high" {
		t.Errorf("unexpected values: %v", v)
	}
	if _, ok := v["company"]; ok {
		t.Error("company should be omitted when empty")
	}
}

func TestFilterIsEmpty(t *testing.T) {
	if !(FilterCriteria{}).IsEmpty() {
		t.Error("zero criteria should be empty")
	}
	if (FilterCriteria{Company: "Acme"}).IsEmpty() {
		t.Error("criteria with company should not be empty")
	}
}

func TestSeverityLabel(t *testing.T) {
	if got := (AccidentLog{}).SeverityLabel(); got != SeverityUnknown {
		t.Errorf("empty severity: got %q, want %q", got, SeverityUnknown)
	}
	if got := (AccidentLog{Severity: "high"}).SeverityLabel(); got != "high" {
		t.Errorf("severity: got %q, want high", got)
	}
}

func TestTimeLabelPadsMinutes(t *testing.T) {
	l := AccidentLog{TimeHour: 9, TimeMinute: 7}
	if got := l.TimeLabel(); got != "9:07" {
		t.Errorf("TimeLabel: got %q, want 9:07", got)
	}
}
