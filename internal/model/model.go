// Package model defines the accident-log domain types shared by the client,
// the CLI, and the TUI.
package model

import (
	"fmt"
	"net/url"
	"strings"
)

// SeverityUnknown is the display value for records the backend returns
// without a severity.
const SeverityUnknown = "unknown"

// AccidentLog is a single record as returned by the backend. The backend
// owns these; the client only ever holds ephemeral copies.
type AccidentLog struct {
	ID              int    `json:"id"`
	Date            string `json:"date"`
	Datetime        string `json:"datetime"`
	TimeHour        int    `json:"time_hour"`
	TimeMinute      int    `json:"time_minute"`
	InvolvedName    string `json:"involved_name"`
	InvolvedCompany string `json:"involved_company"`
	Severity        string `json:"severity"`
	Location        string `json:"location"`
	Comments        string `json:"comments"`
}

// SeverityLabel returns the record's severity, or "unknown" when the
// backend omitted it.
func (l AccidentLog) SeverityLabel() string {
	if strings.TrimSpace(l.Severity) == "" {
		return SeverityUnknown
	}
	return l.Severity
}

// TimeLabel renders the wall-clock time as HH:MM.
func (l AccidentLog) TimeLabel() string {
	return fmt.Sprintf("%d:%02d", l.TimeHour, l.TimeMinute)
}

// LogDraft carries the user-editable fields of a record for create and
// update submissions.
type LogDraft struct {
	Date            string `json:"date"`
	Datetime        string `json:"datetime"`
	TimeHour        int    `json:"time_hour"`
	TimeMinute      int    `json:"time_minute"`
	InvolvedName    string `json:"involved_name"`
	InvolvedCompany string `json:"involved_company"`
	Severity        string `json:"severity"`
	Location        string `json:"location"`
	Comments        string `json:"comments"`
}

// DeriveDatetime fills the combined datetime field from the discrete date
// and hour/minute fields. Called before every submission.
func (d *LogDraft) DeriveDatetime() {
	d.Datetime = fmt.Sprintf("%sT%02d:%02d:00Z", d.Date, d.TimeHour, d.TimeMinute)
}

// MissingFields returns the names of required fields that are empty.
func (d LogDraft) MissingFields() []string {
	var missing []string
	if strings.TrimSpace(d.Date) == "" {
		missing = append(missing, "date")
	}
	if strings.TrimSpace(d.InvolvedName) == "" {
		missing = append(missing, "involved_name")
	}
	if strings.TrimSpace(d.InvolvedCompany) == "" {
		missing = append(missing, "involved_company")
	}
	return missing
}

// FilterCriteria narrows a list query. Zero-valued fields are omitted from
// the request. Criteria live for the duration of the session only.
type FilterCriteria struct {
	FromDate string
	ToDate   string
	Severity string
	Company  string
}

// IsEmpty reports whether no constraint is set, in which case the
// unfiltered list endpoint is used.
func (f FilterCriteria) IsEmpty() bool {
	return f.FromDate == "" && f.ToDate == "" && f.Severity == "" && f.Company == ""
}

// Values encodes the non-empty criteria as query parameters using the
// proxy's flat parameter names.
func (f FilterCriteria) Values() url.Values {
	v := url.Values{}
	if f.FromDate != "" {
		v.Set("from_date", f.FromDate)
	}
	if f.ToDate != "" {
		v.Set("to_date", f.ToDate)
	}
	if f.Severity != "" {
		v.Set("severity", f.Severity)
	}
	if f.Company != "" {
		v.Set("company", f.Company)
	}
	return v
}

// Describe renders the active criteria for status lines, e.g.
// "from 2024-01-01 to 2024-01-31, severity high".
func (f FilterCriteria) Describe() string {
	if f.IsEmpty() {
		return "no filters"
	}
	var parts []string
	if f.FromDate != "" {
		parts = append(parts, "from "+f.FromDate)
	}
	if f.ToDate != "" {
		parts = append(parts, "to "+f.ToDate)
	}
	if f.Severity != "" {
		parts = append(parts, "severity "+f.Severity)
	}
	if f.Company != "" {
		parts = append(parts, "company "+f.Company)
	}
	return strings.Join(parts, ", ")
}
