package analysis

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Kind string

const (
	KindText Kind = "text"
	KindBot  Kind = "bot"
)

type Outcome string

const (
	OutcomeParsed   Outcome = "parsed"
	OutcomeFallback Outcome = "fallback"
)

// IssuesJSON stores the returned issues of an analysis as jsonb. Both issue
// shapes are kept as BotIssue; text analyses leave the bot fields empty.
type IssuesJSON []BotIssue

func (i IssuesJSON) Value() (driver.Value, error) {
	if i == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(i)
}

func (i *IssuesJSON) Scan(value interface{}) error {
	if value == nil {
		*i = nil
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("could not convert value %v to []byte", value)
	}
	return json.Unmarshal(raw, i)
}

// CountsJSON maps a placeholder prefix to how many values were redacted.
type CountsJSON map[string]int

func (c CountsJSON) Value() (driver.Value, error) {
	if c == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(c)
}

func (c *CountsJSON) Scan(value interface{}) error {
	if value == nil {
		*c = nil
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("could not convert value %v to []byte", value)
	}
	return json.Unmarshal(raw, c)
}

// Analysis is the stored summary of one review. It never holds the redacted
// text or the placeholder mapping.
type Analysis struct {
	ID               uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	TeamID           string         `json:"team_id" gorm:"index"`
	UserID           string         `json:"user_id"`
	Kind             Kind           `json:"kind"`
	Outcome          Outcome        `json:"outcome"`
	Issues           IssuesJSON     `json:"issues" gorm:"type:jsonb"`
	IssueTypes       pq.StringArray `json:"issue_types" gorm:"type:text[]"`
	IssueCount       int            `json:"issue_count"`
	DroppedCount     int            `json:"dropped_count"`
	RedactedEntities CountsJSON     `json:"redacted_entities" gorm:"type:jsonb"`
	Provider         string         `json:"provider"`
	Model            string         `json:"model"`
	ClientDevice     string         `json:"client_device,omitempty"`
	ClientOS         string         `json:"client_os,omitempty"`
	ClientBrowser    string         `json:"client_browser,omitempty"`
	CreatedAt        time.Time      `json:"created_at" gorm:"index"`
}

func (a Analysis) TableName() string {
	return "public.analyses"
}

// IssueTypeCount is one row of the per-issue-type summary.
type IssueTypeCount struct {
	IssueType string `json:"issue_type"`
	Count     int64  `json:"count"`
}
