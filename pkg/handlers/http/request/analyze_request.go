package request

import (
	"errors"
	"strings"
)

var ErrTextRequired = errors.New("text is required")

type AnalyzeRequest struct {
	Subject string `json:"subject,omitempty"`
	Text    string `json:"text"`
}

func (r *AnalyzeRequest) Validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return ErrTextRequired
	}
	return nil
}

type ListAnalysesRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

type SummaryRequest struct {
	Days int `query:"days"`
}

func (r *SummaryRequest) Validate() error {
	if r.Days < 0 {
		return errors.New("days must not be negative")
	}
	if r.Days > 365 {
		return errors.New("days must be at most 365")
	}
	return nil
}
