package analysis

import "errors"

var (
	ErrAIServiceUnavailable = errors.New("AI service temporarily unavailable")
	ErrEmptyText            = errors.New("text is required")
	ErrTextTooLong          = errors.New("text exceeds the maximum allowed length")
	ErrInvalidAnalysisID    = errors.New("invalid analysis id")
)
