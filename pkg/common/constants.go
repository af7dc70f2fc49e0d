package common

const (
	TraceIDHeader = "X-Trace-Id"

	DefaultListLimit   = 20
	MaxListLimit       = 100
	DefaultSummaryDays = 30
)
