package logger

import (
	"strings"

	"github.com/sirupsen/logrus"
)

const redactedValue = "[REDACTED]"

var defaultSensitiveFields = []string{
	"entity_map",
	"entities",
	"text",
	"original_text",
	"redacted_text",
	"subject",
	"authorization",
	"api_key",
}

// SensitiveFieldsHook blanks fields that could carry reviewed text or
// placeholder mappings before any sink sees the entry.
type SensitiveFieldsHook struct {
	fields map[string]struct{}
}

func NewSensitiveFieldsHook(extra ...string) *SensitiveFieldsHook {
	h := &SensitiveFieldsHook{fields: make(map[string]struct{})}
	for _, f := range append(defaultSensitiveFields, extra...) {
		h.fields[strings.ToLower(f)] = struct{}{}
	}
	return h
}

func (h *SensitiveFieldsHook) Fire(entry *logrus.Entry) error {
	for key := range entry.Data {
		if _, ok := h.fields[strings.ToLower(key)]; ok {
			entry.Data[key] = redactedValue
		}
	}
	return nil
}

func (h *SensitiveFieldsHook) Levels() []logrus.Level {
	return logrus.AllLevels
}
