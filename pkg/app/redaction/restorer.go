package redaction

import (
	"strings"

	"github.com/NeuralTrust/InclusionGuard/pkg/domain/redaction"
)

// Restorer puts original values back in place of their placeholders.
type Restorer struct {
	replacer *strings.Replacer
}

func NewRestorer(m redaction.EntityMap) *Restorer {
	if m.Empty() {
		return &Restorer{}
	}
	pairs := make([]string, 0, 2*len(m))
	for _, e := range m {
		if e.Placeholder == "" {
			continue
		}
		pairs = append(pairs, e.Placeholder, e.Text)
	}
	return &Restorer{replacer: strings.NewReplacer(pairs...)}
}

// Restore replaces all occurrences of every placeholder. Output is not
// rescanned, so restored values that look like placeholders stay untouched.
func (r *Restorer) Restore(text string) string {
	if r == nil || r.replacer == nil || text == "" {
		return text
	}
	return r.replacer.Replace(text)
}

func Restore(text string, m redaction.EntityMap) string {
	return NewRestorer(m).Restore(text)
}
