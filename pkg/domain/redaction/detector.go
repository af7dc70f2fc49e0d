package redaction

import (
	"context"
	"errors"
)

var (
	ErrDetectorNotConfigured = errors.New("pii detector is not configured")
	ErrDetectorFailed        = errors.New("pii detection failed")
)

// PlannedChunk is one segment of the original text and the rune offset at
// which it starts.
type PlannedChunk struct {
	Index        int
	Text         string
	GlobalOffset int
}

//go:generate mockery --name=Detector --dir=. --output=./mocks --filename=detector_mock.go --case=underscore --with-expecter
type Detector interface {
	// Detect returns entities with global offsets, already filtered by
	// category and confidence. Any error means the whole pass failed.
	Detect(ctx context.Context, chunks []PlannedChunk) ([]Entity, error)
}

// Batches splits chunks into consecutive groups of at most size chunks. The
// chunks themselves, and therefore their offsets, are not modified.
func Batches(chunks []PlannedChunk, size int) [][]PlannedChunk {
	if size < 1 {
		size = 1
	}
	out := make([][]PlannedChunk, 0, (len(chunks)+size-1)/size)
	for start := 0; start < len(chunks); start += size {
		end := start + size
		if end > len(chunks) {
			end = len(chunks)
		}
		out = append(out, chunks[start:end])
	}
	return out
}
