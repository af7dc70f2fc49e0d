package redaction

import (
	"unicode/utf8"

	"github.com/NeuralTrust/InclusionGuard/pkg/domain/redaction"
)

// ChunkPlan is the ordered chunk sequence of one text together with the
// global rune offset of every chunk. It is computed once, before any detector
// call, so mapping a chunk-local offset back is a lookup.
type ChunkPlan struct {
	chunks  []redaction.PlannedChunk
	textLen int
}

func NewChunkPlan(text string, maxLen int) ChunkPlan {
	parts := Chunk(text, maxLen)
	chunks := make([]redaction.PlannedChunk, len(parts))
	offset := 0
	for i, part := range parts {
		chunks[i] = redaction.PlannedChunk{
			Index:        i,
			Text:         part,
			GlobalOffset: offset,
		}
		offset += utf8.RuneCountInString(part)
	}
	return ChunkPlan{chunks: chunks, textLen: offset}
}

func (p ChunkPlan) Chunks() []redaction.PlannedChunk {
	return p.chunks
}

func (p ChunkPlan) Len() int {
	return len(p.chunks)
}

// TextLen is the rune length of the planned text.
func (p ChunkPlan) TextLen() int {
	return p.textLen
}
