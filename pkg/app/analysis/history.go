package analysis

import (
	"context"
	"time"

	domain "github.com/NeuralTrust/InclusionGuard/pkg/domain/analysis"
	"github.com/NeuralTrust/InclusionGuard/pkg/common"
	"github.com/google/uuid"
)

// Page is one page of stored analyses.
type Page struct {
	Items  []*domain.Analysis `json:"items"`
	Total  int64              `json:"total"`
	Limit  int                `json:"limit"`
	Offset int                `json:"offset"`
}

// Summary counts analyses per issue type over a period.
type Summary struct {
	Since  time.Time               `json:"since"`
	Counts []domain.IssueTypeCount `json:"counts"`
}

//go:generate mockery --name=History --dir=. --output=./mocks --filename=history_mock.go --case=underscore --with-expecter
type History interface {
	List(ctx context.Context, teamID string, limit, offset int) (*Page, error)
	Get(ctx context.Context, teamID string, id uuid.UUID) (*domain.Analysis, error)
	Delete(ctx context.Context, teamID string, id uuid.UUID) error
	SummaryByIssue(ctx context.Context, teamID string, since time.Time) (*Summary, error)
}

type history struct {
	repo domain.Repository
}

func NewHistory(repo domain.Repository) History {
	return &history{repo: repo}
}

func (h *history) List(ctx context.Context, teamID string, limit, offset int) (*Page, error) {
	if limit <= 0 {
		limit = common.DefaultListLimit
	}
	if limit > common.MaxListLimit {
		limit = common.MaxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	items, total, err := h.repo.List(ctx, teamID, limit, offset)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*domain.Analysis{}
	}
	return &Page{Items: items, Total: total, Limit: limit, Offset: offset}, nil
}

func (h *history) Get(ctx context.Context, teamID string, id uuid.UUID) (*domain.Analysis, error) {
	return h.repo.GetByID(ctx, teamID, id)
}

func (h *history) Delete(ctx context.Context, teamID string, id uuid.UUID) error {
	return h.repo.Delete(ctx, teamID, id)
}

func (h *history) SummaryByIssue(ctx context.Context, teamID string, since time.Time) (*Summary, error) {
	counts, err := h.repo.CountByIssueType(ctx, teamID, since)
	if err != nil {
		return nil, err
	}
	if counts == nil {
		counts = []domain.IssueTypeCount{}
	}
	return &Summary{Since: since, Counts: counts}, nil
}
