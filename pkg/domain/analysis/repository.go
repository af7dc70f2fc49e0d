package analysis

import (
	"context"
	"time"

	"github.com/google/uuid"
)

//go:generate mockery --name=Repository --dir=. --output=./mocks --filename=analysis_repository_mock.go --case=underscore --with-expecter
type Repository interface {
	Save(ctx context.Context, a *Analysis) error
	GetByID(ctx context.Context, teamID string, id uuid.UUID) (*Analysis, error)
	List(ctx context.Context, teamID string, limit, offset int) ([]*Analysis, int64, error)
	Delete(ctx context.Context, teamID string, id uuid.UUID) error
	CountByIssueType(ctx context.Context, teamID string, since time.Time) ([]IssueTypeCount, error)
}
