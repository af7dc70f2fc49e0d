package repository

import (
	"context"
	"errors"
	"time"

	"github.com/NeuralTrust/InclusionGuard/pkg/domain"
	"github.com/NeuralTrust/InclusionGuard/pkg/domain/analysis"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type analysisRepository struct {
	db *gorm.DB
}

func NewAnalysisRepository(db *gorm.DB) analysis.Repository {
	return &analysisRepository{
		db: db,
	}
}

func (r *analysisRepository) Save(ctx context.Context, a *analysis.Analysis) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *analysisRepository) GetByID(ctx context.Context, teamID string, id uuid.UUID) (*analysis.Analysis, error) {
	var a analysis.Analysis
	if err := r.db.WithContext(ctx).
		Where("id = ? AND team_id = ?", id, teamID).
		First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("analysis", id)
		}
		return nil, err
	}
	return &a, nil
}

func (r *analysisRepository) List(ctx context.Context, teamID string, limit, offset int) ([]*analysis.Analysis, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&analysis.Analysis{}).
		Where("team_id = ?", teamID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []*analysis.Analysis
	if err := listQuery(r.db.WithContext(ctx), teamID, limit, offset).Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *analysisRepository) Delete(ctx context.Context, teamID string, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND team_id = ?", id, teamID).
		Delete(&analysis.Analysis{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("analysis", id)
	}
	return nil
}

func (r *analysisRepository) CountByIssueType(ctx context.Context, teamID string, since time.Time) ([]analysis.IssueTypeCount, error) {
	var rows []analysis.IssueTypeCount
	if err := summaryQuery(r.db.WithContext(ctx), teamID, since).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func listQuery(tx *gorm.DB, teamID string, limit, offset int) *gorm.DB {
	return tx.Where("team_id = ?", teamID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset)
}

// summaryQuery counts analyses per issue type. issue_types holds distinct
// values per row, so each analysis counts once per type.
func summaryQuery(tx *gorm.DB, teamID string, since time.Time) *gorm.DB {
	return tx.Raw(`
SELECT issue_type, COUNT(*) AS count
FROM public.analyses, unnest(issue_types) AS issue_type
WHERE team_id = ? AND created_at >= ?
GROUP BY issue_type
ORDER BY count DESC, issue_type ASC`, teamID, since)
}
