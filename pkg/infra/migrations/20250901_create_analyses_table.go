package migrations

import (
	"github.com/NeuralTrust/InclusionGuard/pkg/infra/database"
	"gorm.io/gorm"
)

func init() {
	database.RegisterMigration(database.Migration{
		ID:   "20250901_create_analyses_table",
		Name: "Create analyses table",
		Up: func(tx *gorm.DB) error {
			return tx.Exec(`
CREATE TABLE IF NOT EXISTS public.analyses (
    id UUID PRIMARY KEY,
    team_id TEXT NOT NULL,
    user_id TEXT NOT NULL DEFAULT '',
    kind VARCHAR(16) NOT NULL,
    outcome VARCHAR(16) NOT NULL,
    issues JSONB NOT NULL DEFAULT '[]',
    issue_types TEXT[] NOT NULL DEFAULT '{}',
    issue_count INTEGER NOT NULL DEFAULT 0,
    dropped_count INTEGER NOT NULL DEFAULT 0,
    redacted_entities JSONB NOT NULL DEFAULT '{}',
    provider VARCHAR(64) NOT NULL DEFAULT '',
    model VARCHAR(255) NOT NULL DEFAULT '',
    client_device VARCHAR(32) NOT NULL DEFAULT '',
    client_os VARCHAR(64) NOT NULL DEFAULT '',
    client_browser VARCHAR(64) NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_analyses_team_created ON public.analyses (team_id, created_at DESC);
CREATE INDEX IF NOT EXISTS idx_analyses_issue_types ON public.analyses USING GIN (issue_types);
`).Error
		},
	})
}
