package database

import (
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const migrationsTable = "public.inclusionguard_migrations"

// Migration is one schema step. IDs sort lexically in apply order, so they
// start with the date they were written.
type Migration struct {
	ID   string
	Name string
	Up   func(tx *gorm.DB) error
}

var migrationsRegistry = make(map[string]Migration)

// RegisterMigration is called from the init functions of the migrations
// package. A duplicate ID panics at startup.
func RegisterMigration(m Migration) {
	if _, exists := migrationsRegistry[m.ID]; exists {
		panic(fmt.Sprintf("migration with ID %s already registered", m.ID))
	}
	migrationsRegistry[m.ID] = m
}

type MigrationsManager struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewMigrationsManager(db *gorm.DB, logger *logrus.Logger) *MigrationsManager {
	return &MigrationsManager{db: db, logger: logger}
}

func (m *MigrationsManager) ensureMigrationsTable() error {
	return m.db.Exec(`
CREATE TABLE IF NOT EXISTS ` + migrationsTable + ` (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`).Error
}

func (m *MigrationsManager) appliedIDs() (map[string]struct{}, error) {
	var ids []string
	if err := m.db.Raw("SELECT id FROM " + migrationsTable).Scan(&ids).Error; err != nil {
		return nil, err
	}
	applied := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		applied[id] = struct{}{}
	}
	return applied, nil
}

// pending returns the registered migrations missing from applied, in ID order.
func pending(registry map[string]Migration, applied map[string]struct{}) []Migration {
	out := make([]Migration, 0, len(registry))
	for id, mig := range registry {
		if _, ok := applied[id]; !ok {
			out = append(out, mig)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ApplyPending runs every migration not yet recorded. Each one runs in its
// own transaction together with its bookkeeping row.
func (m *MigrationsManager) ApplyPending() error {
	if err := m.ensureMigrationsTable(); err != nil {
		return fmt.Errorf("ensure migrations table: %w", err)
	}

	applied, err := m.appliedIDs()
	if err != nil {
		return fmt.Errorf("load applied migrations: %w", err)
	}

	for _, mig := range pending(migrationsRegistry, applied) {
		if mig.Up == nil {
			return fmt.Errorf("migration %s has no Up function", mig.ID)
		}
		err := m.db.Transaction(func(tx *gorm.DB) error {
			if err := mig.Up(tx); err != nil {
				return err
			}
			return tx.Exec(
				"INSERT INTO "+migrationsTable+" (id, name, applied_at) VALUES (?, ?, ?)",
				mig.ID, mig.Name, time.Now(),
			).Error
		})
		if err != nil {
			return fmt.Errorf("apply migration %s (%s): %w", mig.ID, mig.Name, err)
		}
		m.logger.WithField("migration", mig.ID).Info("migration applied")
	}
	return nil
}
