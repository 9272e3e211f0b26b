package store

import (
	"context"
	"fmt"
)

// migration is one ordered, idempotent schema step. Steps already recorded in
// schema_migrations are never re-run.
type migration struct {
	version    int
	statements []string
}

var migrations = []migration{
	{
		version: 1,
		statements: []string{
			`CREATE TABLE IF NOT EXISTS diabetes_predictions (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				name TEXT,
				sex TEXT,
				email TEXT,
				pregnancies INTEGER,
				glucose REAL,
				blood_pressure REAL,
				skin_thickness REAL,
				insulin REAL,
				bmi REAL,
				diabetes_pedigree REAL,
				age INTEGER,
				prediction TEXT,
				prediction_date TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
			)`,
		},
	},
	{
		version: 2,
		statements: []string{
			`CREATE TABLE IF NOT EXISTS heart_disease_predictions (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				name TEXT,
				email TEXT,
				age INTEGER,
				sex TEXT,
				chest_pain_type TEXT,
				resting_bp REAL,
				cholesterol REAL,
				fasting_bs TEXT,
				resting_ecg TEXT,
				max_heart_rate INTEGER,
				exercise_angina TEXT,
				oldpeak REAL,
				st_slope TEXT,
				major_vessels INTEGER,
				thalassemia TEXT,
				prediction TEXT,
				prediction_date TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
			)`,
		},
	},
	{
		version: 3,
		statements: []string{
			`CREATE INDEX IF NOT EXISTS idx_diabetes_email ON diabetes_predictions (email)`,
			`CREATE INDEX IF NOT EXISTS idx_heart_email ON heart_disease_predictions (email)`,
		},
	},
}

func (s *Store) migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
		version INTEGER PRIMARY KEY,
		applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		return fmt.Errorf("failed to create schema_migrations: %w", err)
	}

	current, err := s.SchemaVersion(ctx)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if m.version <= current {
			continue
		}

		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin migration %d: %w", m.version, err)
		}
		for _, stmt := range m.statements {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				tx.Rollback()
				return fmt.Errorf("migration %d failed: %w", m.version, err)
			}
		}
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO schema_migrations (version) VALUES (?)", m.version); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", m.version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", m.version, err)
		}
	}
	return nil
}

// SchemaVersion returns the highest migration version recorded as applied.
func (s *Store) SchemaVersion(ctx context.Context) (int, error) {
	var version int
	err := s.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(version), 0) FROM schema_migrations").Scan(&version)
	if err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return version, nil
}
