package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type migrationStep struct {
	Name string
	SQL  string
}

// sentinelTable is the last table created; its presence means the schema is in place.
const sentinelTable = "public.votes"

var steps = []migrationStep{
	{
		Name: "create_extension_uuid_ossp",
		SQL:  `CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	},
	{
		Name: "create_table_users",
		SQL: `CREATE TABLE IF NOT EXISTS users (
  id            UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  email         TEXT        NOT NULL UNIQUE,
  password_hash TEXT        NOT NULL,
  created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_user_profiles",
		SQL: `CREATE TABLE IF NOT EXISTS user_profiles (
  id                UUID        PRIMARY KEY REFERENCES users (id) ON DELETE CASCADE,
  username          TEXT        NOT NULL,
  display_name      TEXT        NOT NULL DEFAULT '',
  avatar_url        TEXT,
  level             INTEGER     NOT NULL DEFAULT 1,
  experience_points INTEGER     NOT NULL DEFAULT 0,
  coins             INTEGER     NOT NULL DEFAULT 0,
  created_at        TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at        TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_prompts",
		SQL: `CREATE TABLE IF NOT EXISTS prompts (
  id          UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  title       TEXT        NOT NULL,
  description TEXT        NOT NULL,
  category    TEXT        NOT NULL,
  difficulty  TEXT        NOT NULL,
  keywords    TEXT[]      NOT NULL DEFAULT '{}',
  created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "seed_prompt_summer_beach_glam",
		SQL: `INSERT INTO prompts (title, description, category, difficulty, keywords)
SELECT 'Summer Beach Glam',
       'Create a stunning beach outfit that combines comfort with high fashion. Think flowing fabrics, sun protection, and Instagram-worthy style.',
       'Casual', 'Medium',
       ARRAY['beach','summer','flowing','comfortable','stylish','sunglasses','hat']
WHERE NOT EXISTS (SELECT 1 FROM prompts WHERE title = 'Summer Beach Glam');`,
	},
	{
		Name: "create_table_fashion_cards",
		SQL: `CREATE TABLE IF NOT EXISTS fashion_cards (
  id                UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  title             TEXT        NOT NULL,
  image_url         TEXT        NOT NULL,
  designer          TEXT        NOT NULL,
  brand             TEXT        NOT NULL,
  style_description TEXT        NOT NULL,
  created_at        TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_user_outfits",
		SQL: `CREATE TABLE IF NOT EXISTS user_outfits (
  id          UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  user_id     UUID        NOT NULL REFERENCES users (id) ON DELETE CASCADE,
  prompt_id   UUID        NOT NULL REFERENCES prompts (id),
  name        TEXT        NOT NULL,
  description TEXT        NOT NULL,
  image_path  TEXT        NOT NULL UNIQUE,
  public_url  TEXT        NOT NULL,
  created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_user_outfits_user_created",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_user_outfits_user_created ON user_outfits (user_id, created_at DESC);`,
	},
	{
		Name: "create_table_votes",
		SQL: `CREATE TABLE IF NOT EXISTS votes (
  id            UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  submission_id UUID        NOT NULL REFERENCES user_outfits (id) ON DELETE CASCADE,
  voter_id      UUID        NOT NULL REFERENCES users (id) ON DELETE CASCADE,
  vote_type     TEXT        NOT NULL CHECK (vote_type IN ('brilliant', 'meh')),
  voted_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
  UNIQUE (submission_id, voter_id)
);`,
	},
	{
		Name: "create_index_votes_submission_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_votes_submission_id ON votes (submission_id);`,
	},
}

// EnsureMigrated checks if the sentinel table exists and runs migrations if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, log *zap.Logger, dbHost string) error {
	start := time.Now()
	log = log.With(zap.String("component", "database"), zap.String("db_host", dbHost))

	log.Info("db_migration_check", zap.String("event", "db_migration_check"), zap.String("status", "starting"))

	var exists bool
	query := "SELECT to_regclass($1) IS NOT NULL"
	if err := db.QueryRowContext(ctx, query, sentinelTable).Scan(&exists); err != nil {
		log.Error("db_migration_failed",
			zap.String("event", "db_migration_failed"),
			zap.String("status", "error"),
			zap.Error(err),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Info("schema already exists, skipping migration",
			zap.String("event", "db_migration_skip"),
			zap.String("status", "success"),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return nil
	}

	log.Info("db_migration_start", zap.String("event", "db_migration_start"), zap.String("status", "in_progress"))

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error("db_migration_failed",
				zap.String("event", "db_migration_failed"),
				zap.String("status", "error"),
				zap.String("migration_step", step.Name),
				zap.Error(err),
				zap.Int64("duration_ms", time.Since(start).Milliseconds()),
				zap.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()),
			)
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Info("db_migration_step",
			zap.String("event", "db_migration_step"),
			zap.String("status", "success"),
			zap.String("migration_step", step.Name),
			zap.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()),
		)
	}

	log.Info("db_migration_success",
		zap.String("event", "db_migration_success"),
		zap.String("status", "success"),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()),
	)

	return nil
}
