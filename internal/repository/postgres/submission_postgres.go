package postgres

import (
	"context"
	"database/sql"

	"brilliantstylist/internal/model"
	"brilliantstylist/internal/repository"
)

// SubmissionPostgres is a PostgreSQL implementation of repository.SubmissionRepository.
type SubmissionPostgres struct {
	db *sql.DB
}

func NewSubmissionPostgres(db *sql.DB) *SubmissionPostgres {
	return &SubmissionPostgres{db: db}
}

var _ repository.SubmissionRepository = (*SubmissionPostgres)(nil)

const submissionColumns = `id, user_id, prompt_id, name, description, image_path, public_url, created_at`

// Create inserts a user_outfits row and returns the stored record.
func (r *SubmissionPostgres) Create(ctx context.Context, s *model.Submission) (*model.Submission, error) {
	const q = `
		INSERT INTO user_outfits (user_id, prompt_id, name, description, image_path, public_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + submissionColumns
	row := r.db.QueryRowContext(ctx, q,
		s.UserID,
		s.PromptID,
		s.Name,
		s.Description,
		s.ImagePath,
		s.PublicURL,
	)
	return scanSubmission(row)
}

func (r *SubmissionPostgres) FindByID(ctx context.Context, id string) (*model.Submission, error) {
	const q = `SELECT ` + submissionColumns + ` FROM user_outfits WHERE id = $1`
	return scanSubmission(r.db.QueryRowContext(ctx, q, id))
}

func (r *SubmissionPostgres) LatestByUser(ctx context.Context, userID string) (*model.Submission, error) {
	const q = `
		SELECT ` + submissionColumns + `
		FROM user_outfits
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`
	return scanSubmission(r.db.QueryRowContext(ctx, q, userID))
}

// ListByUserWithCounts joins each submission with its brilliant and meh tallies.
func (r *SubmissionPostgres) ListByUserWithCounts(ctx context.Context, userID string) ([]model.SubmissionStats, error) {
	const q = `
		SELECT o.id, o.user_id, o.prompt_id, o.name, o.description, o.image_path, o.public_url, o.created_at,
		       COUNT(v.id) FILTER (WHERE v.vote_type = 'brilliant') AS brilliant_count,
		       COUNT(v.id) FILTER (WHERE v.vote_type = 'meh')       AS meh_count
		FROM user_outfits o
		LEFT JOIN votes v ON v.submission_id = o.id
		WHERE o.user_id = $1
		GROUP BY o.id
		ORDER BY o.created_at DESC, o.id DESC
	`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.SubmissionStats, 0)
	for rows.Next() {
		var s model.SubmissionStats
		if err := rows.Scan(
			&s.ID,
			&s.UserID,
			&s.PromptID,
			&s.Name,
			&s.Description,
			&s.ImagePath,
			&s.PublicURL,
			&s.CreatedAt,
			&s.Counts.Brilliant,
			&s.Counts.Meh,
		); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSubmission(row rowScanner) (*model.Submission, error) {
	var s model.Submission
	if err := row.Scan(
		&s.ID,
		&s.UserID,
		&s.PromptID,
		&s.Name,
		&s.Description,
		&s.ImagePath,
		&s.PublicURL,
		&s.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &s, nil
}
