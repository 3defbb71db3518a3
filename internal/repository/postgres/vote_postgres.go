package postgres

import (
	"context"
	"database/sql"

	"brilliantstylist/internal/model"
	"brilliantstylist/internal/repository"
)

// VotePostgres is a PostgreSQL implementation of repository.VoteRepository.
type VotePostgres struct {
	db *sql.DB
}

func NewVotePostgres(db *sql.DB) *VotePostgres {
	return &VotePostgres{db: db}
}

var _ repository.VoteRepository = (*VotePostgres)(nil)

// Create inserts a vote row. The (submission_id, voter_id) UNIQUE constraint rejects repeats.
func (r *VotePostgres) Create(ctx context.Context, v *model.Vote) (*model.Vote, error) {
	const q = `
		INSERT INTO votes (submission_id, voter_id, vote_type)
		VALUES ($1, $2, $3)
		RETURNING id, submission_id, voter_id, vote_type, voted_at
	`
	var out model.Vote
	if err := r.db.QueryRowContext(ctx, q, v.SubmissionID, v.VoterID, string(v.Type)).Scan(
		&out.ID,
		&out.SubmissionID,
		&out.VoterID,
		&out.Type,
		&out.VotedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

// Counts returns both tallies in a single aggregate; unknown submissions count zero.
func (r *VotePostgres) Counts(ctx context.Context, submissionID string) (model.VoteCounts, error) {
	const q = `
		SELECT COUNT(*) FILTER (WHERE vote_type = 'brilliant') AS brilliant_count,
		       COUNT(*) FILTER (WHERE vote_type = 'meh')       AS meh_count
		FROM votes
		WHERE submission_id = $1
	`
	var c model.VoteCounts
	if err := r.db.QueryRowContext(ctx, q, submissionID).Scan(&c.Brilliant, &c.Meh); err != nil {
		return model.VoteCounts{}, err
	}
	return c, nil
}

func (r *VotePostgres) NextUnvoted(ctx context.Context, voterID string) (*model.Submission, error) {
	const q = `
		SELECT ` + submissionColumns + `
		FROM user_outfits o
		WHERE o.user_id <> $1
		  AND NOT EXISTS (
		      SELECT 1 FROM votes v WHERE v.submission_id = o.id AND v.voter_id = $1
		  )
		ORDER BY random()
		LIMIT 1
	`
	return scanSubmission(r.db.QueryRowContext(ctx, q, voterID))
}

// Leaderboard lists every submission with its brilliant tally, newest first.
func (r *VotePostgres) Leaderboard(ctx context.Context) ([]model.LeaderboardEntry, error) {
	const q = `
		SELECT o.id, o.user_id, COALESCE(p.display_name, ''), o.public_url, o.image_path, o.name, o.created_at,
		       COUNT(v.id) FILTER (WHERE v.vote_type = 'brilliant') AS brilliant_count
		FROM user_outfits o
		LEFT JOIN user_profiles p ON p.id = o.user_id
		LEFT JOIN votes v ON v.submission_id = o.id
		GROUP BY o.id, p.display_name
		ORDER BY o.created_at DESC, o.id DESC
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.LeaderboardEntry, 0)
	for rows.Next() {
		var (
			e         model.LeaderboardEntry
			publicURL string
			imagePath string
		)
		if err := rows.Scan(
			&e.SubmissionID,
			&e.UserID,
			&e.DisplayName,
			&publicURL,
			&imagePath,
			&e.PromptTitle,
			&e.CreatedAt,
			&e.BrilliantVotes,
		); err != nil {
			return nil, err
		}
		e.ImageURL = model.Submission{PublicURL: publicURL, ImagePath: imagePath}.ImageURL()
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
