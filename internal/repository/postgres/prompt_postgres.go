package postgres

import (
	"context"
	"database/sql"

	"brilliantstylist/internal/model"
	"brilliantstylist/internal/repository"
)

// PromptPostgres is a PostgreSQL implementation of repository.PromptRepository.
type PromptPostgres struct {
	db *sql.DB
}

func NewPromptPostgres(db *sql.DB) *PromptPostgres {
	return &PromptPostgres{db: db}
}

var _ repository.PromptRepository = (*PromptPostgres)(nil)

const promptColumns = `id, title, description, category, difficulty, array_to_string(keywords, ','), created_at`

// Latest fetches the newest prompt.
func (r *PromptPostgres) Latest(ctx context.Context) (*model.Prompt, error) {
	const q = `SELECT ` + promptColumns + ` FROM prompts ORDER BY created_at DESC, id DESC LIMIT 1`
	return scanPrompt(r.db.QueryRowContext(ctx, q))
}

func (r *PromptPostgres) FindByID(ctx context.Context, id string) (*model.Prompt, error) {
	const q = `SELECT ` + promptColumns + ` FROM prompts WHERE id = $1`
	return scanPrompt(r.db.QueryRowContext(ctx, q, id))
}

func scanPrompt(row *sql.Row) (*model.Prompt, error) {
	var (
		p        model.Prompt
		keywords string
	)
	if err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Category, &p.Difficulty, &keywords, &p.CreatedAt); err != nil {
		return nil, err
	}
	p.Keywords = splitKeywords(keywords)
	return &p, nil
}

// CreateCard inserts a fashion card and returns the stored row.
func (r *PromptPostgres) CreateCard(ctx context.Context, card *model.FashionCard) (*model.FashionCard, error) {
	const q = `
		INSERT INTO fashion_cards (title, image_url, designer, brand, style_description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, title, image_url, designer, brand, style_description, created_at
	`
	row := r.db.QueryRowContext(ctx, q,
		card.Title,
		card.ImageURL,
		card.Designer,
		card.Brand,
		card.StyleDescription,
	)
	var out model.FashionCard
	if err := row.Scan(
		&out.ID,
		&out.Title,
		&out.ImageURL,
		&out.Designer,
		&out.Brand,
		&out.StyleDescription,
		&out.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListCards returns all cards ordered by created_at descending.
func (r *PromptPostgres) ListCards(ctx context.Context) ([]model.FashionCard, error) {
	const q = `
		SELECT id, title, image_url, designer, brand, style_description, created_at
		FROM fashion_cards
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.FashionCard, 0)
	for rows.Next() {
		var c model.FashionCard
		if err := rows.Scan(
			&c.ID,
			&c.Title,
			&c.ImageURL,
			&c.Designer,
			&c.Brand,
			&c.StyleDescription,
			&c.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
