package repository

import (
	"context"
	"database/sql"

	"github.com/maheshrc27/brand-engine/internal/models"
)

type HistoryRepository interface {
	Create(ctx context.Context, h *models.ActionHistory) (int64, error)
	ListByBrandID(ctx context.Context, brandID string, limit int) ([]*models.ActionHistory, error)
	Ping(ctx context.Context) error
}

type historyRepository struct {
	db *sql.DB
}

func NewHistoryRepository(db *sql.DB) HistoryRepository {
	return &historyRepository{db: db}
}

func (r *historyRepository) Create(ctx context.Context, h *models.ActionHistory) (int64, error) {
	query := `
		INSERT INTO action_history (session_id, brand_id, post_id, action, status_code, error_message)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRowContext(ctx, query, h.SessionID, h.BrandID, h.PostID, h.Action, h.StatusCode, h.ErrorMessage).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *historyRepository) ListByBrandID(ctx context.Context, brandID string, limit int) ([]*models.ActionHistory, error) {
	query := `
		SELECT id, session_id, brand_id, post_id, action, status_code, error_message, created_at
		FROM action_history
		WHERE brand_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := r.db.QueryContext(ctx, query, brandID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*models.ActionHistory
	for rows.Next() {
		var h models.ActionHistory
		if err := rows.Scan(&h.ID, &h.SessionID, &h.BrandID, &h.PostID, &h.Action, &h.StatusCode, &h.ErrorMessage, &h.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, &h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *historyRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// nopHistoryRepository stands in when no database is configured.
type nopHistoryRepository struct{}

func NewNopHistoryRepository() HistoryRepository {
	return nopHistoryRepository{}
}

func (nopHistoryRepository) Create(context.Context, *models.ActionHistory) (int64, error) {
	return 0, nil
}

func (nopHistoryRepository) ListByBrandID(context.Context, string, int) ([]*models.ActionHistory, error) {
	return nil, nil
}

func (nopHistoryRepository) Ping(context.Context) error {
	return nil
}
