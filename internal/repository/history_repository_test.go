package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/maheshrc27/brand-engine/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func TestHistory_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewHistoryRepository(db)

	mock.ExpectQuery(`INSERT INTO action_history`).
		WithArgs("s1", "b1", "p1", models.ActionApprove, 200, "").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

	id, err := repo.Create(context.Background(), &models.ActionHistory{
		SessionID: "s1", BrandID: "b1", PostID: "p1", Action: models.ActionApprove, StatusCode: 200,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHistory_CreateError(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewHistoryRepository(db)

	mock.ExpectQuery(`INSERT INTO action_history`).WillReturnError(errors.New("connection reset"))

	_, err := repo.Create(context.Background(), &models.ActionHistory{SessionID: "s1", Action: models.ActionPlan})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHistory_ListByBrandID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewHistoryRepository(db)

	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "session_id", "brand_id", "post_id", "action", "status_code", "error_message", "created_at"}).
		AddRow(2, "s1", "b1", "p1", models.ActionGenerate, 200, "", now).
		AddRow(1, "s1", "b1", "p1", models.ActionPlan, 201, "", now.Add(-time.Minute))

	mock.ExpectQuery(`SELECT id, session_id, brand_id, post_id, action, status_code, error_message, created_at\s+FROM action_history\s+WHERE brand_id = \$1`).
		WithArgs("b1", 20).
		WillReturnRows(rows)

	entries, err := repo.ListByBrandID(context.Background(), "b1", 20)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, models.ActionGenerate, entries[0].Action)
	assert.Equal(t, now, entries[0].CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNopHistory(t *testing.T) {
	repo := NewNopHistoryRepository()
	id, err := repo.Create(context.Background(), &models.ActionHistory{})
	assert.NoError(t, err)
	assert.Zero(t, id)

	entries, err := repo.ListByBrandID(context.Background(), "b1", 10)
	assert.NoError(t, err)
	assert.Empty(t, entries)
}
