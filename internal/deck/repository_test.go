package deck

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) (*DBDeckRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewDBDeckRepository(sqlx.NewDb(db, "mysql")), mock
}

func TestDBDeckRepository_Find(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local)

	tests := []struct {
		name       string
		setupMock  func(mock sqlmock.Sqlmock)
		want       Deck
		wantErr    bool
		errMsg     string
	}{
		{
			name: "returns the deck",
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"deck_id", "user_id", "deck_name", "is_public", "created_at"}).
					AddRow(3, 1, "N5 Vocabulary", false, now)
				mock.ExpectQuery("SELECT \\* FROM decks WHERE deck_id = \\?").
					WithArgs(int64(3)).
					WillReturnRows(rows)
			},
			want: Deck{DeckID: 3, UserID: 1, Name: "N5 Vocabulary", CreatedAt: now},
		},
		{
			name: "missing deck returns ErrNotFound",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT \\* FROM decks WHERE deck_id = \\?").
					WithArgs(int64(3)).
					WillReturnRows(sqlmock.NewRows([]string{"deck_id"}))
			},
			wantErr: true,
			errMsg:  "deck not found",
		},
		{
			name: "db error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT \\* FROM decks WHERE deck_id = \\?").
					WithArgs(int64(3)).
					WillReturnError(fmt.Errorf("connection refused"))
			},
			wantErr: true,
			errMsg:  "load deck",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestRepository(t)
			tt.setupMock(mock)

			got, err := repo.Find(context.Background(), 3)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBDeckRepository_FindTerms(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local)

	repo, mock := newTestRepository(t)
	rows := sqlmock.NewRows([]string{"term_id", "deck_id", "term", "definition", "created_at"}).
		AddRow(10, 3, "犬", "dog", now).
		AddRow(11, 3, "猫", "cat", now)
	mock.ExpectQuery("SELECT \\* FROM terms WHERE deck_id = \\? ORDER BY term_id").
		WithArgs(int64(3)).
		WillReturnRows(rows)

	got, err := repo.FindTerms(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "犬", got[0].Term)
	assert.Equal(t, "cat", got[1].Definition)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBDeckRepository_CountTerms(t *testing.T) {
	repo, mock := newTestRepository(t)
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM terms WHERE deck_id = \\?").
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

	got, err := repo.CountTerms(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 42, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}
