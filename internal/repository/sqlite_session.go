package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/emmavds/softseason/internal/db"
	"github.com/emmavds/softseason/internal/domain"
)

// SQLiteSessionRepo implements SessionRepo using a SQLite database.
type SQLiteSessionRepo struct {
	db db.DBTX
}

// NewSQLiteSessionRepo creates a new SQLiteSessionRepo.
func NewSQLiteSessionRepo(db db.DBTX) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: db}
}

func (r *SQLiteSessionRepo) Create(ctx context.Context, s *domain.Session) error {
	query := `INSERT INTO sessions (id, wish, summary_sentence, email, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.Wish,
		nullableString(s.SummarySentence),
		nullableString(s.Email),
		s.CreatedAt.Format(time.RFC3339),
		s.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting session: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	query := `SELECT id, wish, summary_sentence, email, created_at, updated_at
		FROM sessions WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	var s domain.Session
	var summary, email sql.NullString
	var createdAtStr, updatedAtStr string

	err := row.Scan(&s.ID, &s.Wish, &summary, &email, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%w: session %q", domain.ErrNotFound, id)
		}
		return nil, fmt.Errorf("scanning session: %w", err)
	}

	s.SummarySentence = fromNullString(summary)
	s.Email = fromNullString(email)

	var parseErr error
	s.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	s.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}

	return &s, nil
}

func (r *SQLiteSessionRepo) SetSummary(ctx context.Context, id, summary string) error {
	query := `UPDATE sessions SET summary_sentence = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, summary, nowUTC(), id)
	if err != nil {
		return fmt.Errorf("updating session summary: %w", err)
	}
	return requireRow(res, "session", id)
}

func (r *SQLiteSessionRepo) SetEmail(ctx context.Context, id, email string) error {
	query := `UPDATE sessions SET email = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, email, nowUTC(), id)
	if err != nil {
		return fmt.Errorf("updating session email: %w", err)
	}
	return requireRow(res, "session", id)
}

func (r *SQLiteSessionRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM sessions WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}

// requireRow turns a zero-row update into a NotFound error.
func requireRow(res sql.Result, kind, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s %q", domain.ErrNotFound, kind, id)
	}
	return nil
}
