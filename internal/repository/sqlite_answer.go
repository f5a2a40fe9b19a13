package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/emmavds/softseason/internal/db"
	"github.com/emmavds/softseason/internal/domain"
)

// SQLiteAnswerRepo implements AnswerRepo using a SQLite database.
// Answers are append-only; there is no update or delete path.
type SQLiteAnswerRepo struct {
	db db.DBTX
}

// NewSQLiteAnswerRepo creates a new SQLiteAnswerRepo.
func NewSQLiteAnswerRepo(db db.DBTX) *SQLiteAnswerRepo {
	return &SQLiteAnswerRepo{db: db}
}

func (r *SQLiteAnswerRepo) Create(ctx context.Context, a *domain.Answer) error {
	valueJSON, err := json.Marshal(a.Value)
	if err != nil {
		return fmt.Errorf("marshaling answer value: %w", err)
	}
	query := `INSERT INTO answers (id, question_id, value_json, created_at)
		VALUES (?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		a.ID,
		a.QuestionID,
		string(valueJSON),
		a.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting answer: %w", err)
	}
	return nil
}

func (r *SQLiteAnswerRepo) FirstByQuestion(ctx context.Context, questionID string) (*domain.Answer, error) {
	query := `SELECT id, question_id, value_json, created_at
		FROM answers WHERE question_id = ? ORDER BY created_at, id LIMIT 1`
	row := r.db.QueryRowContext(ctx, query, questionID)

	var a domain.Answer
	var valueJSON, createdAtStr string
	err := row.Scan(&a.ID, &a.QuestionID, &valueJSON, &createdAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			// Unanswered is a normal state, not an error.
			return nil, nil
		}
		return nil, fmt.Errorf("scanning answer: %w", err)
	}

	if err := json.Unmarshal([]byte(valueJSON), &a.Value); err != nil {
		return nil, fmt.Errorf("unmarshaling answer value: %w", err)
	}
	a.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}

	return &a, nil
}
