package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/emmavds/softseason/internal/db"
	"github.com/emmavds/softseason/internal/domain"
)

// SQLiteQuestionRepo implements QuestionRepo using a SQLite database.
type SQLiteQuestionRepo struct {
	db db.DBTX
}

// NewSQLiteQuestionRepo creates a new SQLiteQuestionRepo.
func NewSQLiteQuestionRepo(db db.DBTX) *SQLiteQuestionRepo {
	return &SQLiteQuestionRepo{db: db}
}

func (r *SQLiteQuestionRepo) Create(ctx context.Context, q *domain.Question) error {
	optionsJSON, err := marshalStrings(q.Options)
	if err != nil {
		return err
	}
	query := `INSERT INTO questions (id, session_id, idx, text, input_type, options_json, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		q.ID,
		q.SessionID,
		q.Index,
		q.Text,
		string(q.InputType),
		optionsJSON,
		q.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return wrapConflict(fmt.Errorf("inserting question: %w", err),
			fmt.Sprintf("question index %d for session %s", q.Index, q.SessionID))
	}
	return nil
}

func (r *SQLiteQuestionRepo) GetByID(ctx context.Context, id string) (*domain.Question, error) {
	query := `SELECT id, session_id, idx, text, input_type, options_json, created_at
		FROM questions WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	q, err := scanQuestion(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: question %q", domain.ErrNotFound, id)
	}
	return q, err
}

func (r *SQLiteQuestionRepo) GetByIndex(ctx context.Context, sessionID string, index int) (*domain.Question, error) {
	query := `SELECT id, session_id, idx, text, input_type, options_json, created_at
		FROM questions WHERE session_id = ? AND idx = ?`
	row := r.db.QueryRowContext(ctx, query, sessionID, index)
	q, err := scanQuestion(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: question %d for session %q", domain.ErrNotFound, index, sessionID)
	}
	return q, err
}

func (r *SQLiteQuestionRepo) ListBySession(ctx context.Context, sessionID string) ([]*domain.Question, error) {
	query := `SELECT id, session_id, idx, text, input_type, options_json, created_at
		FROM questions WHERE session_id = ? ORDER BY idx`
	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("listing questions: %w", err)
	}
	defer rows.Close()

	var questions []*domain.Question
	for rows.Next() {
		q, err := scanQuestion(rows.Scan)
		if err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating questions: %w", err)
	}
	return questions, nil
}

// scanQuestion scans one question row via the given scan function.
// Returns sql.ErrNoRows unwrapped so callers can map it to NotFound.
func scanQuestion(scan func(dest ...any) error) (*domain.Question, error) {
	var q domain.Question
	var inputTypeStr, createdAtStr string
	var optionsJSON sql.NullString

	err := scan(&q.ID, &q.SessionID, &q.Index, &q.Text, &inputTypeStr, &optionsJSON, &createdAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning question: %w", err)
	}

	q.InputType = domain.InputType(inputTypeStr)

	q.Options, err = unmarshalStrings(optionsJSON)
	if err != nil {
		return nil, err
	}

	q.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}

	return &q, nil
}
