package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/emmavds/softseason/internal/db"
	"github.com/emmavds/softseason/internal/domain"
)

// SQLiteDailyTaskRepo implements DailyTaskRepo using a SQLite database.
type SQLiteDailyTaskRepo struct {
	db db.DBTX
}

// NewSQLiteDailyTaskRepo creates a new SQLiteDailyTaskRepo.
func NewSQLiteDailyTaskRepo(db db.DBTX) *SQLiteDailyTaskRepo {
	return &SQLiteDailyTaskRepo{db: db}
}

func (r *SQLiteDailyTaskRepo) CreateBatch(ctx context.Context, tasks []*domain.DailyTask) error {
	query := `INSERT INTO daily_tasks (id, session_id, day_index, target_date, title,
		description, category, tags_json, quote_text, quote_author, is_completed)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	for _, t := range tasks {
		tagsJSON, err := marshalStrings(t.Tags)
		if err != nil {
			return err
		}
		_, err = r.db.ExecContext(ctx, query,
			t.ID,
			t.SessionID,
			t.DayIndex,
			t.TargetDate.Format(dateLayout),
			t.Title,
			t.Description,
			string(t.Category),
			tagsJSON,
			t.QuoteText,
			t.QuoteAuthor,
			boolToInt(t.IsCompleted),
		)
		if err != nil {
			return wrapConflict(fmt.Errorf("inserting daily task: %w", err),
				fmt.Sprintf("day %d for session %s", t.DayIndex, t.SessionID))
		}
	}
	return nil
}

func (r *SQLiteDailyTaskRepo) GetByID(ctx context.Context, id string) (*domain.DailyTask, error) {
	query := `SELECT id, session_id, day_index, target_date, title, description,
		category, tags_json, quote_text, quote_author, is_completed
		FROM daily_tasks WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	t, err := scanDailyTask(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: task %q", domain.ErrNotFound, id)
	}
	return t, err
}

func (r *SQLiteDailyTaskRepo) ListBySession(ctx context.Context, sessionID string) ([]*domain.DailyTask, error) {
	query := `SELECT id, session_id, day_index, target_date, title, description,
		category, tags_json, quote_text, quote_author, is_completed
		FROM daily_tasks WHERE session_id = ? ORDER BY day_index`
	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("listing daily tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*domain.DailyTask
	for rows.Next() {
		t, err := scanDailyTask(rows.Scan)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating daily tasks: %w", err)
	}
	return tasks, nil
}

func (r *SQLiteDailyTaskRepo) ExistsForSession(ctx context.Context, sessionID string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM daily_tasks WHERE session_id = ?`, sessionID).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("counting daily tasks: %w", err)
	}
	return n > 0, nil
}

func (r *SQLiteDailyTaskRepo) SetCompleted(ctx context.Context, id string, completed bool) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE daily_tasks SET is_completed = ? WHERE id = ?`, boolToInt(completed), id)
	if err != nil {
		return fmt.Errorf("updating task completion: %w", err)
	}
	return requireRow(res, "task", id)
}

// scanDailyTask scans one task row via the given scan function.
// Returns sql.ErrNoRows unwrapped so callers can map it to NotFound.
func scanDailyTask(scan func(dest ...any) error) (*domain.DailyTask, error) {
	var t domain.DailyTask
	var targetDateStr, categoryStr string
	var tagsJSON, quoteText, quoteAuthor sql.NullString
	var completed int

	err := scan(&t.ID, &t.SessionID, &t.DayIndex, &targetDateStr, &t.Title,
		&t.Description, &categoryStr, &tagsJSON, &quoteText, &quoteAuthor, &completed)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning daily task: %w", err)
	}

	t.Category = domain.Category(categoryStr)
	t.IsCompleted = intToBool(completed)
	if quoteText.Valid {
		t.QuoteText = quoteText.String
	}
	if quoteAuthor.Valid {
		t.QuoteAuthor = quoteAuthor.String
	}

	t.Tags, err = unmarshalStrings(tagsJSON)
	if err != nil {
		return nil, err
	}

	t.TargetDate, err = time.Parse(dateLayout, targetDateStr)
	if err != nil {
		return nil, fmt.Errorf("parsing target_date: %w", err)
	}

	return &t, nil
}
