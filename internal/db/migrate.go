package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Statements are idempotent, so the
// full list re-runs safely on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS sessions (
		id               TEXT PRIMARY KEY,
		wish             TEXT NOT NULL,
		summary_sentence TEXT,
		email            TEXT,
		created_at       TEXT NOT NULL,
		updated_at       TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS questions (
		id         TEXT PRIMARY KEY,
		session_id TEXT NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
		idx        INTEGER NOT NULL CHECK(idx BETWEEN 1 AND 5),
		text       TEXT NOT NULL,
		input_type TEXT NOT NULL
		           CHECK(input_type IN ('text','single-select','multi-select')),
		options_json TEXT,
		created_at TEXT NOT NULL
	)`,

	// Index assignment is strictly increasing per session; the unique
	// constraint makes the loser of a concurrent insert fail so it can
	// re-read the winner's row.
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_questions_session_idx ON questions(session_id, idx)`,

	`CREATE TABLE IF NOT EXISTS answers (
		id          TEXT PRIMARY KEY,
		question_id TEXT NOT NULL REFERENCES questions(id) ON DELETE CASCADE,
		value_json  TEXT NOT NULL,
		created_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_answers_question ON answers(question_id)`,

	`CREATE TABLE IF NOT EXISTS daily_tasks (
		id           TEXT PRIMARY KEY,
		session_id   TEXT NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
		day_index    INTEGER NOT NULL CHECK(day_index BETWEEN 1 AND 25),
		target_date  TEXT NOT NULL,
		title        TEXT NOT NULL,
		description  TEXT NOT NULL,
		category     TEXT NOT NULL
		             CHECK(category IN ('self-care','connection','decluttering',
		                                'giving','nature','reflection','cooking','diy')),
		tags_json    TEXT,
		quote_text   TEXT,
		quote_author TEXT,
		is_completed INTEGER NOT NULL DEFAULT 0
	)`,

	// At most one plan per session: a duplicate 25-row batch trips this
	// constraint on its first row.
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_daily_tasks_session_day ON daily_tasks(session_id, day_index)`,
	`CREATE INDEX IF NOT EXISTS idx_daily_tasks_session ON daily_tasks(session_id)`,
}
