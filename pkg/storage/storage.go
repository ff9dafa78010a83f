package storage

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// DB is the persistent database of known program titles. New titles are
// upserted after each EPG generation; the whole table is dumped into the
// EPG workbook's second sheet.
type DB struct {
	sql *sql.DB
}

func Open(path string) (*DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	dsn := "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	// Ensure schema exists for convenience.
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS titles (
  id                INTEGER PRIMARY KEY,
  unique_id         TEXT NOT NULL,
  title             TEXT NOT NULL,
  type              TEXT NOT NULL DEFAULT '',
  genre             TEXT NOT NULL DEFAULT '',
  tc_in             TEXT NOT NULL DEFAULT '',
  duration          TEXT NOT NULL DEFAULT '',
  series_id         TEXT NOT NULL DEFAULT '',
  episode_title     TEXT NOT NULL DEFAULT '',
  short_description TEXT NOT NULL DEFAULT '',
  long_description  TEXT NOT NULL DEFAULT '',
  season_number     TEXT NOT NULL DEFAULT '',
  episode_no        TEXT NOT NULL DEFAULT '',
  rating            TEXT NOT NULL DEFAULT '',
  series_image      TEXT NOT NULL DEFAULT '',
  program_image     TEXT NOT NULL DEFAULT '',
  is_live           TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_titles_title ON titles(title);
    `); err != nil {
		return nil, err
	}
	return &DB{sql: db}, nil
}

func (d *DB) Close() error {
	if d == nil || d.sql == nil {
		return nil
	}
	return d.sql.Close()
}

const titleColumns = `unique_id, title, type, genre, tc_in, duration, series_id, episode_title, short_description, long_description, season_number, episode_no, rating, series_image, program_image, is_live`

// Load returns every title row in insertion order.
func (d *DB) Load(ctx context.Context) ([]Title, error) {
	rows, err := d.sql.QueryContext(ctx, "SELECT "+titleColumns+" FROM titles ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var titles []Title
	for rows.Next() {
		var t Title
		if err := rows.Scan(
			&t.UniqueID, &t.Title, &t.Type, &t.Genre, &t.TCIn, &t.Duration,
			&t.SeriesID, &t.EpisodeTitle, &t.ShortDescription, &t.LongDescription,
			&t.SeasonNumber, &t.EpisodeNo, &t.Rating, &t.SeriesImage,
			&t.ProgramImage, &t.IsLive,
		); err != nil {
			return nil, err
		}
		titles = append(titles, t)
	}
	return titles, rows.Err()
}

// UpsertNewTitles adds one row per (id, title) pair whose trimmed title is
// not already in the database. Comparison is case-sensitive after trimming.
// Returns the number of rows added.
func (d *DB) UpsertNewTitles(ctx context.Context, ids, titles []string) (int, error) {
	tx, err := d.sql.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	rows, err := tx.QueryContext(ctx, "SELECT title FROM titles")
	if err != nil {
		return 0, err
	}
	existing := make(map[string]struct{})
	for rows.Next() {
		var title string
		if err = rows.Scan(&title); err != nil {
			rows.Close()
			return 0, err
		}
		existing[strings.TrimSpace(title)] = struct{}{}
	}
	if err = rows.Close(); err != nil {
		return 0, err
	}

	added := 0
	for i, title := range titles {
		clean := strings.TrimSpace(title)
		if clean == "" {
			continue
		}
		if _, ok := existing[clean]; ok {
			continue
		}
		id := ""
		if i < len(ids) {
			id = ids[i]
		}
		if _, err = tx.ExecContext(ctx,
			"INSERT INTO titles(unique_id, title, type) VALUES(?,?,?)",
			id, clean, "Media",
		); err != nil {
			return 0, err
		}
		existing[clean] = struct{}{}
		added++
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}
	return added, nil
}

// Count returns the number of stored titles.
func (d *DB) Count(ctx context.Context) (int, error) {
	var n int
	err := d.sql.QueryRowContext(ctx, "SELECT COUNT(*) FROM titles").Scan(&n)
	return n, err
}
