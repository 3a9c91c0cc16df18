package storage

import (
	"embed"
	"encoding/json"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/tonyprice/nhldata/record"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Row is one MoneyPuck record persisted to SQLite, keyed by the file it came
// from and the entity it describes. The full record is kept as JSON.
type Row struct {
	FileType string `db:"file_type"`
	Season   int    `db:"season"`
	GameType string `db:"game_type"`
	EntityID string `db:"entity_id"`
	Data     string `db:"data"`
}

// SyncRun logs one completed sync invocation.
type SyncRun struct {
	ID       int64  `db:"id"`
	FileType string `db:"file_type"`
	Season   int    `db:"season"`
	GameType string `db:"game_type"`
	Rows     int    `db:"row_count"`
	RanAt    string `db:"ran_at"`
}

type Store struct {
	db   *sqlx.DB
	path string
}

func Open(path string) (*Store, error) {
	db, err := sqlx.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return &Store{db: db, path: path}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Migrate brings the schema up to date from the embedded migrations.
func (s *Store) Migrate() error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("loading migrations: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, "sqlite3://"+s.path)
	if err != nil {
		return fmt.Errorf("preparing migrations: %w", err)
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("running migrations: %w", err)
	}
	return nil
}

// UpsertRows replaces the stored rows in one transaction, all or nothing.
func (s *Store) UpsertRows(rows []Row) error {
	tx, err := s.db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		REPLACE INTO moneypuck_rows (
			file_type, season, game_type, entity_id, data
		) VALUES (
			:file_type, :season, :game_type, :entity_id, :data
		)
	`
	for _, r := range rows {
		if _, err := tx.NamedExec(query, r); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// RowsBySeason returns the stored records for one file selection, decoded
// back into records.
func (s *Store) RowsBySeason(fileType, gametype string, season int) (record.Sequence, error) {
	rows := []Row{}
	query := `
		SELECT file_type, season, game_type, entity_id, data
		FROM moneypuck_rows
		WHERE file_type = ? AND game_type = ? AND season = ?
		ORDER BY entity_id
	`
	if err := s.db.Select(&rows, query, fileType, gametype, season); err != nil {
		return nil, err
	}

	out := make(record.Sequence, 0, len(rows))
	for _, r := range rows {
		rec := record.Record{}
		if err := json.Unmarshal([]byte(r.Data), &rec); err != nil {
			return nil, fmt.Errorf("decoding stored row %s/%d/%s: %w", r.FileType, r.Season, r.EntityID, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

// LogSyncRun records a completed sync for one selection.
func (s *Store) LogSyncRun(fileType, gametype string, season, rowCount int) error {
	query := `
		INSERT INTO sync_runs (file_type, season, game_type, row_count, ran_at)
		VALUES (?, ?, ?, ?, ?)
	`
	_, err := s.db.Exec(query, fileType, season, gametype, rowCount, time.Now().UTC().Format(time.RFC3339))
	return err
}

// SyncRuns lists past sync runs, newest first.
func (s *Store) SyncRuns() ([]SyncRun, error) {
	runs := []SyncRun{}
	query := `
		SELECT id, file_type, season, game_type, row_count, ran_at
		FROM sync_runs ORDER BY id DESC
	`
	if err := s.db.Select(&runs, query); err != nil {
		return nil, err
	}
	return runs, nil
}
