package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"bikeshare/config"
	"bikeshare/domain/business/queryresponse"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS reports (
		query_id       VARCHAR(36)      PRIMARY KEY,
		city           VARCHAR(50)      NOT NULL,
		month          VARCHAR(20)      NOT NULL,
		day            VARCHAR(20)      NOT NULL,
		trips          INTEGER          NOT NULL,
		total_duration DOUBLE PRECISION NOT NULL DEFAULT 0,
		payload        TEXT             NOT NULL,
		created_at     TIMESTAMP        NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_reports_city ON reports(city)`,
}

// SQLWriter persists reports in a Postgres (lib/pq) or SQLite (modernc.org/sqlite) database
type SQLWriter struct {
	db     *sql.DB
	driver string
}

// NewSQLWriter opens the database, checks the connection and runs the schema migrations.
// + driver possible values: postgres, sqlite
func NewSQLWriter(ctx context.Context, driver string, dsn string) (*SQLWriter, error) {
	if driver != config.DriverPostgres && driver != config.DriverSQLite {
		return nil, fmt.Errorf("%s: unsupported driver: %w", driver, config.ErrInvalidConfig)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: open: %w", driver, err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: ping: %w", driver, err)
	}

	sw := &SQLWriter{db: db, driver: driver}
	if err := sw.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: migrate: %w", driver, err)
	}

	return sw, nil
}

func (sw *SQLWriter) migrate(ctx context.Context) error {
	for _, statement := range migrations {
		if _, err := sw.db.ExecContext(ctx, statement); err != nil {
			return err
		}
	}
	return nil
}

// Write inserts the report. Writing the same report twice is a no-op
func (sw *SQLWriter) Write(ctx context.Context, report *queryresponse.QueryResponse) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("%s: marshal report %s: %w", sw.driver, report.QueryID, err)
	}

	query := fmt.Sprintf(`
		INSERT INTO reports (query_id, city, month, day, trips, total_duration, payload, created_at)
		VALUES (%s)
		ON CONFLICT (query_id) DO NOTHING
	`, sw.placeholders(8))

	_, err = sw.db.ExecContext(ctx, query,
		report.QueryID,
		report.Filter.City,
		report.Filter.Month,
		report.Filter.Day,
		report.Trips,
		report.Duration.TotalDuration,
		string(payload),
		report.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("%s: insert report %s: %w", sw.driver, report.QueryID, err)
	}
	return nil
}

// FetchAll retrieves every stored report, oldest first
func (sw *SQLWriter) FetchAll(ctx context.Context) ([]*queryresponse.QueryResponse, error) {
	rows, err := sw.db.QueryContext(ctx, `SELECT payload FROM reports ORDER BY created_at, query_id`)
	if err != nil {
		return nil, fmt.Errorf("%s: fetch all: %w", sw.driver, err)
	}
	defer rows.Close()

	var reports []*queryresponse.QueryResponse
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("%s: scan row: %w", sw.driver, err)
		}

		report := &queryresponse.QueryResponse{}
		if err := json.Unmarshal([]byte(payload), report); err != nil {
			return nil, fmt.Errorf("%s: unmarshal report: %w", sw.driver, err)
		}
		reports = append(reports, report)
	}
	return reports, rows.Err()
}

func (sw *SQLWriter) Close() error {
	return sw.db.Close()
}

// placeholders returns "$1,$2,..." for postgres and "?,?,..." for sqlite
func (sw *SQLWriter) placeholders(amount int) string {
	values := make([]string, 0, amount)
	for idx := 1; idx <= amount; idx++ {
		if sw.driver == config.DriverPostgres {
			values = append(values, fmt.Sprintf("$%d", idx))
			continue
		}
		values = append(values, "?")
	}
	return strings.Join(values, ",")
}
