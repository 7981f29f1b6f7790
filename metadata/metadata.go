// Package metadata stages the two pre-joined sensor metadata tables for
// the downstream join/export step. The CSVs are loaded, with the usual
// encoding fallback, into an in-memory SQLite database so the external
// step can query them as tables; nothing is transformed and nothing is
// persisted.
package metadata

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/maplegrove-lab/station-summary/config"
	"github.com/maplegrove-lab/station-summary/tables"
)

// Staging table names.
const (
	TableDendro = "dendro_meta"
	TableTMS    = "tms_meta"
)

// DB holds the staged metadata tables. Close discards everything; the
// staging database lives only in memory.
type DB struct {
	db      *sql.DB
	columns map[string][]string
}

// Load reads both joined metadata CSVs into a fresh in-memory database.
func Load(cfg config.Config) (*DB, error) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to open staging database: %w", err)
	}
	// Every pooled connection to :memory: is a separate database; the
	// staging tables only exist on one connection.
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping staging database: %w", err)
	}

	m := &DB{db: db, columns: make(map[string][]string)}

	if err := m.importCSV(TableDendro, cfg.JoinedDendroCSV); err != nil {
		db.Close()
		return nil, fmt.Errorf("dendro metadata: %w", err)
	}
	if err := m.importCSV(TableTMS, cfg.JoinedTMSCSV); err != nil {
		db.Close()
		return nil, fmt.Errorf("tms metadata: %w", err)
	}
	return m, nil
}

// importCSV creates one staging table from a CSV file. Every column is
// TEXT; the header row supplies the column names.
func (m *DB) importCSV(table, path string) error {
	rows, err := tables.ReadCSVFile(path, ',')
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("file %s has no header row", path)
	}

	columns := uniqueColumns(rows[0])
	if err := m.createTable(table, columns); err != nil {
		return err
	}
	if err := m.insertRows(table, columns, rows[1:]); err != nil {
		return err
	}

	m.columns[table] = columns
	return nil
}

// uniqueColumns cleans header names for use as SQLite identifiers and
// disambiguates duplicates.
func uniqueColumns(header []string) []string {
	seen := make(map[string]int)
	columns := make([]string, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if name == "" {
			name = fmt.Sprintf("column_%d", i+1)
		}
		seen[name]++
		if n := seen[name]; n > 1 {
			name = fmt.Sprintf("%s_%d", name, n)
		}
		columns[i] = name
	}
	return columns
}

func (m *DB) createTable(table string, columns []string) error {
	defs := make([]string, len(columns))
	for i, name := range columns {
		defs[i] = quoteIdent(name) + " TEXT"
	}
	stmt := fmt.Sprintf("CREATE TABLE %s (%s)", table, strings.Join(defs, ", "))
	if _, err := m.db.Exec(stmt); err != nil {
		return fmt.Errorf("failed to create table %s: %w", table, err)
	}
	return nil
}

func (m *DB) insertRows(table string, columns []string, rows [][]string) error {
	if len(rows) == 0 {
		return nil
	}

	tx, err := m.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin import: %w", err)
	}

	placeholders := strings.TrimRight(strings.Repeat("?,", len(columns)), ",")
	stmt, err := tx.Prepare(fmt.Sprintf("INSERT INTO %s VALUES (%s)", table, placeholders))
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, row := range rows {
		values := make([]any, len(columns))
		for i := range columns {
			if i < len(row) {
				values[i] = row[i]
			} else {
				values[i] = ""
			}
		}
		if _, err := stmt.Exec(values...); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert row: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit import: %w", err)
	}
	return nil
}

// quoteIdent quotes a column name as a SQLite identifier.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// Columns returns the column names of a staged table in CSV order.
func (m *DB) Columns(table string) []string {
	return m.columns[table]
}

// RowCount returns the number of staged rows in a table.
func (m *DB) RowCount(table string) (int, error) {
	var count int
	if err := m.db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count rows in %s: %w", table, err)
	}
	return count, nil
}

// Handle exposes the staging database for the external join step.
func (m *DB) Handle() *sql.DB {
	return m.db
}

// Close releases the staging database.
func (m *DB) Close() error {
	return m.db.Close()
}
