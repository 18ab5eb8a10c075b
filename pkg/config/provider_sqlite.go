package config

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS simulations (
	id             INTEGER PRIMARY KEY AUTOINCREMENT,
	name           TEXT NOT NULL UNIQUE,
	time_units     TEXT,
	start_datetime TEXT,
	steady_state   INTEGER,
	namefile       TEXT,
	reference_file TEXT,
	created_at     TEXT NOT NULL DEFAULT (datetime('now')),
	updated_at     TEXT NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS stress_periods (
	simulation_id INTEGER NOT NULL REFERENCES simulations(id) ON DELETE CASCADE,
	kper          INTEGER NOT NULL,
	perlen        REAL NOT NULL,
	nstp          INTEGER NOT NULL DEFAULT 1,
	tsmult        REAL NOT NULL DEFAULT 1.0,
	steady_state  INTEGER,
	PRIMARY KEY (simulation_id, kper)
);
`

// DefaultSimulation is the simulation name used when none is given
const DefaultSimulation = "default"

// SQLiteProvider implements ConfigProvider for SQLite database configuration
type SQLiteProvider struct {
	db     *sql.DB
	dbPath string
	name   string
}

// NewSQLiteProvider creates a new SQLite configuration provider for the
// simulation called name.
func NewSQLiteProvider(dbPath, name string) (*SQLiteProvider, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping SQLite database: %w", err)
	}

	if name == "" {
		name = DefaultSimulation
	}

	return &SQLiteProvider{
		db:     db,
		dbPath: dbPath,
		name:   name,
	}, nil
}

// InitSchema creates the configuration tables if they do not exist
func (s *SQLiteProvider) InitSchema() error {
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// LoadConfig loads the complete configuration from SQLite database
func (s *SQLiteProvider) LoadConfig() (*ConfigData, error) {
	config := &ConfigData{Name: s.name}

	var timeUnits, startDateTime, namefile, referenceFile sql.NullString
	var steadyState sql.NullBool

	err := s.db.QueryRow(`
		SELECT time_units, start_datetime, steady_state, namefile, reference_file
		FROM simulations
		WHERE name = ?
	`, s.name).Scan(&timeUnits, &startDateTime, &steadyState, &namefile, &referenceFile)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("no simulation named %q", s.name)
		}
		return nil, fmt.Errorf("failed to query simulation: %w", err)
	}

	config.TimeUnits = timeUnits.String
	config.StartDateTime = startDateTime.String
	config.Namefile = namefile.String
	config.ReferenceFile = referenceFile.String
	config.SteadyState = boolPtr(steadyState)

	periods, err := s.GetPeriods()
	if err != nil {
		return nil, fmt.Errorf("failed to load periods: %w", err)
	}
	config.Periods = periods

	return config, nil
}

// GetPeriods returns the stress periods of the simulation in period order
func (s *SQLiteProvider) GetPeriods() ([]PeriodData, error) {
	query := `
		SELECT p.perlen, p.nstp, p.tsmult, p.steady_state
		FROM stress_periods p
		JOIN simulations sim ON sim.id = p.simulation_id
		WHERE sim.name = ?
		ORDER BY p.kper
	`

	rows, err := s.db.Query(query, s.name)
	if err != nil {
		return nil, fmt.Errorf("failed to query stress periods: %w", err)
	}
	defer rows.Close()

	periods := []PeriodData{}
	for rows.Next() {
		var period PeriodData
		var steadyState sql.NullBool

		if err := rows.Scan(&period.Perlen, &period.Nstp, &period.Tsmult, &steadyState); err != nil {
			return nil, fmt.Errorf("failed to scan stress period row: %w", err)
		}
		period.SteadyState = boolPtr(steadyState)

		periods = append(periods, period)
	}

	return periods, rows.Err()
}

// IsReadOnly returns false since SQLite configuration can be modified
func (s *SQLiteProvider) IsReadOnly() bool {
	return false
}

// Close closes the database connection
func (s *SQLiteProvider) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveConfig stores configData under the provider's simulation name,
// replacing any stress periods saved before.
func (s *SQLiteProvider) SaveConfig(configData *ConfigData) error {
	// Start transaction
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	simID, err := s.upsertSimulation(tx, configData)
	if err != nil {
		return fmt.Errorf("failed to save simulation: %w", err)
	}

	if _, err := tx.Exec("DELETE FROM stress_periods WHERE simulation_id = ?", simID); err != nil {
		return fmt.Errorf("failed to clear stress periods: %w", err)
	}

	for kper, period := range configData.Periods {
		_, err := tx.Exec(`
			INSERT INTO stress_periods (simulation_id, kper, perlen, nstp, tsmult, steady_state)
			VALUES (?, ?, ?, ?, ?, ?)
		`, simID, kper, period.Perlen, period.Nstp, period.Tsmult, nullBool(period.SteadyState))
		if err != nil {
			return fmt.Errorf("failed to insert stress period %d: %w", kper, err)
		}
	}

	// Commit transaction
	return tx.Commit()
}

func (s *SQLiteProvider) upsertSimulation(tx *sql.Tx, c *ConfigData) (int64, error) {
	_, err := tx.Exec(`
		INSERT INTO simulations (name, time_units, start_datetime, steady_state, namefile, reference_file)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			time_units = excluded.time_units,
			start_datetime = excluded.start_datetime,
			steady_state = excluded.steady_state,
			namefile = excluded.namefile,
			reference_file = excluded.reference_file,
			updated_at = datetime('now')
	`, s.name, nullString(c.TimeUnits), nullString(c.StartDateTime), nullBool(c.SteadyState),
		nullString(c.Namefile), nullString(c.ReferenceFile))
	if err != nil {
		return 0, err
	}

	var id int64
	if err := tx.QueryRow("SELECT id FROM simulations WHERE name = ?", s.name).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// Helper functions for handling nullable fields
func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullBool(b *bool) sql.NullBool {
	if b == nil {
		return sql.NullBool{Valid: false}
	}
	return sql.NullBool{Bool: *b, Valid: true}
}

func boolPtr(b sql.NullBool) *bool {
	if !b.Valid {
		return nil
	}
	v := b.Bool
	return &v
}
