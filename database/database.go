package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"cropwatch/config"
	"cropwatch/models"

	_ "github.com/go-sql-driver/mysql"
)

// Database handles all database operations
type Database struct {
	db *sql.DB
}

// NewDatabase creates a new database connection
func NewDatabase(cfg *config.Config) (*Database, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&multiStatements=true",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Set connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	log.Printf("Database connected successfully to %s:%s/%s", cfg.DBHost, cfg.DBPort, cfg.DBName)

	return &Database{db: db}, nil
}

// NewWithConn wraps an existing connection. Used by tests.
func NewWithConn(db *sql.DB) *Database {
	return &Database{db: db}
}

// Close closes the database connection
func (d *Database) Close() error {
	return d.db.Close()
}

// Ping checks database connectivity for health reporting.
func (d *Database) Ping(ctx context.Context) error {
	return d.db.PingContext(ctx)
}

// CreateTables creates the schema if it doesn't exist. Engine output is stored
// as JSON columns; queries only ever filter on the scalar columns.
func (d *Database) CreateTables(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS farm_profiles (
			id VARCHAR(64) PRIMARY KEY,
			farmer_name VARCHAR(255) NOT NULL,
			location VARCHAR(255) NOT NULL DEFAULT '',
			crop_type VARCHAR(64) NOT NULL,
			field_size FLOAT NOT NULL DEFAULT 0,
			sowing_date TIMESTAMP NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS check_ins (
			id VARCHAR(64) PRIMARY KEY,
			farmer_id VARCHAR(64) NOT NULL,
			crop_type VARCHAR(64) NOT NULL,
			current_stage VARCHAR(64) NOT NULL DEFAULT '',
			ts TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			responses JSON,
			weather JSON,
			risk_score FLOAT NOT NULL,
			risk_level VARCHAR(16) NOT NULL,
			factors JSON,
			alerts JSON,
			recommendations JSON,
			suggestions TEXT,
			INDEX idx_check_ins_farmer (farmer_id, ts)
		)`,
		`CREATE TABLE IF NOT EXISTS weekly_records (
			id VARCHAR(64) PRIMARY KEY,
			farmer_id VARCHAR(64) NOT NULL,
			crop_type VARCHAR(64) NOT NULL,
			ts TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			rainfall FLOAT NOT NULL DEFAULT 0,
			irrigation VARCHAR(64) NOT NULL DEFAULT '',
			crop_condition VARCHAR(16) NOT NULL,
			pest_seen BOOLEAN NOT NULL DEFAULT FALSE,
			avg_temp FLOAT NOT NULL DEFAULT 0,
			notes TEXT,
			risk_score FLOAT NOT NULL,
			risk_level VARCHAR(16) NOT NULL,
			alerts JSON,
			actions JSON,
			INDEX idx_weekly_records_farmer (farmer_id, ts)
		)`,
	}
	for _, q := range queries {
		if _, err := d.db.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("failed to create tables: %w", err)
		}
	}
	return nil
}

// SaveFarmProfile inserts or updates a farm profile
func (d *Database) SaveFarmProfile(ctx context.Context, p *models.FarmProfile) error {
	query := `
		INSERT INTO farm_profiles (id, farmer_name, location, crop_type, field_size, sowing_date)
		VALUES (?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			farmer_name = VALUES(farmer_name),
			location = VALUES(location),
			crop_type = VALUES(crop_type),
			field_size = VALUES(field_size),
			sowing_date = VALUES(sowing_date)
	`

	_, err := d.db.ExecContext(ctx, query,
		p.ID, p.FarmerName, p.Location, p.CropType, p.FieldSize, p.SowingDate)
	if err != nil {
		return fmt.Errorf("failed to save farm profile: %w", err)
	}
	return nil
}

// GetFarmProfile retrieves a farm profile by id
func (d *Database) GetFarmProfile(ctx context.Context, id string) (*models.FarmProfile, error) {
	query := `
		SELECT id, farmer_name, location, crop_type, field_size, sowing_date
		FROM farm_profiles
		WHERE id = ?
	`

	var p models.FarmProfile
	var sowing sql.NullTime
	err := d.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.FarmerName, &p.Location, &p.CropType, &p.FieldSize, &sowing)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("farm profile %s not found", id)
		}
		return nil, fmt.Errorf("failed to get farm profile: %w", err)
	}
	if sowing.Valid {
		p.SowingDate = sowing.Time
	}
	return &p, nil
}

// SaveCheckIn stores a check-in together with its assessment
func (d *Database) SaveCheckIn(ctx context.Context, c *models.CheckIn) error {
	responses, err := json.Marshal(c.Responses)
	if err != nil {
		return fmt.Errorf("failed to marshal responses: %w", err)
	}
	weather, err := json.Marshal(c.Weather)
	if err != nil {
		return fmt.Errorf("failed to marshal weather: %w", err)
	}
	factors, err := json.Marshal(c.Factors)
	if err != nil {
		return fmt.Errorf("failed to marshal factors: %w", err)
	}
	alerts, err := json.Marshal(c.Alerts)
	if err != nil {
		return fmt.Errorf("failed to marshal alerts: %w", err)
	}
	recommendations, err := json.Marshal(c.Recommendations)
	if err != nil {
		return fmt.Errorf("failed to marshal recommendations: %w", err)
	}

	query := `
		INSERT INTO check_ins (id, farmer_id, crop_type, current_stage, ts, responses, weather,
			risk_score, risk_level, factors, alerts, recommendations, suggestions)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = d.db.ExecContext(ctx, query,
		c.ID, c.FarmerID, c.CropType, c.CurrentStage, c.Date, responses, weather,
		c.RiskScore, c.RiskLevel, factors, alerts, recommendations, c.Suggestions)
	if err != nil {
		return fmt.Errorf("failed to save check-in: %w", err)
	}
	return nil
}

// GetCheckInHistory retrieves up to limit past assessments for a farmer,
// oldest first, in the shape the trend analysis consumes.
func (d *Database) GetCheckInHistory(ctx context.Context, farmerID string, limit int) ([]models.AssessmentSnapshot, error) {
	query := `
		SELECT ts, risk_score, risk_level, factors
		FROM (
			SELECT ts, risk_score, risk_level, factors
			FROM check_ins
			WHERE farmer_id = ?
			ORDER BY ts DESC
			LIMIT ?
		) recent
		ORDER BY ts ASC
	`

	rows, err := d.db.QueryContext(ctx, query, farmerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query check-in history: %w", err)
	}
	defer rows.Close()

	var history []models.AssessmentSnapshot
	for rows.Next() {
		var snap models.AssessmentSnapshot
		var factors []byte
		if err := rows.Scan(&snap.Date, &snap.RiskScore, &snap.RiskLevel, &factors); err != nil {
			return nil, fmt.Errorf("failed to scan check-in history: %w", err)
		}
		if len(factors) > 0 {
			if err := json.Unmarshal(factors, &snap.Factors); err != nil {
				return nil, fmt.Errorf("failed to unmarshal factors: %w", err)
			}
		}
		history = append(history, snap)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating check-in history: %w", err)
	}

	return history, nil
}

// GetCheckIns retrieves up to limit full check-ins for a farmer, newest first
func (d *Database) GetCheckIns(ctx context.Context, farmerID string, limit int) ([]models.CheckIn, error) {
	query := `
		SELECT id, farmer_id, crop_type, current_stage, ts, responses, weather,
			risk_score, risk_level, factors, alerts, recommendations, suggestions
		FROM check_ins
		WHERE farmer_id = ?
		ORDER BY ts DESC
		LIMIT ?
	`

	rows, err := d.db.QueryContext(ctx, query, farmerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query check-ins: %w", err)
	}
	defer rows.Close()

	var checkIns []models.CheckIn
	for rows.Next() {
		var c models.CheckIn
		var responses, weather, factors, alerts, recommendations []byte
		var suggestions sql.NullString
		err := rows.Scan(
			&c.ID, &c.FarmerID, &c.CropType, &c.CurrentStage, &c.Date,
			&responses, &weather, &c.RiskScore, &c.RiskLevel,
			&factors, &alerts, &recommendations, &suggestions)
		if err != nil {
			return nil, fmt.Errorf("failed to scan check-in: %w", err)
		}
		if err := unmarshalColumns(map[string][]byte{
			"responses":       responses,
			"weather":         weather,
			"factors":         factors,
			"alerts":          alerts,
			"recommendations": recommendations,
		}, map[string]interface{}{
			"responses":       &c.Responses,
			"weather":         &c.Weather,
			"factors":         &c.Factors,
			"alerts":          &c.Alerts,
			"recommendations": &c.Recommendations,
		}); err != nil {
			return nil, err
		}
		c.Suggestions = suggestions.String
		checkIns = append(checkIns, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating check-ins: %w", err)
	}

	return checkIns, nil
}

// SaveWeeklyRecord stores a weekly field record together with its analysis
func (d *Database) SaveWeeklyRecord(ctx context.Context, r *models.WeeklyRecord) error {
	alerts, err := json.Marshal(r.Alerts)
	if err != nil {
		return fmt.Errorf("failed to marshal alerts: %w", err)
	}
	actions, err := json.Marshal(r.Actions)
	if err != nil {
		return fmt.Errorf("failed to marshal actions: %w", err)
	}

	query := `
		INSERT INTO weekly_records (id, farmer_id, crop_type, ts, rainfall, irrigation,
			crop_condition, pest_seen, avg_temp, notes, risk_score, risk_level, alerts, actions)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = d.db.ExecContext(ctx, query,
		r.ID, r.FarmerID, r.CropType, r.Date, r.Rainfall, r.Irrigation,
		r.CropCondition, r.PestSeen, r.AvgTemp, r.Notes, r.RiskScore, r.RiskLevel, alerts, actions)
	if err != nil {
		return fmt.Errorf("failed to save weekly record: %w", err)
	}
	return nil
}

// GetWeeklyRecords retrieves up to limit weekly records for a farmer, newest first
func (d *Database) GetWeeklyRecords(ctx context.Context, farmerID string, limit int) ([]models.WeeklyRecord, error) {
	query := `
		SELECT id, farmer_id, crop_type, ts, rainfall, irrigation, crop_condition,
			pest_seen, avg_temp, notes, risk_score, risk_level, alerts, actions
		FROM weekly_records
		WHERE farmer_id = ?
		ORDER BY ts DESC
		LIMIT ?
	`

	rows, err := d.db.QueryContext(ctx, query, farmerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query weekly records: %w", err)
	}
	defer rows.Close()

	var records []models.WeeklyRecord
	for rows.Next() {
		var r models.WeeklyRecord
		var alerts, actions []byte
		var notes sql.NullString
		err := rows.Scan(
			&r.ID, &r.FarmerID, &r.CropType, &r.Date, &r.Rainfall, &r.Irrigation,
			&r.CropCondition, &r.PestSeen, &r.AvgTemp, &notes,
			&r.RiskScore, &r.RiskLevel, &alerts, &actions)
		if err != nil {
			return nil, fmt.Errorf("failed to scan weekly record: %w", err)
		}
		if err := unmarshalColumns(map[string][]byte{
			"alerts":  alerts,
			"actions": actions,
		}, map[string]interface{}{
			"alerts":  &r.Alerts,
			"actions": &r.Actions,
		}); err != nil {
			return nil, err
		}
		r.Notes = notes.String
		records = append(records, r)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating weekly records: %w", err)
	}

	return records, nil
}

// unmarshalColumns decodes a set of JSON columns, skipping NULLs.
func unmarshalColumns(raw map[string][]byte, dest map[string]interface{}) error {
	for name, data := range raw {
		if len(data) == 0 || string(data) == "null" {
			continue
		}
		if err := json.Unmarshal(data, dest[name]); err != nil {
			return fmt.Errorf("failed to unmarshal %s: %w", name, err)
		}
	}
	return nil
}
