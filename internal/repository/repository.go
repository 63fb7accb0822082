package repository

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/finwell/finance-service/internal/models"
)

// ErrSnapshotNotFound is returned when a user has no stored snapshot yet.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// Repository provides database operations
type Repository struct {
	db *sql.DB
}

// NewRepository initializes a new repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// CreateUser creates a new user in the database
func (r *Repository) CreateUser(user *models.User) error {
	query := `
		INSERT INTO finance.users (username, email, password_hash, report_email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(query, user.Username, user.Email, user.PasswordHash, user.ReportEmail).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindUserByEmail retrieves a user by email
func (r *Repository) FindUserByEmail(email string) (*models.User, error) {
	user := &models.User{}
	query := `
		SELECT id, username, email, password_hash, report_email, created_at, updated_at
		FROM finance.users
		WHERE email = $1`
	err := r.db.QueryRow(query, email).
		Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.ReportEmail, &user.CreatedAt, &user.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("user not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// UpsertSnapshot stores the encrypted snapshot payload and its integrity
// tag for a user, replacing any previous snapshot
func (r *Repository) UpsertSnapshot(userID int64, payload, tag string) error {
	query := `
		INSERT INTO finance.snapshots (user_id, payload, hmac, created_at, updated_at)
		VALUES ($1, $2, $3, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		ON CONFLICT (user_id)
		DO UPDATE SET payload = $2, hmac = $3, updated_at = CURRENT_TIMESTAMP`
	if _, err := r.db.Exec(query, userID, payload, tag); err != nil {
		return fmt.Errorf("failed to store snapshot: %w", err)
	}
	return nil
}

// GetSnapshot retrieves the encrypted snapshot payload and tag for a user
func (r *Repository) GetSnapshot(userID int64) (payload, tag string, err error) {
	query := `
		SELECT payload, hmac
		FROM finance.snapshots
		WHERE user_id = $1`
	err = r.db.QueryRow(query, userID).Scan(&payload, &tag)
	if err == sql.ErrNoRows {
		return "", "", ErrSnapshotNotFound
	}
	if err != nil {
		return "", "", fmt.Errorf("failed to get snapshot: %w", err)
	}
	return payload, tag, nil
}

// CreateScenario stores a named simulation parameter set for a user
func (r *Repository) CreateScenario(scenario *models.Scenario) error {
	params, err := json.Marshal(scenario.Parameters)
	if err != nil {
		return fmt.Errorf("failed to encode parameters: %w", err)
	}
	query := `
		INSERT INTO finance.scenarios (user_id, name, parameters, created_at, updated_at)
		VALUES ($1, $2, $3, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING id, created_at, updated_at`
	err = r.db.QueryRow(query, scenario.UserID, scenario.Parameters.Name, params).
		Scan(&scenario.ID, &scenario.CreatedAt, &scenario.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create scenario: %w", err)
	}
	return nil
}

// ListScenarios retrieves a user's saved simulation parameter sets
func (r *Repository) ListScenarios(userID int64) ([]models.Scenario, error) {
	query := `
		SELECT id, user_id, parameters, created_at, updated_at
		FROM finance.scenarios
		WHERE user_id = $1
		ORDER BY created_at`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list scenarios: %w", err)
	}
	defer rows.Close()

	scenarios := []models.Scenario{}
	for rows.Next() {
		var sc models.Scenario
		var params []byte
		if err := rows.Scan(&sc.ID, &sc.UserID, &params, &sc.CreatedAt, &sc.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan scenario: %w", err)
		}
		if err := json.Unmarshal(params, &sc.Parameters); err != nil {
			return nil, fmt.Errorf("failed to decode parameters: %w", err)
		}
		scenarios = append(scenarios, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read scenarios: %w", err)
	}
	return scenarios, nil
}

// ListReportRecipients retrieves users who opted into emailed reports
func (r *Repository) ListReportRecipients() ([]models.User, error) {
	query := `
		SELECT id, username, email
		FROM finance.users
		WHERE report_email = TRUE`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list report recipients: %w", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read users: %w", err)
	}
	return users, nil
}
