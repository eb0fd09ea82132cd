package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/recordhub/recordhub/config"
	"github.com/recordhub/recordhub/internal/database/schema"
	"github.com/recordhub/recordhub/pkg/crypto"
)

// InitializeDatabase creates all necessary database tables if they don't exist
// and the root superuser when one is configured and missing.
func InitializeDatabase(db *sql.DB, root config.RootUserConfig) error {
	for _, query := range schema.TableDefinitions {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	if root.Username == "" || root.Password == "" {
		return nil
	}

	var exists bool
	err := db.QueryRow("SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)", root.Username).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check root user existence: %w", err)
	}
	if exists {
		return nil
	}

	hash, err := crypto.HashPassword(root.Password)
	if err != nil {
		return fmt.Errorf("failed to hash root password: %w", err)
	}

	query := `
		INSERT INTO users (id, username, email, password_hash, is_superuser, is_active, date_joined)
		VALUES ($1, $2, $3, $4, TRUE, TRUE, $5)
	`
	_, err = db.Exec(query,
		uuid.New().String(),
		root.Username,
		root.Email,
		hash,
		time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to create root user: %w", err)
	}

	return nil
}

// CleanDatabase drops all tables in reverse order
func CleanDatabase(db *sql.DB) error {
	for i := len(schema.TableNames) - 1; i >= 0; i-- {
		query := fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE", schema.TableNames[i])
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to drop table %s: %w", schema.TableNames[i], err)
		}
	}
	return nil
}
