// Package schema holds the table definitions applied at startup.
package schema

// TableDefinitions contains all the SQL statements to create the database tables
// Don't put REFERENCES and don't put CHECK constraints in the CREATE TABLE statements
var TableDefinitions = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		username VARCHAR(150) UNIQUE NOT NULL,
		email VARCHAR(255) NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		first_name VARCHAR(150) NOT NULL DEFAULT '',
		last_name VARCHAR(150) NOT NULL DEFAULT '',
		is_superuser BOOLEAN NOT NULL DEFAULT FALSE,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		date_joined TIMESTAMP NOT NULL,
		last_login TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS tables (
		id UUID PRIMARY KEY,
		name VARCHAR(63) UNIQUE NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		fields JSONB NOT NULL DEFAULT '[]'::jsonb,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS verify_codes (
		id UUID PRIMARY KEY,
		user_id UUID UNIQUE NOT NULL,
		code VARCHAR(16) NOT NULL,
		created_at TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_users_email ON users(email)`,
}

// TableNames lists the tables in creation order
var TableNames = []string{
	"users",
	"tables",
	"verify_codes",
}
