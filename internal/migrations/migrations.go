// Package migrations applies the portal schema at startup.  Statements are
// embedded and idempotent (CREATE TABLE IF NOT EXISTS), so running them on
// every boot is safe and keeps a fresh database usable without external
// tooling.
package migrations

import (
	"context"
	"database/sql"
	"fmt"
)

var statements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		email VARCHAR(255) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		role VARCHAR(16) NOT NULL DEFAULT 'CLIENT',
		is_active TINYINT(1) NOT NULL DEFAULT 1,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	) ENGINE=InnoDB`,

	`CREATE TABLE IF NOT EXISTS user_roles (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		user_id BIGINT UNSIGNED NOT NULL,
		role VARCHAR(32) NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE KEY uq_user_roles (user_id, role),
		CONSTRAINT fk_user_roles_user FOREIGN KEY (user_id) REFERENCES users(id)
	) ENGINE=InnoDB`,

	`CREATE TABLE IF NOT EXISTS refresh_tokens (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		user_id BIGINT UNSIGNED NOT NULL,
		token_hash CHAR(64) NOT NULL UNIQUE,
		expires_at DATETIME NOT NULL,
		revoked_at DATETIME NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		CONSTRAINT fk_refresh_tokens_user FOREIGN KEY (user_id) REFERENCES users(id)
	) ENGINE=InnoDB`,

	`CREATE TABLE IF NOT EXISTS profiles (
		id BIGINT UNSIGNED PRIMARY KEY,
		full_name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL,
		phone VARCHAR(32) NULL,
		avatar_url VARCHAR(512) NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		CONSTRAINT fk_profiles_user FOREIGN KEY (id) REFERENCES users(id)
	) ENGINE=InnoDB`,

	// One subscription per user: the UNIQUE key is the enforcement
	// mechanism, not application-level convention.
	`CREATE TABLE IF NOT EXISTS subscriptions (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		user_id BIGINT UNSIGNED NOT NULL UNIQUE,
		plan VARCHAR(32) NOT NULL DEFAULT 'Personal',
		status VARCHAR(16) NOT NULL DEFAULT 'trial',
		price DECIMAL(10,2) NOT NULL DEFAULT 0,
		hours_included DECIMAL(8,2) NOT NULL DEFAULT 0,
		hours_used DECIMAL(8,2) NOT NULL DEFAULT 0,
		billing_cycle VARCHAR(16) NOT NULL DEFAULT 'monthly',
		next_billing_date DATETIME NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		CONSTRAINT fk_subscriptions_user FOREIGN KEY (user_id) REFERENCES users(id)
	) ENGINE=InnoDB`,

	`CREATE TABLE IF NOT EXISTS staff (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		user_id BIGINT UNSIGNED NULL,
		full_name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL UNIQUE,
		phone VARCHAR(32) NULL,
		role VARCHAR(32) NOT NULL DEFAULT 'VA',
		specialization VARCHAR(255) NULL,
		status VARCHAR(16) NOT NULL DEFAULT 'available',
		hourly_rate DECIMAL(8,2) NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		CONSTRAINT fk_staff_user FOREIGN KEY (user_id) REFERENCES users(id)
	) ENGINE=InnoDB`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		client_id BIGINT UNSIGNED NOT NULL,
		title VARCHAR(255) NOT NULL,
		description TEXT NOT NULL,
		priority VARCHAR(16) NOT NULL DEFAULT 'medium',
		status VARCHAR(16) NOT NULL DEFAULT 'pending',
		due_date DATETIME NULL,
		hours_estimated DECIMAL(8,2) NULL,
		hours_actual DECIMAL(8,2) NULL,
		assigned_staff_id BIGINT UNSIGNED NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		KEY idx_tasks_client (client_id),
		KEY idx_tasks_staff (assigned_staff_id),
		CONSTRAINT fk_tasks_client FOREIGN KEY (client_id) REFERENCES users(id),
		CONSTRAINT fk_tasks_staff FOREIGN KEY (assigned_staff_id) REFERENCES staff(id)
	) ENGINE=InnoDB`,

	`CREATE TABLE IF NOT EXISTS staff_assignments (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		staff_id BIGINT UNSIGNED NOT NULL,
		client_id BIGINT UNSIGNED NOT NULL,
		status VARCHAR(16) NOT NULL DEFAULT 'active',
		notes TEXT NULL,
		assigned_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		KEY idx_assignments_staff (staff_id),
		KEY idx_assignments_client (client_id),
		CONSTRAINT fk_assignments_staff FOREIGN KEY (staff_id) REFERENCES staff(id),
		CONSTRAINT fk_assignments_client FOREIGN KEY (client_id) REFERENCES users(id)
	) ENGINE=InnoDB`,

	`CREATE TABLE IF NOT EXISTS service_history (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		user_id BIGINT UNSIGNED NOT NULL,
		service_name VARCHAR(255) NOT NULL,
		description TEXT NULL,
		hours_used DECIMAL(8,2) NOT NULL DEFAULT 0,
		date DATETIME NOT NULL,
		status VARCHAR(16) NOT NULL DEFAULT 'completed',
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		KEY idx_history_user (user_id),
		CONSTRAINT fk_history_user FOREIGN KEY (user_id) REFERENCES users(id)
	) ENGINE=InnoDB`,

	`CREATE TABLE IF NOT EXISTS contact_submissions (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		email VARCHAR(255) NOT NULL,
		phone VARCHAR(20) NULL,
		message VARCHAR(1000) NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	) ENGINE=InnoDB`,

	`CREATE TABLE IF NOT EXISTS processed_events (
		event_id CHAR(36) PRIMARY KEY,
		processed_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	) ENGINE=InnoDB`,
}

// Apply runs every schema statement in order.  It stops at the first
// failure so a broken schema never half-applies silently.
func Apply(ctx context.Context, db *sql.DB) error {
	for i, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
