package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// Open connects to MySQL and verifies the connection.
func Open(user, pass, host, port, name string) (*sql.DB, error) {
	auth := user
	if pass != "" {
		auth = fmt.Sprintf("%s:%s", user, pass)
	}
	// parseTime=true -> DATETIME -> time.Time | loc=UTC keeps times consistent
	dsn := fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		auth, host, port, name)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	return db, nil
}

// EnsureSchema creates the application tables when they do not exist yet.
// The service owns its schema; there is no separate migration step for a
// deployment this small.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS reservations (
			id                BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
			reservation_id    VARCHAR(32)  NOT NULL,
			first_name        VARCHAR(191) NOT NULL,
			last_name         VARCHAR(191) NOT NULL,
			address           VARCHAR(191) NOT NULL,
			town              VARCHAR(191) NOT NULL,
			email             VARCHAR(191) NOT NULL,
			number_of_people  INT          NOT NULL,
			additional_people JSON         NOT NULL,
			pass_2_days       TINYINT(1)   NOT NULL DEFAULT 0,
			days_selection    VARCHAR(32)  NOT NULL DEFAULT '',
			day_records       JSON         NOT NULL,
			total_price       DECIMAL(10,2) NOT NULL,
			status            ENUM('pending','paid','deleted') NOT NULL DEFAULT 'pending',
			is_invited        TINYINT(1)   NOT NULL DEFAULT 0,
			created_at        DATETIME     NOT NULL,
			PRIMARY KEY (id),
			UNIQUE KEY uk_reservation_id (reservation_id),
			KEY idx_created_at (created_at)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
		`CREATE TABLE IF NOT EXISTS failed_notifications (
			id          VARCHAR(36)  NOT NULL,
			payload     JSON         NOT NULL,
			attempts    INT          NOT NULL,
			last_error  TEXT         NOT NULL,
			created_at  DATETIME     NOT NULL,
			PRIMARY KEY (id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	}
	for _, q := range stmts {
		if _, err := db.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
