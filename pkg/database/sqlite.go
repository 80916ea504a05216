package database

import (
	"fmt"
	"strings"

	"todo-tracker/pkg/config"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewSQLiteConnection opens the database file and ensures the schema exists.
// The handle is owned by the caller for the lifetime of the process.
func NewSQLiteConnection(cfg *config.Config) (*gorm.DB, error) {
	logLevel := logger.Silent
	if cfg.DBDebug {
		logLevel = logger.Info
	}

	db, err := gorm.Open(sqlite.Open(dsn(cfg.DBPath)), &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", cfg.DBPath, err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// dsn appends the flag that turns on SQLite foreign-key enforcement, which
// the owner-deletion cascade on tasks depends on.
func dsn(path string) string {
	if strings.Contains(path, "?") {
		return path + "&_fk=1"
	}
	return path + "?_fk=1"
}

// Migrate creates the tables if they don't exist. The schema is declared
// explicitly rather than through AutoMigrate so the cross-table cascade and
// the username uniqueness live in the storage layer itself.
func Migrate(db *gorm.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT NOT NULL,
			password TEXT NOT NULL
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_users_username ON users(username)`,
		`CREATE TABLE IF NOT EXISTS tasks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			owner_id INTEGER NOT NULL,
			description TEXT NOT NULL,
			due_date TEXT NOT NULL,
			due_time TEXT NOT NULL,
			priority INTEGER NOT NULL,
			status TEXT NOT NULL DEFAULT 'Pending',
			FOREIGN KEY (owner_id) REFERENCES users(id) ON DELETE CASCADE ON UPDATE CASCADE
		)`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_owner_id ON tasks(owner_id)`,
	}

	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
	}
	return nil
}

// Close releases the underlying connection on the normal exit path.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
