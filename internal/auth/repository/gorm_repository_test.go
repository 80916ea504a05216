package repository

import (
	"errors"
	"path/filepath"
	"testing"

	authdomain "todo-tracker/internal/auth/domain"
	"todo-tracker/pkg/database"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a throwaway SQLite database with the real schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db") + "?_fk=1"
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func TestGormUserRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormUserRepository(db)

	user := &authdomain.User{Username: "alice", Password: HashPassword("pw1")}
	if err := repo.Create(user); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if user.ID == 0 {
		t.Error("expected a generated id after Create")
	}

	t.Run("duplicate username", func(t *testing.T) {
		dup := &authdomain.User{Username: "alice", Password: HashPassword("pw2")}
		err := repo.Create(dup)
		if !errors.Is(err, ErrUsernameTaken) {
			t.Errorf("expected ErrUsernameTaken, got %v", err)
		}
	})
}

func TestGormUserRepository_FindByUsername(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormUserRepository(db)

	user := &authdomain.User{Username: "alice", Password: HashPassword("pw1")}
	if err := repo.Create(user); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	t.Run("existing user", func(t *testing.T) {
		found, err := repo.FindByUsername("alice")
		if err != nil {
			t.Fatalf("FindByUsername() error = %v", err)
		}
		if found == nil || found.ID != user.ID {
			t.Fatalf("expected user %d, got %+v", user.ID, found)
		}
		if found.Password != HashPassword("pw1") {
			t.Error("stored password is not the expected digest")
		}
	})

	t.Run("absent user", func(t *testing.T) {
		found, err := repo.FindByUsername("nobody")
		if err != nil {
			t.Fatalf("FindByUsername() error = %v", err)
		}
		if found != nil {
			t.Errorf("expected nil for absent user, got %+v", found)
		}
	})
}

func TestGormUserRepository_Exists(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormUserRepository(db)

	if err := repo.Create(&authdomain.User{Username: "alice", Password: "x"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	ok, err := repo.Exists("alice")
	if err != nil || !ok {
		t.Errorf("Exists(alice) = %v, %v; want true, nil", ok, err)
	}

	ok, err = repo.Exists("bob")
	if err != nil || ok {
		t.Errorf("Exists(bob) = %v, %v; want false, nil", ok, err)
	}
}

func TestGormUserRepository_Delete_CascadesToTasks(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormUserRepository(db)

	user := &authdomain.User{Username: "alice", Password: "x"}
	if err := repo.Create(user); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	for i := 0; i < 3; i++ {
		err := db.Exec(
			"INSERT INTO tasks (owner_id, description, due_date, due_time, priority) VALUES (?, ?, ?, ?, ?)",
			user.ID, "task", "2026-03-14", "18:00", 3,
		).Error
		if err != nil {
			t.Fatalf("failed to seed task: %v", err)
		}
	}

	if err := repo.Delete(user.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	var count int64
	if err := db.Table("tasks").Where("owner_id = ?", user.ID).Count(&count).Error; err != nil {
		t.Fatalf("failed to count tasks: %v", err)
	}
	if count != 0 {
		t.Errorf("expected 0 tasks after owner deletion, got %d", count)
	}
}
