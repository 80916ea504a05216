package main

import (
	"log"

	"todo-tracker/cmd/cli"
	authRepo "todo-tracker/internal/auth/repository"
	authUsecase "todo-tracker/internal/auth/usecase"
	taskRepo "todo-tracker/internal/task/repository"
	taskUsecase "todo-tracker/internal/task/usecase"
	"todo-tracker/pkg/config"
	"todo-tracker/pkg/database"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewSQLiteConnection(cfg)
	if err != nil {
		log.Fatal("Failed to open database: ", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Printf("[WARN] Failed to close database: %v", err)
		}
	}()

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewGormUserRepository(db)
	taskRepository := taskRepo.NewGormTaskRepository(db)

	// Initialize use cases
	auth := authUsecase.NewAuthUsecase(userRepository)
	tasks := taskUsecase.NewTaskUsecase(taskRepository)

	// Run the interactive console loop
	cli.New(auth, tasks).Run()
}
