package main

import (
	"context"
	"log"

	"gorm.io/gorm"

	"tasker/internal/auth"
	"tasker/internal/config"
	"tasker/internal/db"
	"tasker/internal/errors"
	"tasker/internal/model"
	"tasker/internal/repository"
)

const (
	demoEmail    = "demo@example.com"
	demoPassword = "Demo1234!"
)

var demoTasks = []struct {
	name    string
	content string
}{
	{"groceries", "milk, eggs, bread"},
	{"deploy", "roll out the new build to staging"},
	{"reading", "finish chapter four"},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Task{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	userRepo := repository.NewUserRepository(gormDB)
	taskRepo := repository.NewTaskRepository(gormDB)
	ctx := context.Background()

	user, err := userRepo.FindByEmail(ctx, demoEmail)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("Failed to look up demo user: %v", err)
	}

	if user == nil {
		hashed, err := auth.HashPassword(demoPassword)
		if err != nil {
			log.Fatalf("Failed to hash demo password: %v", err)
		}
		user = &model.User{
			Name:         "Demo",
			Surname:      "User",
			Email:        demoEmail,
			IsActive:     true,
			PasswordHash: hashed,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			log.Fatalf("Failed to create demo user: %v", err)
		}
		log.Printf("Created demo user %s", demoEmail)
	} else {
		log.Printf("Demo user %s already exists", demoEmail)
	}

	existing, err := taskRepo.FindByOwner(ctx, user.ID)
	if err != nil {
		log.Fatalf("Failed to list demo tasks: %v", err)
	}
	if len(existing) > 0 {
		log.Printf("Demo user already has %d tasks, nothing to do", len(existing))
		return
	}

	for _, t := range demoTasks {
		task := &model.Task{
			UserID:  user.ID,
			Name:    t.name,
			Content: t.content,
		}
		if err := taskRepo.Create(ctx, task); err != nil {
			log.Fatalf("Failed to create task %q: %v", t.name, err)
		}
	}
	log.Printf("Seed completed: %d tasks created for %s", len(demoTasks), demoEmail)
}
