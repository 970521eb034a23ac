package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/coderanik/Alumni-Connect/internal/infrastructure/database"
	queueAdapter "github.com/coderanik/Alumni-Connect/internal/infrastructure/queue/adapter"
	"github.com/coderanik/Alumni-Connect/internal/pkg/events/application/task"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}

	connectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pool, err := database.NewPoolFromEnv(connectCtx)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer pool.Close()

	srv, err := queueAdapter.NewAsynqServer()
	if err != nil {
		log.Fatalf("failed to create queue server: %v", err)
	}

	task.RegisterEventReminderTask(srv, pool)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Println("worker started")
	if err := srv.Run(ctx); err != nil {
		log.Fatalf("worker stopped: %v", err)
	}
}
