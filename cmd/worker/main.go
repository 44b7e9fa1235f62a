package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"clipops/internal/app/bootstrap"
)

// Worker process entrypoint.
// Data flow:
// 1) Load config.
// 2) Build app wiring.
// 3) Start the auto-approve sweeper and block until signalled.
func main() {
	log.Println("clipops worker starting")
	app, err := bootstrap.BuildWorker()
	if err != nil {
		log.Fatalf("bootstrap worker failed: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("clipops worker stopped with error: %v", err)
	}
}
