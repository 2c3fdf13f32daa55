package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"rejectmonitor/internal/config"
	"rejectmonitor/internal/jobs"
	"rejectmonitor/internal/metrics"
	"rejectmonitor/internal/render"
	"rejectmonitor/internal/server"
	"rejectmonitor/internal/store"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: failed to load .env file: %v", err)
	}
	cfg := config.Load()

	processes, err := config.LoadProcesses(cfg.ProcessesFile)
	if err != nil {
		log.Fatalf("Failed to load process list: %v", err)
	}
	log.Printf("Loaded %d processes", len(processes))

	// Initialize the data file; an existing file is kept as is
	rejects := store.New(cfg.DataFile)
	created, err := rejects.InitIfAbsent(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize data file: %v", err)
	}
	if created {
		log.Printf("Created %s", cfg.DataFile)
	}

	metrics.Init(rejects)

	// Start background integrity checks
	jobCtx, cancelJobs := context.WithCancel(ctx)
	defer cancelJobs()
	checker := jobs.NewIntegrityChecker(rejects, time.Duration(cfg.IntegrityCheckMinutes)*time.Minute)
	go checker.Start(jobCtx)

	srv := server.New(cfg)
	srv.RegisterRoutes(rejects, render.New(cfg.ChartPath), processes)

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	cancelJobs()
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
