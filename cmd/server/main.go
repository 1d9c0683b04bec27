package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/R3D13N5/gestion-estudiantes/internal/config"
	"github.com/R3D13N5/gestion-estudiantes/internal/db"
	"github.com/R3D13N5/gestion-estudiantes/internal/logger"
	"github.com/R3D13N5/gestion-estudiantes/internal/server"
)

var migrateOnlyFlag = flag.Bool("migrate-only", false, "Run DB migrations and exit")

func main() {
	flag.Parse()
	_ = godotenv.Load()
	cfg := config.Load()
	slogger := logger.New(cfg.Env)

	dbConn, err := db.ConnectAndMigrate(slogger)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}
	if *migrateOnlyFlag {
		slogger.Info("migrations completed; exiting as requested")
		return
	}

	caps := db.DetectCapabilities(dbConn, slogger)
	handler := server.New(dbConn, caps, slogger)
	srv := &http.Server{Addr: ":" + cfg.Port, Handler: handler}

	go func() {
		slogger.Info("server listening", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slogger.Info("shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slogger.Error("error during shutdown", "error", err)
	}
	slogger.Info("server gracefully stopped")
}
