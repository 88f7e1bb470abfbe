package main

import (
	"context"
	"io"
	"log"
	"os"

	"loanerInventory/internal/config"
	"loanerInventory/internal/db"
	"loanerInventory/internal/logger"
	"loanerInventory/internal/menu"
	"loanerInventory/repository"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	var logOut io.Writer = os.Stderr
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("open log file: %v", err)
		}
		defer f.Close()
		logOut = f
	}
	logger.Initialize(cfg.Log.Level, cfg.Log.Format, logOut)
	logger.Info("configuration loaded", "config", cfg.String())

	// Open DB
	d, err := db.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer func() {
		if err := d.Close(); err != nil {
			logger.Error("close db", "error", err)
		}
	}()

	records := repository.NewLoanerRepository(d)

	m := menu.New(records, os.Stdin, os.Stdout)
	if err := m.Run(context.Background()); err != nil {
		logger.Error("menu stopped", "error", err)
	}
}
