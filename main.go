package main

import (
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/Gubevu07/DUT-Face-Recognition-G12/cliparse"
	"github.com/Gubevu07/DUT-Face-Recognition-G12/db"
	"github.com/Gubevu07/DUT-Face-Recognition-G12/mailer"
	"github.com/Gubevu07/DUT-Face-Recognition-G12/router"
)

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to the configured backend
	driver := "postgres"
	if cfg.DatabaseType == "sqlite" {
		driver = "sqlite"
	}
	dbConn, err := sql.Open(driver, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	if cfg.EnforceUniqueResponse {
		if err := db.EnsureUniqueResponseIndex(dbConn); err != nil {
			slog.Error("unique response index failed", "error", err)
			os.Exit(1)
		}
	}
	slog.Info("Database schema ready")

	// Outbound mail
	m := mailer.NewSMTPMailer(dbConn, cfg)
	if cfg.SMTPHost == "" {
		slog.Warn("SMTP not configured; outbound email will fail and be logged")
	}

	// Create router
	handler := router.NewRouter(dbConn, m, cfg)

	// Create server
	server := http.Server{
		Handler: handler,
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
