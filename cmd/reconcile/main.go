// Command reconcile pairs a file of bank transactions with a file of
// document attachments and prints the resulting report as JSON.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"bankmatch/internal/domain"
	"bankmatch/internal/domain/matcher"
	"bankmatch/internal/infrastructure/config"
	"bankmatch/internal/infrastructure/logging"
	"bankmatch/internal/infrastructure/storage"
	"bankmatch/internal/reconciler"
)

func main() {
	var (
		configFile      = flag.String("config", "config.yaml", "Configuration file path")
		transactionFile = flag.String("transactions", "", "JSON file with the transaction list (required)")
		attachmentFile  = flag.String("attachments", "", "JSON file with the attachment list (required)")
		dryRun          = flag.Bool("dry-run", false, "Skip persisting the run")
		verbose         = flag.Bool("verbose", false, "Enable verbose logging")
	)
	flag.Parse()

	cfg := config.LoadOrEnvWithPath(*configFile)
	if *verbose {
		cfg.Observability.Logging.Level = "debug"
	}
	logger := logging.NewLoggerWithSystem(cfg.Observability.Logging, "reconcile")

	if *transactionFile == "" || *attachmentFile == "" {
		fmt.Fprintln(os.Stderr, "both -transactions and -attachments are required")
		flag.Usage()
		os.Exit(2)
	}

	var transactions []domain.Transaction
	if err := readJSONFile(*transactionFile, &transactions); err != nil {
		logger.Error("failed to load transactions", "path", *transactionFile, "error", err)
		os.Exit(1)
	}

	var attachments []*domain.Attachment
	if err := readJSONFile(*attachmentFile, &attachments); err != nil {
		logger.Error("failed to load attachments", "path", *attachmentFile, "error", err)
		os.Exit(1)
	}

	started := time.Now().UTC()
	r := reconciler.New(matcher.NewMatcher(cfg.Matching.MatcherConfig()))
	report := r.Reconcile(transactions, attachments)

	logger.Info("reconciliation complete",
		slog.Int("transactions", report.Summary.TotalTransactions),
		slog.Int("attachments", report.Summary.TotalAttachments),
		slog.Int("matched", report.Summary.MatchedTransactions),
		slog.Int("unmatched", report.Summary.UnmatchedTransactions),
	)

	if !*dryRun {
		store, err := storage.NewStorage(cfg.Storage.DatabasePath)
		if err != nil {
			logger.Error("failed to initialize storage", "error", err)
			os.Exit(1)
		}
		defer store.Close()

		run, outcomes := storage.NewRunFromReport(report, started, false)
		if err := store.SaveRun(run, outcomes); err != nil {
			logger.Error("failed to persist run", "error", err)
			os.Exit(1)
		}
		logger.Info("run persisted", slog.String("run_id", run.ID))
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		logger.Error("failed to write report", "error", err)
		os.Exit(1)
	}
}

func readJSONFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
