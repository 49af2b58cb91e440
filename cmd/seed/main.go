// Command seed loads a customer CSV dataset into Postgres. It creates the
// customers table and its indexes if they are missing, truncates any
// existing rows, and bulk-loads the file.
//
// Usage: seed -file dataset.csv
package main

import (
	"context"
	"database/sql"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/insight-dash/customer-insights-backend/internal/config"
	"github.com/insight-dash/customer-insights-backend/internal/db"
)

// schemaDDL declares the customer record store. Dates and hours stay TEXT:
// the dataset encodes them inconsistently and normalization is done at query
// time, not load time. Indexed columns mirror the filterable and
// trend-lookup fields.
const schemaDDL = `
CREATE TABLE IF NOT EXISTS customers (
	sequence_number  BIGINT PRIMARY KEY,
	location_name    TEXT,
	location_type    TEXT,
	login_date       TEXT,
	login_hour       TEXT,
	name             TEXT,
	age              BIGINT,
	gender           TEXT,
	email            TEXT,
	phone            TEXT,
	brand_device     TEXT,
	digital_interest TEXT
);
CREATE INDEX IF NOT EXISTS idx_customers_gender ON customers (gender);
CREATE INDEX IF NOT EXISTS idx_customers_location_type ON customers (location_type);
CREATE INDEX IF NOT EXISTS idx_customers_brand_device ON customers (brand_device);
CREATE INDEX IF NOT EXISTS idx_customers_digital_interest ON customers (digital_interest);
CREATE INDEX IF NOT EXISTS idx_customers_age ON customers (age);
CREATE INDEX IF NOT EXISTS idx_customers_login_date ON customers (login_date);
`

// headerColumns maps dataset CSV headers to store columns. The dataset has
// shipped with both "Login Date" and "Date" as the date header, so both are
// accepted.
var headerColumns = map[string]string{
	"Number":           "sequence_number",
	"Name of Location": "location_name",
	"Location Type":    "location_type",
	"Login Date":       "login_date",
	"Date":             "login_date",
	"Login Hour":       "login_hour",
	"Name":             "name",
	"Age":              "age",
	"gender":           "gender",
	"Gender":           "gender",
	"Email":            "email",
	"No Telp":          "phone",
	"Brand Device":     "brand_device",
	"Digital Interest": "digital_interest",
}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	file := flag.String("file", "", "path to the customer CSV dataset")
	flag.Parse()

	if *file == "" {
		logger.Error("missing required -file flag")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	database, err := db.New(db.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		logger.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.Close()

	logger.Info("connected to database")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	if _, err := database.ExecContext(ctx, schemaDDL); err != nil {
		logger.Error("failed to create schema", slog.String("error", err.Error()))
		os.Exit(1)
	}

	loaded, skipped, err := load(ctx, database.DB, *file, logger)
	if err != nil {
		logger.Error("failed to load dataset", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("dataset loaded",
		slog.String("file", *file),
		slog.Int("rows", loaded),
		slog.Int("skipped", skipped),
	)
}

// load streams the CSV into the customers table via COPY inside one
// transaction. Rows with a malformed sequence number are skipped and
// counted; a non-numeric age loads as NULL.
func load(ctx context.Context, database *sql.DB, path string, logger *slog.Logger) (int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to read CSV header: %w", err)
	}

	// Map CSV column positions to store columns; unmapped columns are
	// silently skipped.
	positions := map[string]int{}
	for i, h := range headers {
		if col, ok := headerColumns[strings.TrimSpace(h)]; ok {
			positions[col] = i
		}
	}
	if _, ok := positions["sequence_number"]; !ok {
		return 0, 0, fmt.Errorf("dataset has no Number column (headers: %v)", headers)
	}

	tx, err := database.BeginTx(ctx, nil)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `TRUNCATE customers`); err != nil {
		return 0, 0, fmt.Errorf("failed to truncate customers: %w", err)
	}

	columns := []string{
		"sequence_number", "location_name", "location_type", "login_date",
		"login_hour", "name", "age", "gender", "email", "phone",
		"brand_device", "digital_interest",
	}
	stmt, err := tx.PrepareContext(ctx, pq.CopyIn("customers", columns...))
	if err != nil {
		return 0, 0, fmt.Errorf("failed to prepare COPY: %w", err)
	}
	defer stmt.Close()

	cell := func(row []string, column string) string {
		i, ok := positions[column]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	loaded, skipped := 0, 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			skipped++
			continue
		}

		seq, err := strconv.ParseInt(cell(row, "sequence_number"), 10, 64)
		if err != nil {
			logger.Warn("skipping row with malformed sequence number",
				slog.String("value", cell(row, "sequence_number")),
			)
			skipped++
			continue
		}

		var age interface{}
		if v, err := strconv.ParseInt(cell(row, "age"), 10, 64); err == nil {
			age = v
		}

		_, err = stmt.ExecContext(ctx,
			seq,
			cell(row, "location_name"),
			cell(row, "location_type"),
			cell(row, "login_date"),
			cell(row, "login_hour"),
			cell(row, "name"),
			age,
			cell(row, "gender"),
			cell(row, "email"),
			cell(row, "phone"),
			cell(row, "brand_device"),
			cell(row, "digital_interest"),
		)
		if err != nil {
			return 0, 0, fmt.Errorf("failed to buffer row %d: %w", seq, err)
		}
		loaded++
	}

	// Flush the COPY buffer
	if _, err := stmt.ExecContext(ctx); err != nil {
		return 0, 0, fmt.Errorf("failed to flush COPY: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, 0, fmt.Errorf("failed to commit: %w", err)
	}

	return loaded, skipped, nil
}
