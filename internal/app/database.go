package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/event-scoring/internal/config"
	"github.com/riskibarqy/event-scoring/internal/platform/logging"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

const (
	dbMaxOpenConns    = 20
	dbMaxIdleConns    = 5
	dbConnMaxLifetime = 30 * time.Minute
	dbPingTimeout     = 5 * time.Second
)

// openDatabase opens a traced Postgres pool and verifies it is reachable.
func openDatabase(ctx context.Context, cfg config.Config, logger *logging.Logger) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.DBBinaryParameters)
	dbName := dbNameFromURL(dsn)

	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbName),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(dbMaxOpenConns)
	db.SetMaxIdleConns(dbMaxIdleConns)
	db.SetConnMaxLifetime(dbConnMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, dbPingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database %q: %w", dbName, err)
	}

	logger.Info("database connected", "db_name", dbName, "binary_parameters", cfg.DBBinaryParameters)
	return db, nil
}
