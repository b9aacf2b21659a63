// Package postgres opens the read and write sqlx pools and runs transactions on the
// write side.
package postgres

//nolint:revive
import (
	"context"
	"database/sql"
	"errors"
	"estate/config"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	maxIdleConnections = 10
	maxOpenConnections = 10
	connMaxLifetime    = 30 * time.Minute
)

type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

// New connects both pools and exits the process when either stays unreachable after the
// configured retries.
func New(cfg *config.Config) *Connection {
	pg := cfg.DB.Postgres
	wait := time.Duration(pg.RetryWaitTime) * time.Second

	write, err := Open("write", pg.Write.URL(pg.Prefix, nil), pg.MaxRetry, wait)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to the write database")
	}

	read, err := Open("read", pg.Read.URL(pg.Prefix, nil), pg.MaxRetry, wait)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to the read database")
	}

	return &Connection{Read: read, Write: write}
}

// Open connects to dsn, trying up to attempts times with wait between tries.
func Open(name, dsn string, attempts int, wait time.Duration) (*sqlx.DB, error) {
	return open(name, dsn, attempts, wait, func(dsn string) (*sqlx.DB, error) {
		return sqlx.Connect("postgres", dsn)
	})
}

func open(name, dsn string, attempts int, wait time.Duration, connect func(string) (*sqlx.DB, error)) (*sqlx.DB, error) {
	if attempts < 1 {
		attempts = 1
	}

	var err error

	for attempt := 1; attempt <= attempts; attempt++ {
		var db *sqlx.DB

		db, err = connect(dsn)
		if err == nil {
			db.SetMaxIdleConns(maxIdleConnections)
			db.SetMaxOpenConns(maxOpenConnections)
			db.SetConnMaxLifetime(connMaxLifetime)

			log.Info().Str("name", name).Int("attempt", attempt).Msg("Connected to database")

			return db, nil
		}

		log.Error().Err(err).Str("name", name).Int("attempt", attempt).Msg("Failed connecting to database")

		if attempt < attempts {
			time.Sleep(wait)
		}
	}

	return nil, fmt.Errorf("connecting to %s database after %d attempts: %w", name, attempts, err)
}

// WithTransaction begins a transaction on the write pool and hands it to fn. The
// transaction commits when fn returns nil and rolls back on an error or a panic. The
// error returned by fn is passed through untouched so typed failures survive.
func (c *Connection) WithTransaction(ctx context.Context, fn func(tx *sqlx.Tx) error) (err error) {
	tx, err := c.Write.BeginTxx(ctx, nil)
	if err != nil {
		log.Error().Err(err).Msg("failed to begin transaction")

		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()

			panic(p)
		}
	}()

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			log.Error().Err(rbErr).Msg("failed to rollback transaction")
		}

		return err //nolint:wrapcheck
	}

	if err = tx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit transaction")

		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// Ping checks both pools.
func (c *Connection) Ping(ctx context.Context) error {
	if err := c.Write.PingContext(ctx); err != nil {
		return fmt.Errorf("write pool: %w", err)
	}

	if err := c.Read.PingContext(ctx); err != nil {
		return fmt.Errorf("read pool: %w", err)
	}

	return nil
}

// Close releases both pools. Read and Write may share one handle.
func (c *Connection) Close() {
	if c.Write != nil {
		if err := c.Write.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close write connection")
		}
	}

	if c.Read != nil && c.Read != c.Write {
		if err := c.Read.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close read connection")
		}
	}
}
