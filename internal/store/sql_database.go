package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-tasklist/internal/logger"
	"github.com/MKhiriev/go-tasklist/migrations"
)

// maxTxAttempts bounds how many times a transaction classified as
// [Retryable] is run.
const maxTxAttempts = 3

// DB wraps a *sql.DB together with the migration dialect and the error
// classifier used to retry transient transaction failures.
type DB struct {
	*sql.DB
	dialect            migrations.Dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the embedded migrations of the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// inTx runs fn inside a transaction. When fn or the commit fails with an
// error the classifier reports as [Retryable], the whole transaction is run
// again, up to [maxTxAttempts] times.
func (db *DB) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	return db.inTxRetrying(ctx, nil, fn)
}

// inTxRetrying is [DB.inTx] that also runs the transaction again when retry
// reports the error as transient for this particular transaction.
func (db *DB) inTxRetrying(ctx context.Context, retry func(error) bool, fn func(tx *sql.Tx) error) error {
	var err error
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		err = db.runTx(ctx, fn)
		if err == nil || !db.retryable(err, retry) {
			return err
		}

		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "DB.inTx").
			Int("attempt", attempt).
			Msg("retrying transaction after transient error")
	}

	return err
}

func (db *DB) retryable(err error, retry func(error) bool) bool {
	if retry != nil && retry(err) {
		return true
	}
	return db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable
}

func (db *DB) runTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	if err = fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
