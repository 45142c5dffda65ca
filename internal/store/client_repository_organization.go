// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-tasklist/internal/logger"
	"github.com/MKhiriev/go-tasklist/models"
)

const snapshotTable = "organization_snapshot"

// snapshotRepository is the SQLite implementation of
// [OrganizationSnapshotRepository]. Rows keep the position the organization
// had in the list the server returned.
type snapshotRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewOrganizationSnapshotRepository constructs an
// [OrganizationSnapshotRepository] on top of a SQLite connection.
func NewOrganizationSnapshotRepository(db *DB, logger *logger.Logger) OrganizationSnapshotRepository {
	return &snapshotRepository{
		db:     db,
		logger: logger,
	}
}

func (r *snapshotRepository) LoadOrganizations(ctx context.Context) ([]models.Organization, error) {
	query, args, err := sq.Select(organizationColumns...).
		From(snapshotTable).
		OrderBy("position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "snapshotRepository.LoadOrganizations").Msg("failed to query snapshot")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanOrganizations(rows)
}

func (r *snapshotRepository) ReplaceOrganizations(ctx context.Context, items []models.Organization) error {
	wipe, wipeArgs, err := sq.Delete(snapshotTable).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var insert string
	var insertArgs []any
	if len(items) > 0 {
		builder := sq.Insert(snapshotTable).Columns(append([]string{"position"}, organizationColumns...)...)
		for i, org := range items {
			groups, err := encodeList(org.Groups)
			if err != nil {
				return err
			}
			users, err := encodeList(org.Users)
			if err != nil {
				return err
			}
			builder = builder.Values(i, org.Name, org.Active, org.Description, groups, users)
		}

		if insert, insertArgs, err = builder.ToSql(); err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
	}

	err = r.db.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, wipe, wipeArgs...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if insert == "" {
			return nil
		}
		if _, err := tx.ExecContext(ctx, insert, insertArgs...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
	if err != nil {
		r.logger.Err(err).
			Str("func", "snapshotRepository.ReplaceOrganizations").
			Int("count", len(items)).
			Msg("failed to replace snapshot")
	}

	return err
}
