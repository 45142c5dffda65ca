package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"

	"github.com/MKhiriev/go-tasklist/internal/logger"
	"github.com/MKhiriev/go-tasklist/models"
)

const organizationsTable = "organizations"

// psql renders squirrel statements with PostgreSQL $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// organizationRepository is the PostgreSQL-backed implementation of
// [OrganizationRepository]. Group and user lists live in JSONB columns.
type organizationRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewOrganizationRepository constructs an [OrganizationRepository] backed by
// the provided database connection and logger.
func NewOrganizationRepository(db *DB, logger *logger.Logger) OrganizationRepository {
	return &organizationRepository{
		db:     db,
		logger: logger,
	}
}

// ListOrganizations returns every stored organization ordered by name.
// Returns an empty slice when the table is empty.
func (r *organizationRepository) ListOrganizations(ctx context.Context) ([]models.Organization, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select(organizationColumns...).
		From(organizationsTable).
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "organizationRepository.ListOrganizations").Msg("failed to query organizations")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	orgs, err := scanOrganizations(rows)
	if err != nil {
		log.Err(err).Str("func", "organizationRepository.ListOrganizations").Msg("failed to scan organizations")
		return nil, err
	}

	return orgs, nil
}

// CreateOrganization inserts org and returns the row as stored.
//
// Returns [ErrOrganizationAlreadyExists] when the name is taken.
func (r *organizationRepository) CreateOrganization(ctx context.Context, org models.Organization) (models.Organization, error) {
	log := logger.FromContext(ctx)

	groups, err := encodeList(org.Groups)
	if err != nil {
		return models.Organization{}, err
	}
	users, err := encodeList(org.Users)
	if err != nil {
		return models.Organization{}, err
	}

	query, args, err := psql.Insert(organizationsTable).
		Columns(organizationColumns...).
		Values(org.Name, org.Active, org.Description, groups, users).
		Suffix("RETURNING name, active, description, group_names, user_names").
		ToSql()
	if err != nil {
		return models.Organization{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanOrganization(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).
			Str("func", "organizationRepository.CreateOrganization").
			Str("name", org.Name).
			Msg("failed to insert organization")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Organization{}, ErrOrganizationAlreadyExists
		}
		return models.Organization{}, err
	}

	return created, nil
}

// ActivateOrganization deactivates every other organization and activates
// the named one inside one transaction. At READ COMMITTED two concurrent
// activations of different organizations may both pass the deactivate step;
// the later one then violates the single active index and is run again, so
// it sees the committed activation and deactivates it.
//
// Returns [ErrOrganizationNotFound] when name is not stored; nothing is
// changed in that case.
func (r *organizationRepository) ActivateOrganization(ctx context.Context, name string) error {
	log := logger.FromContext(ctx)

	deactivate, deactivateArgs, err := psql.Update(organizationsTable).
		Set("active", false).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.And{sq.Eq{"active": true}, sq.NotEq{"name": name}}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	activate, activateArgs, err := psql.Update(organizationsTable).
		Set("active", true).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"name": name}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.inTxRetrying(ctx, isUniqueViolation, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, deactivate, deactivateArgs...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		res, err := tx.ExecContext(ctx, activate, activateArgs...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		return requireAffected(res)
	})
	if err != nil && !errors.Is(err, ErrOrganizationNotFound) {
		log.Err(err).
			Str("func", "organizationRepository.ActivateOrganization").
			Str("name", name).
			Msg("failed to activate organization")
	}

	return err
}

// UpdateOrganization overwrites name, description, groups and users of the
// organization stored under oldName. The active flag is only changed through
// [organizationRepository.ActivateOrganization].
//
// Returns [ErrOrganizationNotFound] when oldName is not stored and
// [ErrOrganizationAlreadyExists] when the new name is taken.
func (r *organizationRepository) UpdateOrganization(ctx context.Context, oldName string, org models.Organization) error {
	log := logger.FromContext(ctx)

	groups, err := encodeList(org.Groups)
	if err != nil {
		return err
	}
	users, err := encodeList(org.Users)
	if err != nil {
		return err
	}

	query, args, err := psql.Update(organizationsTable).
		Set("name", org.Name).
		Set("description", org.Description).
		Set("group_names", groups).
		Set("user_names", users).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"name": oldName}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "organizationRepository.UpdateOrganization").
			Str("old_name", oldName).
			Str("name", org.Name).
			Msg("failed to update organization")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return ErrOrganizationAlreadyExists
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return requireAffected(res)
}

// requireAffected turns a statement that touched no rows into
// [ErrOrganizationNotFound].
func requireAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrOrganizationNotFound
	}

	return nil
}
