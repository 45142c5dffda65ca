package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrOrganizationAlreadyExists is returned when an insert or a rename
	// violates the unique organization name.
	ErrOrganizationAlreadyExists = errors.New("organization already exists")

	// ErrOrganizationNotFound is returned when an update or activation
	// addresses a name that is not stored.
	ErrOrganizationNotFound = errors.New("organization not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot render a statement.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single organization row fails.
	ErrScanningRow = errors.New("failed to scan organization row")

	// ErrScanningRows is returned when iterating over a result set fails
	// mid-way.
	ErrScanningRows = errors.New("failed to scan organization rows")

	// ErrEncodingList is returned when group or user lists cannot be
	// converted to or from their stored JSON form.
	ErrEncodingList = errors.New("failed to encode organization list column")
)
