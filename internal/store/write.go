package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/roach88/staffroll/internal/roster"
)

const insertEmployeeSQL = `
	INSERT INTO employees (Employee_ID, Name, Department, Salary, Date_of_Joining)
	VALUES (?, ?, ?, ?, ?)
`

const deleteEmployeeSQL = `
	DELETE FROM employees WHERE Employee_ID = ? AND Name = ?
`

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Insert appends a new record.
//
// Returns an error wrapping roster.ErrDuplicateKey if e.ID is already stored;
// the existing row is left as it was. The store does not validate fields
// beyond the NOT NULL columns - that is the caller's contract
// (see roster.Validate).
func (s *Store) Insert(ctx context.Context, e roster.Employee) error {
	return insertEmployee(ctx, s.db, e)
}

func insertEmployee(ctx context.Context, ex execer, e roster.Employee) error {
	_, err := ex.ExecContext(ctx, insertEmployeeSQL,
		e.ID,
		e.Name,
		e.Department,
		e.Salary,
		e.JoiningDate,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %q", roster.ErrDuplicateKey, e.ID)
		}
		return storageError("insert", err)
	}
	return nil
}

// DeleteByIDAndName removes the record only if both id and name match the
// stored row. Returns whether a row was removed.
//
// Requiring the name is deliberate: knowing an id alone is not enough to
// delete someone.
func (s *Store) DeleteByIDAndName(ctx context.Context, id, name string) (bool, error) {
	return deleteEmployee(ctx, s.db, id, name)
}

func deleteEmployee(ctx context.Context, ex execer, id, name string) (bool, error) {
	result, err := ex.ExecContext(ctx, deleteEmployeeSQL, id, name)
	if err != nil {
		return false, storageError("delete", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return false, storageError("delete: rows affected", err)
	}
	return n > 0, nil
}

// Replace swaps the row matching (id, name) for e in a single transaction.
//
// Returns an error wrapping roster.ErrNotFound when no row matches both id and
// name, and roster.ErrDuplicateKey when e.ID collides with another record. On
// any error the transaction is rolled back and the stored data is unchanged,
// so a crash can never leave the record missing.
//
// The replaced record moves to the end of the insertion order, as a plain
// delete followed by insert would.
func (s *Store) Replace(ctx context.Context, id, name string, e roster.Employee) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return storageError("replace: begin tx", err)
	}
	defer tx.Rollback() // No-op if committed

	removed, err := deleteEmployee(ctx, tx, id, name)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("%w: id %q with name %q", roster.ErrNotFound, id, name)
	}

	if err := insertEmployee(ctx, tx, e); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return storageError("replace: commit", err)
	}

	s.logger.Debug("employee replaced", "id", id)
	return nil
}
