package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/VauntDev/tqla"
	"github.com/blockloop/scan/v2"

	"github.com/roach88/staffroll/internal/roster"
)

const employeeColumns = `Employee_ID, Name, Department, Salary, Date_of_Joining`

// listTemplate is compiled by tqla; every {{ .Field }} becomes a bound
// placeholder, never inlined text.
const listTemplate = `
	SELECT ` + employeeColumns + `
	FROM employees
	WHERE 1 = 1
	{{ if .Department }}AND Department = {{ .Department }}{{ end }}
	{{ if .NamePattern }}AND Name LIKE {{ .NamePattern }} ESCAPE '\'{{ end }}
	ORDER BY rowid ASC
`

// tqErr is reported by List; tq is nil when it is set.
var tq, tqErr = tqla.New()

// FindByID returns the record with the given id.
// Returns an error wrapping roster.ErrNotFound if no such record exists.
func (s *Store) FindByID(ctx context.Context, id string) (*roster.Employee, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+employeeColumns+` FROM employees WHERE Employee_ID = ?`, id)
	if err != nil {
		return nil, storageError("find", err)
	}
	defer rows.Close()

	var e roster.Employee
	if err := scan.RowStrict(&e, rows); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %q", roster.ErrNotFound, id)
		}
		return nil, storageError("find: scan", err)
	}
	return &e, nil
}

// ListAll returns every record in insertion order.
//
// Returns an empty slice (not nil) for an empty table.
func (s *Store) ListAll(ctx context.Context) ([]roster.Employee, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+employeeColumns+` FROM employees ORDER BY rowid ASC`)
	if err != nil {
		return nil, storageError("list", err)
	}
	return scanEmployees(rows)
}

// listArgs is the data bound into listTemplate.
type listArgs struct {
	Department  string
	NamePattern string
}

// List returns the records matching f in insertion order.
//
// Department matches exactly. NameContains is a substring match, case
// insensitive for ASCII letters (SQLite LIKE semantics); % and _ in it match
// literally.
func (s *Store) List(ctx context.Context, f roster.Filter) ([]roster.Employee, error) {
	args := listArgs{Department: f.Department}
	if f.NameContains != "" {
		args.NamePattern = "%" + escapeLike(f.NameContains) + "%"
	}

	query, params, err := listQuery(args)
	if err != nil {
		return nil, fmt.Errorf("compile list query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, storageError("list", err)
	}
	return scanEmployees(rows)
}

func listQuery(args listArgs) (string, []any, error) {
	if tqErr != nil {
		return "", nil, fmt.Errorf("init query templates: %w", tqErr)
	}
	return tq.Compile(listTemplate, args)
}

func scanEmployees(rows *sql.Rows) ([]roster.Employee, error) {
	defer rows.Close()

	var emps []roster.Employee
	if err := scan.RowsStrict(&emps, rows); err != nil {
		return nil, storageError("list: scan", err)
	}

	// Return empty slice instead of nil
	if emps == nil {
		emps = []roster.Employee{}
	}
	return emps, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
