package roster

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Store is the persistence the Directory needs. internal/store implements it
// over SQLite.
type Store interface {
	Insert(ctx context.Context, e Employee) error
	FindByID(ctx context.Context, id string) (*Employee, error)
	DeleteByIDAndName(ctx context.Context, id, name string) (bool, error)
	ListAll(ctx context.Context) ([]Employee, error)
	List(ctx context.Context, f Filter) ([]Employee, error)
	Replace(ctx context.Context, id, name string, e Employee) error
}

// UpdateRequest carries the new values for an existing record.
// Name must equal the stored name; it identifies the record together with ID.
type UpdateRequest struct {
	ID         string
	Name       string
	Department string
	Salary     float64

	// JoiningDate replaces the stored date when non-empty.
	// Empty keeps the stored date.
	JoiningDate string
}

// Directory is the request/response surface over a Store.
//
// It is not safe for concurrent use; the Store it wraps assumes a single owner.
type Directory struct {
	store  Store
	clock  Clock
	logger *slog.Logger
}

// NewDirectory creates a Directory over store. A nil clock means the system clock.
func NewDirectory(store Store, clock Clock) *Directory {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Directory{
		store:  store,
		clock:  clock,
		logger: slog.Default(),
	}
}

// WithLogger returns the directory with its logger replaced.
func (d *Directory) WithLogger(logger *slog.Logger) *Directory {
	d.logger = logger
	return d
}

// Add validates e and inserts it.
func (d *Directory) Add(ctx context.Context, e Employee) error {
	if err := Validate(e); err != nil {
		return err
	}
	if err := d.store.Insert(ctx, e); err != nil {
		return err
	}
	d.logger.Info("employee added", "id", e.ID, "department", e.Department)
	return nil
}

// Find returns the record with the given id or ErrNotFound.
func (d *Directory) Find(ctx context.Context, id string) (*Employee, error) {
	return d.store.FindByID(ctx, id)
}

// Remove deletes the record only when both id and name match.
// Returns false, nil when nothing matched.
func (d *Directory) Remove(ctx context.Context, id, name string) (bool, error) {
	removed, err := d.store.DeleteByIDAndName(ctx, id, name)
	if err != nil {
		return false, err
	}
	if removed {
		d.logger.Info("employee removed", "id", id)
	} else {
		d.logger.Debug("no employee matched id and name", "id", id)
	}
	return removed, nil
}

// Update rewrites an existing record.
//
// The stored record must exist (ErrNotFound) and carry the same name
// (ErrNameMismatch). The joining date is kept unless the request sets one. The
// old row is swapped for the new one in a single Replace, so a failure leaves
// the stored record as it was.
func (d *Directory) Update(ctx context.Context, req UpdateRequest) (*Employee, error) {
	current, err := d.store.FindByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if current.Name != req.Name {
		return nil, fmt.Errorf("%w: id %q", ErrNameMismatch, req.ID)
	}

	next := Employee{
		ID:          req.ID,
		Name:        req.Name,
		Department:  req.Department,
		Salary:      req.Salary,
		JoiningDate: current.JoiningDate,
	}
	if req.JoiningDate != "" {
		next.JoiningDate = req.JoiningDate
	}
	if err := Validate(next); err != nil {
		return nil, err
	}

	if err := d.store.Replace(ctx, req.ID, req.Name, next); err != nil {
		return nil, err
	}
	d.logger.Info("employee updated", "id", req.ID)
	return &next, nil
}

// Ranked lists the records matching f, longest tenure first.
func (d *Directory) Ranked(ctx context.Context, f Filter) ([]Ranked, error) {
	var (
		emps []Employee
		err  error
	)
	if f.IsZero() {
		emps, err = d.store.ListAll(ctx)
	} else {
		emps, err = d.store.List(ctx, f)
	}
	if err != nil {
		return nil, err
	}
	return RankByTenure(emps, d.clock.Now())
}

// Today returns the directory clock's current time.
func (d *Directory) Today() time.Time {
	return d.clock.Now()
}
