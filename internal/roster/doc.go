// Package roster holds the employee record model, the tenure ranking and the
// Directory service the presentation layer talks to.
//
// # Records
//
// An Employee is a detached value: the store returns copies and never keeps a
// reference to anything a caller holds. The joining date is kept as the
// "YYYY-MM" string it is persisted as; ParseJoiningDate turns it into a
// (year, month) pair when tenure is needed.
//
// # Tenure
//
// MonthsOfTenure is plain month arithmetic against a Clock reading. Nothing is
// clamped: a joining date in the future yields a negative tenure and simply
// sorts last. RankByTenure orders records longest-tenured first and keeps
// encounter order for ties.
//
// # Errors
//
// Every failure reaches the caller as one of:
//   - ErrDuplicateKey: insert with an identifier already present
//   - ErrNotFound: lookup, delete or update of an absent record
//   - ErrInvalidFormat: joining date that is not YYYY-MM
//   - ErrStorage: the database could not be read or written (*StorageError)
//   - ErrInvalidInput: a record breaking the caller contract (*ValidationError)
//   - ErrNameMismatch: update where the name does not match the stored one
//
// Nothing is retried.
package roster
