// Package store provides the SQLite-backed record store for employees.
//
// The store owns a single table:
//
//	employees(Employee_ID TEXT PRIMARY KEY, Name TEXT NOT NULL,
//	          Department TEXT NOT NULL, Salary REAL NOT NULL,
//	          Date_of_Joining TEXT NOT NULL)
//
// # Operations
//
//   - Insert: fails with roster.ErrDuplicateKey on an existing id
//   - FindByID: roster.ErrNotFound when absent
//   - DeleteByIDAndName: removes a row only when both fields match
//   - ListAll / List: rows in insertion (rowid) order
//   - Replace: delete-by-(id, name) and insert in one transaction
//
// Records returned are detached copies. Driver failures come back as
// *roster.StorageError; nothing is swallowed or retried.
//
// # Ownership
//
// A Store is a single-owner handle. It keeps exactly one open connection and
// does no locking of its own: concurrent callers, in this process or another,
// are only serialised by SQLite's file lock and the busy timeout. Open it once,
// pass it explicitly, and Close it on every exit path.
//
// # Database Configuration
//
//   - WAL journal, synchronous=FULL: every committed write is durable
//   - busy_timeout=5000: wait for locks up to 5 seconds
//   - foreign_keys=ON
//
// Two drivers are supported: the cgo driver github.com/mattn/go-sqlite3
// ("sqlite3", default) and the pure-Go modernc.org/sqlite ("sqlite").
package store
