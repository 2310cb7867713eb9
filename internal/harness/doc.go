// Package harness runs employee-register scenarios against a scratch store.
//
// A scenario is a YAML file: a frozen "today", optional setup records, and a
// list of steps (add, find, update, delete, list), each with an optional
// expectation. Run executes the steps through roster.Directory on a private
// in-memory database and records what every step returned. The outcome trace
// and the final tenure-ranked listing form a Snapshot that tests compare
// against golden files.
//
// Example:
//
//	name: duplicate-insert
//	description: the second insert with an existing id is rejected
//	today: "2024-01"
//	steps:
//	  - op: add
//	    employee: {id: E1, name: Ann, department: HR, salary: 50000, joining_date: "2019-03"}
//	  - op: add
//	    employee: {id: E1, name: Bo, department: HR, salary: 1, joining_date: "2020-01"}
//	    expect: {error: duplicate_key}
//
// The same runner backs the `staffroll check` command.
package harness
