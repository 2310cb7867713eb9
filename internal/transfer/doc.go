// Package transfer moves employee records between the register and files.
//
// Record files are YAML or JSON documents of the form
//
//	employees:
//	  - {id: E1, name: Ann, department: HR, salary: 50000, joining_date: "2019-03"}
//
// Reading validates the document against the CUE schema in internal/schema
// before decoding, then rejects ids repeated within the file. Writing emits the
// same document shape in storage order. Spreadsheet export (xlsx) writes the
// tenure-ranked listing with a tenure column and cannot be read back.
package transfer
