package roster

// Departments offered by interactive entry. The store accepts any non-empty
// department; this list only drives prompts and flag validation.
var Departments = []string{"Manager", "Developer", "Designer", "HR"}

// Employee is one row of the employees table.
//
// The db tags are the persisted column names and are part of the file
// contract. The json/yaml tags are the record file format.
type Employee struct {
	ID          string  `db:"Employee_ID" json:"id" yaml:"id"`
	Name        string  `db:"Name" json:"name" yaml:"name"`
	Department  string  `db:"Department" json:"department" yaml:"department"`
	Salary      float64 `db:"Salary" json:"salary" yaml:"salary"`
	JoiningDate string  `db:"Date_of_Joining" json:"joining_date" yaml:"joining_date"`
}

// Joined parses the record's joining date.
func (e Employee) Joined() (JoiningDate, error) {
	return ParseJoiningDate(e.JoiningDate)
}

// Filter narrows a listing. Zero value matches everything.
type Filter struct {
	// Department matches exactly when non-empty.
	Department string

	// NameContains matches a case-insensitive substring of the name when non-empty.
	NameContains string
}

// IsZero reports whether the filter matches every record.
func (f Filter) IsZero() bool {
	return f.Department == "" && f.NameContains == ""
}
