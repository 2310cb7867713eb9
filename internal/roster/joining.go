package roster

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var joiningDatePattern = regexp.MustCompile(`^(\d{4})-(\d{1,2})$`)

// JoiningDate is the (year, month) a record was hired. Day is always the first.
type JoiningDate struct {
	Year  int
	Month int
}

// ParseJoiningDate parses "YYYY-MM" (month may be one digit).
// Returns an error wrapping ErrInvalidFormat for anything else, including a
// month outside 1..12.
func ParseJoiningDate(s string) (JoiningDate, error) {
	m := joiningDatePattern.FindStringSubmatch(s)
	if m == nil {
		return JoiningDate{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	// Both groups are digit-only, so Atoi cannot fail.
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	if month < 1 || month > 12 {
		return JoiningDate{}, fmt.Errorf("%w: month %d out of range in %q", ErrInvalidFormat, month, s)
	}

	return JoiningDate{Year: year, Month: month}, nil
}

// String formats the date the way it is stored, with a zero-padded month.
func (d JoiningDate) String() string {
	return fmt.Sprintf("%04d-%02d", d.Year, d.Month)
}

// FirstOfMonth returns midnight UTC on the first day of the joining month.
func (d JoiningDate) FirstOfMonth() time.Time {
	return time.Date(d.Year, time.Month(d.Month), 1, 0, 0, 0, 0, time.UTC)
}
