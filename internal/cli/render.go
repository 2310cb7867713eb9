package cli

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/roach88/staffroll/internal/roster"
)

var numberPrinter = message.NewPrinter(language.English)

var rankedHeader = []string{"ID", "Name", "Department", "Salary", "Joined", "Tenure (months)"}

// formatSalary renders a salary with grouping and two decimals: 61,250.50.
func formatSalary(s float64) string {
	return numberPrinter.Sprintf("%.2f", s)
}

// renderRanked writes the ranked listing as a console table.
func renderRanked(w io.Writer, ranked []roster.Ranked) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(rankedHeader)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)

	for _, r := range ranked {
		table.Append([]string{
			r.ID,
			r.Name,
			r.Department,
			formatSalary(r.Salary),
			r.JoiningDate,
			strconv.Itoa(r.Months),
		})
	}
	table.Render()
}

// renderEmployee writes one record as aligned label/value lines. The tenure
// line is left out when the stored joining date cannot be read.
func renderEmployee(w io.Writer, e *roster.Employee, today time.Time) {
	fmt.Fprintf(w, "%-14s %s\n", "ID:", e.ID)
	fmt.Fprintf(w, "%-14s %s\n", "Name:", e.Name)
	fmt.Fprintf(w, "%-14s %s\n", "Department:", e.Department)
	fmt.Fprintf(w, "%-14s %s\n", "Salary:", formatSalary(e.Salary))
	fmt.Fprintf(w, "%-14s %s\n", "Joined:", e.JoiningDate)
	if months, err := e.Tenure(today); err == nil {
		fmt.Fprintf(w, "%-14s %s\n", "Tenure:", numberPrinter.Sprintf("%d months", months))
	}
}
