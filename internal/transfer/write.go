package transfer

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"github.com/roach88/staffroll/internal/roster"
)

// SheetName is the worksheet the xlsx export writes to.
const SheetName = "Employees"

var sheetHeader = []any{"ID", "Name", "Department", "Salary", "Joining Date", "Tenure (months)"}

// Write encodes emps as a record file in storage order.
func Write(w io.Writer, f Format, emps []roster.Employee) error {
	if emps == nil {
		emps = []roster.Employee{}
	}
	doc := Document{Employees: emps}

	switch f {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		_, err = w.Write(append(data, '\n'))
		return err
	default:
		return fmt.Errorf("cannot write %s records; use WriteXLSX", f)
	}
}

// WriteXLSX writes the ranked listing as a single-sheet workbook: a bold
// header row then one row per record, longest tenure first.
func WriteXLSX(w io.Writer, ranked []roster.Ranked) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("xlsx: %w", err)
	}

	header := sheetHeader
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("xlsx header: %w", err)
	}
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("xlsx style: %w", err)
	}
	lastCol, _ := excelize.ColumnNumberToName(len(sheetHeader))
	if err := f.SetCellStyle(SheetName, "A1", lastCol+"1", style); err != nil {
		return fmt.Errorf("xlsx style: %w", err)
	}

	for i, r := range ranked {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []any{r.ID, r.Name, r.Department, r.Salary, r.JoiningDate, r.Months}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("xlsx row %d: %w", i+2, err)
		}
	}

	if err := f.SetColWidth(SheetName, "A", lastCol, 16); err != nil {
		return fmt.Errorf("xlsx: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}
