// Package export renders directory data as spreadsheets.
package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	model "workbase.com/workbase/internal/models"
)

const DirectorySheet = "Directory"

var directoryHeader = []interface{}{"Name", "Email", "Title", "Department", "Joined"}

// Directory writes employees to an XLSX workbook, one row each below a
// header row.
func Directory(employees []model.Employee) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", DirectorySheet); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(DirectorySheet, "A1", &directoryHeader); err != nil {
		return nil, err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	if err := f.SetRowStyle(DirectorySheet, 1, 1, bold); err != nil {
		return nil, err
	}

	for i, e := range employees {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []interface{}{e.Name, e.Email, e.Title, e.Department, e.CreatedAt.Format("2006-01-02")}
		if err := f.SetSheetRow(DirectorySheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := f.SetColWidth(DirectorySheet, "A", "E", 24); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
