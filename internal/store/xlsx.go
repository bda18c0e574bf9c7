package store

import (
	"fmt"
	"log"
	"os"

	"github.com/xuri/excelize/v2"
)

// columnWidths is cosmetic and reapplied after every write; the row data is
// what correctness rests on
var columnWidths = map[string]float64{
	"A": 25, //Job Title
	"B": 20, //Company
	"C": 15, //Location
	"D": 30, //Description
	"E": 50, //URL
	"F": 12, //Posted Date
	"G": 12, //Date Added
	"H": 8,  //Applied
	"I": 15, //Application Date
	"J": 12, //Status
	"K": 20, //Notes
}

// XLSXWorkbook is the excelize-backed Workbook implementation writing one
// .xlsx file with one sheet per platform
type XLSXWorkbook struct {
	path string
	file *excelize.File
}

func OpenWorkbook(path string) (*XLSXWorkbook, error) {
	if _, err := os.Stat(path); err == nil {
		f, err := excelize.OpenFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
		}
		return &XLSXWorkbook{path: path, file: f}, nil
	}

	log.Printf("📄 Creating new Excel file: %s", path)
	return &XLSXWorkbook{path: path, file: excelize.NewFile()}, nil
}

func (w *XLSXWorkbook) SheetExists(name string) bool {
	idx, _ := w.file.GetSheetIndex(name)
	return idx != -1
}

func (w *XLSXWorkbook) EnsureSheet(name string, columns []string) error {
	if w.SheetExists(name) {
		return nil
	}

	if _, err := w.file.NewSheet(name); err != nil {
		return err
	}
	if err := w.writeHeader(name, columns); err != nil {
		return err
	}
	w.applyFormat(name)
	w.dropPlaceholderSheet()
	return w.save()
}

func (w *XLSXWorkbook) RemoveSheet(name string) error {
	if !w.SheetExists(name) {
		return nil
	}
	if err := w.file.DeleteSheet(name); err != nil {
		return err
	}
	return w.save()
}

func (w *XLSXWorkbook) ReadRows(name string) ([][]string, error) {
	rows, err := w.file.GetRows(name)
	if err != nil {
		return nil, err
	}
	if len(rows) <= 1 {
		return nil, nil
	}
	//row 1 is the header
	return rows[1:], nil
}

// WriteRows rewrites the sheet wholesale: delete and recreate, so rows
// removed upstream can never linger below the new row count
func (w *XLSXWorkbook) WriteRows(name string, rows [][]string) error {
	if err := w.file.DeleteSheet(name); err != nil {
		return err
	}
	if _, err := w.file.NewSheet(name); err != nil {
		return err
	}
	if err := w.writeHeader(name, Columns); err != nil {
		return err
	}

	for i, row := range rows {
		cells := make([]interface{}, len(row))
		for j, val := range row {
			cells[j] = val
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := w.file.SetSheetRow(name, cell, &cells); err != nil {
			return err
		}
	}

	w.applyFormat(name)
	return w.save()
}

func (w *XLSXWorkbook) Close() error {
	return w.file.Close()
}

func (w *XLSXWorkbook) writeHeader(name string, columns []string) error {
	header := make([]interface{}, len(columns))
	for i, col := range columns {
		header[i] = col
	}
	return w.file.SetSheetRow(name, "A1", &header)
}

// applyFormat reapplies column widths and the frozen header row
func (w *XLSXWorkbook) applyFormat(name string) {
	for col, width := range columnWidths {
		w.file.SetColWidth(name, col, col, width)
	}
	w.file.SetPanes(name, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

// dropPlaceholderSheet removes the default sheet excelize seeds new
// workbooks with, once a real sheet exists
func (w *XLSXWorkbook) dropPlaceholderSheet() {
	if w.SheetExists("Sheet1") && len(w.file.GetSheetList()) > 1 {
		w.file.DeleteSheet("Sheet1")
	}
}

func (w *XLSXWorkbook) save() error {
	return w.file.SaveAs(w.path)
}
