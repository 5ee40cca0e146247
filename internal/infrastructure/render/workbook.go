package render

import (
	"bytes"
	"fmt"

	"scale_workshop/internal/domain/documents"

	"github.com/xuri/excelize/v2"
)

const registerSheet = "Jobs"

var registerHeader = []string{
	"Job number", "Customer", "Equipment", "Status", "Received",
	"Inspection total", "Quoted", "Invoiced", "Outstanding",
}

// RegisterWorkbook writes the jobs register as a single-sheet XLSX file.
// Amounts are written as their display strings so the sheet matches the
// documents exactly.
func (r *Renderer) RegisterWorkbook(rows []documents.RegisterRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), registerSheet); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}
	widths := []float64{14, 28, 32, 12, 14, 18, 18, 18, 18}
	for i, w := range widths {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(registerSheet, name, name, w); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", name, err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#333333"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Border:    thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}
	bodyStyle, err := f.NewStyle(&excelize.Style{Border: thinBorders()})
	if err != nil {
		return nil, fmt.Errorf("create body style: %w", err)
	}

	header := make([]any, len(registerHeader))
	for i, h := range registerHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(registerSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	last, _ := excelize.ColumnNumberToName(len(registerHeader))
	if err := f.SetCellStyle(registerSheet, "A1", last+"1", headerStyle); err != nil {
		return nil, fmt.Errorf("style header: %w", err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		values := []any{
			sanitizeCell(row.JobNumber),
			sanitizeCell(row.CustomerName),
			sanitizeCell(row.Equipment),
			string(row.Status),
			row.ReceivedAt.Format("2006-01-02"),
			display(row.InspectionTotal),
			display(row.QuotedAmount),
			display(row.InvoicedAmount),
			display(row.Outstanding),
		}
		if err := f.SetSheetRow(registerSheet, cell, &values); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
		end, _ := excelize.CoordinatesToCellName(len(values), i+2)
		if err := f.SetCellStyle(registerSheet, cell, end, bodyStyle); err != nil {
			return nil, fmt.Errorf("style row %d: %w", i+2, err)
		}
	}
	if err := f.SetPanes(registerSheet, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"}); err != nil {
		return nil, fmt.Errorf("freeze header: %w", err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func display(m *documents.Money) string {
	if m == nil {
		return ""
	}
	return m.Display
}

// sanitizeCell stops free text from being read as a formula.
func sanitizeCell(s string) string {
	if s == "" {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{Type: side, Color: "#000000", Style: 1}
	}
	return borders
}
