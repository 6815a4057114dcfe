package usecase

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"go-resume-backend/internal/domain"

	"github.com/xuri/excelize/v2"
)

var logExportHeaders = []string{
	"LOG ID", "RESUME ID", "RECRUITER ID", "RECRUITER NAME", "PREVIOUS STATUS", "STATUS", "REASON", "CHANGED AT",
}

func logExportRow(l domain.ResumeStatusLog) []string {
	name := ""
	if l.RecruiterName != nil {
		name = *l.RecruiterName
	}
	return []string{
		strconv.FormatInt(l.ID, 10),
		strconv.FormatInt(l.ResumeID, 10),
		l.RecruiterID,
		name,
		l.PreviousStatus,
		l.Status,
		l.Reason,
		l.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// exportLogsExcel writes one sheet with a styled header row
func exportLogsExcel(logs []domain.ResumeStatusLog) (*domain.ExportFile, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Status Logs"
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	for i, header := range logExportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#1E3A5F"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	endCell, _ := excelize.CoordinatesToCellName(len(logExportHeaders), 1)
	f.SetCellStyle(sheetName, "A1", endCell, headerStyle)

	for rowIdx, l := range logs {
		for colIdx, value := range logExportRow(l) {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	for i := range logExportHeaders {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, colName, colName, 20)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}
	return &domain.ExportFile{
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Data:        buf.Bytes(),
	}, nil
}

func exportLogsCSV(logs []domain.ResumeStatusLog) (*domain.ExportFile, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(logExportHeaders); err != nil {
		return nil, err
	}
	for _, l := range logs {
		if err := w.Write(logExportRow(l)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to write CSV file: %w", err)
	}
	return &domain.ExportFile{ContentType: "text/csv", Data: buf.Bytes()}, nil
}
