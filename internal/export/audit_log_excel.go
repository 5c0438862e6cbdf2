package export

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"hospital-backend/internal/delivery/dto"

	"github.com/xuri/excelize/v2"
)

const (
	auditLogSheet = "Audit Logs"

	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var AuditLogHeader = []string{
	"Log ID",
	"Timestamp",
	"User ID",
	"Username",
	"Full Name",
	"Action",
	"Description",
	"IP Address",
}

var auditLogColumnWidths = []float64{10, 22, 10, 20, 25, 26, 60, 18}

// AuditLogFilename names an export generated at t
func AuditLogFilename(t time.Time) string {
	return fmt.Sprintf("audit_logs_%s.xlsx", t.Format("20060102_150405"))
}

// GenerateAuditLogExport renders logs as a single-sheet workbook
func GenerateAuditLogExport(logs []dto.AuditLogResponse, loc *time.Location) ([]byte, error) {
	if loc == nil {
		loc = time.UTC
	}

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(auditLogSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for col, header := range AuditLogHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetCellValue(auditLogSheet, cell, header); err != nil {
			return nil, fmt.Errorf("failed to set header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(auditLogSheet, cell, cell, headerStyle); err != nil {
			return nil, fmt.Errorf("failed to set header style: %w", err)
		}
	}

	for col, width := range auditLogColumnWidths {
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return nil, fmt.Errorf("failed to convert column number: %w", err)
		}
		if err := f.SetColWidth(auditLogSheet, name, name, width); err != nil {
			return nil, fmt.Errorf("failed to set column width: %w", err)
		}
	}

	for i, log := range logs {
		row := []interface{}{
			log.LogID,
			log.CreatedAt.In(loc).Format("2006-01-02 15:04:05"),
			userIDCell(log.UserID),
			log.Username,
			log.FullName,
			log.Action,
			log.Description,
			log.IPAddress,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetSheetRow(auditLogSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.SetPanes(auditLogSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, fmt.Errorf("failed to freeze header row: %w", err)
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write excel file: %w", err)
	}
	return buf.Bytes(), nil
}

func userIDCell(userID *int64) string {
	if userID == nil {
		return ""
	}
	return strconv.FormatInt(*userID, 10)
}
