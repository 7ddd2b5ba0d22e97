// Package export renders complaint record sets as downloadable byte streams.
// Both serializers are pure functions of their input: no storage access, no
// side effects.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/HTS-CEO/Call-Center-Dashboard-Creation/internal/repository/models"
	"github.com/xuri/excelize/v2"
)

const (
	SheetName = "Complaints"

	CSVFileName      = "call_center_data.csv"
	CSVContentType   = "text/csv"
	ExcelFileName    = "call_center_data.xlsx"
	ExcelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// columns is the fixed export column order, matching the table schema.
var columns = []string{
	"id", "timestamp", "location", "complaint_type", "resolution_time",
	"satisfaction_score", "agent_name", "call_duration", "status",
}

func recordRow(rec models.ComplaintRecord) []string {
	return []string{
		strconv.FormatInt(rec.ID, 10),
		rec.Timestamp.Format(models.TimestampLayout),
		rec.Location,
		rec.ComplaintType,
		strconv.FormatFloat(rec.ResolutionTime, 'g', -1, 64),
		strconv.Itoa(rec.SatisfactionScore),
		rec.AgentName,
		strconv.FormatFloat(rec.CallDuration, 'g', -1, 64),
		rec.Status,
	}
}

// WriteCSV renders the record set as UTF-8 comma-separated text with a
// header row. An empty set yields a header-only stream.
func WriteCSV(records []models.ComplaintRecord) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(columns); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, rec := range records {
		if err := w.Write(recordRow(rec)); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteWorkbook renders the record set as a single-sheet xlsx workbook with
// the same rows and columns as the CSV export.
func WriteWorkbook(records []models.ComplaintRecord) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("name workbook sheet: %w", err)
	}

	for i, header := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("header cell coordinates: %w", err)
		}
		if err := f.SetCellValue(SheetName, cell, header); err != nil {
			return nil, fmt.Errorf("write header cell: %w", err)
		}
	}

	for i, rec := range records {
		values := []any{
			rec.ID,
			rec.Timestamp.Format(models.TimestampLayout),
			rec.Location,
			rec.ComplaintType,
			rec.ResolutionTime,
			rec.SatisfactionScore,
			rec.AgentName,
			rec.CallDuration,
			rec.Status,
		}
		for j, value := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return nil, fmt.Errorf("cell coordinates: %w", err)
			}
			if err := f.SetCellValue(SheetName, cell, value); err != nil {
				return nil, fmt.Errorf("write workbook cell: %w", err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("generate workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// ParseCSV is the inverse of WriteCSV: it reads a header-plus-rows stream
// back into records. The header must match the export column order.
func ParseCSV(data []byte) ([]models.ComplaintRecord, error) {
	r := csv.NewReader(bytes.NewReader(data))

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("missing csv header")
	}
	header := rows[0]
	if len(header) != len(columns) {
		return nil, fmt.Errorf("unexpected csv header: %v", header)
	}
	for i, col := range columns {
		if header[i] != col {
			return nil, fmt.Errorf("unexpected csv column %q, want %q", header[i], col)
		}
	}

	var records []models.ComplaintRecord
	for _, row := range rows[1:] {
		rec, err := parseRow(row)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func parseRow(row []string) (models.ComplaintRecord, error) {
	var rec models.ComplaintRecord
	var err error

	if rec.ID, err = strconv.ParseInt(row[0], 10, 64); err != nil {
		return rec, fmt.Errorf("parse id %q: %w", row[0], err)
	}
	if rec.Timestamp, err = time.Parse(models.TimestampLayout, row[1]); err != nil {
		return rec, fmt.Errorf("parse timestamp %q: %w", row[1], err)
	}
	rec.Location = row[2]
	rec.ComplaintType = row[3]
	if rec.ResolutionTime, err = strconv.ParseFloat(row[4], 64); err != nil {
		return rec, fmt.Errorf("parse resolution_time %q: %w", row[4], err)
	}
	if rec.SatisfactionScore, err = strconv.Atoi(row[5]); err != nil {
		return rec, fmt.Errorf("parse satisfaction_score %q: %w", row[5], err)
	}
	rec.AgentName = row[6]
	if rec.CallDuration, err = strconv.ParseFloat(row[7], 64); err != nil {
		return rec, fmt.Errorf("parse call_duration %q: %w", row[7], err)
	}
	rec.Status = row[8]
	return rec, nil
}
