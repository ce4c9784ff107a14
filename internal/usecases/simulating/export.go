package simulating

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/vfg2006/marketing-insights-api/internal/domain"
)

const exportSheet = "Performance"

var exportHeader = []string{
	"Month", "Publisher", "Channel", "Funnel Layer", "Format", "Audience Segment",
	"Spend", "Impressions", "Clicks", "Conversions", "Revenue",
	"ROAS", "ROI", "CPA", "CTR", "CVR",
}

func exportRow(record *domain.PerformanceRecord) []any {
	return []any{
		record.Month, record.Publisher, record.Channel, record.FunnelLayer, record.Format, record.AudienceSegment,
		record.Spend, record.Impressions, record.Clicks, record.Conversions, record.Revenue,
		record.ROAS, record.ROI, record.CPA, record.CTR, record.CVR,
	}
}

// WriteCSV escreve os registros em CSV com cabeçalho
func WriteCSV(w io.Writer, records []*domain.PerformanceRecord) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(exportHeader); err != nil {
		return fmt.Errorf("erro ao escrever cabeçalho do CSV: %w", err)
	}

	for _, record := range records {
		row := exportRow(record)
		values := make([]string, len(row))
		for i, value := range row {
			switch v := value.(type) {
			case string:
				values[i] = v
			case int64:
				values[i] = strconv.FormatInt(v, 10)
			case float64:
				values[i] = strconv.FormatFloat(v, 'f', -1, 64)
			}
		}

		if err := writer.Write(values); err != nil {
			return fmt.Errorf("erro ao escrever linha do CSV: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteXLSX escreve os registros em uma planilha Excel
func WriteXLSX(w io.Writer, records []*domain.PerformanceRecord) error {
	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName("Sheet1", exportSheet); err != nil {
		return fmt.Errorf("erro ao renomear planilha: %w", err)
	}

	header := make([]any, len(exportHeader))
	for i, column := range exportHeader {
		header[i] = column
	}
	if err := file.SetSheetRow(exportSheet, "A1", &header); err != nil {
		return fmt.Errorf("erro ao escrever cabeçalho da planilha: %w", err)
	}

	for i, record := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}

		row := exportRow(record)
		if err := file.SetSheetRow(exportSheet, cell, &row); err != nil {
			return fmt.Errorf("erro ao escrever linha %d da planilha: %w", i+2, err)
		}
	}

	if _, err := file.WriteTo(w); err != nil {
		return fmt.Errorf("erro ao gravar planilha: %w", err)
	}

	return nil
}
