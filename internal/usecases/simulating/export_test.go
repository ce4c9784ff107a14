package simulating

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/vfg2006/marketing-insights-api/internal/domain"
)

func sampleRecords() []*domain.PerformanceRecord {
	return []*domain.PerformanceRecord{
		{Month: "2024-01", Publisher: "Meta", Channel: "Social", FunnelLayer: "Awareness", Format: "Video", AudienceSegment: "Prospecting", Spend: 1000, Impressions: 100000, Clicks: 1000, Conversions: 20, Revenue: 3000, ROAS: 3, ROI: 2, CPA: 50, CTR: 0.01, CVR: 0.02},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer

	err := WriteCSV(&buf, sampleRecords())
	require.NoError(t, err)

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, exportHeader, rows[0])
	assert.Equal(t, "Meta", rows[1][1])
	assert.Equal(t, "1000", rows[1][6])
	assert.Equal(t, "100000", rows[1][7])
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer

	err := WriteXLSX(&buf, sampleRecords())
	require.NoError(t, err)

	file, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer file.Close()

	rows, err := file.GetRows(exportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Publisher", rows[0][1])
	assert.Equal(t, "Meta", rows[1][1])
}
