package reporting

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/digimosa/qrscan/internal/models"
)

func sampleResults() []models.ScanResult {
	return []models.ScanResult{
		{
			ID: "a", Timestamp: 1700000000000, DataType: models.TypeURL,
			RawData: "https://example.com", DisplayData: "https://example.com",
		},
		{
			ID: "b", Timestamp: 1700000001000, DataType: models.TypeWifi,
			RawData: "WIFI:S:HomeNet;;", DisplayData: "Network: HomeNet",
			Parsed: models.WifiData{SSID: "HomeNet"},
		},
	}
}

func TestReport_Aggregation(t *testing.T) {
	r := NewReport("testdata")
	for _, res := range sampleResults() {
		r.AddResult(res)
	}
	r.AddError("bad.pdf", errors.New("truncated"))
	r.Finalize()

	assert.EqualValues(t, 2, r.Summary.TotalPayloads)
	assert.EqualValues(t, 1, r.Summary.ByType["URL"])
	assert.EqualValues(t, 1, r.Summary.ByType["WIFI"])
	assert.EqualValues(t, 1, r.Summary.FileErrors)
	assert.False(t, r.Summary.EndTime.IsZero())
}

func TestWriteXLSX_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, sampleResults()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Scans")
	require.NoError(t, err)
	require.Len(t, rows, 3) // header + 2 results

	assert.Equal(t, "ID", rows[0][0])
	assert.Equal(t, "a", rows[1][0])
	assert.Equal(t, "URL", rows[1][2])
	assert.Equal(t, "WIFI:S:HomeNet;;", rows[2][4])
}

func TestRenderHTML(t *testing.T) {
	r := NewReport("testdata")
	for _, res := range sampleResults() {
		r.AddResult(res)
	}
	r.Finalize()

	var sb strings.Builder
	require.NoError(t, r.RenderHTML(&sb))

	html := sb.String()
	assert.Contains(t, html, "Network: HomeNet")
	assert.Contains(t, html, "https://example.com")
	assert.Contains(t, html, "testdata")
}
