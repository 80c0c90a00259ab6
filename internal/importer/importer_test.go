package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/digimosa/qrscan/internal/config"
	"github.com/digimosa/qrscan/internal/models"
)

func testConfig(root string) *config.Config {
	cfg := config.DefaultConfig()
	cfg.ImportRoot = root
	cfg.Workers = 2
	return cfg
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func runImport(t *testing.T, cfg *config.Config) (*Importer, []models.ScanResult) {
	t.Helper()

	var persisted []models.ScanResult
	imp := New(cfg, func(res models.ScanResult) error {
		persisted = append(persisted, res)
		return nil
	})
	imp.Start()
	imp.Wait()
	return imp, persisted
}

func TestImporter_TextFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "payloads.txt", strings.Join([]string{
		"https://example.com",
		"WIFI:S:HomeNet;P:secret123;T:WPA;H:false;",
		"",
		"GEO:1.5,2.5",
		"just some plain text",
	}, "\n"))
	writeFile(t, dir, "more.csv", "MAILTO:jane@x.com?subject=hi\nSMSTO:555:yo\n")
	writeFile(t, dir, "ignored.bin", "MAILTO:nope@x.com")

	imp, persisted := runImport(t, testConfig(dir))

	summary := imp.Report.Summary
	assert.EqualValues(t, 6, summary.TotalPayloads)
	assert.EqualValues(t, 1, summary.ByType["URL"])
	assert.EqualValues(t, 1, summary.ByType["WIFI"])
	assert.EqualValues(t, 1, summary.ByType["GEO"])
	assert.EqualValues(t, 1, summary.ByType["TEXT"])
	assert.EqualValues(t, 1, summary.ByType["EMAIL"])
	assert.EqualValues(t, 1, summary.ByType["SMS"])
	assert.Len(t, persisted, 6)
}

func TestImporter_MultiLinePayloadEscapes(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "contacts.txt", `BEGIN:VCARD\nFN:Jane Roe\nTEL:555\nEND:VCARD\n`+"\n")

	imp, persisted := runImport(t, testConfig(dir))

	require.EqualValues(t, 1, imp.Report.Summary.TotalPayloads)
	require.Len(t, persisted, 1)
	res := persisted[0]
	assert.Equal(t, models.TypeContact, res.DataType)
	assert.Equal(t, "Jane Roe", res.DisplayData)

	c, ok := res.Parsed.(models.ContactData)
	require.True(t, ok)
	assert.Equal(t, "555", c.Phone)
}

func TestImporter_Excel(t *testing.T) {
	dir := t.TempDir()

	f := excelize.NewFile()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "https://example.com"))
	require.NoError(t, f.SetCellValue("Sheet1", "B1", "GEO:1.5,2.5"))
	require.NoError(t, f.SetCellValue("Sheet1", "A2", "MECARD:N:Jane;;"))
	require.NoError(t, f.SaveAs(filepath.Join(dir, "payloads.xlsx")))
	require.NoError(t, f.Close())

	imp, persisted := runImport(t, testConfig(dir))

	assert.EqualValues(t, 3, imp.Report.Summary.TotalPayloads)
	assert.EqualValues(t, 1, imp.Report.Summary.ByType["URL"])
	assert.EqualValues(t, 1, imp.Report.Summary.ByType["GEO"])
	assert.EqualValues(t, 1, imp.Report.Summary.ByType["CONTACT"])
	assert.Len(t, persisted, 3)
}

func TestImporter_NilPersist(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "payloads.txt", "https://example.com\n")

	imp := New(testConfig(dir), nil)
	imp.Start()
	imp.Wait()

	assert.EqualValues(t, 1, imp.Report.Summary.TotalPayloads)
}

func TestFactory_Supported(t *testing.T) {
	f := NewFactory()

	assert.True(t, f.IsSupported(".txt"))
	assert.True(t, f.IsSupported(".csv"))
	assert.True(t, f.IsSupported(".pdf"))
	assert.True(t, f.IsSupported(".xlsx"))
	assert.False(t, f.IsSupported(".bin"))
	assert.False(t, f.IsSupported(".jpg"))
	assert.False(t, f.IsSupported(""))
}

func TestTextReader_SkipsBlankLines(t *testing.T) {
	r := &TextReader{}

	payloads, err := r.Read(strings.NewReader("one\n\n  \ntwo\r\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, payloads)
}
