package reporting

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"os"
	"sync"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/digimosa/qrscan/internal/models"
	"github.com/digimosa/qrscan/internal/templates"
)

type Summary struct {
	TotalPayloads int64            `json:"total_payloads"`
	ByType        map[string]int64 `json:"by_type"`
	FileErrors    int64            `json:"file_errors"`
	Duration      time.Duration    `json:"duration"`
	StartTime     time.Time        `json:"start_time"`
	EndTime       time.Time        `json:"end_time"`
	Source        string           `json:"source"`
}

// Report aggregates the outcome of a batch import or an export of the
// stored history.
type Report struct {
	Summary Summary             `json:"summary"`
	Results []models.ScanResult `json:"results"`
	Errors  []string            `json:"errors,omitempty"`
	mu      sync.Mutex
}

func NewReport(source string) *Report {
	return &Report{
		Summary: Summary{
			StartTime: time.Now(),
			ByType:    make(map[string]int64),
			Source:    source,
		},
		Results: make([]models.ScanResult, 0),
	}
}

func (r *Report) AddResult(res models.ScanResult) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Summary.TotalPayloads++
	r.Summary.ByType[string(res.DataType)]++
	r.Results = append(r.Results, res)
}

func (r *Report) AddError(source string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Summary.FileErrors++
	r.Errors = append(r.Errors, fmt.Sprintf("%s: %v", source, err))
}

func (r *Report) Finalize() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Summary.EndTime = time.Now()
	r.Summary.Duration = r.Summary.EndTime.Sub(r.Summary.StartTime)
}

func (r *Report) SaveJSON(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(r)
}

func (r *Report) SaveXLSX(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteXLSX(file, r.Results)
}

// WriteXLSX writes scan results as a one-sheet workbook, newest data in
// the order given.
func WriteXLSX(w io.Writer, scans []models.ScanResult) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Scans"
	f.SetSheetName("Sheet1", sheet)

	header := []interface{}{"ID", "Scanned At", "Type", "Display", "Raw Payload"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, s := range scans {
		row := []interface{}{
			s.ID,
			time.UnixMilli(s.Timestamp).Format(time.RFC3339),
			string(s.DataType),
			s.DisplayData,
			s.RawData,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	_, err := f.WriteTo(w)
	return err
}

func (r *Report) RenderHTML(w io.Writer) error {
	tmpl, err := template.New("report").Funcs(template.FuncMap{
		"fmtTime": func(ms int64) string {
			return time.UnixMilli(ms).Format("2006-01-02 15:04:05")
		},
	}).Parse(templates.ReportHTML)
	if err != nil {
		return err
	}
	return tmpl.Execute(w, r)
}

func (r *Report) SaveHTML(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	return r.RenderHTML(file)
}
