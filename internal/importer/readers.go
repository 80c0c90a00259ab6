package importer

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/xuri/excelize/v2"
)

// PayloadReader extracts candidate payload strings from a file format
type PayloadReader interface {
	Read(reader io.Reader) ([]string, error)
}

// Factory handles creation of the appropriate payload reader
type Factory struct{}

func NewFactory() *Factory {
	return &Factory{}
}

// GetReaderForFile returns the reader for the file's extension
func (f *Factory) GetReaderForFile(path string) (PayloadReader, string, error) {
	ext := strings.ToLower(filepath.Ext(path))

	if !f.IsSupported(ext) {
		return nil, ext, fmt.Errorf("unsupported file extension: %s", ext)
	}

	var r PayloadReader
	switch ext {
	case ".pdf":
		r = &PDFReader{}
	case ".xlsx":
		r = &ExcelReader{}
	default:
		r = &TextReader{}
	}
	return r, ext, nil
}

// IsSupported reports whether the extension carries payload exports
func (f *Factory) IsSupported(ext string) bool {
	switch ext {
	case ".txt", ".csv", ".pdf", ".xlsx":
		return true
	default:
		return false
	}
}

// TextReader treats every non-empty line as one payload. Exports commonly
// use literal \n / \r\n escapes inside a vCard payload; those are restored
// so multi-line payloads survive the one-per-line format.
type TextReader struct{}

func (r *TextReader) Read(reader io.Reader) ([]string, error) {
	var payloads []string

	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		payloads = append(payloads, unescapePayload(line))
	}
	return payloads, scanner.Err()
}

func unescapePayload(s string) string {
	if !strings.Contains(s, `\n`) && !strings.Contains(s, `\r`) {
		return s
	}
	s = strings.ReplaceAll(s, `\r\n`, "\r\n")
	s = strings.ReplaceAll(s, `\n`, "\n")
	s = strings.ReplaceAll(s, `\r`, "\r")
	return s
}

// PDFReader pulls page text and splits it into line payloads
type PDFReader struct{}

func (r *PDFReader) Read(reader io.Reader) ([]string, error) {
	// ledongthuc/pdf needs an io.ReaderAt plus size
	var readerAt io.ReaderAt
	var size int64

	switch rd := reader.(type) {
	case *os.File:
		stat, err := rd.Stat()
		if err != nil {
			return nil, err
		}
		readerAt = rd
		size = stat.Size()
	case *bytes.Reader:
		readerAt = rd
		size = int64(rd.Len())
	default:
		data, err := io.ReadAll(reader)
		if err != nil {
			return nil, err
		}
		readerAt = bytes.NewReader(data)
		size = int64(len(data))
	}

	doc, err := pdf.NewReader(readerAt, size)
	if err != nil {
		return nil, err
	}

	var payloads []string
	for p := 1; p <= doc.NumPage(); p++ {
		page := doc.Page(p)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			continue // skip page on error
		}
		for _, line := range strings.Split(content, "\n") {
			if strings.TrimSpace(line) == "" {
				continue
			}
			payloads = append(payloads, unescapePayload(strings.TrimRight(line, "\r")))
		}
	}
	return payloads, nil
}

// ExcelReader treats every non-empty cell as one payload
type ExcelReader struct{}

func (r *ExcelReader) Read(reader io.Reader) ([]string, error) {
	f, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var payloads []string
	for _, sheet := range f.GetSheetList() {
		rows, err := f.Rows(sheet)
		if err != nil {
			continue
		}
		for rows.Next() {
			row, err := rows.Columns()
			if err != nil {
				break
			}
			for colIdx, cell := range row {
				if cell == "" {
					continue
				}
				payloads = append(payloads, unescapePayload(cell))

				// guard against pathologically wide sheets
				if colIdx > 1000 {
					break
				}
			}
		}
	}
	return payloads, nil
}
