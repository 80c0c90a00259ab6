package importer

import (
	"log"
	"os"

	"github.com/digimosa/qrscan/internal/extract"
	"github.com/digimosa/qrscan/internal/models"
)

// importFile reads one payload file and classifies every payload in it
func (i *Importer) importFile(path string) {
	reader, ext, err := i.readerFactory.GetReaderForFile(path)
	if err != nil {
		return
	}

	if i.cfg.Verbose {
		log.Printf("[IMPORT] reading file: %s (%s)", path, ext)
	}

	file, err := os.Open(path)
	if err != nil {
		if i.cfg.Verbose {
			log.Printf("[ERROR] failed to open file %s: %v", path, err)
		}
		i.results <- models.ImportResult{Source: path, Err: err}
		return
	}
	defer file.Close()

	payloads, err := reader.Read(file)
	if err != nil {
		if i.cfg.Verbose {
			log.Printf("[ERROR] read failed for %s: %v", path, err)
		}
		i.results <- models.ImportResult{Source: path, Err: err}
		return
	}

	for _, payload := range payloads {
		res := extract.Parse(payload)
		select {
		case <-i.ctx.Done():
			return
		case i.results <- models.ImportResult{Result: res, Source: path}:
		}
	}
}
