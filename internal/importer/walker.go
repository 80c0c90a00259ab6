package importer

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/digimosa/qrscan/internal/models"
)

func (i *Importer) walkFiles() {
	defer close(i.jobs)

	err := filepath.WalkDir(i.cfg.ImportRoot, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			log.Printf("Error accessing path %s: %v", path, err)
			return nil // continue walking
		}

		if !d.IsDir() {
			ext := strings.ToLower(filepath.Ext(path))
			if !i.readerFactory.IsSupported(ext) {
				return nil
			}

			select {
			case <-i.ctx.Done():
				return filepath.SkipAll
			case i.jobs <- models.Job{FilePath: path}:
			}
		}
		return nil
	})

	if err != nil {
		log.Printf("Error walking directory: %v", err)
	}
}
