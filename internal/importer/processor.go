package importer

import (
	"fmt"
	"log"
	"time"
)

func (i *Importer) processResults() {
	count := 0
	start := time.Now()

	for res := range i.results {
		count++

		if res.Err != nil {
			i.Report.AddError(res.Source, res.Err)
			continue
		}

		i.Report.AddResult(res.Result)

		if i.persist != nil {
			if err := i.persist(res.Result); err != nil {
				log.Printf("[ERROR] failed to persist result %s: %v", res.Result.ID, err)
			}
		}

		if i.cfg.Verbose {
			fmt.Printf("[%s] %s\n", res.Result.DataType, res.Result.DisplayData)
		}

		if count%1000 == 0 {
			fmt.Printf("Processed %d payloads... (Rate: %.2f payloads/sec)\n", count, float64(count)/time.Since(start).Seconds())
		}
	}
	i.Report.Finalize()
	close(i.done)
}
