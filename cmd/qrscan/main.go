package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/digimosa/qrscan/internal/actions"
	"github.com/digimosa/qrscan/internal/config"
	"github.com/digimosa/qrscan/internal/extract"
	"github.com/digimosa/qrscan/internal/importer"
	"github.com/digimosa/qrscan/internal/server"
	"github.com/digimosa/qrscan/internal/settings"
	"github.com/digimosa/qrscan/internal/storage"
)

func main() {
	// Parse CLI flags
	scan := flag.String("scan", "", "Classify a single payload and print the result")
	importRoot := flag.String("import", "", "Import payload files (.txt/.csv/.pdf/.xlsx) from this directory")
	serve := flag.Bool("serve", false, "Start the HTTP API")
	port := flag.String("port", "8080", "Port for the HTTP API")
	dbPath := flag.String("db", "", "Path to the history database (default: qrscan.db)")
	workers := flag.Int("workers", 0, "Number of concurrent import workers (default: auto)")
	verbose := flag.Bool("verbose", false, "Enable verbose logging")
	flag.Parse()

	// Setup configuration
	cfg := config.DefaultConfig()
	cfg.Verbose = *verbose
	cfg.ImportRoot = *importRoot
	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}
	if token := os.Getenv("QRSCAN_API_TOKEN"); token != "" {
		cfg.APIToken = token
	}

	if err := storage.Init(cfg.DBPath); err != nil {
		fmt.Printf("[ERROR] Failed to initialize database: %v\n", err)
		return
	}

	st, err := settings.NewStore(cfg.SettingsPath)
	if err != nil {
		fmt.Printf("[ERROR] Failed to load settings: %v\n", err)
		return
	}

	// One-shot mode: classify a single payload
	if *scan != "" {
		res := extract.Parse(*scan)
		if st.Get().SaveHistory {
			if err := storage.Save(res); err != nil {
				fmt.Printf("[ERROR] Failed to save result: %v\n", err)
			}
		}

		out, _ := json.MarshalIndent(res, "", "  ")
		fmt.Println(string(out))
		fmt.Println("\nActions:")
		for _, a := range actions.ActionsFor(res) {
			fmt.Printf("  - %s (%s)\n", a.Label, a.Op)
		}
	}

	// Batch mode: import payload files
	if cfg.ImportRoot != "" {
		fmt.Printf("Importing payloads from: %s\n", cfg.ImportRoot)
		fmt.Printf("Workers: %d\n", cfg.Workers)

		start := time.Now()
		persist := storage.Save
		if !st.Get().SaveHistory {
			persist = nil
		}
		imp := importer.New(cfg, persist)
		imp.Start()
		imp.Wait()

		fmt.Printf("\nImport complete in %s\n", time.Since(start))

		jsonFile := "import_report.json"
		if err := imp.Report.SaveJSON(jsonFile); err != nil {
			fmt.Printf("Error saving JSON report: %v\n", err)
		} else {
			fmt.Printf("JSON report saved to: %s\n", jsonFile)
		}

		htmlFile := "import_report.html"
		if err := imp.Report.SaveHTML(htmlFile); err != nil {
			fmt.Printf("Error saving HTML report: %v\n", err)
		} else {
			fmt.Printf("HTML report saved to: %s\n", htmlFile)
		}
	}

	// Server mode
	if *serve {
		ex := actions.NewSystemExecutor(cfg.ContactsDir)
		srv := server.NewServer(cfg, st, ex)
		addr := fmt.Sprintf("0.0.0.0:%s", *port)
		fmt.Printf("\n[SERVER] Starting scan server at http://localhost:%s\n", *port)
		fmt.Println("Press Ctrl+C to stop")
		if err := srv.Start(addr); err != nil {
			fmt.Printf("Server error: %v\n", err)
		}
	} else if *scan == "" && cfg.ImportRoot == "" {
		fmt.Println("No action specified.")
		fmt.Println("Use -scan '<payload>' to classify a single payload.")
		fmt.Println("Use -import <dir> to import payload files.")
		fmt.Println("Use -serve to start the HTTP API.")
		flag.PrintDefaults()
	}
}
