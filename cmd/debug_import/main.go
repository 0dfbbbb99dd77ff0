// Command debug_import walks an inventory file through each import stage and
// reports what happens to every row, without saving anything.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"inventory-manager/core/config"
	"inventory-manager/core/database"
	"inventory-manager/core/reconcile"
	"inventory-manager/core/utils"
	"inventory-manager/feature/inventory"

	"go.uber.org/zap"
)

type rowReport struct {
	Line   int               `json:"line"`
	Fields map[string]string `json:"fields"`
	Error  string            `json:"error,omitempty"`
}

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal(err)
	}

	path := cfg.Inventory.ImportFile
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	// Test 1: File
	fmt.Println("=== TEST 1: File ===")
	checksum, err := utils.FileChecksum(path)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("File: %s\nChecksum: %s\n", path, checksum)

	// Test 2: Rows
	fmt.Println("\n=== TEST 2: Rows ===")
	rows, err := inventory.ReadRows(path)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Data rows read: %d\n", len(rows))

	// Test 3: Parsing
	fmt.Println("\n=== TEST 3: Parsing ===")
	reports := make([]rowReport, 0, len(rows))
	parsed := 0
	for _, row := range rows {
		report := rowReport{Line: row.Line, Fields: row.Fields}
		if _, err := inventory.ParseRow(row.Fields); err != nil {
			report.Error = err.Error()
			fmt.Printf("Row %d rejected: %v\n", row.Line, err)
		} else {
			parsed++
		}
		reports = append(reports, report)
	}
	fmt.Printf("Parsed: %d, rejected: %d\n", parsed, len(rows)-parsed)

	// Test 4: Dry run against the configured database
	fmt.Println("\n=== TEST 4: Dry Run ===")
	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatal(err)
	}
	defer database.Close(db)

	svc := inventory.NewService(db, cfg.Inventory, zap.NewNop())
	ctx := context.Background()
	if err := svc.Migrate(ctx); err != nil {
		log.Fatal(err)
	}
	summary, err := svc.Import(ctx, path, reconcile.Options{DryRun: true})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Would insert %d, update %d, skip %d, reject %d\n",
		summary.Inserted, summary.Updated, summary.Skipped, summary.Failed)

	output := map[string]any{
		"file":     path,
		"checksum": checksum,
		"rows":     reports,
		"summary":  summary,
	}
	data, _ := json.MarshalIndent(output, "", "  ")
	if err := os.WriteFile("debug_import.json", data, 0644); err != nil {
		log.Fatal(err)
	}

	fmt.Println("\nDebug complete. Check debug_import.json for details.")
}
