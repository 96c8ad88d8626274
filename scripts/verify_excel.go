// verify_excel checks a route-report workbook: every handler row in "Route Detail" must name a
// known HTTP method, a URL under the API prefix, and an auth label.
//
//	go run ./scripts output/route-report.xlsx
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"
)

var knownMethods = map[string]bool{
	"GET": true, "HEAD": true, "POST": true, "PUT": true, "PATCH": true, "DELETE": true, "OPTIONS": true,
}

func main() {
	// Check which file to verify
	filename := "output/route-report.xlsx"
	if len(os.Args) > 1 {
		filename = os.Args[1]
	}

	f, err := excelize.OpenFile(filename)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	sheetName := "Route Detail"
	rows, err := f.GetRows(sheetName)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("=== ROUTE DETAIL CHECK: %s ===\n", filename)
	fmt.Printf("Checking sheet: %s\n", sheetName)
	fmt.Printf("Total rows: %d\n\n", len(rows))

	problems := 0
	checked := 0

	for i, row := range rows {
		if i == 0 {
			continue // Skip header
		}
		if len(row) == 0 {
			fmt.Printf("❌ EMPTY ROW at row %d\n", i+1)
			problems++
			continue
		}

		// Section header rows look like "[dashboard]"
		if strings.HasPrefix(row[0], "[") {
			continue
		}
		checked++

		cell := func(idx int) string {
			if idx < len(row) {
				return strings.TrimSpace(row[idx])
			}
			return ""
		}

		url, method, auth := cell(1), cell(2), cell(3)
		if !strings.HasPrefix(url, "/") {
			fmt.Printf("❌ BAD URL at row %d: %q\n", i+1, url)
			problems++
		}
		if method != "" && !knownMethods[method] {
			fmt.Printf("❌ UNKNOWN METHOD at row %d: %q\n", i+1, method)
			problems++
		}
		if auth != "Bearer" && auth != "Public" {
			fmt.Printf("❌ BAD AUTH LABEL at row %d: %q\n", i+1, auth)
			problems++
		}
	}

	fmt.Printf("\nChecked %d handler rows\n", checked)

	if problems > 0 {
		fmt.Printf("❌ FAILED: Found %d problems!\n", problems)
		os.Exit(1)
	}
	fmt.Printf("✅ PASSED: Route Detail is consistent\n")
}
