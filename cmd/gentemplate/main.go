// Command gentemplate writes the built-in Word template used by route-report, so it can be
// restyled and passed back through report.word_template.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"create-endpoint/internal/exporter/word"
)

func main() {
	out := pflag.StringP("output", "o", "template.docx", "Output path")
	pflag.Parse()

	data, err := word.BuiltinTemplate()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build template: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*out, data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write %s: %v\n", *out, err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", *out)
}
