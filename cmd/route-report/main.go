// Command route-report inventories the route handlers of a Next.js App Router project and
// exports them as Excel, HTML, Word and OpenAPI documents.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"create-endpoint/internal/analyzer"
	"create-endpoint/internal/config"
	"create-endpoint/internal/exporter"
	"create-endpoint/internal/logger"
	"create-endpoint/internal/model"
	"create-endpoint/internal/resolver"
	"create-endpoint/internal/ui"
)

const appVersion = "1.0.0"

type options struct {
	configPath string
	verbose    bool
	quiet      bool
	formats    []string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	cmd := newRootCmd(stdout)
	cmd.SetArgs(args)
	defer logger.Close()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stdout, "❌ %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "route-report",
		Short:         "Export an inventory of app/api route handlers",
		Version:       appVersion,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return report(cmd, opts, stdout)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stdout)

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Configuration file (default "+config.DefaultConfigFile+")")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose logging (DEBUG level)")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "Hide progress bars")
	flags.StringSliceVar(&opts.formats, "format", exporter.DefaultFormats, "Output formats (excel,html,word,json)")
	flags.String("output", "", "Override output directory from config")
	flags.String("base-url", "", "Server URL written into the OpenAPI document")
	flags.String("log-file", "", "Also write logs to this file")

	return cmd
}

func report(cmd *cobra.Command, opts *options, stdout io.Writer) error {
	cfg, err := config.Load(opts.configPath, cmd.Flags())
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := logger.Init(cfg.LoggerOptions(stdout, opts.verbose)); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if opts.verbose {
		cfg.Print(stdout)
	}

	exporters, unknown := exporter.GetExporters(opts.formats)
	for _, name := range unknown {
		logger.Warn("Unknown format %q ignored", name)
	}
	if len(exporters) == 0 {
		return fmt.Errorf("no valid format in %q", strings.Join(opts.formats, ","))
	}

	// Same project-root rule as create-endpoint
	if err := resolver.New(resolver.LayoutFromConfig(cfg)).CheckProjectRoot(cfg.Project.RootDir); err != nil {
		return err
	}

	if err := cfg.EnsureOutputDir(); err != nil {
		return err
	}

	printBanner(stdout)
	if err := runReport(cfg, exporters, opts.quiet, stdout); err != nil {
		return err
	}

	logger.Info("✅ Report Complete. Check [%s] directory.", cfg.Output.Dir)
	return nil
}

func runReport(cfg *config.Config, exporters []exporter.Exporter, quiet bool, stdout io.Writer) error {
	pipeline := ui.NewPipeline(stdout, ui.ReportPhases...)
	if quiet {
		pipeline.Disable()
	}
	defer pipeline.Finish()

	var (
		files  []string
		routes []model.RouteDef
	)

	// --- Phase 1: Scanning ---
	logger.Info("Phase 1: Scanning %s...", cfg.APIRoot())
	err := pipeline.Run(1, func(bar *ui.Bar) error {
		var err error
		files, err = analyzer.ScanRoutes(cfg.APIRoot(), cfg.Project.RouteFile, cfg.ShouldExclude)
		if err != nil {
			return err
		}
		return bar.Increment()
	})
	if err != nil {
		return err
	}
	logger.Info("Found %d route files", len(files))

	// --- Phase 2: Parsing ---
	logger.Info("Phase 2: Parsing route files...")
	err = pipeline.Run(len(files), func(bar *ui.Bar) error {
		routes = make([]model.RouteDef, 0, len(files))
		for _, file := range files {
			bar.Describe(filepath.Base(filepath.Dir(file)))
			route, err := analyzer.LoadRoute(cfg, file)
			if err != nil {
				logger.ScanError(file, err, "load route")
				logger.Warn("Failed to read route file %s: %v", file, err)
			} else {
				routes = append(routes, *route)
			}
			if err := bar.Increment(); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	summary := analyzer.BuildSummary(routes)
	logger.Info("Inventory: %s", summary)

	// --- Phase 3: Reporting ---
	logger.Info("Phase 3: Generating Reports...")
	var exportErrs []error
	err = pipeline.Run(len(exporters), func(bar *ui.Bar) error {
		for _, exp := range exporters {
			if err := exp.Export(summary, routes, cfg); err != nil {
				logger.Error("Export failed: %v", err)
				exportErrs = append(exportErrs, err)
			}
			if err := bar.Increment(); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	if len(exportErrs) > 0 {
		return fmt.Errorf("%d of %d exports failed: %w", len(exportErrs), len(exporters), errors.Join(exportErrs...))
	}
	return nil
}

func printBanner(w io.Writer) {
	banner := `
╔═══════════════════════════════════════════════════════════╗
║                    ROUTE REPORT v1.0.0                    ║
║          Inventory of Next.js App Router handlers         ║
╚═══════════════════════════════════════════════════════════╝
`
	fmt.Fprintln(w, banner)
}
