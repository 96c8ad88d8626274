// Command create-endpoint scaffolds a Next.js App Router route handler.
//
// Usage:
//
//	create-endpoint <endpoint-path> <METHOD> [--protected]
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"create-endpoint/internal/config"
	"create-endpoint/internal/logger"
	"create-endpoint/internal/model"
	"create-endpoint/internal/scaffold"
)

const appVersion = "1.0.0"

const usageText = `Usage: create-endpoint <endpoint-path> <METHOD> [--protected]

Arguments:
  endpoint-path   Path segments (e.g., 'dashboard/data' or 'ingest/poll')
  METHOD          HTTP method (GET or POST)
  --protected     Make endpoint require %s authentication

Flags:
  --dry-run           Print the route file instead of writing it
  -c, --config FILE   Configuration file (default %s)
  --base-url URL      Base URL used for the printed endpoint URL
  --log-file FILE     Also write logs to FILE
  -v, --verbose       Enable verbose logging (DEBUG level)

Examples:
  create-endpoint dashboard/stats GET
  create-endpoint ingest/refresh POST --protected
`

type options struct {
	protected  bool
	dryRun     bool
	configPath string
	verbose    bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run executes the command and maps its outcome onto a process exit code
func run(args []string, stdout io.Writer) int {
	cmd := newRootCmd(stdout)
	cmd.SetArgs(args)

	err := cmd.Execute()
	defer logger.Close()

	if err == nil {
		return 0
	}

	var (
		methodErr *model.InvalidMethodError
		rootErr   *model.ProjectRootError
	)
	switch {
	case errors.Is(err, model.ErrUsage):
		if msg := err.Error(); msg != "" {
			fmt.Fprintf(stdout, "Error: %s\n\n", msg)
		}
		printUsage(stdout, secretEnvFor(cmd))
	case errors.As(err, &methodErr):
		fmt.Fprintf(stdout, "Error: Method must be GET or POST (got %q)\n", methodErr.Method)
	case errors.As(err, &rootErr):
		fmt.Fprintf(stdout, "Error: Must run from project root (directory containing '%s/')\n", rootErr.Marker)
	default:
		// WriteError and configuration failures
		fmt.Fprintf(stdout, "Error: %v\n", err)
	}
	return 1
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "create-endpoint <endpoint-path> <METHOD>",
		Short:         "Scaffold a Next.js API route handler",
		Version:       appVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return &model.UsageError{}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return create(cmd, opts, args, stdout)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stdout)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &model.UsageError{Reason: err.Error()}
	})
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		printUsage(stdout, secretEnvFor(c))
	})

	flags := cmd.Flags()
	flags.BoolVar(&opts.protected, "protected", false, "Require bearer secret authentication")
	flags.BoolVar(&opts.dryRun, "dry-run", false, "Print the route file instead of writing it")
	flags.StringVarP(&opts.configPath, "config", "c", "", "Configuration file")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose logging (DEBUG level)")
	flags.String("base-url", "", "Base URL used for the printed endpoint URL")
	flags.String("log-file", "", "Also write logs to this file")

	return cmd
}

func create(cmd *cobra.Command, opts *options, args []string, stdout io.Writer) error {
	// Validate input before anything else can touch the filesystem.
	spec, err := model.NewEndpointSpec(args[0], args[1], opts.protected)
	if err != nil {
		return err
	}

	cfg, err := config.Load(opts.configPath, cmd.Flags())
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := logger.Init(cfg.LoggerOptions(stdout, opts.verbose)); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger.Debug("Configuration: %s", orDefault(cfg.Source, "defaults"))
	if len(args) > 2 {
		logger.Debug("Ignoring extra arguments: %v", args[2:])
	}

	// Only the result summary goes to stdout.
	s := scaffold.New(cfg, scaffold.Quiet())

	if opts.dryRun {
		res, err := s.Preview(spec)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "// %s\n", res.RelPath)
		fmt.Fprint(stdout, res.Content)
		return nil
	}

	res, err := s.Create(spec)
	if err != nil {
		return err
	}

	printResult(stdout, res)
	return nil
}

func printResult(w io.Writer, res *scaffold.Result) {
	fmt.Fprintf(w, "✅ Created endpoint: %s\n", res.RelPath)
	fmt.Fprintf(w, "   Method: %s\n", res.Method)
	fmt.Fprintf(w, "   Protected: %t\n", res.Protected)
	fmt.Fprintf(w, "   URL: %s\n", res.URL)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Next steps:")
	fmt.Fprintln(w, "1. Customize the validation schema")
	fmt.Fprintln(w, "2. Import and call the appropriate service")
	fmt.Fprintln(w, "3. Update error handling as needed")
	fmt.Fprintln(w, "4. Test the endpoint locally")
}

// secretEnvFor names the variable --protected checks, as configured for cmd.
// Usage errors can precede a valid configuration, so any failure falls back
// to the default.
func secretEnvFor(cmd *cobra.Command) string {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath, cmd.Flags())
	if err != nil || cfg.Validate() != nil {
		return config.DefaultSecretEnv
	}
	return cfg.Template.SecretEnv
}

func printUsage(w io.Writer, secretEnv string) {
	fmt.Fprintf(w, usageText, secretEnv, config.DefaultConfigFile)
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
