package commands

import (
	"fmt"

	"github.com/dyluth/products/internal/catalog"
	"github.com/dyluth/products/internal/config"
	"github.com/dyluth/products/internal/logging"
	"github.com/dyluth/products/internal/printer"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	version = "0.1.0"
	commit  = "none"
	date    = "unknown"
)

// rootOptions holds the global flags shared by every subcommand
type rootOptions struct {
	configPath string
	verbose    bool
}

// NewRootCmd builds the products command tree. A fresh tree is built per
// execution so flag state never leaks between runs.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "products",
		Short: "Products - a command-line inventory ledger",
		Long: `Products records goods (name, shop, cost) in a JSON file and
lists them as a table, optionally filtered by shop.

The ledger file is created on the first 'add'. Listing a file that does
not exist yet shows nothing.`,
		Version:       versionString(),
		Args:          rejectUnknownCommand,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")
	rootCmd.SetFlagErrorFunc(flagError)

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", fmt.Sprintf("Path to configuration file (default: ./%s if present)", config.DefaultFileName))
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging to stderr")

	rootCmd.AddCommand(
		newAddCmd(opts),
		newListCmd(opts),
		newSelectCmd(opts),
	)

	return rootCmd
}

// Execute builds the root command and runs it against os.Args.
// This is called by main.main().
func Execute() error {
	return NewRootCmd().Execute()
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}

func versionString() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date)
}

// env is the per-invocation state every subcommand works with
type env struct {
	config  *config.Config
	store   *catalog.Store
	printer *printer.Printer
	log     *zap.Logger
}

func (o *rootOptions) newEnv(cmd *cobra.Command) (*env, error) {
	p := printer.New(cmd.OutOrStdout(), cmd.ErrOrStderr())

	cfg, err := config.Resolve(o.configPath)
	if err != nil {
		path := o.configPath
		if path == "" {
			path = config.DefaultFileName
		}
		return nil, fail(p.ErrorWithContext(
			"could not load configuration",
			err.Error(),
			map[string]string{"Config": path},
			[]string{fmt.Sprintf("Fix the file or remove it to use defaults:\n  %s", path)},
		), err)
	}

	log := logging.New(cmd.ErrOrStderr(), o.verbose)
	log.Debug("configuration resolved",
		zap.String("command", cmd.Name()),
		zap.String("policy", string(cfg.Policy())),
	)

	return &env{
		config:  cfg,
		store:   catalog.NewStore(catalog.DefaultSchema(), cfg.Policy(), log),
		printer: p,
		log:     log,
	}, nil
}

func rejectUnknownCommand(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return nil
	}
	p := printer.New(cmd.OutOrStdout(), cmd.ErrOrStderr())
	return usageError(p, cmd, fmt.Sprintf("unknown command %q", args[0]),
		"Available commands: add, list, select.")
}

func flagError(cmd *cobra.Command, err error) error {
	p := printer.New(cmd.OutOrStdout(), cmd.ErrOrStderr())
	return usageError(p, cmd, "invalid arguments", err.Error())
}
