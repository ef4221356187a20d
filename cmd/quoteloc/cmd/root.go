package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"quoteloc/internal/config"
	"quoteloc/internal/core"
	"quoteloc/internal/locate"
	"quoteloc/internal/logging"
	"quoteloc/internal/report"
)

// Version is set at build time.
var Version = "0.1.0"

// configKey is used to store config in context.
type configKey struct{}

// NewRootCmd creates the base command: scan one file and print every single quote.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "quoteloc [file]",
		Short: "Report the line and column of every single quote in a text file",
		Long: `quoteloc reads a UTF-8 text file, finds every single quote character,
and prints a total followed by "<line>:<column>: <line text>" for each one.`,
		Args:    cobra.MaximumNArgs(1),
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			logger := logging.New(cmd.ErrOrStderr(), cfg.Verbose)
			if cfg.FileUsed != "" {
				logger.Debug("using config file", "path", cfg.FileUsed)
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx = context.WithValue(ctx, configKey{}, cfg)
			cmd.SetContext(logging.WithLogger(ctx, logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			res, cfg, err := scanFromArgs(cmd, args)
			if err != nil {
				return err
			}
			format, err := report.ParseFormat(cfg.Output)
			if err != nil {
				return err
			}
			color, err := report.ParseColorMode(cfg.Color)
			if err != nil {
				return err
			}
			return report.NewRenderer(cmd.OutOrStdout(), format, color).Render(res)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./quoteloc.yaml)")
	rootCmd.PersistentFlags().String("path", "", "file to scan when no argument is given")
	rootCmd.PersistentFlags().String("columns", config.DefaultColumns, "column unit (rune|byte|grapheme)")
	rootCmd.PersistentFlags().StringP("output", "o", config.DefaultOutput, "output format (text|json)")
	rootCmd.PersistentFlags().String("color", config.DefaultColor, "highlight matches (auto|always|never)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose logging to stderr")

	_ = rootCmd.RegisterFlagCompletionFunc("columns", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return locate.UnitNames(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return report.FormatNames(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("color", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return report.ColorNames(), cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(newBrowseCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the root command and prints any error to stderr.
// This is called by main.main().
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// getConfig retrieves the config stored by PersistentPreRunE.
func getConfig(ctx context.Context) *config.Config {
	if c, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return c
	}
	return &config.Config{
		Columns: config.DefaultColumns,
		Output:  config.DefaultOutput,
		Color:   config.DefaultColor,
	}
}

// scanFromArgs resolves the input path (argument first, then config) and scans it.
func scanFromArgs(cmd *cobra.Command, args []string) (*core.Result, *config.Config, error) {
	ctx := cmd.Context()
	cfg := getConfig(ctx)

	path := cfg.Path
	if len(args) == 1 {
		path = args[0]
	}

	unit, err := locate.ParseUnit(cfg.Columns)
	if err != nil {
		return nil, nil, err
	}

	res, err := core.Scan(ctx, path, core.Target, unit)
	if err != nil {
		return nil, nil, err
	}
	return res, cfg, nil
}
