package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"polystat/internal/config"
	"polystat/internal/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "polystat",
		Short:         "Area and vertex statistics over a list of polygons",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(queryCmd())
	rootCmd.AddCommand(reportCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(serveCmd())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// setup loads configuration and builds the logger shared by every subcommand
func setup() (config.Config, *logger.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return cfg, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return cfg, nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return cfg, log, nil
}

func queryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "query [polygons-file]",
		Short: "Read polygons from a file, then answer commands from stdin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, log, err := setup()
			if err != nil {
				return err
			}
			defer log.Sync()

			return runQuery(cmd.Context(), args[0], cmd.InOrStdin(), cmd.OutOrStdout(), log)
		},
	}
}

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report [polygons-file]",
		Short: "Print every statistic for a polygon file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup()
			if err != nil {
				return err
			}
			defer log.Sync()

			return runReport(args[0], cfg.ReportFormat, cmd.OutOrStdout(), log)
		},
	}

	cmd.Flags().StringP("format", "f", config.DefaultReportFormat, "Output format: text, yaml or json")
	_ = viper.BindPFlag("REPORT_FORMAT", cmd.Flags().Lookup("format"))
	return cmd
}

func exportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export [polygons-file]",
		Short: "Write the polygons as a GeoJSON FeatureCollection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, log, err := setup()
			if err != nil {
				return err
			}
			defer log.Sync()

			return runExport(args[0], output, cmd.OutOrStdout(), log)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	return cmd
}

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the statistics API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := setup()
			if err != nil {
				return err
			}
			defer log.Sync()

			return runServe(cmd.Context(), cfg, log)
		},
	}

	cmd.Flags().StringP("port", "p", config.DefaultPort, "HTTP listen address")
	_ = viper.BindPFlag("PORT", cmd.Flags().Lookup("port"))
	return cmd
}
