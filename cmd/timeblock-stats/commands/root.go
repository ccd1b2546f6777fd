package commands

import (
	"bytes"
	"encoding/json"
	"fmt"

	"timeblock-stats/internal/blocks"
	"timeblock-stats/internal/config"
	"timeblock-stats/internal/logging"
	"timeblock-stats/internal/stats"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	// Version, Commit, and BuildDate are set at build time via ldflags.
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// NewRootCmd builds the timeblock-stats command. The report is written to
// the command's stdout only after the whole pipeline succeeded.
func NewRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "timeblock-stats <input_file>",
		Short: "Analyze time blocks and report productivity metrics",
		Long: `Reads a JSON array of time blocks, scores every block (efficiency, priority,
focus, energy), aggregates productivity metrics and prints a JSON report with
optimization suggestions.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				cmd.PrintErr(cmd.UsageString())
				return fmt.Errorf("expected exactly one input file, got %d arguments", len(args))
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			logging.Init(cfg, verbose)

			log.Debug().
				Str("version", Version).
				Str("commit", Commit).
				Str("buildDate", BuildDate).
				Msg("timeblock-stats starting")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := blocks.Load(args[0])
			if err != nil {
				log.Error().Err(err).Str("path", args[0]).Msg("Failed to load time blocks")
				return err
			}

			report := stats.NewAnalyzer().Analyze(items)

			data, err := encodeReport(report)
			if err != nil {
				return fmt.Errorf("encode report: %w", err)
			}
			if _, err := cmd.OutOrStdout().Write(data); err != nil {
				return fmt.Errorf("write report: %w", err)
			}

			log.Info().
				Int("blocks", len(report.ProcessedBlocks)).
				Float64("totalEfficiency", report.TotalEfficiency).
				Msg("Report written")
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	return cmd
}

// encodeReport renders the report as indented JSON followed by a newline.
func encodeReport(report stats.Report) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(report); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Execute runs the root command against the process arguments.
func Execute() error {
	return NewRootCmd().Execute()
}
