package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rgehrsitz/sharesplit/internal/calculation"
	"github.com/rgehrsitz/sharesplit/internal/compare"
	"github.com/rgehrsitz/sharesplit/internal/config"
	"github.com/rgehrsitz/sharesplit/internal/domain"
	"github.com/rgehrsitz/sharesplit/internal/output"
	"github.com/rgehrsitz/sharesplit/pkg/logger"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// errCalculationFailed marks a run whose report was printed but carries an engine error
var errCalculationFailed = errors.New("calculation failed")

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "sharesplit",
		Short: "Real-estate project share calculator",
		Long: `Split 100% of a project's equity and profit among developers, constructors,
investors and the property owner, under the negotiated (A) or the
value-weighted (B) allocation model.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(calculateCmd())
	root.AddCommand(validateCmd())
	root.AddCommand(compareCmd())
	root.AddCommand(exampleCmd())
	root.AddCommand(serveCmd())
	root.AddCommand(versionCmd())
	return root
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "sharesplit %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.Main.Path + " " + bi.GoVersion
	}
	return ""
}

// newEngine returns a distribution engine, logging to stderr at debug level when asked
func newEngine(cmd *cobra.Command) *calculation.DistributionEngine {
	engine := calculation.NewDistributionEngine()
	if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
		log := logger.New(logger.Config{Level: "debug", Pretty: true, Output: cmd.ErrOrStderr()})
		engine.SetLogger(logger.NewEngineLogger(log))
	}
	return engine
}

func calculateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calculate [scenario-file]",
		Short: "Calculate the share distribution of a scenario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scenario, err := config.NewInputParser().LoadFromFile(args[0])
			if err != nil {
				return err
			}

			if modelFlag, _ := cmd.Flags().GetString("model"); modelFlag != "" {
				s := scenario.WithModel(domain.ParseAllocationModel(modelFlag))
				scenario = &s
			}

			formatName, _ := cmd.Flags().GetString("format")
			f := output.GetFormatterByName(formatName)
			if f == nil {
				return fmt.Errorf("unknown output format %q (valid: %s)", formatName,
					strings.Join(append(output.AvailableFormatterNames(), output.AvailableFormatAliases()...), ", "))
			}

			dist, calcErr := newEngine(cmd).Compute(scenario)
			report := output.NewReport(scenario, dist, calcErr)

			if dir, _ := cmd.Flags().GetString("output"); dir != "" {
				path, err := output.WriteFormattedTo(dir, f, report, output.ExtensionFor(f))
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", path)
			} else {
				data, err := f.Format(report)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), string(data))
			}

			if calcErr != nil {
				return fmt.Errorf("%w: %s", errCalculationFailed, domain.BannerMessage(calcErr))
			}
			return nil
		},
	}
	cmd.Flags().StringP("format", "f", "console-lite", "Output format (console-lite, console, csv, json, json-compact, html)")
	cmd.Flags().StringP("output", "o", "", "Write the report into this directory instead of stdout")
	cmd.Flags().StringP("model", "m", "", "Override the allocation model (A/negotiated, B/value_weighted)")
	cmd.Flags().Bool("debug", false, "Enable debug logging of the calculation")
	return cmd
}

func validateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [scenario-file]",
		Short: "Validate a scenario file and check its share budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scenario, err := config.NewInputParser().LoadFromFile(args[0])
			if err != nil {
				return err
			}

			dist, err := newEngine(cmd).Compute(scenario)
			if err != nil {
				return fmt.Errorf("scenario %s cannot be distributed: %s", args[0], domain.BannerMessage(err))
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Scenario file %s is valid\n", args[0])
			for _, w := range dist.Warnings {
				fmt.Fprintf(out, "WARNING: %s\n", w)
			}

			if dist.Meta.Model == domain.ModelNegotiated {
				// fixed pools only; base shares take whatever the pools leave
				check, err := calculation.ValidateShareBudget(nil, scenario.Bonuses, scenario.Project, decimal.Zero)
				if err != nil {
					return fmt.Errorf("scenario %s cannot be distributed: %s", args[0], domain.BannerMessage(err))
				}
				fmt.Fprintf(out, "Fixed pools: role %s%% + property %s%% = %s%%\n",
					check.RolePools.StringFixed(2), check.PropertyShares.StringFixed(2), check.Total.StringFixed(2))
				if check.Warning != "" {
					fmt.Fprintf(out, "WARNING: %s\n", check.Warning)
				}
			}
			return nil
		},
	}
	cmd.Flags().Bool("debug", false, "Enable debug logging of the calculation")
	return cmd
}

func compareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare [scenario-file]",
		Short: "Compare the negotiated and value-weighted models on one scenario",
		Long: `Run both allocation models over the same inputs and show, per participant,
how equity, profit and final value move between them.

Examples:
  sharesplit compare scenario.yaml
  sharesplit compare scenario.yaml --format csv
  sharesplit compare scenario.yaml --compact
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scenario, err := config.NewInputParser().LoadFromFile(args[0])
			if err != nil {
				return err
			}

			comparisonSet, err := compare.NewCompareEngine(newEngine(cmd)).Compare(context.Background(), scenario)
			if err != nil {
				return fmt.Errorf("comparison failed: %w", err)
			}
			comparisonSet.ConfigPath = args[0]

			out := cmd.OutOrStdout()
			outputFormat, _ := cmd.Flags().GetString("format")
			if compact, _ := cmd.Flags().GetBool("compact"); compact {
				fmt.Fprintln(out, (&compare.TableFormatter{}).FormatCompact(comparisonSet))
				return nil
			}

			switch strings.ToLower(outputFormat) {
			case "csv":
				text, err := (&compare.CSVFormatter{}).Format(comparisonSet)
				if err != nil {
					return fmt.Errorf("failed to format CSV: %w", err)
				}
				fmt.Fprint(out, text)
			case "json":
				text, err := (&compare.JSONFormatter{Pretty: true}).Format(comparisonSet)
				if err != nil {
					return fmt.Errorf("failed to format JSON: %w", err)
				}
				fmt.Fprintln(out, text)
			case "table", "console", "":
				fmt.Fprint(out, (&compare.TableFormatter{}).Format(comparisonSet))
			default:
				return fmt.Errorf("unknown output format: %s (valid: table, csv, json)", outputFormat)
			}
			return nil
		},
	}
	cmd.Flags().StringP("format", "f", "table", "Output format (table, csv, json)")
	cmd.Flags().Bool("compact", false, "Print a one-line summary")
	cmd.Flags().Bool("debug", false, "Enable debug logging of the calculation")
	return cmd
}

func exampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example [output-file]",
		Short: "Write an example scenario file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(args[0]); err == nil {
				return fmt.Errorf("%s already exists", args[0])
			}
			data, err := exampleYAML()
			if err != nil {
				return err
			}
			if err := os.WriteFile(args[0], data, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example scenario written to %s\n", args[0])
			return nil
		},
	}
}

func exampleYAML() ([]byte, error) {
	var sb strings.Builder
	enc := yaml.NewEncoder(&sb)
	enc.SetIndent(2)
	if err := enc.Encode(exampleScenario()); err != nil {
		return nil, fmt.Errorf("failed to encode example: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return []byte(sb.String()), nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errCalculationFailed) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
