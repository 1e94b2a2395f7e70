package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"stackwatch/internal/license"
	"stackwatch/internal/models"
	"stackwatch/internal/reporter"
	"stackwatch/internal/scanner"
	"stackwatch/internal/writer"
)

var (
	flagFormat   string
	flagOutput   string
	flagTier     string
	flagDepth    int
	flagWrite    bool
	flagSaveTier bool
)

// groupsPromoEnd gates the launch promotion: until this date every tier gets
// grouped output. Delete the constant and the single line reading it in
// runScan to end the promotion.
var groupsPromoEnd = time.Date(2026, time.December, 31, 23, 59, 59, 0, time.UTC)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "stackwatch [path]",
	Short: "Detect your project's stack and generate a grouped Dependabot configuration",
	Long: `stackwatch scans a project directory, detects which package ecosystems and
frameworks are in use, and generates a Dependabot configuration that batches
related packages into coherent review groups.

Supported ecosystems:
  - npm:     package.json
  - pip:     requirements.txt, pyproject.toml
  - cargo:   Cargo.toml
  - bundler: Gemfile, gems.rb
  - gomod:   go.mod

Only the manifest closest to the project root is used per ecosystem;
manifests of nested monorepo packages are not discovered.

Grouped output (per-framework update groups) is a pro/enterprise feature;
the free tier gets one ungrouped update entry per ecosystem.

Examples:
  # Inspect the current directory
  stackwatch

  # Write .github/dependabot.yml for a project
  stackwatch --write ./my-app

  # Grouped output with an explicit tier, printed as JSON
  stackwatch --tier pro --format json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(2)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&flagFormat, "format", "f", "terminal", "Output format: terminal, json")
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Write the report to a file (default: stdout)")
	rootCmd.Flags().StringVar(&flagTier, "tier", "", "Subscription tier: free, pro, enterprise (default: resolved from activation)")
	rootCmd.Flags().IntVar(&flagDepth, "depth", models.DefaultMaxDepth, "Maximum directory depth searched for manifests")
	rootCmd.Flags().BoolVarP(&flagWrite, "write", "w", false, "Write .github/dependabot.yml under the project root")
	rootCmd.Flags().BoolVar(&flagSaveTier, "save-tier", false, "Persist the resolved tier for future runs")
}

func runScan(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) == 1 {
		root = args[0]
	}

	store, err := license.NewStore(0)
	if err != nil {
		// Non-fatal: resolve without a store
		store = nil
	}
	tier, err := license.Resolve(flagTier, store)
	if err != nil {
		return err
	}
	if flagSaveTier && store != nil {
		if err := store.Save(tier); err != nil {
			return fmt.Errorf("failed to save tier: %w", err)
		}
	}

	opts := models.DefaultOptions(root)
	opts.MaxDepth = flagDepth
	opts.Tier = tier
	opts.GroupsForAllTiers = time.Now().Before(groupsPromoEnd)

	result, err := scanner.New(opts).Scan()
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	rep := reporter.Get(flagFormat)
	output, err := rep.Report(result)
	if err != nil {
		return fmt.Errorf("failed to generate report: %w", err)
	}

	if flagOutput != "" {
		if err := os.WriteFile(flagOutput, output, 0644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Report written to %s\n", flagOutput)
	} else {
		fmt.Print(string(output))
	}

	if flagWrite {
		if result.Config.Empty() {
			fmt.Fprintln(os.Stderr, "No supported manifests found; nothing to write.")
			return nil
		}
		path, err := writer.Write(root, result.Config)
		if err != nil {
			return fmt.Errorf("failed to write configuration: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Configuration written to %s\n", path)
	}

	return nil
}
