package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var cfgFile string

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "scout",
		Short: "Discover, dedupe, score, and rank event candidates from social sources",
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $SCOUT_CONFIG)")

	root.AddCommand(rankCmd())
	root.AddCommand(fixturesCmd())
	root.AddCommand(catalogCmd())

	return root
}

func rankCmd() *cobra.Command {
	var (
		location    string
		eventType   string
		strategy    string
		limit       int
		studentOnly bool
		jsonOutput  bool
		dataFiles   []string
		fixtures    int
	)

	cmd := &cobra.Command{
		Use:   "rank <query>",
		Short: "Rank events for a free-text query",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRank(rankParams{
				query:       joinArgs(args),
				location:    location,
				eventType:   eventType,
				strategy:    strategy,
				limit:       limit,
				studentOnly: studentOnly,
				jsonOutput:  jsonOutput,
				dataFiles:   dataFiles,
				fixtures:    fixtures,
			})
		},
	}

	cmd.Flags().StringVar(&location, "location", "", "location filter (derived from the query when empty)")
	cmd.Flags().StringVar(&eventType, "type", "", "event type hint (e.g. nightlife, social)")
	cmd.Flags().StringVar(&strategy, "strategy", "", "sort strategy: relevance or composite")
	cmd.Flags().IntVar(&limit, "limit", 0, "max results (default: from config)")
	cmd.Flags().BoolVar(&studentOnly, "student-only", false, "prefer the student-friendly view")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	cmd.Flags().StringSliceVar(&dataFiles, "data", nil, "JSON candidate files to use as sources")
	cmd.Flags().IntVar(&fixtures, "fixtures", 0, "also rank N generated fixture candidates")
	return cmd
}

func fixturesCmd() *cobra.Command {
	var (
		count  int
		output string
	)

	cmd := &cobra.Command{
		Use:   "fixtures",
		Short: "Generate a synthetic candidate dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFixtures(count, output)
		},
	}

	cmd.Flags().IntVar(&count, "count", 0, "number of candidates to generate (default: from config)")
	cmd.Flags().StringVar(&output, "output", "", "output file (default: stdout)")
	return cmd
}

func catalogCmd() *cobra.Command {
	var dataFiles []string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List candidates from data files, deduped and ordered by completeness",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalog(dataFiles)
		},
	}

	cmd.Flags().StringSliceVar(&dataFiles, "data", nil, "JSON candidate files to catalog")
	return cmd
}

func joinArgs(args []string) string {
	out := args[0]
	for _, a := range args[1:] {
		out += " " + a
	}
	return out
}
