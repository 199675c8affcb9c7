package main

import (
	"fmt"
	"os"

	"github.com/coolbeans/factscore/pkg/instrument"
	"github.com/coolbeans/factscore/pkg/scoring"
	"github.com/coolbeans/factscore/pkg/summary"
	"github.com/coolbeans/factscore/pkg/table"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "factscore",
		Short: "FACT questionnaire scoring",
		Long: `Factscore computes standardized FACT-G and FACT-E scores from raw
questionnaire responses.

It reads a CSV with one row per respondent and one column per item,
applies reverse-coding and the FACT scoring manual's completeness
thresholds, and writes the per-item scores, subscale scores, and
composite totals alongside the raw items.`,
		Version: version,
	}

	rootCmd.AddCommand(scoreCmd("factg", instrument.FACTG()))
	rootCmd.AddCommand(scoreCmd("facte", instrument.FACTE()))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func scoreCmd(use string, inst instrument.Instrument) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: fmt.Sprintf("Compute %s scores from a CSV of raw responses", inst.Name),
		Long: fmt.Sprintf(`Compute %s subscale scores and totals.

Item columns absent from the input are treated as unanswered for every
respondent. A respondent below a completeness threshold gets an empty
cell for that score, never a zero.

Example:
  factscore %s --input responses.csv --output scored.csv`, inst.Name, use),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, _ := cmd.Flags().GetString("input")
			output, _ := cmd.Flags().GetString("output")
			return runScore(inst, input, output)
		},
	}
	cmd.Flags().String("input", "", "Path to input CSV file (required)")
	cmd.Flags().String("output", "", "Path to output CSV file (required)")
	cmd.MarkFlagRequired("input")
	cmd.MarkFlagRequired("output")
	return cmd
}

func runScore(inst instrument.Instrument, input, output string) error {
	fmt.Printf("Reading input file: %s\n", input)
	t, err := table.ReadCSV(input)
	if err != nil {
		return err
	}

	fmt.Printf("Extracting %s relevant columns\n", inst.Name)
	fmt.Printf("Calculating %s scores\n", inst.Name)
	scored, err := scoring.Score(t, inst)
	if err != nil {
		return err
	}

	fmt.Printf("Saving results to: %s\n", output)
	if err := scored.WriteCSV(output); err != nil {
		return err
	}
	fmt.Printf("%s scoring completed successfully!\n", inst.Name)

	names := inst.SummaryColumns()
	stats := make([]summary.Stats, len(names))
	for i, name := range names {
		stats[i] = summary.Describe(scored.Floats(name))
	}
	fmt.Println("\nSummary Statistics:")
	return summary.Render(os.Stdout, names, stats)
}
