package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lfmcastro/epggrid/internal/runner"
	"github.com/lfmcastro/epggrid/pkg/diff"
	"github.com/lfmcastro/epggrid/pkg/report"
	"github.com/lfmcastro/epggrid/pkg/schedule"
)

// compareCmd represents the compare command
var compareCmd = &cobra.Command{
	Use:   "compare FILE.pdf...",
	Short: "Diff the new schedule against last week's report",
	Long: `compare extracts the new schedule from the given PDFs, aligns each slot
with the prior report by weekday and time of day, and writes a copy of the
prior report with every slot classified as NEW, ALTERED or UNCHANGED.
Synopses and other extra columns of the prior report are carried forward by
program name.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prior, _ := cmd.Flags().GetString("prior")
		out, _ := cmd.Flags().GetString("out")
		allowUnmapped, _ := cmd.Flags().GetBool("allow-unmapped")

		res := <-runner.Go(func() (string, error) {
			rows, err := extractClean(args, allowUnmapped)
			if err != nil {
				return "", err
			}
			rows = schedule.AttachSlotKeys(rows)

			artifact, err := diff.ReadPrior(prior)
			if err != nil {
				return "", err
			}
			idx, err := diff.BuildIndex(artifact)
			if err != nil {
				return "", err
			}

			recs := diff.Classify(rows, idx)
			if err := report.WriteComparison(prior, out, recs, idx.Extras()); err != nil {
				return "", err
			}

			counts := map[diff.Status]int{}
			for _, r := range recs {
				counts[r.Status]++
			}
			return fmt.Sprintf("comparison saved to %s (%d new, %d altered, %d unchanged)",
				out, counts[diff.StatusNew], counts[diff.StatusAltered], counts[diff.StatusUnchanged]), nil
		})
		if res.Err != nil {
			return res.Err
		}
		fmt.Println(res.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)
	compareCmd.Flags().String("prior", "", "Prior week's report workbook (required)")
	compareCmd.Flags().StringP("out", "o", "comparison.xlsx", "Output workbook path")
	compareCmd.Flags().Bool("allow-unmapped", false, "Proceed even when some program names have no mapping entry")
	compareCmd.MarkFlagRequired("prior")
}
