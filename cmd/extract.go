package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lfmcastro/epggrid/internal/runner"
	"github.com/lfmcastro/epggrid/pkg/report"
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract FILE.pdf...",
	Short: "Extract a clean, standardized schedule from PDF grids",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")
		allowUnmapped, _ := cmd.Flags().GetBool("allow-unmapped")

		res := <-runner.Go(func() (string, error) {
			rows, err := extractClean(args, allowUnmapped)
			if err != nil {
				return "", err
			}
			if err := report.WriteCleanSchedule(out, rows); err != nil {
				return "", err
			}
			return fmt.Sprintf("extracted %d rows to %s", len(rows), out), nil
		})
		if res.Err != nil {
			return res.Err
		}
		fmt.Println(res.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)
	extractCmd.Flags().StringP("out", "o", "clean_schedule.xlsx", "Output workbook path")
	extractCmd.Flags().Bool("allow-unmapped", false, "Proceed even when some program names have no mapping entry")
}
