package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lfmcastro/epggrid/internal/runner"
	"github.com/lfmcastro/epggrid/pkg/report"
)

// consolidateCmd represents the consolidate command
var consolidateCmd = &cobra.Command{
	Use:   "consolidate LOG.csv...",
	Short: "Concatenate playout log files into one workbook sheet",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")
		sheet, _ := cmd.Flags().GetString("sheet")

		res := <-runner.Go(func() (string, error) {
			return report.ConsolidateLogs(args, out, sheet)
		})
		if res.Err != nil {
			return res.Err
		}
		fmt.Println(res.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(consolidateCmd)
	consolidateCmd.Flags().StringP("out", "o", "logs.xlsx", "Target workbook path")
	consolidateCmd.Flags().String("sheet", "Consolidated", "Sheet name to create or replace")
}
