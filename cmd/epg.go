package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lfmcastro/epggrid/internal/runner"
	"github.com/lfmcastro/epggrid/internal/utils"
	"github.com/lfmcastro/epggrid/pkg/grid"
	"github.com/lfmcastro/epggrid/pkg/report"
	"github.com/lfmcastro/epggrid/pkg/schedule"
	"github.com/lfmcastro/epggrid/pkg/storage"
)

// epgCmd represents the epg command
var epgCmd = &cobra.Command{
	Use:   "epg FILE.pdf...",
	Short: "Generate the visual EPG workbook (merged time grid + title database)",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")
		allowUnmapped, _ := cmd.Flags().GetBool("allow-unmapped")

		res := <-runner.Go(func() (string, error) {
			rows, err := extractClean(args, allowUnmapped)
			if err != nil {
				return "", err
			}

			g, err := grid.Build(rows)
			if err != nil {
				return "", err
			}

			db, err := storage.Open(titlesDBPath())
			if err != nil {
				return "", err
			}
			defer db.Close()

			ctx := context.Background()
			added, err := db.UpsertNewTitles(ctx, slugsOf(rows), titlesOf(rows))
			if err != nil {
				return "", err
			}
			if added > 0 {
				utils.Log.Infof("added %d new title(s) to the database", added)
			}

			titles, err := db.Load(ctx)
			if err != nil {
				return "", err
			}
			if err := report.WriteEPG(out, g, titles); err != nil {
				return "", err
			}
			return fmt.Sprintf("EPG saved to %s (%d dates, %d titles)", out, len(g.Dates), len(titles)), nil
		})
		if res.Err != nil {
			return res.Err
		}
		fmt.Println(res.Message)
		return nil
	},
}

func slugsOf(rows []schedule.CleanRow) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = schedule.Slugify(r.Program)
	}
	return out
}

func titlesOf(rows []schedule.CleanRow) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Program
	}
	return out
}

func init() {
	rootCmd.AddCommand(epgCmd)
	epgCmd.Flags().StringP("out", "o", "epg.xlsx", "Output workbook path")
	epgCmd.Flags().Bool("allow-unmapped", false, "Proceed even when some program names have no mapping entry")
}
