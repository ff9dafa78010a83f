package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/lfmcastro/epggrid/pkg/storage"
)

// titlesCmd represents the titles command
var titlesCmd = &cobra.Command{
	Use:   "titles",
	Short: "Inspect the program-title database",
}

var titlesListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print every known program title",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := storage.Open(titlesDBPath())
		if err != nil {
			return err
		}
		defer db.Close()

		titles, err := db.Load(context.Background())
		if err != nil {
			return err
		}
		if len(titles) == 0 {
			fmt.Println("No titles in the database.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "UNIQUE ID\tTITLE\tTYPE\tGENRE")
		for _, t := range titles {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", t.UniqueID, t.Title, t.Type, t.Genre)
		}
		return w.Flush()
	},
}

var titlesStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print title database statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := storage.Open(titlesDBPath())
		if err != nil {
			return err
		}
		defer db.Close()

		n, err := db.Count(context.Background())
		if err != nil {
			return err
		}
		fmt.Printf("%d title(s) in %s\n", n, titlesDBPath())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(titlesCmd)
	titlesCmd.AddCommand(titlesListCmd)
	titlesCmd.AddCommand(titlesStatsCmd)
}
