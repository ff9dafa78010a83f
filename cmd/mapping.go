package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lfmcastro/epggrid/pkg/mapping"
	"github.com/lfmcastro/epggrid/pkg/schedule"
)

// mappingCmd represents the mapping command
var mappingCmd = &cobra.Command{
	Use:   "mapping",
	Short: "Manage the raw-to-standardized program name table",
}

var mappingPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the current mapping file location",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(mappingPath())
		return nil
	},
}

var mappingSetPathCmd = &cobra.Command{
	Use:   "set-path FILE",
	Short: "Point the tool at a different mapping file and persist the choice",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		viper.Set("mapping.path", args[0])
		if err := viper.WriteConfig(); err != nil {
			// first run may not have a registered config file yet
			home, herr := homedir.Dir()
			if herr != nil {
				return fmt.Errorf("failed to persist mapping path: %w", err)
			}
			if err := viper.WriteConfigAs(filepath.Join(home, ".epggrid.yaml")); err != nil {
				return fmt.Errorf("failed to persist mapping path: %w", err)
			}
		}
		fmt.Printf("mapping file set to %s\n", args[0])
		return nil
	},
}

var mappingListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the mapping table",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, table, err := openMappingTable()
		if err != nil {
			return err
		}
		if len(table.Entries) == 0 {
			fmt.Println("mapping table is empty")
			return nil
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "RAW NAME\tSTANDARDIZED NAME")
		for _, e := range table.Entries {
			fmt.Fprintf(w, "%s\t%s\n", e.RawName, e.StandardizedName)
		}
		return w.Flush()
	},
}

var mappingAddCmd = &cobra.Command{
	Use:   "add RAW STANDARDIZED",
	Short: "Add or replace one mapping entry",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, table, err := openMappingTable()
		if err != nil {
			return err
		}

		raw, std := args[0], args[1]
		replaced := false
		for i, e := range table.Entries {
			if schedule.Normalize(e.RawName) == schedule.Normalize(raw) {
				table.Entries[i] = mapping.Entry{RawName: raw, StandardizedName: std}
				replaced = true
				break
			}
		}
		if !replaced {
			table.Entries = append(table.Entries, mapping.Entry{RawName: raw, StandardizedName: std})
		}

		if err := store.Save(table); err != nil {
			return err
		}
		if replaced {
			fmt.Printf("replaced mapping for %q\n", raw)
		} else {
			fmt.Printf("added mapping %q -> %q\n", raw, std)
		}
		return nil
	},
}

var mappingUnmappedCmd = &cobra.Command{
	Use:   "unmapped FILE.pdf...",
	Short: "List program names in the given PDFs that have no mapping entry",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, table, err := openMappingTable()
		if err != nil {
			return err
		}

		rows := schedule.ExtractRows(args)
		if len(rows) == 0 {
			return schedule.ErrEmptyBatch
		}
		names := make([]string, len(rows))
		for i, r := range rows {
			names[i] = r.RawName
		}

		unmapped := mapping.FindUnmappedRaw(names, table)
		if len(unmapped) == 0 {
			fmt.Println("all program names are mapped")
			return nil
		}
		for _, name := range unmapped {
			fmt.Println(name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mappingCmd)
	mappingCmd.AddCommand(mappingPathCmd)
	mappingCmd.AddCommand(mappingSetPathCmd)
	mappingCmd.AddCommand(mappingListCmd)
	mappingCmd.AddCommand(mappingAddCmd)
	mappingCmd.AddCommand(mappingUnmappedCmd)
}
