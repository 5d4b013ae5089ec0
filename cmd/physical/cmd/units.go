package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var unitsCmd = &cobra.Command{
	Use:   "units",
	Short: "List all registered units",
	Args:  cobra.NoArgs,
	RunE:  runUnits,
}

func init() {
	rootCmd.AddCommand(unitsCmd)
}

func runUnits(cmd *cobra.Command, args []string) error {
	reg, err := buildRegistry()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSYMBOL\tDIMENSION\tSCALE\tOFFSET")
	for _, def := range reg.Units() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%g\t%g\n",
			def.Name, def.Symbol, def.Dimension, def.Scale, def.Offset)
	}
	return w.Flush()
}
