package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var dimCmd = &cobra.Command{
	Use:   "dim <unit>",
	Short: "Show the dimension vector of a unit",
	Long: `Prints the dimension vector and conversion rule of a unit.

Examples:
  physical dim newton
  physical dim °F`,
	Args: cobra.ExactArgs(1),
	RunE: runDim,
}

func init() {
	rootCmd.AddCommand(dimCmd)
}

func runDim(cmd *cobra.Command, args []string) error {
	reg, err := buildRegistry()
	if err != nil {
		return err
	}

	def, err := reg.Lookup(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "name:      %s\n", def.Name)
	fmt.Fprintf(out, "symbol:    %s\n", def.Symbol)
	fmt.Fprintf(out, "dimension: %s\n", def.Dimension)
	fmt.Fprintf(out, "scale:     %g\n", def.Scale)
	if def.IsAffine() {
		fmt.Fprintf(out, "offset:    %g\n", def.Offset)
	}
	if def.IsCanonical() {
		fmt.Fprintln(out, "canonical: yes")
	}
	return nil
}
