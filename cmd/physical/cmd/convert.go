package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/BhaskerGarudadri/Physical/quantity"
	"github.com/BhaskerGarudadri/Physical/unit"
)

var convertCmd = &cobra.Command{
	Use:   "convert <value> <from-unit> <to-unit>",
	Short: "Convert a value between commensurable units",
	Long: `Converts a value from one unit into another unit of equal dimension.
Units may be given by name or symbol.

Examples:
  physical convert 75 degree radian
  physical convert 3.3 foot millimeter
  physical convert 25 celsius fahrenheit`,
	Args: cobra.ExactArgs(3),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	value, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid value %q: %w", args[0], err)
	}

	reg, err := buildRegistry()
	if err != nil {
		return err
	}

	q, err := quantity.Make(value, args[1], reg)
	if err != nil {
		return err
	}
	target, err := reg.Lookup(args[2])
	if err != nil {
		return err
	}

	out, err := q.Convert(unit.FromDefinition(target))
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
