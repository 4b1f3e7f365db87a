package cmd

import (
	"io"

	"github.com/corey/unitconv/internal/domain/notation"
	"github.com/spf13/cobra"
)

var unitsCmd = &cobra.Command{
	Use:   "units",
	Short: "List recognized units",
	Long:  "Lists every recognized unit token grouped by dimension, including configured aliases.",
	Args:  cobra.ArbitraryArgs,
	RunE:  runUnits,
}

func runUnits(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()
	_, err = io.WriteString(cmd.OutOrStdout(), notation.FormatListing(a.Table.Groups()))
	return err
}
