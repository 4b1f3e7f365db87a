package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/corey/unitconv/internal/ports"
	"github.com/spf13/cobra"
)

var (
	historyLimit int
	historyClear bool
	historyJSON  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show or clear recorded conversions",
	Long: "Lists recorded conversions, newest first. Recording is off by default;\n" +
		"enable it with `history: true` in config.yaml or UNITCONV_HISTORY=true.",
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum entries to show (0 = all)")
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "Delete all recorded conversions")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "Output as JSON")
}

func runHistory(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	h, err := a.History()
	if err != nil {
		return withLockHint(err, a.Paths.History)
	}

	out := cmd.OutOrStdout()
	if historyClear {
		if err := h.Clear(); err != nil {
			return fmt.Errorf("clear history: %w", err)
		}
		fmt.Fprintln(out, "history cleared")
		return nil
	}

	entries, err := h.Recent(historyLimit)
	if err != nil {
		return fmt.Errorf("read history: %w", err)
	}

	if historyJSON {
		if entries == nil {
			entries = []ports.HistoryEntry{}
		}
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	if len(entries) == 0 {
		fmt.Fprintln(out, "no history")
		if !a.Config.History {
			fmt.Fprintln(out, "  recording is disabled; set `history: true` in "+a.Paths.Config)
		}
		return nil
	}
	fmt.Fprint(out, formatHistory(entries, paletteFor(out)))
	return nil
}
