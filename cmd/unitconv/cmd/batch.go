package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var batchFollow bool

var batchCmd = &cobra.Command{
	Use:   "batch [file|-]",
	Short: "Convert one request per line",
	Long: "Reads requests from a file (or stdin when the file is - or omitted), one per\n" +
		"line, each written exactly as command-line arguments. Blank lines and lines\n" +
		"starting with # are skipped. With --follow, keeps watching the file and\n" +
		"converts lines as they are appended until interrupted.",
	Args: cobra.MaximumNArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().BoolVarP(&batchFollow, "follow", "f", false, "Keep converting lines appended to the file")
}

func runBatch(cmd *cobra.Command, args []string) error {
	path := "-"
	if len(args) == 1 {
		path = args[0]
	}
	if batchFollow && path == "-" {
		return errors.New("--follow needs a file path")
	}

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	out := cmd.OutOrStdout()
	if batchFollow {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return a.Follow(ctx, path, out)
	}

	in := cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open batch file: %w", err)
		}
		defer f.Close()
		in = f
	}
	_, err = a.Batch(in, out)
	return err
}
