package cmd

import (
	"fmt"
	"os"

	"github.com/corey/unitconv/internal/app"
	"github.com/spf13/cobra"
)

var configInitForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show configuration",
	Long:  "Shows the unitconv home, config file and history paths, then the effective settings as YAML.",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Long:  "Writes config.yaml with default settings to the unitconv home. Refuses to overwrite without --force.",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "Overwrite an existing config file")
	configCmd.AddCommand(configInitCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	out := cmd.OutOrStdout()
	p := paletteFor(out)

	fmt.Fprintf(out, "%sunitconv config%s\n", p.bold, p.reset)
	fmt.Fprintf(out, "  Home:     %s\n", a.Paths.Root)
	fmt.Fprintf(out, "  Config:   %s%s\n", a.Paths.Config, missing(a.Paths.Config, p))
	fmt.Fprintf(out, "  History:  %s%s\n", a.Paths.History, missing(a.Paths.History, p))
	fmt.Fprintf(out, "  Units:    %d tokens (%d aliases)\n", a.Table.Len(), len(a.Table.Aliases()))
	fmt.Fprintln(out)

	data, err := a.Config.Marshal()
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}

func missing(path string, p palette) string {
	if _, err := os.Stat(path); err != nil {
		return fmt.Sprintf(" %s(not found)%s", p.gray, p.reset)
	}
	return ""
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	home, err := app.DefaultHome()
	if err != nil {
		return err
	}
	path := app.NewPaths(home).Config
	if err := app.WriteConfig(path, app.DefaultConfig(), configInitForce); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return nil
}
