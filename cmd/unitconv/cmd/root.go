package cmd

import (
	"github.com/corey/unitconv/internal/app"
	ulog "github.com/corey/unitconv/internal/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "unitconv [value] [unit] [unit]",
	Short: "unitconv converts values between measurement units",
	Long: "Converts a value from one unit to another, or to every unit of the same\n" +
		"dimension. Run with no arguments for usage.",
	// Raw tokens go to the request parser so "-40 c f" and -h/--help work.
	DisableFlagParsing: true,
	Args:               cobra.ArbitraryArgs,
	SilenceUsage:       true,
	CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
	RunE:               runConvert,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(unitsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()
	return a.Run(args, cmd.OutOrStdout())
}

// openApp loads settings from the unitconv home and configures logging to
// the command's stderr at the configured level before the App is built.
func openApp(cmd *cobra.Command) (*app.App, error) {
	ulog.Configure(ulog.Config{Output: cmd.ErrOrStderr()})

	home, err := app.DefaultHome()
	if err != nil {
		return nil, err
	}
	paths := app.NewPaths(home)
	cfg, err := app.LoadConfig(paths.Config)
	if err != nil {
		return nil, err
	}
	ulog.Configure(ulog.Config{Level: cfg.LogLevel, Output: cmd.ErrOrStderr()})
	return app.New(cfg, paths)
}
