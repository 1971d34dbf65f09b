// Fuzzyplus is a fuzzy-time watch face for the terminal.
//
// It tells the time in words rounded to the nearest quarter hour ("gone
// quarter past three"). A tap (space, t or enter) shows the date and the
// exact time until the next minute tick. The companion endpoint accepts
// face options from another device over HTTP or WebSocket.
//
// Usage:
//
//	fuzzyplus [command] [flags]
//
// Running without arguments starts the face.
// See 'fuzzyplus --help' for available commands.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/muurk/fuzzyplus/internal/config"
	"github.com/muurk/fuzzyplus/internal/logging"
	"github.com/muurk/fuzzyplus/internal/version"
)

// settings merges flags with FUZZYPLUS_* environment variables.
var settings = newSettings()

func newSettings() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("FUZZYPLUS")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

func main() {
	defer logging.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fuzzyplus",
	Short: "Fuzzy-time watch face",
	Long: `A watch face that tells the time in words, rounded to the nearest
quarter hour, with a tap-to-show date and exact time.

If no command is specified, the face starts in the terminal.`,
	Version:           version.Version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runFace,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error); silent when empty")
	rootCmd.PersistentFlags().String("log-file", "", "Write logs to this file instead of stderr")
	rootCmd.PersistentFlags().String("config", "", "Configuration file (default: user config dir)")

	addRunFlags(rootCmd)

	rootCmd.AddCommand(versionCmd)
}

// setup binds the invoked command's flags and starts logging.
func setup(cmd *cobra.Command, args []string) error {
	if err := settings.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("failed to bind flags: %w", err)
	}
	return logging.Initialize(settings.GetString("log-level"), settings.GetString("log-file"))
}

// loadRegistry resolves --config and loads the registry file.
func loadRegistry() (*config.Registry, string, error) {
	path, err := config.ResolvePath(settings.GetString("config"))
	if err != nil {
		return nil, "", err
	}
	reg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	return reg, path, nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("fuzzyplus %s\n", version.Full())
	},
}
