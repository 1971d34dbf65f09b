package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/muurk/fuzzyplus/internal/config"
	"github.com/muurk/fuzzyplus/internal/display"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change the stored configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, path, err := loadRegistry()
		if err != nil {
			return err
		}
		data, err := yaml.Marshal(reg)
		if err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}
		fmt.Printf("# %s\n%s", path, data)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.ResolvePath(settings.GetString("config"))
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

var configSetBeforeTextCmd = &cobra.Command{
	Use:   "set-before-text TEXT",
	Short: "Store the BeforeText option",
	Long: `Store the BeforeText option, exactly as the companion app would.
An empty string clears it. A running face picks it up on its next start;
use 'push' to change a running face.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		update := config.BeforeTextUpdate(args[0])
		if _, err := config.ParseMessage(update.Message()); err != nil {
			return err
		}

		reg, path, err := loadRegistry()
		if err != nil {
			return err
		}
		if !reg.Apply(update, time.Now()) {
			display.Success("BeforeText unchanged", display.Field{Key: "Config", Value: path}).Print()
			return nil
		}
		if err := reg.Save(path); err != nil {
			return err
		}
		display.Success("BeforeText saved",
			display.Field{Key: "BeforeText", Value: fmt.Sprintf("%q", args[0])},
			display.Field{Key: "Config", Value: path},
		).Print()
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configSetBeforeTextCmd)
	rootCmd.AddCommand(configCmd)
}
