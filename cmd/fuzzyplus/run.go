package main

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/fuzzyplus/internal/companion"
	"github.com/muurk/fuzzyplus/internal/config"
	"github.com/muurk/fuzzyplus/internal/logging"
	"github.com/muurk/fuzzyplus/internal/version"
	"github.com/muurk/fuzzyplus/internal/watch"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the watch face",
	Long: `Start the watch face in the terminal.

The face redraws on every minute boundary. Press space, t or enter to tap:
the first tap shows the date and exact time, the next hides them. A minute
tick always hides them.

With --companion the face also listens for settings from the companion app
and advertises itself over mDNS as _fuzzyplus._tcp.`,
	Example: `  # Start the face
  fuzzyplus

  # Step through the layout test schedule with each tap
  fuzzyplus run --testing

  # Accept settings from the companion app on port 7420
  fuzzyplus run --companion --port 7420`,
	RunE: runFace,
}

func init() {
	addRunFlags(runCmd)
	rootCmd.AddCommand(runCmd)
}

// addRunFlags is shared by run and the root command, which runs the face.
func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("testing", false, "Enable the layout test schedule (taps step through boundary minutes)")
	cmd.Flags().Bool("companion", false, "Start the companion endpoint (default from config)")
	cmd.Flags().Int("port", 0, "Companion port (default from config)")
	cmd.Flags().Bool("no-advertise", false, "Do not advertise the companion endpoint over mDNS")
}

func runFace(cmd *cobra.Command, args []string) error {
	reg, path, err := loadRegistry()
	if err != nil {
		return err
	}

	prefs := *reg.Companion
	if settings.GetBool("companion") {
		prefs.Enabled = true
	}
	if port := settings.GetInt("port"); port != 0 {
		prefs.Port = port
	}
	if settings.GetBool("no-advertise") {
		prefs.Advertise = false
	}
	if prefs.Port <= 0 || prefs.Port > 65535 {
		return fmt.Errorf("invalid companion port: %d", prefs.Port)
	}

	opts := watch.Options{
		Testing:      settings.GetBool("testing"),
		Registry:     reg,
		RegistryPath: path,
	}
	if prefs.Enabled {
		opts.Companion = fmt.Sprintf(":%d", prefs.Port)
	}

	m, err := watch.New(opts)
	if err != nil {
		return err
	}

	logging.Info("Starting face",
		zap.Bool("testing", opts.Testing),
		zap.Bool("companion", prefs.Enabled),
		zap.String("config", path),
	)

	var attach func(p *tea.Program) (func(), error)
	if prefs.Enabled {
		attach = func(p *tea.Program) (func(), error) {
			return startCompanion(prefs, watch.ConfigSink(p))
		}
	}
	return watch.Run(m, attach)
}

// startCompanion starts the endpoint and its mDNS advertisement. The
// returned function stops both.
func startCompanion(prefs config.CompanionPrefs, sink companion.Sink) (func(), error) {
	srv := companion.NewServer(companion.Config{
		Addr: fmt.Sprintf(":%d", prefs.Port),
		Sink: sink,
	})
	if err := srv.Start(); err != nil {
		return nil, err
	}

	var adv *companion.Advertisement
	if prefs.Advertise {
		var err error
		adv, err = companion.Advertise(prefs.Instance, srv.Port(), version.Short())
		if err != nil {
			// The endpoint still works by address
			logging.Warn("mDNS advertisement failed", zap.Error(err))
		}
	}

	return func() {
		adv.Shutdown()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Stop(ctx); err != nil {
			logging.Warn("Companion server shutdown failed", zap.Error(err))
		}
	}, nil
}
