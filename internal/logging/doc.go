// Package logging provides structured logging for FuzzyPlus.
//
// This package wraps a package-global zap logger with convenience functions
// for the common logging patterns used by the watch program and the
// companion endpoint.
//
// # Log Levels
//
//   - Debug: Every frame shown, WebSocket payloads, configuration values
//   - Info: Companion connections, configuration messages, start/stop
//   - Warn: Rejected configuration, failed saves
//   - Error: Startup failures
//
// # Silent by Default
//
// The watch face draws on the whole terminal, so logging is disabled unless
// a level is given explicitly or FUZZYPLUS_LOG_LEVEL is set. Point the
// output at a file when running the face interactively:
//
//	if err := logging.Initialize("debug", "/tmp/fuzzyplus.log"); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// # Structured Logging
//
//	logging.Info("Companion listening",
//	    zap.String("addr", ":7420"),
//	    zap.Bool("advertised", true),
//	)
package logging
