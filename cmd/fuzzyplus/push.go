package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/muurk/fuzzyplus/internal/companion"
	"github.com/muurk/fuzzyplus/internal/config"
	"github.com/muurk/fuzzyplus/internal/display"
)

// pushCmd sends settings to a running face, acting as the companion app
var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Send settings to a running face",
	Long: `Send face options to a face started with 'run --companion'.

Without --addr the first face found over mDNS is used.`,
	Example: `  # Set BeforeText on the face found on the network
  fuzzyplus push --before-text "it's"

  # Push to a known address
  fuzzyplus push --before-text "about" --addr 192.168.1.20:7420`,
	RunE: runPush,
}

// discoverCmd lists faces advertising the companion endpoint
var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "List faces on the local network",
	Long: `Browse mDNS for faces advertising the companion endpoint
(_fuzzyplus._tcp) and list them.`,
	RunE: runDiscover,
}

func init() {
	pushCmd.Flags().String("before-text", "", "BeforeText option to send")
	pushCmd.Flags().String("addr", "", "Face address as host:port (skips discovery)")
	pushCmd.Flags().Duration("timeout", companion.DefaultPushTimeout, "Timeout for discovery and the push")
	_ = pushCmd.MarkFlagRequired("before-text")

	discoverCmd.Flags().Duration("timeout", companion.DefaultScanTimeout, "How long to browse")

	rootCmd.AddCommand(pushCmd)
	rootCmd.AddCommand(discoverCmd)
}

func runPush(cmd *cobra.Command, args []string) error {
	update := config.BeforeTextUpdate(settings.GetString("before-text"))
	// Validate locally before touching the network
	if _, err := config.ParseMessage(update.Message()); err != nil {
		return err
	}

	scanner := companion.NewScanner()
	scanner.Timeout = settings.GetDuration("timeout")

	addr, ack, err := pushTo(cmd.Context(), settings.GetString("addr"), scanner.Timeout, scanner.Discover, update)
	if err != nil {
		display.Failure("Push failed", err,
			"Check the face was started with 'fuzzyplus run --companion'",
			"Check the address and port ('fuzzyplus discover' lists faces)",
		).Print()
		return err
	}

	fields := []display.Field{{Key: "Face", Value: addr}}
	if len(ack.Accepted) > 0 {
		fields = append(fields, display.Field{Key: "Accepted", Value: strings.Join(ack.Accepted, ", ")})
	}
	if len(ack.Ignored) > 0 {
		fields = append(fields, display.Field{Key: "Ignored", Value: strings.Join(ack.Ignored, ", ")})
	}
	display.Success("Configuration sent", fields...).Print()
	return nil
}

// pushTo sends update to addr, discovering a face first when addr is empty.
// Discovery and the push each get their own timeout.
func pushTo(ctx context.Context, addr string, timeout time.Duration,
	discover func(context.Context) (*companion.Watch, error), update config.Update) (string, *companion.Ack, error) {
	if addr == "" {
		discoverCtx, cancel := context.WithTimeout(ctx, timeout)
		w, err := discover(discoverCtx)
		cancel()
		if err != nil {
			return "", nil, fmt.Errorf("discovery failed (use --addr to skip): %w", err)
		}
		fmt.Printf("Found %s\n", w)
		addr = w.Addr()
	}

	pushCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ack, err := companion.Push(pushCtx, addr, update)
	return addr, ack, err
}

func runDiscover(cmd *cobra.Command, args []string) error {
	timeout := settings.GetDuration("timeout")
	fmt.Printf("Browsing for faces (timeout: %s)...\n\n", timeout)

	scanner := companion.NewScanner()
	scanner.Timeout = timeout
	watches, err := scanner.Scan(cmd.Context())
	if err != nil {
		return fmt.Errorf("discovery failed: %w", err)
	}

	if len(watches) == 0 {
		fmt.Println("No faces found.")
		fmt.Println("\nStart one with 'fuzzyplus run --companion'.")
		return nil
	}

	fmt.Printf("Found %d face(s):\n\n", len(watches))
	for i, w := range watches {
		fmt.Printf("%d. %s\n", i+1, w.Instance)
		fmt.Printf("   Address: %s\n", w.Addr())
		if v := w.Metadata["version"]; v != "" {
			fmt.Printf("   Version: %s\n", v)
		}
		fmt.Printf("   Seen:    %s\n\n", w.DiscoveredAt.Format(time.Kitchen))
	}
	return nil
}
