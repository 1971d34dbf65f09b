package companion

import (
	"context"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/grandcat/zeroconf"
	"go.uber.org/zap"

	"github.com/muurk/fuzzyplus/internal/logging"
)

const (
	// ServiceType is the mDNS service type a running watch advertises
	ServiceType = "_fuzzyplus._tcp"

	// ServiceDomain is the mDNS domain
	ServiceDomain = "local."

	// DefaultScanTimeout bounds a discovery browse
	DefaultScanTimeout = 5 * time.Second
)

// Watch is a running face found on the local network.
type Watch struct {
	// Instance is the advertised instance name (usually the hostname)
	Instance string

	// Hostname is the mDNS hostname, e.g. "kitchen.local."
	Hostname string

	// IP prefers IPv4
	IP string

	Port int

	// Metadata holds the TXT record, e.g. "version=1.2.0"
	Metadata map[string]string

	DiscoveredAt time.Time
}

// String returns a human-readable representation of the watch
func (w *Watch) String() string {
	return fmt.Sprintf("%s (%s) at %s", w.Instance, w.Hostname, w.Addr())
}

// Addr returns host:port suitable for Push.
func (w *Watch) Addr() string {
	return net.JoinHostPort(w.IP, strconv.Itoa(w.Port))
}

// Advertisement is a registered mDNS service. Shutdown withdraws it.
type Advertisement struct {
	server *zeroconf.Server
}

// Advertise registers the companion endpoint on the local network. An empty
// instance defaults to the hostname.
func Advertise(instance string, port int, version string) (*Advertisement, error) {
	if instance == "" {
		host, err := os.Hostname()
		if err != nil {
			return nil, fmt.Errorf("failed to determine hostname: %w", err)
		}
		instance = host
	}

	txt := []string{"path=/ws"}
	if version != "" {
		txt = append(txt, "version="+version)
	}

	server, err := zeroconf.Register(instance, ServiceType, ServiceDomain, port, txt, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to register mDNS service: %w", err)
	}

	logging.Info("Advertising companion endpoint",
		zap.String("instance", instance),
		zap.String("service", ServiceType),
		zap.Int("port", port),
	)
	return &Advertisement{server: server}, nil
}

// Shutdown withdraws the advertisement. Safe on a nil receiver.
func (a *Advertisement) Shutdown() {
	if a == nil || a.server == nil {
		return
	}
	a.server.Shutdown()
	a.server = nil
}

// Scanner browses the local network for running watches.
type Scanner struct {
	// Timeout is the maximum time to browse
	Timeout time.Duration
}

// NewScanner creates a scanner with the default timeout
func NewScanner() *Scanner {
	return &Scanner{Timeout: DefaultScanTimeout}
}

// Scan browses until the timeout or ctx expires and returns every watch seen.
func (s *Scanner) Scan(ctx context.Context) ([]*Watch, error) {
	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	resolver, err := zeroconf.NewResolver(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create mDNS resolver: %w", err)
	}

	entries := make(chan *zeroconf.ServiceEntry)
	var (
		mu      sync.Mutex
		watches = make([]*Watch, 0)
		seen    = make(map[string]bool)
	)

	go func() {
		for entry := range entries {
			w := parseServiceEntry(entry)
			if w == nil {
				continue
			}
			mu.Lock()
			if !seen[w.Addr()] {
				seen[w.Addr()] = true
				watches = append(watches, w)
			}
			mu.Unlock()
		}
	}()

	if err := resolver.Browse(ctx, ServiceType, ServiceDomain, entries); err != nil {
		return nil, fmt.Errorf("failed to browse for mDNS services: %w", err)
	}

	<-ctx.Done()

	mu.Lock()
	defer mu.Unlock()
	return append([]*Watch(nil), watches...), nil
}

// Discover returns the first watch found, or an error if none answers
// within the scanner timeout.
func (s *Scanner) Discover(ctx context.Context) (*Watch, error) {
	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	resolver, err := zeroconf.NewResolver(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create mDNS resolver: %w", err)
	}

	entries := make(chan *zeroconf.ServiceEntry)
	found := make(chan *Watch, 1)

	go func() {
		for entry := range entries {
			if w := parseServiceEntry(entry); w != nil {
				select {
				case found <- w:
				default:
				}
				cancel()
				return
			}
		}
	}()

	if err := resolver.Browse(ctx, ServiceType, ServiceDomain, entries); err != nil {
		return nil, fmt.Errorf("failed to browse for mDNS services: %w", err)
	}

	select {
	case w := <-found:
		return w, nil
	case <-ctx.Done():
		// The browse goroutine may have won the race with cancel
		select {
		case w := <-found:
			return w, nil
		default:
		}
		return nil, fmt.Errorf("no watch found within %s", s.Timeout)
	}
}

// parseServiceEntry converts a service entry to a Watch. Entries without an
// address or port are skipped.
func parseServiceEntry(entry *zeroconf.ServiceEntry) *Watch {
	if entry == nil || entry.Instance == "" || entry.Port == 0 {
		return nil
	}

	var ip string
	if len(entry.AddrIPv4) > 0 {
		ip = entry.AddrIPv4[0].String()
	} else if len(entry.AddrIPv6) > 0 {
		ip = entry.AddrIPv6[0].String()
	}
	if ip == "" {
		return nil
	}

	metadata := make(map[string]string)
	for _, txt := range entry.Text {
		key, value, _ := strings.Cut(txt, "=")
		metadata[key] = value
	}

	return &Watch{
		Instance:     entry.Instance,
		Hostname:     entry.HostName,
		IP:           ip,
		Port:         entry.Port,
		Metadata:     metadata,
		DiscoveredAt: time.Now(),
	}
}
