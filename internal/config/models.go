package config

import "time"

// CurrentVersion is the registry file format version.
const CurrentVersion = 1

// DefaultCompanionPort is the port the companion endpoint listens on.
const DefaultCompanionPort = 7420

// Registry represents the entire user configuration file.
type Registry struct {
	Version   int             `yaml:"version"`
	Face      *FaceOptions    `yaml:"face,omitempty"`
	Companion *CompanionPrefs `yaml:"companion,omitempty"`
}

// FaceOptions holds options delivered by the companion app.
type FaceOptions struct {
	BeforeText string    `yaml:"before_text"`          // Stored but not yet drawn on the face
	UpdatedAt  time.Time `yaml:"updated_at,omitempty"` // When the companion last changed an option
}

// CompanionPrefs controls the companion endpoint.
type CompanionPrefs struct {
	Enabled   bool   `yaml:"enabled"`            // Start the endpoint with the face
	Port      int    `yaml:"port"`               // TCP port for HTTP and WebSocket
	Advertise bool   `yaml:"advertise"`          // Announce the endpoint over mDNS
	Instance  string `yaml:"instance,omitempty"` // mDNS instance name (hostname when empty)
}

// NewRegistry creates a new Registry with default values.
func NewRegistry() *Registry {
	r := &Registry{Version: CurrentVersion}
	r.applyDefaults()
	return r
}

func (r *Registry) applyDefaults() {
	if r.Face == nil {
		r.Face = &FaceOptions{}
	}
	if r.Companion == nil {
		r.Companion = &CompanionPrefs{
			Enabled:   false,
			Port:      DefaultCompanionPort,
			Advertise: true,
		}
	}
	if r.Companion.Port == 0 {
		r.Companion.Port = DefaultCompanionPort
	}
}

// BeforeText returns the stored BeforeText option.
func (r *Registry) BeforeText() string {
	if r.Face == nil {
		return ""
	}
	return r.Face.BeforeText
}

// Apply merges a configuration update into the registry. It reports
// whether anything changed.
func (r *Registry) Apply(u Update, now time.Time) bool {
	r.applyDefaults()

	changed := false
	if u.BeforeText != nil && *u.BeforeText != r.Face.BeforeText {
		r.Face.BeforeText = *u.BeforeText
		changed = true
	}
	if changed {
		r.Face.UpdatedAt = now
	}
	return changed
}
