package config

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/Mavwarf/assetgen/internal/paths"
)

// Default source file names, looked up in the working directory.
const (
	DefaultLogoSource      = "Gemini_Generated_Image_lcc2w4lcc2w4lcc2.png"
	DefaultIconsSource     = "Gemini_Generated_Image_fgzwicfgzwicfgzw.png"
	DefaultLogoSheetSource = "Gemini_Generated_Image_wo91jpwo91jpwo91.png"
)

// DefaultMQTTTopic is used when mqtt.broker is set but mqtt.topic is not.
const DefaultMQTTTopic = "assetgen/runs"

// RGB is an opaque color written as [r, g, b] in JSON.
type RGB [3]uint8

// NRGBA returns the color with full alpha.
func (c RGB) NRGBA() color.NRGBA {
	return color.NRGBA{R: c[0], G: c[1], B: c[2], A: 0xFF}
}

// Sources names the input images.
type Sources struct {
	Logo      string `json:"logo,omitempty"`
	Icons     string `json:"icons,omitempty"`
	LogoSheet string `json:"logo_sheet,omitempty"`
}

// Palette holds the endpoints of the app icon background gradient.
type Palette struct {
	GradientFrom RGB `json:"gradient_from"`
	GradientTo   RGB `json:"gradient_to"`
}

// Logo holds the app icon geometry.
type Logo struct {
	Size         int     `json:"size,omitempty"`
	CornerRadius float64 `json:"corner_radius,omitempty"`
	ArtworkSize  int     `json:"artwork_size,omitempty"`
	CenterCrop   int     `json:"center_crop,omitempty"`
	Lift         int     `json:"lift,omitempty"` // center crop moves up by this many px
}

// Variant holds the text-free logo crop: the band of the logo sheet
// that is kept when the wordmark below the artwork is cut off.
type Variant struct {
	BandTop    int `json:"band_top,omitempty"`
	BandHeight int `json:"band_height,omitempty"`
}

// Grid describes the icon sheet partition.
type Grid struct {
	CellSize int `json:"cell_size,omitempty"`
}

// Marker holds the map marker geometry.
type Marker struct {
	Size        int     `json:"size,omitempty"`
	IconSize    int     `json:"icon_size,omitempty"`
	ShadowAlpha uint8   `json:"shadow_alpha,omitempty"`
	ShadowBlur  float64 `json:"shadow_blur,omitempty"`
}

// MQTT configures the optional completion message.
type MQTT struct {
	Broker   string `json:"broker,omitempty"`
	Topic    string `json:"topic,omitempty"`
	ClientID string `json:"client_id,omitempty"`
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
}

// Enabled reports whether a broker is configured.
func (m MQTT) Enabled() bool { return m.Broker != "" }

// Webhook configures the optional HTTP POST of the run summary.
type Webhook struct {
	URL     string            `json:"url,omitempty"`
	Headers map[string]string `json:"headers,omitempty"`
}

// Enabled reports whether a webhook URL is configured.
func (w Webhook) Enabled() bool { return w.URL != "" }

// Config holds every tunable of both pipelines. The zero value is not
// usable; start from Defaults or decode JSON (which applies the defaults).
type Config struct {
	OutputDir   string  `json:"output_dir,omitempty"`
	Sources     Sources `json:"sources"`
	Palette     Palette `json:"palette"`
	Logo        Logo    `json:"logo"`
	Variant     Variant `json:"variant"`
	Grid        Grid    `json:"grid"`
	FaviconSize int     `json:"favicon_size,omitempty"`
	TabBarSize  int     `json:"tabbar_size,omitempty"`
	Marker      Marker  `json:"marker"`
	History     bool    `json:"history,omitempty"`
	MQTT        MQTT    `json:"mqtt"`
	Webhook     Webhook `json:"webhook"`
}

// Defaults returns the built-in brand settings.
func Defaults() Config {
	return Config{
		OutputDir: paths.OutputDir,
		Sources: Sources{
			Logo:      DefaultLogoSource,
			Icons:     DefaultIconsSource,
			LogoSheet: DefaultLogoSheetSource,
		},
		Palette: Palette{
			GradientFrom: RGB{255, 107, 53}, // #FF6B35
			GradientTo:   RGB{20, 184, 166}, // #14B8A6
		},
		Logo: Logo{
			Size:         1024,
			CornerRadius: 225, // ~22% of the edge
			ArtworkSize:  800,
			CenterCrop:   1200,
			Lift:         100,
		},
		Variant:     Variant{BandTop: 100, BandHeight: 1600},
		Grid:        Grid{CellSize: 680},
		FaviconSize: 512,
		TabBarSize:  162,
		Marker: Marker{
			Size:        96,
			IconSize:    64,
			ShadowAlpha: 60,
			ShadowBlur:  3,
		},
		MQTT: MQTT{Topic: DefaultMQTTTopic, ClientID: "assetgen"},
	}
}

// UnmarshalJSON sets defaults then decodes the JSON structure.
// Go's json.Unmarshal merges into existing struct fields, so only
// values present in JSON override the defaults.
func (c *Config) UnmarshalJSON(data []byte) error {
	*c = Defaults()
	type Alias Config
	return json.Unmarshal(data, (*Alias)(c))
}

// Validate rejects geometry that cannot produce an image.
func (c Config) Validate() error {
	sizes := []struct {
		name string
		v    int
	}{
		{"logo.size", c.Logo.Size},
		{"logo.artwork_size", c.Logo.ArtworkSize},
		{"logo.center_crop", c.Logo.CenterCrop},
		{"variant.band_height", c.Variant.BandHeight},
		{"grid.cell_size", c.Grid.CellSize},
		{"favicon_size", c.FaviconSize},
		{"tabbar_size", c.TabBarSize},
		{"marker.size", c.Marker.Size},
		{"marker.icon_size", c.Marker.IconSize},
	}
	for _, s := range sizes {
		if s.v <= 0 {
			return fmt.Errorf("config: %s must be positive, got %d", s.name, s.v)
		}
	}
	if c.Logo.ArtworkSize > c.Logo.Size {
		return fmt.Errorf("config: logo.artwork_size %d exceeds logo.size %d", c.Logo.ArtworkSize, c.Logo.Size)
	}
	if c.Marker.IconSize > c.Marker.Size {
		return fmt.Errorf("config: marker.icon_size %d exceeds marker.size %d", c.Marker.IconSize, c.Marker.Size)
	}
	if c.Logo.CornerRadius < 0 || c.Marker.ShadowBlur < 0 {
		return fmt.Errorf("config: corner_radius and shadow_blur must not be negative")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("config: output_dir must not be empty")
	}
	return nil
}

// Load reads and parses a config file. It tries, in order:
//  1. explicitPath (if non-empty, must exist)
//  2. assetgen-config.json in the working directory
//  3. assetgen-config.json in paths.DataDir()
//
// With no file found the built-in defaults are returned.
func Load(explicitPath string) (Config, error) {
	if explicitPath != "" {
		return readConfig(explicitPath)
	}

	for _, p := range []string{
		paths.ConfigFileName,
		filepath.Join(paths.DataDir(), paths.ConfigFileName),
	} {
		if _, err := os.Stat(p); err == nil {
			return readConfig(p)
		}
	}

	return Defaults(), nil
}

func readConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
