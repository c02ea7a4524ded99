package piechart

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// CircleShape is the hit-test circle the host uses for clicks and hovers,
// relative to the icon anchor.
type CircleShape struct {
	Center Tuple   `yaml:"center"`
	Radius float64 `yaml:"radius"`
}

// IconSize describes one of the sized cluster icons. CoreRadius, when set,
// replaces the style's core radius for this size only.
type IconSize struct {
	Width      int         `yaml:"width"`
	Height     int         `yaml:"height"`
	Offset     Tuple       `yaml:"offset"`
	Shape      CircleShape `yaml:"shape"`
	CoreRadius *float64    `yaml:"core_radius,omitempty"`
}

// IconSizes holds the three icon sizes handed to the host, smallest first.
type IconSizes struct {
	Small  IconSize `yaml:"small"`
	Medium IconSize `yaml:"medium"`
	Large  IconSize `yaml:"large"`
}

// Names of the icon sizes.
const (
	SizeSmall  = "small"
	SizeMedium = "medium"
	SizeLarge  = "large"
)

// Named returns the sizes with their names, smallest first.
func (s IconSizes) Named() []NamedSize {
	return []NamedSize{
		{Name: SizeSmall, IconSize: s.Small},
		{Name: SizeMedium, IconSize: s.Medium},
		{Name: SizeLarge, IconSize: s.Large},
	}
}

// Lookup returns the size called name.
func (s IconSizes) Lookup(name string) (NamedSize, bool) {
	for _, ns := range s.Named() {
		if ns.Name == name {
			return ns, true
		}
	}
	return NamedSize{}, false
}

// NamedSize is an IconSize together with its name.
type NamedSize struct {
	Name string
	IconSize
}

// Config is the static configuration of the icon builder. It is loaded
// once and shared read-only.
type Config struct {
	Style      RenderStyle `yaml:"style"`
	Colors     ColorTable  `yaml:"colors"`
	Icons      IconSizes   `yaml:"icons"`
	Numbers    []int       `yaml:"numbers"`
	Format     string      `yaml:"format"`
	PixelRatio float64     `yaml:"pixel_ratio"`
}

// DefaultColors returns the color of every marker style the host knows.
func DefaultColors() ColorTable {
	return ColorTable{
		"blue":       "#1E98FF",
		"red":        "#ED4543",
		"darkOrange": "#E6761B",
		"night":      "#0E4779",
		"darkBlue":   "#177BC9",
		"pink":       "#F371D1",
		"gray":       "#B3B3B3",
		"brown":      "#793D0E",
		"darkGreen":  "#1BAD03",
		"violet":     "#B51EFF",
		"black":      "#595959",
		"yellow":     "#FFD21E",
		"green":      "#56DB40",
		"orange":     "#FF931E",
		"lightBlue":  "#82CDFF",
		"olive":      "#97A100",
	}
}

// DefaultConfig returns the stock configuration. The small and medium icons
// shrink the core so it keeps the proportion it has on the large icon.
func DefaultConfig() *Config {
	small, medium := 15.0, 19.0
	return &Config{
		Style: RenderStyle{
			StrokeColor:   "white",
			LineWidth:     2,
			CoreFillColor: "white",
			CoreRadius:    23,
		},
		Colors: DefaultColors(),
		Icons: IconSizes{
			Small: IconSize{
				Width: 46, Height: 46,
				Offset:     Tuple{-23, -23},
				Shape:      CircleShape{Center: Tuple{0, 2}, Radius: 21.5},
				CoreRadius: &small,
			},
			Medium: IconSize{
				Width: 58, Height: 58,
				Offset:     Tuple{-29, -29},
				Shape:      CircleShape{Center: Tuple{0, 2}, Radius: 27.5},
				CoreRadius: &medium,
			},
			Large: IconSize{
				Width: 71, Height: 71,
				Offset: Tuple{-35.5, -35.5},
				Shape:  CircleShape{Center: Tuple{0, 2}, Radius: 34},
			},
		},
		Numbers:    []int{10, 100},
		Format:     FormatPNG,
		PixelRatio: 1,
	}
}

// LoadConfig reads a YAML configuration on top of DefaultConfig. Colors
// from the document are added to the default table.
func LoadConfig(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.NewDecoder(r).Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfigFile is LoadConfig for a file path. An empty path returns the
// default configuration.
func LoadConfigFile(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadConfig(f)
}

// Validate checks colors, sizes and label thresholds.
func (c *Config) Validate() error {
	for category, color := range c.Colors {
		if _, err := ParseColor(color); err != nil {
			return fmt.Errorf("color of %q: %w", category, err)
		}
	}
	if _, err := ParseColor(c.Style.StrokeColor); err != nil {
		return fmt.Errorf("stroke color: %w", err)
	}
	if _, err := ParseColor(c.Style.CoreFillColor); err != nil {
		return fmt.Errorf("core fill color: %w", err)
	}
	if c.Style.LineWidth < 0 {
		return fmt.Errorf("%w: negative line width %v", ErrConfiguration, c.Style.LineWidth)
	}
	if c.Style.CoreRadius < 0 {
		return fmt.Errorf("%w: negative core radius %v", ErrConfiguration, c.Style.CoreRadius)
	}

	for _, ns := range c.Icons.Named() {
		if ns.Width <= 0 || ns.Height <= 0 {
			return fmt.Errorf("%w: %s icon size must be positive, got %dx%d", ErrConfiguration, ns.Name, ns.Width, ns.Height)
		}
		if ns.CoreRadius != nil && *ns.CoreRadius < 0 {
			return fmt.Errorf("%w: %s icon has negative core radius", ErrConfiguration, ns.Name)
		}
	}

	for i, n := range c.Numbers {
		if n <= 0 || (i > 0 && n <= c.Numbers[i-1]) {
			return fmt.Errorf("%w: label thresholds must be positive and ascending, got %v", ErrConfiguration, c.Numbers)
		}
	}

	if _, err := NewEncoder(c.Format); err != nil {
		return err
	}
	if c.PixelRatio < 0 {
		return fmt.Errorf("%w: negative pixel ratio %v", ErrConfiguration, c.PixelRatio)
	}
	return nil
}

// StyleFor returns the render style used for the icon size ns.
func (c *Config) StyleFor(ns NamedSize) RenderStyle {
	style := c.Style
	style.Colors = c.Colors
	if ns.CoreRadius != nil {
		style.CoreRadius = *ns.CoreRadius
	}
	return style
}
