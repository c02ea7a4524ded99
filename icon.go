package piechart

import (
	"encoding/base64"
	"math"

	"golang.org/x/sync/errgroup"
)

// Icon is one encoded cluster icon.
type Icon struct {
	Name      string
	Size      IconSize
	Image     []byte
	MediaType string
}

// DataURL returns the icon as a base64 data URL.
func (i Icon) DataURL() string {
	return "data:" + i.MediaType + ";base64," + base64.StdEncoding.EncodeToString(i.Image)
}

// IconSet holds the icons of one cluster, smallest first.
type IconSet []Icon

// Get returns the icon called name.
func (s IconSet) Get(name string) (Icon, bool) {
	for _, icon := range s {
		if icon.Name == name {
			return icon, true
		}
	}
	return Icon{}, false
}

// ClusterVisualBuilder builds the icons of a cluster from its style tally.
type ClusterVisualBuilder interface {
	BuildClusterVisual(tally Tally, total int) (IconSet, error)
}

// IconBuilder renders cluster icons at every configured size.
type IconBuilder struct {
	cfg     *Config
	encoder Encoder
}

// NewIconBuilder validates cfg and returns a builder for it.
func NewIconBuilder(cfg *Config) (*IconBuilder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	enc, err := NewEncoder(cfg.Format)
	if err != nil {
		return nil, err
	}
	return &IconBuilder{cfg: cfg, encoder: enc}, nil
}

// Config returns the configuration the builder was created with.
func (b *IconBuilder) Config() *Config {
	return b.cfg
}

// Encoder returns the encoder icons are written with.
func (b *IconBuilder) Encoder() Encoder {
	return b.encoder
}

// RenderIcon draws and encodes the icon for a single size.
func (b *IconBuilder) RenderIcon(ns NamedSize, tally Tally, total int) (Icon, error) {
	ratio := b.cfg.PixelRatio
	if ratio <= 0 {
		ratio = 1
	}

	rec := NewRecorder(ratio)
	spec := ChartSpec{Tally: tally, Total: total, Width: ns.Width, Height: ns.Height}
	if err := Render(spec, b.cfg.StyleFor(ns), rec); err != nil {
		return Icon{}, err
	}

	width := int(math.Round(float64(ns.Width) * ratio))
	height := int(math.Round(float64(ns.Height) * ratio))
	data, err := b.encoder.Encode(rec.Instructions(), width, height)
	if err != nil {
		return Icon{}, err
	}

	return Icon{
		Name:      ns.Name,
		Size:      ns.IconSize,
		Image:     data,
		MediaType: b.encoder.MediaType(),
	}, nil
}

// BuildClusterVisual implements the ClusterVisualBuilder interface. Sizes
// are rendered concurrently, each on its own Recorder. Either every icon is
// returned or none.
func (b *IconBuilder) BuildClusterVisual(tally Tally, total int) (IconSet, error) {
	sizes := b.cfg.Icons.Named()
	icons := make(IconSet, len(sizes))

	var g errgroup.Group
	for i, ns := range sizes {
		i, ns := i, ns
		g.Go(func() error {
			icon, err := b.RenderIcon(ns, tally, total)
			if err != nil {
				return err
			}
			icons[i] = icon
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return icons, nil
}
