package piechart

import (
	"strings"
	"testing"

	"github.com/cheekybits/is"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Len(t, cfg.Colors, 16)
	assert.Equal(t, "#1E98FF", cfg.Colors["blue"])
	assert.Equal(t, "#97A100", cfg.Colors["olive"])
	assert.Equal(t, []int{10, 100}, cfg.Numbers)
	assert.Equal(t, 23.0, cfg.Style.CoreRadius)

	names := []string{}
	for _, ns := range cfg.Icons.Named() {
		names = append(names, ns.Name)
	}
	assert.Equal(t, []string{SizeSmall, SizeMedium, SizeLarge}, names)
	assert.Equal(t, Tuple{-35.5, -35.5}, cfg.Icons.Large.Offset)
	assert.Equal(t, 27.5, cfg.Icons.Medium.Shape.Radius)
}

func TestDefaultConfigIsFresh(t *testing.T) {
	a := DefaultConfig()
	a.Colors["blue"] = "#000000"
	*a.Icons.Small.CoreRadius = 1

	b := DefaultConfig()
	assert.Equal(t, "#1E98FF", b.Colors["blue"])
	assert.Equal(t, 15.0, *b.Icons.Small.CoreRadius)
}

const testConfig = `
style:
  stroke_color: "#333333"
  line_width: 1
colors:
  purple: "#800080"
icons:
  large:
    core_radius: 20
numbers: [5, 50, 500]
format: svg
`

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader(testConfig))
	require.NoError(t, err)

	assert.Equal(t, "#333333", cfg.Style.StrokeColor)
	assert.Equal(t, 1.0, cfg.Style.LineWidth)
	assert.Equal(t, "white", cfg.Style.CoreFillColor)
	assert.Equal(t, "#800080", cfg.Colors["purple"])
	assert.Equal(t, "#1E98FF", cfg.Colors["blue"])
	assert.Equal(t, []int{5, 50, 500}, cfg.Numbers)
	assert.Equal(t, FormatSVG, cfg.Format)
	assert.Equal(t, 71, cfg.Icons.Large.Width)
	require.NotNil(t, cfg.Icons.Large.CoreRadius)
	assert.Equal(t, 20.0, *cfg.Icons.Large.CoreRadius)
}

func TestLoadConfigEmpty(t *testing.T) {
	is := is.New(t)

	cfg, err := LoadConfig(strings.NewReader(""))
	is.NoErr(err)
	is.Equal(cfg.Format, FormatPNG)
	is.Equal(len(cfg.Colors), 16)
}

func TestLoadConfigFileDefault(t *testing.T) {
	cfg, err := LoadConfigFile("")
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		Description string
		Doc         string
	}{
		{"bad category color", "colors: {blue: nope}"},
		{"bad stroke color", "style: {stroke_color: '#12'}"},
		{"negative line width", "style: {line_width: -1}"},
		{"empty icon", "icons: {small: {width: 0}}"},
		{"negative core radius", "icons: {medium: {core_radius: -3}}"},
		{"unordered thresholds", "numbers: [100, 10]"},
		{"unknown format", "format: bmp"},
		{"negative pixel ratio", "pixel_ratio: -2"},
	}

	for _, test := range tests {
		_, err := LoadConfig(strings.NewReader(test.Doc))
		require.ErrorIs(t, err, ErrConfiguration, test.Description)
	}
}

func TestLoadConfigSyntaxError(t *testing.T) {
	_, err := LoadConfig(strings.NewReader("style: ["))
	require.Error(t, err)
}

func TestStyleFor(t *testing.T) {
	cfg := DefaultConfig()

	small, ok := cfg.Icons.Lookup(SizeSmall)
	require.True(t, ok)
	assert.Equal(t, 15.0, cfg.StyleFor(small).CoreRadius)

	large, ok := cfg.Icons.Lookup(SizeLarge)
	require.True(t, ok)
	assert.Equal(t, 23.0, cfg.StyleFor(large).CoreRadius)
	assert.Equal(t, cfg.Colors, cfg.StyleFor(large).Colors)

	_, ok = cfg.Icons.Lookup("huge")
	assert.False(t, ok)
}
