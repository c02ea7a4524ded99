package piechart

import (
	"fmt"
	"math"
)

// ColorTable maps a category to a CSS color string.
type ColorTable map[string]string

// Lookup returns the color for category c, or a *ConfigurationError naming
// it.
func (t ColorTable) Lookup(c string) (string, error) {
	color, ok := t[c]
	if !ok {
		return "", &ConfigurationError{Category: c}
	}
	return color, nil
}

// RenderStyle holds the paint settings of a chart.
type RenderStyle struct {
	StrokeColor   string     `yaml:"stroke_color"`
	LineWidth     float64    `yaml:"line_width"`
	CoreFillColor string     `yaml:"core_fill_color"`
	CoreRadius    float64    `yaml:"core_radius"`
	Colors        ColorTable `yaml:"-"`
}

// ChartSpec is everything needed to draw the icon of one cluster.
type ChartSpec struct {
	Tally  Tally
	Total  int
	Width  int
	Height int
}

func (s ChartSpec) validate() error {
	if s.Total <= 0 {
		return fmt.Errorf("%w: chart total must be positive, got %d", ErrInvalidInput, s.Total)
	}
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: canvas size must be positive, got %dx%d", ErrInvalidInput, s.Width, s.Height)
	}

	seen := make(map[string]bool, len(s.Tally))
	var sum int
	for _, e := range s.Tally {
		if e.Count <= 0 {
			return fmt.Errorf("%w: category %q has count %d", ErrInvariantViolation, e.Category, e.Count)
		}
		if seen[e.Category] {
			return fmt.Errorf("%w: category %q appears twice", ErrInvariantViolation, e.Category)
		}
		seen[e.Category] = true
		sum += e.Count
	}
	if sum != s.Total {
		return fmt.Errorf("%w: counts sum to %d, total is %d", ErrInvariantViolation, sum, s.Total)
	}

	// Render draws a circle when a category holds the whole total. With
	// positive counts summing to the total that is the lone-category case.
	single := len(s.Tally) == 1
	for _, e := range s.Tally {
		if (e.Count == s.Total) != single {
			return fmt.Errorf("%w: category %q holds %d of %d with %d categories",
				ErrInvariantViolation, e.Category, e.Count, s.Total, len(s.Tally))
		}
	}
	return nil
}

// Render draws the pie chart for spec on c. One sector is drawn per
// category in tally order, starting at 3 o'clock and going clockwise. A
// cluster with a single category is drawn as a full circle. The core circle
// is drawn last, on top of the sectors.
//
// All input checks and color lookups happen before the first call on c, so
// a failed Render leaves c untouched.
func Render(spec ChartSpec, style RenderStyle, c Canvas) error {
	if err := spec.validate(); err != nil {
		return err
	}

	fills := make([]string, len(spec.Tally))
	for i, e := range spec.Tally {
		color, err := style.Colors.Lookup(e.Category)
		if err != nil {
			return err
		}
		fills[i] = color
	}

	x := float64(spec.Width) / 2
	y := float64(spec.Height) / 2
	radius := math.Floor((x + y - style.LineWidth) / 2)

	var start float64
	for i, e := range spec.Tally {
		end := start + float64(e.Count)*360/float64(spec.Total)
		if e.Count < spec.Total {
			drawSector(c, x, y, radius, start, end)
			start = end
		} else {
			c.Circle(x, y, radius)
		}
		c.Paint(fills[i], style.StrokeColor, style.LineWidth)
	}

	c.Circle(x, y, style.CoreRadius)
	c.Paint(style.CoreFillColor, style.StrokeColor, style.LineWidth)
	return nil
}

func drawSector(c Canvas, x, y, radius, start, end float64) {
	c.MoveTo(x, y)
	c.Arc(x, y, radius, radians(start), radians(end))
	c.LineTo(x, y)
	c.ClosePath()
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
