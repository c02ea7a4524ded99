package piechart

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	gl "github.com/rustyoz/genericlexer"
	"golang.org/x/image/colornames"
)

// ParseColor parses a CSS color: a "#rgb" or "#rrggbb" hex triplet, a CSS
// color name such as "white", or the functional rgb(r, g, b) and
// rgba(r, g, b, a) forms.
func ParseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return nil, fmt.Errorf("%w: empty color", ErrConfiguration)
	case strings.HasPrefix(s, "#"):
		c, err := colorful.Hex(s)
		if err != nil {
			return nil, fmt.Errorf("%w: color %q: %v", ErrConfiguration, s, err)
		}
		r, g, b := c.RGB255()
		return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
	case strings.Contains(s, "("):
		return parseColorFunc(s)
	}

	c, ok := colornames.Map[strings.ToLower(s)]
	if !ok {
		return nil, fmt.Errorf("%w: unknown color name %q", ErrConfiguration, s)
	}
	return c, nil
}

func parseColorFunc(s string) (color.Color, error) {
	items := lexColor(s)

	var (
		name string
		args []float64
	)
	for _, i := range items {
		switch i.Type {
		case gl.ItemError:
			return nil, fmt.Errorf("%w: color %q: %s", ErrConfiguration, s, i.Value)
		case gl.ItemWord, gl.ItemLetter:
			name += i.Value
		case gl.ItemNumber:
			v, err := strconv.ParseFloat(i.Value, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: color %q: %v", ErrConfiguration, s, err)
			}
			args = append(args, v)
		}
	}
	return colorFromArgs(s, name, args)
}

// lexColor reads every item up to the end of s so the lexer goroutine
// always runs to completion. Each item consumes at least one byte, which
// bounds the loop.
func lexColor(s string) []gl.Item {
	var items []gl.Item
	l, _ := gl.Lex("color", s)
	for n := 0; n <= len(s); n++ {
		i := l.NextItem()
		if i.Type == gl.ItemEOS {
			break
		}
		items = append(items, i)
	}
	return items
}

func colorFromArgs(s, name string, args []float64) (color.Color, error) {
	switch {
	case name == "rgb" && len(args) == 3:
	case name == "rgba" && len(args) == 4:
	default:
		return nil, fmt.Errorf("%w: unsupported color %q", ErrConfiguration, s)
	}
	for _, v := range args[:3] {
		if v < 0 || v > 255 {
			return nil, fmt.Errorf("%w: color %q: channel %v out of range", ErrConfiguration, s, v)
		}
	}

	alpha := 1.0
	if len(args) == 4 {
		alpha = args[3]
		if alpha < 0 || alpha > 1 {
			return nil, fmt.Errorf("%w: color %q: alpha %v out of range", ErrConfiguration, s, alpha)
		}
	}

	return color.NRGBA{
		R: uint8(math.Round(args[0])),
		G: uint8(math.Round(args[1])),
		B: uint8(math.Round(args[2])),
		A: uint8(math.Round(alpha * 255)),
	}, nil
}
