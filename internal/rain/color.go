package rain

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"

	smerrors "github.com/Station-Manager/errors"
)

// Color is one of the eight basic terminal colors, or the terminal default.
// The actual shade depends on the terminal theme.
type Color int

const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
)

var colorNames = map[string]Color{
	"default": ColorDefault,
	"black":   ColorBlack,
	"red":     ColorRed,
	"green":   ColorGreen,
	"yellow":  ColorYellow,
	"blue":    ColorBlue,
	"magenta": ColorMagenta,
	"cyan":    ColorCyan,
	"white":   ColorWhite,
}

// ParseColor maps a color name to a Color.
func ParseColor(name string) (Color, error) {
	const op smerrors.Op = "rain.ParseColor"
	c, ok := colorNames[name]
	if !ok {
		return ColorDefault, smerrors.New(op).Msgf("unknown color %q", name)
	}
	return c, nil
}

// ColorNames lists the accepted color names, sorted.
func ColorNames() []string {
	names := make([]string, 0, len(colorNames))
	for n := range colorNames {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (c Color) String() string {
	for n, v := range colorNames {
		if v == c {
			return n
		}
	}
	return fmt.Sprintf("Color(%d)", int(c))
}

// styles[c] renders text in color c; the ANSI index is c-1.
var styles = func() []lipgloss.Style {
	s := make([]lipgloss.Style, ColorWhite+1)
	s[ColorDefault] = lipgloss.NewStyle()
	for c := ColorBlack; c <= ColorWhite; c++ {
		s[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(fmt.Sprint(int(c) - 1)))
	}
	return s
}()

func (c Color) render(s string) string {
	if c <= ColorDefault || int(c) >= len(styles) {
		return s
	}
	return styles[c].Render(s)
}
