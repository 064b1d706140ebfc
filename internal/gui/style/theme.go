// Package style turns the configured palette into a fyne theme.
package style

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/math-tools/factor-calc/internal/config"
)

// Palette holds the parsed colours of config.Style.
type Palette struct {
	Background color.Color
	Surface    color.Color
	Text       color.Color
	Border     color.Color
	Input      color.Color
	Accent     color.Color
	Hover      color.Color
	Pressed    color.Color
}

// ParseHex parses "#rrggbb" into an opaque colour.
func ParseHex(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return color.NRGBA{}, fmt.Errorf("invalid colour %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// NewPalette parses every colour of s, failing on the first invalid one.
func NewPalette(s config.Style) (*Palette, error) {
	p := &Palette{}
	fields := []struct {
		value string
		dst   *color.Color
	}{
		{s.Background, &p.Background},
		{s.Surface, &p.Surface},
		{s.Text, &p.Text},
		{s.Border, &p.Border},
		{s.Input, &p.Input},
		{s.Accent, &p.Accent},
		{s.Hover, &p.Hover},
		{s.Pressed, &p.Pressed},
	}
	for _, f := range fields {
		c, err := ParseHex(f.value)
		if err != nil {
			return nil, err
		}
		*f.dst = c
	}
	return p, nil
}

// Theme applies the palette on top of the default fyne theme. In the light
// variant only the accent colours and text size are overridden.
type Theme struct {
	palette  *Palette
	textSize float32
	variant  fyne.ThemeVariant
}

var _ fyne.Theme = (*Theme)(nil)

// NewTheme builds a theme from s; themeName "light" selects the light variant.
func NewTheme(s config.Style, themeName string) (*Theme, error) {
	p, err := NewPalette(s)
	if err != nil {
		return nil, err
	}

	variant := theme.VariantDark
	if themeName == "light" {
		variant = theme.VariantLight
	}

	return &Theme{palette: p, textSize: s.FontSize, variant: variant}, nil
}

// Palette returns the parsed colours, used for the canvas frame.
func (t *Theme) Palette() *Palette {
	return t.palette
}

func (t *Theme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		return t.palette.Accent
	case theme.ColorNamePressed:
		return t.palette.Pressed
	}

	if t.variant == theme.VariantDark {
		switch name {
		case theme.ColorNameBackground, theme.ColorNameButton:
			return t.palette.Background
		case theme.ColorNameInputBackground, theme.ColorNameMenuBackground, theme.ColorNameOverlayBackground:
			return t.palette.Surface
		case theme.ColorNameForeground:
			return t.palette.Text
		case theme.ColorNameInputBorder, theme.ColorNameSeparator:
			return t.palette.Input
		case theme.ColorNameHover:
			return t.palette.Hover
		}
	}

	return theme.DefaultTheme().Color(name, t.variant)
}

func (t *Theme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *Theme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *Theme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		if t.textSize > 0 {
			return t.textSize
		}
	case theme.SizeNameInputRadius:
		return 6
	case theme.SizeNameSelectionRadius:
		return 4
	}
	return theme.DefaultTheme().Size(name)
}
