package core

// Color is a foreground color for a screen cell, stored as a "#RRGGBB" hex string.
// The empty string means the terminal default.
type Color string

// Common screen colors.
const (
	ColorDefault Color = ""
	ColorWhite   Color = "#FFFFFF"
	ColorGray    Color = "#6C6C6C"
	ColorDim     Color = "#262626"

	// Background is the scene clear color; faded effects blend toward it.
	Background Color = "#050505"
)

// PaletteColor indexes one of the four gameplay colors.
type PaletteColor int

// The gameplay palette. Ring segments and the player each carry one of these.
const (
	Cyan PaletteColor = iota
	Magenta
	Yellow
	Lime
)

// PaletteSize is the number of gameplay colors.
const PaletteSize = 4

// Swatch describes a palette entry.
type Swatch struct {
	Name string
	Hex  Color
}

// Palette holds the four gameplay colors in index order.
var Palette = [PaletteSize]Swatch{
	{Name: "Cyan", Hex: "#00FFFF"},
	{Name: "Magenta", Hex: "#FF00FF"},
	{Name: "Yellow", Hex: "#FFFF00"},
	{Name: "Lime", Hex: "#39FF14"},
}

// Valid reports whether c is a palette index.
func (c PaletteColor) Valid() bool {
	return c >= 0 && c < PaletteSize
}

// Next returns the following palette color, wrapping around.
func (c PaletteColor) Next() PaletteColor {
	return (c + 1) % PaletteSize
}

// Hex returns the display color, or ColorDefault for an invalid index.
func (c PaletteColor) Hex() Color {
	if !c.Valid() {
		return ColorDefault
	}
	return Palette[c].Hex
}

// String returns the palette entry name.
func (c PaletteColor) String() string {
	if !c.Valid() {
		return "Unknown"
	}
	return Palette[c].Name
}
