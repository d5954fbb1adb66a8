package graphics

import "fmt"

type Color struct {
	R, G, B uint8
}

// Scale dims the colour by n/d.
func (c Color) Scale(n, d int) Color {
	return Color{
		R: uint8(int(c.R) * n / d),
		G: uint8(int(c.G) * n / d),
		B: uint8(int(c.B) * n / d),
	}
}

func (c Color) IsBlack() bool {
	return c.R == 0 && c.G == 0 && c.B == 0
}

// Hex formats the colour as #rrggbb
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

var (
	Black  = Color{0, 0, 0}
	Red    = Color{236, 30, 0}
	Green  = Color{0, 236, 128}
	Yellow = Color{236, 195, 0}
	White  = Color{255, 255, 255}
)
