package charts

import (
	"github.com/wcharczuk/go-chart/v2/drawing"

	"rankboard.worldstats.org/internal/models"
)

// Palette is a group's bar coloring: Base for ordinary countries, Selected
// for the highlighted one.
type Palette struct {
	Base     drawing.Color
	Selected drawing.Color
}

var (
	paletteEconomy   = Palette{Base: rgb(240, 230, 140), Selected: rgb(218, 165, 32)}  // khaki / goldenrod
	palettePeople    = Palette{Base: rgb(192, 192, 192), Selected: rgb(128, 128, 128)} // silver / gray
	paletteGeography = Palette{Base: rgb(144, 238, 144), Selected: rgb(46, 139, 87)}   // lightgreen / seagreen
	paletteDefault   = Palette{Base: rgb(173, 216, 230), Selected: rgb(70, 130, 180)}  // lightblue / steelblue
)

var (
	colorWhite      = rgb(255, 255, 255)
	colorWhitesmoke = rgb(245, 245, 245)
	colorDimGray    = rgb(105, 105, 105)
)

// PaletteFor returns the bar palette for a metadata group. Groups without a
// dedicated palette share the Science coloring.
func PaletteFor(group models.Group) Palette {
	switch group {
	case models.GroupEconomy:
		return paletteEconomy
	case models.GroupPeople:
		return palettePeople
	case models.GroupGeography:
		return paletteGeography
	default:
		return paletteDefault
	}
}

func rgb(r, g, b uint8) drawing.Color {
	return drawing.Color{R: r, G: g, B: b, A: 255}
}
