package tile

// Palette is the set of colors a generator draws from. Colors may contain
// Transparent sentinels; repeating one raises its weight.
type Palette struct {
	Colors     []string
	Background string
}

// Bauhaus is the stock palette: eight primaries and three transparent
// entries over a warm paper background.
var Bauhaus = Palette{
	Colors: []string{
		"#F20505", "#D90416", "#F2B705", "#F2CB05",
		"#022859", "#1E6FD9", "#028C68", "#02A486",
		Transparent, Transparent, Transparent,
	},
	Background: "#ECE4DB",
}

// Len returns the number of palette entries, sentinels included.
func (p Palette) Len() int { return len(p.Colors) }
