package config

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"lukechampine.com/frand"
)

// RandomColor picks one of the palette colors when resolved.
const RandomColor = "random"

type RGB struct {
	R, G, B uint8
}

func (c RGB) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

type BoardColor struct {
	Name  string
	Color RGB
}

// BoardColors is the palette offered for the board background.
var BoardColors = []BoardColor{
	{"Tan", RGB{230, 219, 172}},
	{"Beige", RGB{238, 220, 154}},
	{"Macaroon", RGB{248, 224, 118}},
	{"Hazel Wood", RGB{248, 224, 118}},
	{"Granola", RGB{214, 184, 90}},
	{"Oat", RGB{223, 201, 138}},
	{"Egg Nog", RGB{250, 226, 156}},
	{"Fawn", RGB{200, 169, 81}},
	{"Sugar Cookie", RGB{243, 234, 175}},
	{"Sand", RGB{216, 184, 99}},
	{"Sepia", RGB{248, 224, 118}},
	{"Latte", RGB{231, 194, 125}},
	{"Oyster", RGB{220, 215, 160}},
	{"Biscotti", RGB{227, 197, 101}},
	{"Parmesean", RGB{253, 233, 146}},
	{"Hazelnut", RGB{189, 165, 93}},
	{"Sandcastle", RGB{218, 193, 124}},
	{"Buttermilk", RGB{253, 239, 178}},
	{"Sand Dollar", RGB{237, 232, 186}},
	{"Shortbread", RGB{251, 231, 144}},
}

// LookupColor finds a palette entry by case-folded name. "random" is
// accepted and returns a zero BoardColor; use ResolveColor to pick one.
func LookupColor(name string) (BoardColor, error) {
	if strings.EqualFold(name, RandomColor) {
		return BoardColor{}, nil
	}
	fold := cases.Fold()
	want := fold.String(strings.TrimSpace(name))
	for _, c := range BoardColors {
		if fold.String(c.Name) == want {
			return c, nil
		}
	}
	return BoardColor{}, fmt.Errorf("%w: %q", ErrUnknownColor, name)
}

// ResolveColor is like LookupColor but replaces "random" with a random
// palette entry.
func ResolveColor(name string) (BoardColor, error) {
	if strings.EqualFold(name, RandomColor) {
		return BoardColors[frand.Intn(len(BoardColors))], nil
	}
	return LookupColor(name)
}
