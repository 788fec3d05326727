package transform

import "fmt"

// Pair is an opening and closing delimiter.
type Pair struct {
	Open  string
	Close string
}

// String returns the pair as it is shown to users, e.g. "{}".
func (p Pair) String() string {
	return p.Open + p.Close
}

// Delimiter pairs available to the array conversions.
var (
	Braces   = Pair{Open: "{", Close: "}"}
	Brackets = Pair{Open: "[", Close: "]"}
	Parens   = Pair{Open: "(", Close: ")"}
)

// Palette is the fixed, ordered set of pairs selectable by index.
// Index 0 is the default for both array conversions.
var Palette = [...]Pair{Braces, Brackets, Parens}

// ValidChoice reports whether i indexes Palette.
func ValidChoice(i int) bool {
	return i >= 0 && i < len(Palette)
}

// PairAt returns the palette entry at index i.
func PairAt(i int) (Pair, error) {
	if !ValidChoice(i) {
		return Pair{}, fmt.Errorf("%w: %d (want 0..%d)", ErrChoiceOutOfRange, i, len(Palette)-1)
	}
	return Palette[i], nil
}
