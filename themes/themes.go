package themes

import "strings"

// Category is the closed set of album categories. Free-form input is
// mapped onto it through Parse; unknown values resolve to the default
// instead of failing.
type Category string

const (
	Weddings     Category = "weddings"
	Family       Category = "family"
	Celebrations Category = "celebrations"
	Travel       Category = "travel"
	Special      Category = "special"
	Personal     Category = "personal"
)

// DefaultCategory backs every unknown or empty category.
const DefaultCategory = Weddings

// Categories lists the closed set in display order.
func Categories() []Category {
	return []Category{Weddings, Family, Celebrations, Travel, Special, Personal}
}

// Parse maps free-form input onto the category set.
func Parse(s string) Category {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	switch c {
	case Weddings, Family, Celebrations, Travel, Special, Personal:
		return c
	}
	return DefaultCategory
}

// Palette holds the CSS colour values for one display mode.
type Palette struct {
	Primary    string
	Secondary  string
	Accent     string
	Background string
	Text       string
	Surface    string
	Border     string
	Shadow     string
}

// Fonts names the font stacks a theme renders with.
type Fonts struct {
	Display string
	Serif   string
	Sans    string
}

// Decorations selects the particle, overlay, and pattern variants.
type Decorations struct {
	Particles string
	Overlay   string
	Pattern   string
}

// Animations selects the motion variants.
type Animations struct {
	Entrance   string
	Hover      string
	Transition string
}

// Theme is the full presentation record for a category.
type Theme struct {
	Name        string
	Icon        string
	Light       Palette
	Dark        Palette
	Fonts       Fonts
	Decorations Decorations
	Animations  Animations
}

// Colors returns the palette for the requested mode.
func (t Theme) Colors(dark bool) Palette {
	if dark {
		return t.Dark
	}
	return t.Light
}

// For resolves the theme for a category. The mapping is total: anything
// outside the closed set gets the default theme.
func For(c Category) Theme {
	if t, ok := catalogue[c]; ok {
		return t
	}
	return catalogue[DefaultCategory]
}
