package themes

// ANSI escape sequences for themed terminal output.
const (
	Red     = "\033[31m"
	Green   = "\033[32m"
	Yellow  = "\033[33m"
	Blue    = "\033[34m"
	Magenta = "\033[35m"
	Cyan    = "\033[36m"
	Gray    = "\033[90m"

	ResetColor = "\033[0m"
)

var categoryAccents = map[Category]string{
	Weddings:     Magenta,
	Family:       Yellow,
	Celebrations: Red,
	Travel:       Cyan,
	Special:      Blue,
	Personal:     Magenta,
}

// Accent returns the ANSI colour standing in for the category's primary
// colour when rendering in a terminal.
func (c Category) Accent() string {
	if a, ok := categoryAccents[c]; ok {
		return a
	}
	return categoryAccents[DefaultCategory]
}
