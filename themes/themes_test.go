package themes_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/abiy5791/RobelStudio-sub001/themes"
)

func TestParse(t *testing.T) {
	require.Equal(t, themes.Family, themes.Parse("family"))
	require.Equal(t, themes.Travel, themes.Parse("  TRAVEL "))
	require.Equal(t, themes.DefaultCategory, themes.Parse(""))
	require.Equal(t, themes.DefaultCategory, themes.Parse("landscapes"))
}

func TestForIsTotal(t *testing.T) {
	for _, c := range themes.Categories() {
		theme := themes.For(c)
		require.NotEmpty(t, theme.Name, c)
		require.NotEmpty(t, theme.Icon, c)
		require.NotEmpty(t, theme.Light.Primary, c)
		require.NotEmpty(t, theme.Dark.Primary, c)
		require.NotEmpty(t, theme.Fonts.Display, c)
	}

	// Unknown categories resolve to the default theme rather than a zero
	// value.
	require.Equal(t, themes.For(themes.DefaultCategory), themes.For(themes.Category("bogus")))
}

func TestColors(t *testing.T) {
	theme := themes.For(themes.Weddings)
	require.Equal(t, theme.Light, theme.Colors(false))
	require.Equal(t, theme.Dark, theme.Colors(true))
	require.NotEqual(t, theme.Light, theme.Dark)
}

func TestAccent(t *testing.T) {
	for _, c := range themes.Categories() {
		require.NotEmpty(t, c.Accent(), c)
	}
	require.Equal(t, themes.DefaultCategory.Accent(), themes.Category("bogus").Accent())
}
