package styles_test

import (
	"testing"

	"github.com/arthur-debert/redo/pkg/ui/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyleRegistry(t *testing.T) {
	for _, name := range []string{"Program", "Error", "ErrorCode", "Target", "Entry", "Ledger", "Muted"} {
		t.Run(name, func(t *testing.T) {
			_, exists := styles.StyleRegistry[name]
			assert.True(t, exists, "Style %s should exist in registry", name)
		})
	}
}

func TestEmbeddedStyles(t *testing.T) {
	assert.True(t, styles.GetStyle("Program").GetBold())
	assert.True(t, styles.GetStyle("Ledger").GetItalic())
	assert.Equal(t, lipgloss.AdaptiveColor{Light: "#B3261E", Dark: "#F2B8B5"}, styles.GetStyle("Error").GetForeground())
}

func TestGetStyle_Unknown(t *testing.T) {
	style := styles.GetStyle("NoSuchStyle")
	assert.Equal(t, "plain", style.Render("plain"))
}

func TestLoadStylesFromData(t *testing.T) {
	original := styles.StyleRegistry
	t.Cleanup(func() { styles.StyleRegistry = original })

	err := styles.LoadStylesFromData([]byte(`
colors:
  blue: {light: "#0000AA", dark: "#AAAAFF"}
styles:
  Error:
    foreground: blue
    underline: true
`))
	require.NoError(t, err)

	assert.Len(t, styles.StyleRegistry, 1)
	assert.True(t, styles.GetStyle("Error").GetUnderline())
	assert.Equal(t, lipgloss.AdaptiveColor{Light: "#0000AA", Dark: "#AAAAFF"}, styles.GetStyle("Error").GetForeground())

	assert.Error(t, styles.LoadStylesFromData([]byte("styles: [not, a, map]")))
	assert.Len(t, styles.StyleRegistry, 1, "failed load keeps the previous registry")
}
