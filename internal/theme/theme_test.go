package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetTheme(t *testing.T) {
	assert.Equal(t, "Dracula", GetTheme("dracula").Name)
	assert.Equal(t, CatppuccinMocha, GetTheme("no-such-theme"))
}

func TestStyles(t *testing.T) {
	s := Dracula.Styles()

	assert.Equal(t, Dracula.Focus, s.Focused.GetBorderTopForeground())
	assert.Equal(t, Dracula.Border, s.Field.GetBorderTopForeground())
	assert.True(t, s.Title.GetBold())
}
