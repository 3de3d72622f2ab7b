package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/perfectpitch/internal/ui/theme"
)

const bannerArt = `╔═╗╔═╗╦═╗╔═╗╔═╗╔═╗╔╦╗  ╔═╗╦╔╦╗╔═╗╦ ╦
╠═╝║╣ ╠╦╝╠╣ ║╣ ║   ║   ╠═╝║ ║ ║  ╠═╣
╩  ╚═╝╩╚═╚  ╚═╝╚═╝ ╩   ╩  ╩ ╩ ╚═╝╩ ╩`

const bannerCompact = "P E R F E C T   P I T C H"

// RenderBanner returns the title banner. Terminals narrower than the
// block letters get a spaced-out fallback.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true)

	if width < lipgloss.Width(bannerArt)+4 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
